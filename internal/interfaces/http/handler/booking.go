package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bookingapp "github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/application/booking"
)

// BookingHandler handles booking lifecycle and billing API endpoints
type BookingHandler struct {
	BaseHandler
	bookingService *bookingapp.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *bookingapp.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// GenerateInvoiceRequest represents a request to issue an invoice
type GenerateInvoiceRequest struct {
	DueInDays int `json:"due_in_days" binding:"omitempty,min=0,max=365"`
}

// RegisterRoutes registers booking routes on the given group
func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.List)
		bookings.GET("/reference/:reference", h.GetByReference)
		bookings.GET("/:id", h.GetByID)
		bookings.GET("/:id/summary", h.GetSummary)
		bookings.DELETE("/:id", h.Delete)

		bookings.POST("/:id/check-in", h.CheckIn)
		bookings.POST("/:id/check-out", h.CheckOut)
		bookings.POST("/:id/cancel", h.Cancel)
		bookings.POST("/:id/refund", h.Refund)

		bookings.POST("/:id/charges", h.AddCharge)
		bookings.POST("/:id/charges/reverse", h.ReverseCharge)
		bookings.POST("/:id/payments", h.AddPayment)

		bookings.POST("/:id/room-change/quote", h.QuoteRoomChange)
		bookings.POST("/:id/room-change", h.ChangeRoom)

		bookings.POST("/:id/invoices", h.GenerateInvoice)
		bookings.GET("/:id/invoices", h.ListInvoices)
	}

	invoices := rg.Group("/invoices")
	{
		invoices.GET("/:id", h.GetInvoice)
	}
}

func (h *BookingHandler) bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return uuid.Nil, false
	}
	return id, true
}

// Create creates a new booking
func (h *BookingHandler) Create(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req bookingapp.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.bookingService.Create(c.Request.Context(), principal, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List lists bookings with filtering and pagination
func (h *BookingHandler) List(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter bookingapp.BookingListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	results, total, err := h.bookingService.List(c.Request.Context(), principal, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, results, total, page, pageSize)
}

// GetByID retrieves a booking by ID
func (h *BookingHandler) GetByID(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	result, err := h.bookingService.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByReference retrieves a booking by its reference number
func (h *BookingHandler) GetByReference(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.bookingService.GetByReference(c.Request.Context(), principal, c.Param("reference"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetSummary retrieves the billing summary of a booking
func (h *BookingHandler) GetSummary(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	result, err := h.bookingService.GetSummary(c.Request.Context(), principal, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CheckIn checks a booking in. When the attempt date differs from the
// booked date and the mismatch is not acknowledged, the response carries
// a warning and committed=false instead of an error.
func (h *BookingHandler) CheckIn(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	// Body is optional: an empty request checks in as of now
	var req bookingapp.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BindError(c, err)
		return
	}

	result, err := h.bookingService.CheckIn(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CheckOut checks a booking out
func (h *BookingHandler) CheckOut(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req bookingapp.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BindError(c, err)
		return
	}

	result, err := h.bookingService.CheckOut(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Cancel cancels a booking
func (h *BookingHandler) Cancel(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req bookingapp.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.bookingService.Cancel(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Refund marks a cancelled booking's payments as refunded
func (h *BookingHandler) Refund(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	result, err := h.bookingService.Refund(c.Request.Context(), principal, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// AddCharge appends a charge to the booking ledger
func (h *BookingHandler) AddCharge(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req bookingapp.AddChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.bookingService.AddCharge(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ReverseCharge reverses a previously added charge
func (h *BookingHandler) ReverseCharge(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req bookingapp.ReverseChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.bookingService.ReverseCharge(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// AddPayment records a payment against the booking
func (h *BookingHandler) AddPayment(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req bookingapp.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.bookingService.AddPayment(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// QuoteRoomChange prices a room change without committing it
func (h *BookingHandler) QuoteRoomChange(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req bookingapp.ChangeRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.bookingService.QuoteRoomChange(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ChangeRoom moves a checked-in booking to a different room
func (h *BookingHandler) ChangeRoom(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req bookingapp.ChangeRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.bookingService.ChangeRoom(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GenerateInvoice issues an invoice snapshot of the booking's ledger
func (h *BookingHandler) GenerateInvoice(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BindError(c, err)
		return
	}

	result, err := h.bookingService.GenerateInvoice(c.Request.Context(), principal, id, req.DueInDays)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListInvoices lists the invoices issued for a booking
func (h *BookingHandler) ListInvoices(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	results, err := h.bookingService.ListInvoices(c.Request.Context(), principal, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// GetInvoice retrieves an invoice by ID
func (h *BookingHandler) GetInvoice(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	result, err := h.bookingService.GetInvoice(c.Request.Context(), principal, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a booking from the books
func (h *BookingHandler) Delete(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

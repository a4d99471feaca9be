package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/booking"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/hotel"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/identity"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared/valueobject"
)

// BookingService handles the booking lifecycle and its ledger. Every
// mutating operation is gated on a permission before any state is read,
// and every aggregate write goes through SaveWithLock so concurrent
// staff actions on the same booking serialize on the version check.
type BookingService struct {
	bookingRepo    booking.BookingRepository
	invoiceRepo    booking.InvoiceRepository
	roomRepo       hotel.RoomRepository
	eventPublisher shared.EventPublisher
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo booking.BookingRepository, invoiceRepo booking.InvoiceRepository, roomRepo hotel.RoomRepository) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		invoiceRepo: invoiceRepo,
		roomRepo:    roomRepo,
	}
}

// SetEventPublisher sets the event publisher for integrations
func (s *BookingService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new booking for an available room
func (s *BookingService) Create(ctx context.Context, principal identity.Principal, req CreateBookingRequest) (*BookingResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageBookings); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room.Status == hotel.RoomStatusMaintenance {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Room is under maintenance")
	}

	overlapping, err := s.bookingRepo.FindOverlapping(ctx, room.ID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Room is already booked for the requested dates")
	}

	guest, err := booking.NewGuestInfo(req.Guest.Name, req.Guest.Email, req.Guest.Phone, req.Guest.Address, req.Guest.IDNumber)
	if err != nil {
		return nil, err
	}
	discount, err := valueobject.NewPercentage(req.DiscountPercentage)
	if err != nil {
		return nil, err
	}
	taxRate, err := valueobject.NewPercentage(req.TaxRate)
	if err != nil {
		return nil, err
	}

	reference, err := s.bookingRepo.GenerateReference(ctx)
	if err != nil {
		return nil, err
	}

	b, err := booking.NewBooking(reference, room, req.CheckInDate, req.CheckOutDate, guest, discount, taxRate, principal.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Save(ctx, b); err != nil {
		return nil, err
	}
	s.publishEvents(b)

	response := ToBookingResponse(b)
	return &response, nil
}

// GetByID retrieves a booking by ID
func (s *BookingService) GetByID(ctx context.Context, principal identity.Principal, bookingID uuid.UUID) (*BookingResponse, error) {
	if err := identity.Authorize(principal, identity.PermViewBookings); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	response := ToBookingResponse(b)
	return &response, nil
}

// GetByReference retrieves a booking by its reference number
func (s *BookingService) GetByReference(ctx context.Context, principal identity.Principal, reference string) (*BookingResponse, error) {
	if err := identity.Authorize(principal, identity.PermViewBookings); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	response := ToBookingResponse(b)
	return &response, nil
}

// GetSummary returns the booking with its full invoice breakdown
func (s *BookingService) GetSummary(ctx context.Context, principal identity.Principal, bookingID uuid.UUID) (*BookingSummaryResponse, error) {
	if err := identity.Authorize(principal, identity.PermViewBookings); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	summary := ToBookingSummaryResponse(b)
	return &summary, nil
}

// List retrieves bookings with filtering and pagination
func (s *BookingService) List(ctx context.Context, principal identity.Principal, filter BookingListFilter) ([]BookingResponse, int64, error) {
	if err := identity.Authorize(principal, identity.PermViewBookings); err != nil {
		return nil, 0, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	if filter.RoomID != nil {
		domainFilter.Filters["room_id"] = *filter.RoomID
	}

	bookings, err := s.bookingRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.bookingRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = ToBookingResponse(&bookings[i])
	}
	return responses, total, nil
}

// CheckIn attempts to check the guest in. A date mismatch without
// acknowledgement returns the warning with Committed=false and persists
// nothing; the caller re-submits with the acknowledgement flag set.
func (s *BookingService) CheckIn(ctx context.Context, principal identity.Principal, bookingID uuid.UUID, req CheckInRequest) (*TransitionResponse, error) {
	if err := identity.Authorize(principal, identity.PermCheckInGuests); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	warning, err := b.CheckIn(date, req.AcknowledgeDateMismatch)
	if err != nil {
		return nil, err
	}
	if warning != nil && !req.AcknowledgeDateMismatch {
		resp := ToTransitionResponse(b, warning, false)
		return &resp, nil
	}

	room, err := s.roomRepo.FindByID(ctx, b.RoomID)
	if err != nil {
		return nil, err
	}
	room.MarkOccupied()

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}
	if err := s.roomRepo.Save(ctx, room); err != nil {
		return nil, err
	}
	s.publishEvents(b)

	resp := ToTransitionResponse(b, warning, true)
	return &resp, nil
}

// CheckOut attempts to check the guest out, with the same date-mismatch
// acknowledgement policy as CheckIn. The room is released regardless of
// any outstanding balance.
func (s *BookingService) CheckOut(ctx context.Context, principal identity.Principal, bookingID uuid.UUID, req CheckOutRequest) (*TransitionResponse, error) {
	if err := identity.Authorize(principal, identity.PermCheckOutGuests); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	warning, err := b.CheckOut(date, req.AcknowledgeDateMismatch)
	if err != nil {
		return nil, err
	}
	if warning != nil && !req.AcknowledgeDateMismatch {
		resp := ToTransitionResponse(b, warning, false)
		return &resp, nil
	}

	room, err := s.roomRepo.FindByID(ctx, b.RoomID)
	if err != nil {
		return nil, err
	}
	room.MarkAvailable()

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}
	if err := s.roomRepo.Save(ctx, room); err != nil {
		return nil, err
	}
	s.publishEvents(b)

	resp := ToTransitionResponse(b, warning, true)
	return &resp, nil
}

// Cancel cancels a booking and releases the room if the guest was in-house
func (s *BookingService) Cancel(ctx context.Context, principal identity.Principal, bookingID uuid.UUID, req CancelBookingRequest) (*BookingResponse, error) {
	if err := identity.Authorize(principal, identity.PermCancelBookings); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	wasCheckedIn := b.IsCheckedIn()
	if err := b.Cancel(req.Reason); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}
	if wasCheckedIn {
		room, err := s.roomRepo.FindByID(ctx, b.RoomID)
		if err != nil {
			return nil, err
		}
		room.MarkAvailable()
		if err := s.roomRepo.Save(ctx, room); err != nil {
			return nil, err
		}
	}
	s.publishEvents(b)

	response := ToBookingResponse(b)
	return &response, nil
}

// AddCharge appends a charge to the booking's ledger
func (s *BookingService) AddCharge(ctx context.Context, principal identity.Principal, bookingID uuid.UUID, req AddChargeRequest) (*BookingResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageCharges); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	amount := valueobject.NewMoneyBDT(req.Amount)
	if _, err := b.AddCharge(req.Description, amount, req.Notes, principal.UserID); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}
	s.publishEvents(b)

	response := ToBookingResponse(b)
	return &response, nil
}

// ReverseCharge appends an offsetting entry for an earlier charge
func (s *BookingService) ReverseCharge(ctx context.Context, principal identity.Principal, bookingID uuid.UUID, req ReverseChargeRequest) (*BookingResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageCharges); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if _, err := b.ReverseCharge(req.ChargeID, req.Notes, principal.UserID); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}

	response := ToBookingResponse(b)
	return &response, nil
}

// AddPayment appends a payment to the booking's ledger
func (s *BookingService) AddPayment(ctx context.Context, principal identity.Principal, bookingID uuid.UUID, req AddPaymentRequest) (*BookingResponse, error) {
	if err := identity.Authorize(principal, identity.PermManagePayments); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	amount := valueobject.NewMoneyBDT(req.Amount)
	if _, err := b.AddPayment(amount, req.Method, req.Reference, req.Notes, principal.UserID); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}
	s.publishEvents(b)

	response := ToBookingResponse(b)
	return &response, nil
}

// Refund marks a cancelled booking's payments as refunded
func (s *BookingService) Refund(ctx context.Context, principal identity.Principal, bookingID uuid.UUID) (*BookingResponse, error) {
	if err := identity.Authorize(principal, identity.PermProcessRefunds); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := b.Refund(); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}

	response := ToBookingResponse(b)
	return &response, nil
}

// QuoteRoomChange previews the financial delta of a room change without
// committing anything
func (s *BookingService) QuoteRoomChange(ctx context.Context, principal identity.Principal, bookingID uuid.UUID, req ChangeRoomRequest) (*RoomChangeQuoteResponse, error) {
	if err := identity.Authorize(principal, identity.PermChangeRooms); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	currentRoom, err := s.roomRepo.FindByID(ctx, b.RoomID)
	if err != nil {
		return nil, err
	}
	newRoom, err := s.roomRepo.FindByID(ctx, req.NewRoomID)
	if err != nil {
		return nil, err
	}

	discount, err := valueobject.NewPercentage(req.DiscountPercentage)
	if err != nil {
		return nil, err
	}
	taxRate, err := valueobject.NewPercentage(req.TaxRate)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	quote := booking.ComputeRoomChangeQuote(currentRoom.Rate, newRoom.Rate, discount, taxRate, b.CheckOutDate, date)
	return &RoomChangeQuoteResponse{Quote: quote}, nil
}

// ChangeRoom moves a checked-in guest to a different room and applies
// the prorated adjustment to the ledger
func (s *BookingService) ChangeRoom(ctx context.Context, principal identity.Principal, bookingID uuid.UUID, req ChangeRoomRequest) (*BookingResponse, error) {
	if err := identity.Authorize(principal, identity.PermChangeRooms); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	currentRoom, err := s.roomRepo.FindByID(ctx, b.RoomID)
	if err != nil {
		return nil, err
	}
	newRoom, err := s.roomRepo.FindByID(ctx, req.NewRoomID)
	if err != nil {
		return nil, err
	}
	if newRoom.ID != currentRoom.ID && !newRoom.IsAvailable() {
		return nil, shared.NewDomainError(shared.CodeValidationError, "New room is not available")
	}

	discount, err := valueobject.NewPercentage(req.DiscountPercentage)
	if err != nil {
		return nil, err
	}
	taxRate, err := valueobject.NewPercentage(req.TaxRate)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	if _, err := b.ChangeRoom(currentRoom, newRoom, discount, taxRate, date, req.Reason, req.Notes, principal.UserID); err != nil {
		return nil, err
	}

	currentRoom.MarkAvailable()
	newRoom.MarkOccupied()

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}
	if err := s.roomRepo.Save(ctx, currentRoom); err != nil {
		return nil, err
	}
	if err := s.roomRepo.Save(ctx, newRoom); err != nil {
		return nil, err
	}
	s.publishEvents(b)

	response := ToBookingResponse(b)
	return &response, nil
}

// GenerateInvoice issues a numbered invoice snapshot of the booking's
// current breakdown
func (s *BookingService) GenerateInvoice(ctx context.Context, principal identity.Principal, bookingID uuid.UUID, dueInDays int) (*InvoiceResponse, error) {
	if err := identity.Authorize(principal, identity.PermGenerateInvoice); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	invoiceNumber, err := s.invoiceRepo.GenerateInvoiceNumber(ctx)
	if err != nil {
		return nil, err
	}

	if dueInDays < 0 {
		dueInDays = 0
	}
	invoiceDate := time.Now()
	inv, err := booking.NewInvoice(invoiceNumber, b, invoiceDate, invoiceDate.AddDate(0, 0, dueInDays))
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(inv)
	return &response, nil
}

// GetInvoice retrieves a persisted invoice
func (s *BookingService) GetInvoice(ctx context.Context, principal identity.Principal, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	if err := identity.Authorize(principal, identity.PermViewBookings); err != nil {
		return nil, err
	}

	inv, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(inv)
	return &response, nil
}

// ListInvoices lists the invoices issued for a booking
func (s *BookingService) ListInvoices(ctx context.Context, principal identity.Principal, bookingID uuid.UUID) ([]InvoiceResponse, error) {
	if err := identity.Authorize(principal, identity.PermViewBookings); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.FindByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses, nil
}

// Delete administratively deletes a booking, releasing the room if the
// guest was in-house
func (s *BookingService) Delete(ctx context.Context, principal identity.Principal, bookingID uuid.UUID) error {
	if err := identity.Authorize(principal, identity.PermDeleteBooking); err != nil {
		return err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if b.IsCheckedIn() {
		room, err := s.roomRepo.FindByID(ctx, b.RoomID)
		if err != nil {
			return err
		}
		room.MarkAvailable()
		if err := s.roomRepo.Save(ctx, room); err != nil {
			return err
		}
	}

	return s.bookingRepo.Delete(ctx, bookingID)
}

func (s *BookingService) publishEvents(b *booking.Booking) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range b.GetDomainEvents() {
		_ = s.eventPublisher.Publish(event)
	}
	b.ClearDomainEvents()
}

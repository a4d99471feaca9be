package hotel

import (
	"context"

	"github.com/google/uuid"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/booking"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/hotel"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/identity"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared/valueobject"
)

// RoomService handles room administration and availability lookups
type RoomService struct {
	roomRepo    hotel.RoomRepository
	bookingRepo booking.BookingRepository
}

// NewRoomService creates a new RoomService
func NewRoomService(roomRepo hotel.RoomRepository, bookingRepo booking.BookingRepository) *RoomService {
	return &RoomService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
	}
}

// Create registers a new room
func (s *RoomService) Create(ctx context.Context, principal identity.Principal, req CreateRoomRequest) (*RoomResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageRooms); err != nil {
		return nil, err
	}

	existing, err := s.roomRepo.FindByNumber(ctx, req.Number)
	if err == nil && existing != nil {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Room number is already registered")
	}

	room, err := hotel.NewRoom(req.Number, req.Type, req.Capacity, valueobject.NewMoneyBDT(req.Rate))
	if err != nil {
		return nil, err
	}
	if req.Floor != 0 || req.Description != "" {
		if err := room.UpdateDetails(room.Type, room.Capacity, req.Floor, req.Description); err != nil {
			return nil, err
		}
	}

	if err := s.roomRepo.Save(ctx, room); err != nil {
		return nil, err
	}

	response := ToRoomResponse(room)
	return &response, nil
}

// GetByID retrieves a room
func (s *RoomService) GetByID(ctx context.Context, principal identity.Principal, roomID uuid.UUID) (*RoomResponse, error) {
	if err := identity.Authorize(principal, identity.PermViewRooms); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	response := ToRoomResponse(room)
	return &response, nil
}

// List retrieves rooms with filtering and pagination
func (s *RoomService) List(ctx context.Context, principal identity.Principal, filter RoomListFilter) ([]RoomResponse, int64, error) {
	if err := identity.Authorize(principal, identity.PermViewRooms); err != nil {
		return nil, 0, err
	}

	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	domainFilter.OrderBy = "number"
	domainFilter.OrderDir = "asc"
	if filter.Type != nil {
		domainFilter.Filters["type"] = string(*filter.Type)
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}

	rooms, err := s.roomRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.roomRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = ToRoomResponse(&rooms[i])
	}
	return responses, total, nil
}

// FindAvailable lists rooms free for the given date range
func (s *RoomService) FindAvailable(ctx context.Context, principal identity.Principal, req AvailabilityRequest) ([]RoomResponse, error) {
	if err := identity.Authorize(principal, identity.PermViewRooms); err != nil {
		return nil, err
	}
	if !req.CheckOutDate.After(req.CheckInDate) {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Check-out date must be after check-in date")
	}

	rooms, err := s.roomRepo.FindAvailableBetween(ctx, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	responses := make([]RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = ToRoomResponse(&rooms[i])
	}
	return responses, nil
}

// Update changes a room's details and rate. Rate changes never touch
// existing bookings, which keep the rate they were priced at.
func (s *RoomService) Update(ctx context.Context, principal identity.Principal, roomID uuid.UUID, req UpdateRoomRequest) (*RoomResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageRooms); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil || req.Capacity != nil || req.Floor != nil || req.Description != nil {
		roomType := room.Type
		if req.Type != nil {
			roomType = *req.Type
		}
		capacity := room.Capacity
		if req.Capacity != nil {
			capacity = *req.Capacity
		}
		floor := room.Floor
		if req.Floor != nil {
			floor = *req.Floor
		}
		description := room.Description
		if req.Description != nil {
			description = *req.Description
		}
		if err := room.UpdateDetails(roomType, capacity, floor, description); err != nil {
			return nil, err
		}
	}
	if req.Rate != nil {
		if err := room.UpdateRate(valueobject.NewMoneyBDT(*req.Rate)); err != nil {
			return nil, err
		}
	}

	if err := s.roomRepo.Save(ctx, room); err != nil {
		return nil, err
	}

	response := ToRoomResponse(room)
	return &response, nil
}

// SetStatus administratively changes a room's operational status
func (s *RoomService) SetStatus(ctx context.Context, principal identity.Principal, roomID uuid.UUID, req SetRoomStatusRequest) (*RoomResponse, error) {
	if err := identity.Authorize(principal, identity.PermManageRooms); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Unknown room status")
	}

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	switch req.Status {
	case hotel.RoomStatusAvailable:
		room.MarkAvailable()
	case hotel.RoomStatusOccupied:
		room.MarkOccupied()
	case hotel.RoomStatusMaintenance:
		room.MarkMaintenance()
	}

	if err := s.roomRepo.Save(ctx, room); err != nil {
		return nil, err
	}

	response := ToRoomResponse(room)
	return &response, nil
}

// Delete removes a room that has no bookings on record
func (s *RoomService) Delete(ctx context.Context, principal identity.Principal, roomID uuid.UUID) error {
	if err := identity.Authorize(principal, identity.PermManageRooms); err != nil {
		return err
	}

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return err
	}

	bookings, err := s.bookingRepo.FindByRoom(ctx, room.ID, shared.DefaultFilter())
	if err != nil {
		return err
	}
	if len(bookings) > 0 {
		return shared.NewDomainError(shared.CodeValidationError, "Room has bookings on record and cannot be deleted")
	}

	return s.roomRepo.Delete(ctx, room.ID)
}

package identity

import (
	"github.com/google/uuid"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeUser = "User"
	AggregateTypeRole = "Role"
)

// Event type constants
const (
	EventTypeUserCreated = "UserCreated"
	EventTypeRoleCreated = "RoleCreated"
)

// UserCreatedEvent is raised when a staff account is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	RoleID   uuid.UUID `json:"role_id"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, user.ID),
		UserID:          user.ID,
		Username:        user.Username,
		RoleID:          user.RoleID,
	}
}

// EventType returns the event type name
func (e *UserCreatedEvent) EventType() string {
	return EventTypeUserCreated
}

// RoleCreatedEvent is raised when a role is created
type RoleCreatedEvent struct {
	shared.BaseDomainEvent
	RoleID uuid.UUID `json:"role_id"`
	Code   string    `json:"code"`
	Name   string    `json:"name"`
}

// NewRoleCreatedEvent creates a new RoleCreatedEvent
func NewRoleCreatedEvent(role *Role) *RoleCreatedEvent {
	return &RoleCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRoleCreated, AggregateTypeRole, role.ID),
		RoleID:          role.ID,
		Code:            role.Code,
		Name:            role.Name,
	}
}

// EventType returns the event type name
func (e *RoleCreatedEvent) EventType() string {
	return EventTypeRoleCreated
}

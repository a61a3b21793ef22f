package domain

import (
	"context"
	"time"

	"campusinfo/internal/database"
	"campusinfo/internal/models"
)

// Repository is the persistence surface consumed by the service layer.
type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByStudentID(ctx context.Context, studentID string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)

	CreateBookingRequest(ctx context.Context, req *models.BookingRequest) error
	GetBookingRequest(ctx context.Context, id int64) (*models.BookingRequest, error)
	ListBookingRequests(ctx context.Context, f database.BookingFilters) ([]*models.BookingRequest, error)
	UpdateBookingRequestStatus(ctx context.Context, id int64, status string, reviewedBy int64, adminNotes string) error
	DeleteBookingRequest(ctx context.Context, id int64) error

	CreateSchedule(ctx context.Context, slot *models.ScheduleSlot) error
	GetScheduleByID(ctx context.Context, id int64) (*models.ScheduleSlot, error)
	GetSchedulesByResource(ctx context.Context, resourceType string, resourceID int64, day string) ([]*models.ScheduleSlot, error)
	UpdateSchedule(ctx context.Context, slot *models.ScheduleSlot) error
	DeleteSchedule(ctx context.Context, id int64) error

	ResourceName(ctx context.Context, resourceType string, resourceID int64) (string, error)
}

// TokenStore tracks revoked bearer tokens until they expire on their own.
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// EventPublisher decouples services from the event bus.
type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

// BookingService is the booking-request engine consumed by the HTTP layer.
type BookingService interface {
	Create(ctx context.Context, identity models.Identity, input models.BookingRequest) (*models.BookingRequest, error)
	List(ctx context.Context, identity models.Identity, f database.BookingFilters) ([]*models.BookingRequest, error)
	Get(ctx context.Context, identity models.Identity, id int64) (*models.BookingRequest, error)
	Transition(ctx context.Context, identity models.Identity, id int64, status, adminNotes string) (*models.BookingRequest, error)
	Delete(ctx context.Context, identity models.Identity, id int64) error
}

// NoticeService derives the upcoming-events feed from approved requests.
type NoticeService interface {
	Upcoming(ctx context.Context, limit int) ([]models.Notice, error)
}

// ScheduleService manages recurring weekly slots.
type ScheduleService interface {
	List(ctx context.Context, resourceType string, resourceID int64, day string) ([]*models.ScheduleSlot, error)
	Create(ctx context.Context, identity models.Identity, slot models.ScheduleSlot) (*models.ScheduleSlot, error)
	Update(ctx context.Context, identity models.Identity, slot models.ScheduleSlot) (*models.ScheduleSlot, error)
	Delete(ctx context.Context, identity models.Identity, id int64) error
}

// UserService resolves and issues identities.
type UserService interface {
	SignUp(ctx context.Context, studentID, name, password string) (*models.User, string, error)
	SignIn(ctx context.Context, studentID, password string) (*models.User, string, error)
	SignOut(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (models.Identity, error)
	ListUsers(ctx context.Context, identity models.Identity) ([]*models.User, error)
}

package models

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

const (
	ResourceClassroom = "classroom"
	ResourceLab       = "lab"
	ResourceBus       = "bus"
	ResourceCafeteria = "cafeteria"
)

// ResourceTypes lists every bookable resource kind.
var ResourceTypes = []string{ResourceClassroom, ResourceLab, ResourceBus, ResourceCafeteria}

// DaysOfWeek in schedule display order.
var DaysOfWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

const (
	// DateLayout is the wire and storage format for calendar dates.
	DateLayout = "2006-01-02"

	// ClockLayout is the wire and storage format for wall-clock times.
	ClockLayout = "15:04"
)

const (
	// DefaultNoticeLimit is the notice board page size when none is requested.
	DefaultNoticeLimit = 10

	// MaxNoticeLimit caps the notice board page size.
	MaxNoticeLimit = 100

	// TokenTTLHours is the bearer token lifetime.
	TokenTTLHours = 24

	// MinPasswordLength for signup.
	MinPasswordLength = 6
)

func ValidResourceType(t string) bool {
	for _, rt := range ResourceTypes {
		if rt == t {
			return true
		}
	}
	return false
}

func ValidDayOfWeek(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

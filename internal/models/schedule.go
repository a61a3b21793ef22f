package models

import "time"

// ScheduleSlot is a recurring weekly time block on a resource's calendar.
// It is admin-curated and has no approval workflow.
type ScheduleSlot struct {
	ID           int64     `json:"id"`
	ResourceType string    `json:"resource_type"`
	ResourceID   int64     `json:"resource_id"`
	DayOfWeek    string    `json:"day_of_week"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Subject      string    `json:"subject"`
	CourseCode   string    `json:"course_code,omitempty"`
	Instructor   string    `json:"instructor,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

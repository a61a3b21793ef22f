package models

import "time"

// BookingRequest is an ad-hoc, date-specific request to use a resource
// outside its recurring schedule. Status moves pending -> approved|rejected;
// both end states are terminal.
type BookingRequest struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	ResourceType     string    `json:"resource_type"`
	ResourceID       int64     `json:"resource_id"`
	Date             string    `json:"date"`       // 2006-01-02
	StartTime        string    `json:"start_time"` // 15:04
	EndTime          string    `json:"end_time"`
	ProgramName      string    `json:"program_name"`
	Description      string    `json:"description,omitempty"`
	ParticipantCount int64     `json:"participant_count,omitempty"`
	Status           string    `json:"status"`
	AdminNotes       string    `json:"admin_notes,omitempty"`
	ReviewedBy       int64     `json:"reviewed_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`

	// Joined display fields, populated on reads.
	RequesterName      string `json:"requester_name,omitempty"`
	RequesterStudentID string `json:"requester_student_id,omitempty"`
	ResourceName       string `json:"resource_name,omitempty"`
}

// Notice is a read-only projection entry for an approved upcoming booking.
type Notice struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	ResourceType string `json:"resource_type"`
	ProgramName  string `json:"program_name"`
	BookedBy     string `json:"booked_by"`
	StudentID    string `json:"student_id"`
	ResourceName string `json:"resource_name"`
}

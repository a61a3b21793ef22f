package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campusinfo/internal/models"
)

// BookingFilters narrows ListBookingRequests. Zero values mean "no filter";
// UserID restricts to one requester (ownership visibility for non-admins).
type BookingFilters struct {
	Status       string
	ResourceType string
	ResourceID   int64
	UserID       int64
}

const bookingSelect = `
    SELECT br.id, br.user_id, br.resource_type, br.resource_id, br.date,
           br.start_time, br.end_time, br.program_name, br.description,
           br.participant_count, br.status, br.admin_notes, br.reviewed_by,
           br.created_at, u.name, u.student_id,
           CASE br.resource_type
               WHEN 'classroom' THEN COALESCE((SELECT c.room_number FROM classrooms c WHERE c.id = br.resource_id), '')
               WHEN 'lab'       THEN COALESCE((SELECT l.name FROM labs l WHERE l.id = br.resource_id), '')
               WHEN 'bus'       THEN COALESCE((SELECT b.route_name FROM buses b WHERE b.id = br.resource_id), '')
               ELSE 'Cafeteria'
           END AS resource_name
    FROM booking_requests br
    JOIN users u ON u.id = br.user_id`

func (db *DB) CreateBookingRequest(ctx context.Context, req *models.BookingRequest) error {
	query := `INSERT INTO booking_requests (user_id, resource_type, resource_id, date, start_time,
                 end_time, program_name, description, participant_count, status, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()

	var participants any
	if req.ParticipantCount > 0 {
		participants = req.ParticipantCount
	}

	result, err := db.ExecContext(ctx, query, req.UserID, req.ResourceType, req.ResourceID,
		req.Date, req.StartTime, req.EndTime, req.ProgramName, req.Description,
		participants, models.StatusPending, now)
	if err != nil {
		return fmt.Errorf("failed to create booking request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	req.ID = id
	req.Status = models.StatusPending
	req.CreatedAt = now
	return nil
}

func (db *DB) GetBookingRequest(ctx context.Context, id int64) (*models.BookingRequest, error) {
	query := bookingSelect + ` WHERE br.id = ?`
	req, err := scanBookingRequest(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking request: %w", err)
	}
	return req, nil
}

func (db *DB) ListBookingRequests(ctx context.Context, f BookingFilters) ([]*models.BookingRequest, error) {
	query := bookingSelect + ` WHERE 1=1`
	var args []any
	if f.Status != "" {
		query += ` AND br.status = ?`
		args = append(args, f.Status)
	}
	if f.ResourceType != "" {
		query += ` AND br.resource_type = ?`
		args = append(args, f.ResourceType)
	}
	if f.ResourceID != 0 {
		query += ` AND br.resource_id = ?`
		args = append(args, f.ResourceID)
	}
	if f.UserID != 0 {
		query += ` AND br.user_id = ?`
		args = append(args, f.UserID)
	}
	query += ` ORDER BY br.created_at DESC, br.id DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list booking requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.BookingRequest, 0)
	for rows.Next() {
		req, err := scanBookingRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// UpdateBookingRequestStatus applies a pending -> approved|rejected
// transition. The WHERE status='pending' clause is the optimistic guard:
// two concurrent reviews cannot both land, and terminal requests stay
// immutable. Zero affected rows means either a missing id (ErrNotFound) or
// an already-reviewed request (ErrAlreadyReviewed).
func (db *DB) UpdateBookingRequestStatus(ctx context.Context, id int64, status string, reviewedBy int64, adminNotes string) error {
	query := `UPDATE booking_requests SET status = ?, reviewed_by = ?, admin_notes = ?
              WHERE id = ? AND status = ?`
	result, err := db.ExecContext(ctx, query, status, reviewedBy, adminNotes, id, models.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to update booking request status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		var exists int
		checkErr := db.QueryRowContext(ctx,
			`SELECT 1 FROM booking_requests WHERE id = ?`, id).Scan(&exists)
		if errors.Is(checkErr, sql.ErrNoRows) {
			return ErrNotFound
		}
		if checkErr != nil {
			return fmt.Errorf("failed to check booking request: %w", checkErr)
		}
		return ErrAlreadyReviewed
	}
	return nil
}

func (db *DB) DeleteBookingRequest(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM booking_requests WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking request: %w", err)
	}
	return requireRow(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingRequest(row rowScanner) (*models.BookingRequest, error) {
	req := &models.BookingRequest{}
	var (
		description  sql.NullString
		participants sql.NullInt64
		adminNotes   sql.NullString
		reviewedBy   sql.NullInt64
	)
	err := row.Scan(&req.ID, &req.UserID, &req.ResourceType, &req.ResourceID, &req.Date,
		&req.StartTime, &req.EndTime, &req.ProgramName, &description, &participants,
		&req.Status, &adminNotes, &reviewedBy, &req.CreatedAt,
		&req.RequesterName, &req.RequesterStudentID, &req.ResourceName)
	if err != nil {
		return nil, err
	}
	req.Description = description.String
	req.ParticipantCount = participants.Int64
	req.AdminNotes = adminNotes.String
	req.ReviewedBy = reviewedBy.Int64
	return req, nil
}

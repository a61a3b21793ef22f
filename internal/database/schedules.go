package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campusinfo/internal/models"
)

func (db *DB) CreateSchedule(ctx context.Context, slot *models.ScheduleSlot) error {
	query := `INSERT INTO schedules (resource_type, resource_id, day_of_week, start_time, end_time,
                 subject, course_code, instructor, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	result, err := db.ExecContext(ctx, query, slot.ResourceType, slot.ResourceID, slot.DayOfWeek,
		slot.StartTime, slot.EndTime, slot.Subject, slot.CourseCode, slot.Instructor, now, now)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	slot.ID, _ = result.LastInsertId()
	slot.CreatedAt = now
	slot.UpdatedAt = now
	return nil
}

func (db *DB) GetScheduleByID(ctx context.Context, id int64) (*models.ScheduleSlot, error) {
	query := `SELECT id, resource_type, resource_id, day_of_week, start_time, end_time,
                 subject, course_code, instructor, created_at, updated_at
              FROM schedules WHERE id = ?`
	slot := &models.ScheduleSlot{}
	err := db.QueryRowContext(ctx, query, id).Scan(&slot.ID, &slot.ResourceType, &slot.ResourceID,
		&slot.DayOfWeek, &slot.StartTime, &slot.EndTime, &slot.Subject, &slot.CourseCode,
		&slot.Instructor, &slot.CreatedAt, &slot.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return slot, nil
}

// GetSchedulesByResource returns a resource's recurring slots, optionally
// restricted to one weekday, ordered for weekly display.
func (db *DB) GetSchedulesByResource(ctx context.Context, resourceType string, resourceID int64, day string) ([]*models.ScheduleSlot, error) {
	query := `SELECT id, resource_type, resource_id, day_of_week, start_time, end_time,
                 subject, course_code, instructor, created_at, updated_at
              FROM schedules WHERE resource_type = ? AND resource_id = ?`
	args := []any{resourceType, resourceID}
	if day != "" {
		query += ` AND day_of_week = ?`
		args = append(args, day)
	}
	query += ` ORDER BY
              CASE day_of_week
                  WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 WHEN 'Wednesday' THEN 3
                  WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 WHEN 'Saturday' THEN 6
                  ELSE 7
              END, start_time`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules: %w", err)
	}
	defer rows.Close()

	slots := make([]*models.ScheduleSlot, 0)
	for rows.Next() {
		slot := &models.ScheduleSlot{}
		if err := rows.Scan(&slot.ID, &slot.ResourceType, &slot.ResourceID, &slot.DayOfWeek,
			&slot.StartTime, &slot.EndTime, &slot.Subject, &slot.CourseCode, &slot.Instructor,
			&slot.CreatedAt, &slot.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

func (db *DB) UpdateSchedule(ctx context.Context, slot *models.ScheduleSlot) error {
	query := `UPDATE schedules SET resource_type = ?, resource_id = ?, day_of_week = ?,
                 start_time = ?, end_time = ?, subject = ?, course_code = ?, instructor = ?,
                 updated_at = ? WHERE id = ?`
	result, err := db.ExecContext(ctx, query, slot.ResourceType, slot.ResourceID, slot.DayOfWeek,
		slot.StartTime, slot.EndTime, slot.Subject, slot.CourseCode, slot.Instructor,
		time.Now(), slot.ID)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	return requireRow(result)
}

func (db *DB) DeleteSchedule(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return requireRow(result)
}

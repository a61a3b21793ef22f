package service

import (
	"context"

	"campusinfo/internal/domain"
	"campusinfo/internal/models"

	"github.com/rs/zerolog"
)

// TimetableService manages the recurring weekly slots shown on resource pages.
type TimetableService struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewTimetableService(repo domain.Repository, logger *zerolog.Logger) *TimetableService {
	return &TimetableService{repo: repo, logger: logger}
}

func (s *TimetableService) List(ctx context.Context, resourceType string, resourceID int64, day string) ([]*models.ScheduleSlot, error) {
	if !models.ValidResourceType(resourceType) {
		return nil, validationError("Invalid resource type: %s", resourceType)
	}
	if resourceID <= 0 {
		return nil, validationError("Resource ID is required")
	}
	if day != "" && !models.ValidDayOfWeek(day) {
		return nil, validationError("Invalid day of week: %s", day)
	}
	return s.repo.GetSchedulesByResource(ctx, resourceType, resourceID, day)
}

func (s *TimetableService) Create(ctx context.Context, identity models.Identity, slot models.ScheduleSlot) (*models.ScheduleSlot, error) {
	if err := RequireAdmin(identity); err != nil {
		return nil, err
	}
	if err := validateSlot(&slot); err != nil {
		return nil, err
	}

	if err := s.repo.CreateSchedule(ctx, &slot); err != nil {
		return nil, err
	}
	s.logger.Info().
		Int64("schedule_id", slot.ID).
		Str("resource_type", slot.ResourceType).
		Int64("resource_id", slot.ResourceID).
		Str("day", slot.DayOfWeek).
		Msg("schedule slot created")
	return s.repo.GetScheduleByID(ctx, slot.ID)
}

func (s *TimetableService) Update(ctx context.Context, identity models.Identity, slot models.ScheduleSlot) (*models.ScheduleSlot, error) {
	if err := RequireAdmin(identity); err != nil {
		return nil, err
	}
	if err := validateSlot(&slot); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateSchedule(ctx, &slot); err != nil {
		return nil, err
	}
	return s.repo.GetScheduleByID(ctx, slot.ID)
}

func (s *TimetableService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if err := RequireAdmin(identity); err != nil {
		return err
	}
	return s.repo.DeleteSchedule(ctx, id)
}

func validateSlot(slot *models.ScheduleSlot) error {
	if slot.ResourceType == "" || slot.ResourceID <= 0 || slot.DayOfWeek == "" ||
		slot.StartTime == "" || slot.EndTime == "" || slot.Subject == "" {
		return validationError("Resource, day, time range, and subject are required")
	}
	if !models.ValidResourceType(slot.ResourceType) {
		return validationError("Invalid resource type: %s", slot.ResourceType)
	}
	if !models.ValidDayOfWeek(slot.DayOfWeek) {
		return validationError("Invalid day of week: %s", slot.DayOfWeek)
	}
	return validateClockRange(slot.StartTime, slot.EndTime)
}

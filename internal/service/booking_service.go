package service

import (
	"context"
	"fmt"
	"time"

	"campusinfo/internal/database"
	"campusinfo/internal/domain"
	"campusinfo/internal/events"
	"campusinfo/internal/models"

	"github.com/rs/zerolog"
)

// BookingRequestService implements the request and review workflow. Requests
// are born pending and an admin moves each one to approved or rejected exactly
// once; overlapping requests are left for the reviewing admin to arbitrate.
type BookingRequestService struct {
	repo   domain.Repository
	bus    domain.EventPublisher
	logger *zerolog.Logger
}

func NewBookingRequestService(repo domain.Repository, bus domain.EventPublisher, logger *zerolog.Logger) *BookingRequestService {
	return &BookingRequestService{repo: repo, bus: bus, logger: logger}
}

func (s *BookingRequestService) Create(ctx context.Context, identity models.Identity, input models.BookingRequest) (*models.BookingRequest, error) {
	if err := validateBookingInput(&input); err != nil {
		return nil, err
	}

	input.UserID = identity.ID
	input.Status = models.StatusPending
	if err := s.repo.CreateBookingRequest(ctx, &input); err != nil {
		return nil, err
	}

	created, err := s.repo.GetBookingRequest(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	s.publish(events.EventBookingRequestCreated, created, identity.ID)
	s.logger.Info().
		Int64("request_id", created.ID).
		Str("resource_type", created.ResourceType).
		Int64("resource_id", created.ResourceID).
		Str("date", created.Date).
		Msg("booking request created")
	return created, nil
}

// List applies the visibility rule: students see their own requests, except
// that the approved feed is public to any authenticated user. Admins see
// everything.
func (s *BookingRequestService) List(ctx context.Context, identity models.Identity, f database.BookingFilters) ([]*models.BookingRequest, error) {
	if !identity.IsAdmin() && f.Status != models.StatusApproved {
		f.UserID = identity.ID
	}
	return s.repo.ListBookingRequests(ctx, f)
}

func (s *BookingRequestService) Get(ctx context.Context, identity models.Identity, id int64) (*models.BookingRequest, error) {
	req, err := s.repo.GetBookingRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() && req.UserID != identity.ID {
		return nil, fmt.Errorf("%w: Access denied", ErrForbidden)
	}
	return req, nil
}

// Transition reviews a pending request. The storage layer refuses the update
// unless the request is still pending, so two admins racing on the same
// request cannot both win.
func (s *BookingRequestService) Transition(ctx context.Context, identity models.Identity, id int64, status, adminNotes string) (*models.BookingRequest, error) {
	if err := RequireAdmin(identity); err != nil {
		return nil, err
	}
	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, validationError("Status must be approved or rejected")
	}

	if err := s.repo.UpdateBookingRequestStatus(ctx, id, status, identity.ID, adminNotes); err != nil {
		return nil, err
	}

	req, err := s.repo.GetBookingRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	eventType := events.EventBookingRequestApproved
	if status == models.StatusRejected {
		eventType = events.EventBookingRequestRejected
	}
	s.publish(eventType, req, identity.ID)
	s.logger.Info().
		Int64("request_id", req.ID).
		Str("status", status).
		Int64("reviewed_by", identity.ID).
		Msg("booking request reviewed")
	return req, nil
}

// Delete removes a request. Owners may only withdraw requests that have not
// been reviewed yet; admins may delete any request.
func (s *BookingRequestService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	req, err := s.repo.GetBookingRequest(ctx, id)
	if err != nil {
		return err
	}

	if !identity.IsAdmin() {
		if req.UserID != identity.ID {
			return fmt.Errorf("%w: Access denied", ErrForbidden)
		}
		if req.Status != models.StatusPending {
			return validationError("Can only delete pending requests")
		}
	}

	if err := s.repo.DeleteBookingRequest(ctx, id); err != nil {
		return err
	}

	s.publish(events.EventBookingRequestDeleted, req, identity.ID)
	return nil
}

func (s *BookingRequestService) publish(eventType string, req *models.BookingRequest, changedBy int64) {
	if s.bus == nil {
		return
	}
	err := s.bus.PublishJSON(eventType, events.BookingEventPayload{
		RequestID:    req.ID,
		UserID:       req.UserID,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ProgramName:  req.ProgramName,
		Status:       req.Status,
		ChangedBy:    changedBy,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("event", eventType).Msg("failed to publish booking event")
	}
}

func validateBookingInput(req *models.BookingRequest) error {
	if req.ResourceType == "" || req.ResourceID <= 0 || req.Date == "" ||
		req.StartTime == "" || req.EndTime == "" || req.ProgramName == "" {
		return validationError("Resource, date, time range, and program name are required")
	}
	if !models.ValidResourceType(req.ResourceType) {
		return validationError("Invalid resource type: %s", req.ResourceType)
	}
	if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		return validationError("Date must be in YYYY-MM-DD format")
	}
	if err := validateClockRange(req.StartTime, req.EndTime); err != nil {
		return err
	}
	if req.ParticipantCount < 0 {
		return validationError("Participant count must be positive")
	}
	return nil
}

// validateClockRange checks HH:MM wall-clock strings. Zero-padded 24h strings
// order lexicographically, so a plain string compare settles start < end.
func validateClockRange(start, end string) error {
	for _, v := range []string{start, end} {
		if len(v) != 5 {
			return validationError("Times must be in HH:MM format")
		}
		if _, err := time.Parse(models.ClockLayout, v); err != nil {
			return validationError("Times must be in HH:MM format")
		}
	}
	if start >= end {
		return validationError("Start time must be before end time")
	}
	return nil
}

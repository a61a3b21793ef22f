package service

import (
	"context"
	"sort"
	"time"

	"campusinfo/internal/database"
	"campusinfo/internal/domain"
	"campusinfo/internal/models"
)

// EventNoticeService projects approved booking requests into the public
// upcoming-events feed. It keeps no state of its own; the feed is derived on
// every read.
type EventNoticeService struct {
	repo domain.Repository
	now  func() time.Time
}

func NewEventNoticeService(repo domain.Repository) *EventNoticeService {
	return &EventNoticeService{repo: repo, now: time.Now}
}

func (s *EventNoticeService) Upcoming(ctx context.Context, limit int) ([]models.Notice, error) {
	if limit <= 0 {
		limit = models.DefaultNoticeLimit
	}
	if limit > models.MaxNoticeLimit {
		limit = models.MaxNoticeLimit
	}

	approved, err := s.repo.ListBookingRequests(ctx, database.BookingFilters{Status: models.StatusApproved})
	if err != nil {
		return nil, err
	}

	today := s.now().Format(models.DateLayout)
	notices := make([]models.Notice, 0, len(approved))
	for _, req := range approved {
		if req.Date < today {
			continue
		}
		notices = append(notices, models.Notice{
			ID:           req.ID,
			Date:         req.Date,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			ResourceType: req.ResourceType,
			ProgramName:  req.ProgramName,
			BookedBy:     req.RequesterName,
			StudentID:    req.RequesterStudentID,
			ResourceName: req.ResourceName,
		})
	}

	sort.Slice(notices, func(i, j int) bool {
		if notices[i].Date != notices[j].Date {
			return notices[i].Date < notices[j].Date
		}
		return notices[i].StartTime < notices[j].StartTime
	})

	if len(notices) > limit {
		notices = notices[:limit]
	}
	return notices, nil
}

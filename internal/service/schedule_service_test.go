package service

import (
	"context"
	"testing"

	"campusinfo/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSlot() models.ScheduleSlot {
	return models.ScheduleSlot{
		ResourceType: models.ResourceClassroom,
		ResourceID:   1,
		DayOfWeek:    "Monday",
		StartTime:    "09:00",
		EndTime:      "10:30",
		Subject:      "Algorithms",
		CourseCode:   "CS-301",
	}
}

func TestTimetableCreateRequiresAdmin(t *testing.T) {
	logger := zerolog.Nop()
	svc := NewTimetableService(newTestRepo(t), &logger)

	_, err := svc.Create(context.Background(), models.Identity{Role: models.RoleStudent}, validSlot())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTimetableCreateAndList(t *testing.T) {
	logger := zerolog.Nop()
	svc := NewTimetableService(newTestRepo(t), &logger)
	ctx := context.Background()
	admin := models.Identity{ID: 1, Role: models.RoleAdmin}

	created, err := svc.Create(ctx, admin, validSlot())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	slots, err := svc.List(ctx, models.ResourceClassroom, 1, "")
	require.NoError(t, err)
	assert.Len(t, slots, 1)

	slots, err = svc.List(ctx, models.ResourceClassroom, 1, "Tuesday")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestTimetableValidation(t *testing.T) {
	logger := zerolog.Nop()
	svc := NewTimetableService(newTestRepo(t), &logger)
	ctx := context.Background()
	admin := models.Identity{ID: 1, Role: models.RoleAdmin}

	cases := map[string]func(*models.ScheduleSlot){
		"missing subject":   func(s *models.ScheduleSlot) { s.Subject = "" },
		"bad resource type": func(s *models.ScheduleSlot) { s.ResourceType = "stadium" },
		"bad day":           func(s *models.ScheduleSlot) { s.DayOfWeek = "Funday" },
		"bad time":          func(s *models.ScheduleSlot) { s.StartTime = "25:00" },
		"inverted range":    func(s *models.ScheduleSlot) { s.StartTime, s.EndTime = "11:00", "09:00" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			slot := validSlot()
			mutate(&slot)
			_, err := svc.Create(ctx, admin, slot)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	_, err := svc.List(ctx, "stadium", 1, "")
	assert.ErrorIs(t, err, ErrValidation)
}

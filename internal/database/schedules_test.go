package database

import (
	"context"
	"testing"

	"campusinfo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSlot(t *testing.T, db *DB, day, start string) *models.ScheduleSlot {
	t.Helper()
	slot := &models.ScheduleSlot{
		ResourceType: models.ResourceClassroom,
		ResourceID:   1,
		DayOfWeek:    day,
		StartTime:    start,
		EndTime:      "23:00",
		Subject:      "Algorithms",
		CourseCode:   "CS-301",
		Instructor:   "Dr. Rahman",
	}
	require.NoError(t, db.CreateSchedule(context.Background(), slot))
	return slot
}

func TestGetSchedulesByResourceOrdering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Inserted out of week order on purpose.
	seedSlot(t, db, "Wednesday", "08:00")
	seedSlot(t, db, "Monday", "10:00")
	seedSlot(t, db, "Monday", "08:00")
	seedSlot(t, db, "Sunday", "08:00")

	slots, err := db.GetSchedulesByResource(ctx, models.ResourceClassroom, 1, "")
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.Equal(t, "Monday", slots[0].DayOfWeek)
	assert.Equal(t, "08:00", slots[0].StartTime)
	assert.Equal(t, "Monday", slots[1].DayOfWeek)
	assert.Equal(t, "10:00", slots[1].StartTime)
	assert.Equal(t, "Wednesday", slots[2].DayOfWeek)
	assert.Equal(t, "Sunday", slots[3].DayOfWeek)
}

func TestGetSchedulesByResourceDayFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedSlot(t, db, "Monday", "08:00")
	seedSlot(t, db, "Tuesday", "08:00")

	slots, err := db.GetSchedulesByResource(ctx, models.ResourceClassroom, 1, "Tuesday")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "Tuesday", slots[0].DayOfWeek)
}

func TestUpdateAndDeleteSchedule(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	slot := seedSlot(t, db, "Friday", "09:00")
	slot.Subject = "Distributed Systems"
	require.NoError(t, db.UpdateSchedule(ctx, slot))

	got, err := db.GetScheduleByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, "Distributed Systems", got.Subject)

	require.NoError(t, db.DeleteSchedule(ctx, slot.ID))
	_, err = db.GetScheduleByID(ctx, slot.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, db.DeleteSchedule(ctx, slot.ID), ErrNotFound)
}

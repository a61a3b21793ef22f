package database

import (
	"context"
	"testing"

	"campusinfo/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	logger := zerolog.Nop()
	db, err := NewDB(":memory:", &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedUser(t *testing.T, db *DB, studentID, role string) *models.User {
	t.Helper()
	user := &models.User{
		StudentID:    studentID,
		Name:         "Test " + studentID,
		Role:         role,
		PasswordHash: "x",
	}
	require.NoError(t, db.CreateUser(context.Background(), user))
	return user
}

func seedRequest(t *testing.T, db *DB, userID int64, date string) *models.BookingRequest {
	t.Helper()
	req := &models.BookingRequest{
		UserID:       userID,
		ResourceType: models.ResourceLab,
		ResourceID:   3,
		Date:         date,
		StartTime:    "09:00",
		EndTime:      "11:00",
		ProgramName:  "Robotics Demo",
	}
	require.NoError(t, db.CreateBookingRequest(context.Background(), req))
	return req
}

func TestCreateAndGetBookingRequest(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "S-1001", models.RoleStudent)

	req := &models.BookingRequest{
		UserID:           user.ID,
		ResourceType:     models.ResourceLab,
		ResourceID:       3,
		Date:             "2027-06-10",
		StartTime:        "09:00",
		EndTime:          "11:00",
		ProgramName:      "Robotics Demo",
		Description:      "Annual robotics showcase",
		ParticipantCount: 40,
		Status:           models.StatusApproved, // must be ignored
	}
	require.NoError(t, db.CreateBookingRequest(ctx, req))
	assert.NotZero(t, req.ID)
	assert.Equal(t, models.StatusPending, req.Status)

	got, err := db.GetBookingRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, "Robotics Demo", got.ProgramName)
	assert.Equal(t, int64(40), got.ParticipantCount)
	assert.Equal(t, user.Name, got.RequesterName)
	assert.Equal(t, "S-1001", got.RequesterStudentID)
	assert.Empty(t, got.ResourceName) // lab 3 does not exist
}

func TestBookingRequestResourceName(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "S-1002", models.RoleStudent)

	lab := &models.Lab{Name: "Physics Lab", Dept: "Physics", Capacity: 30}
	require.NoError(t, db.CreateLab(ctx, lab))

	req := &models.BookingRequest{
		UserID:       user.ID,
		ResourceType: models.ResourceLab,
		ResourceID:   lab.ID,
		Date:         "2027-06-10",
		StartTime:    "09:00",
		EndTime:      "11:00",
		ProgramName:  "Optics Workshop",
	}
	require.NoError(t, db.CreateBookingRequest(ctx, req))

	got, err := db.GetBookingRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics Lab", got.ResourceName)
}

func TestGetBookingRequestNotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := db.GetBookingRequest(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBookingRequestStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	admin := seedUser(t, db, "ADMIN-1", models.RoleAdmin)
	user := seedUser(t, db, "S-1003", models.RoleStudent)
	req := seedRequest(t, db, user.ID, "2027-06-10")

	err := db.UpdateBookingRequestStatus(ctx, req.ID, models.StatusApproved, admin.ID, "Approved for demo day")
	require.NoError(t, err)

	got, err := db.GetBookingRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)
	assert.Equal(t, admin.ID, got.ReviewedBy)
	assert.Equal(t, "Approved for demo day", got.AdminNotes)
}

func TestUpdateBookingRequestStatusAlreadyReviewed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	admin := seedUser(t, db, "ADMIN-1", models.RoleAdmin)
	user := seedUser(t, db, "S-1004", models.RoleStudent)
	req := seedRequest(t, db, user.ID, "2027-06-10")

	require.NoError(t, db.UpdateBookingRequestStatus(ctx, req.ID, models.StatusApproved, admin.ID, ""))

	// A second review on the same request must not land.
	err := db.UpdateBookingRequestStatus(ctx, req.ID, models.StatusRejected, admin.ID, "changed my mind")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	got, err := db.GetBookingRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)
}

func TestUpdateBookingRequestStatusNotFound(t *testing.T) {
	db := newTestDB(t)
	err := db.UpdateBookingRequestStatus(context.Background(), 4242, models.StatusApproved, 1, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListBookingRequestsFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	admin := seedUser(t, db, "ADMIN-1", models.RoleAdmin)
	alice := seedUser(t, db, "S-2001", models.RoleStudent)
	bob := seedUser(t, db, "S-2002", models.RoleStudent)

	first := seedRequest(t, db, alice.ID, "2027-06-10")
	seedRequest(t, db, bob.ID, "2027-06-11")
	require.NoError(t, db.UpdateBookingRequestStatus(ctx, first.ID, models.StatusApproved, admin.ID, ""))

	all, err := db.ListBookingRequests(ctx, BookingFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved, err := db.ListBookingRequests(ctx, BookingFilters{Status: models.StatusApproved})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, first.ID, approved[0].ID)

	mine, err := db.ListBookingRequests(ctx, BookingFilters{UserID: bob.ID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, bob.ID, mine[0].UserID)

	// No matches yields an empty slice, never nil.
	none, err := db.ListBookingRequests(ctx, BookingFilters{Status: models.StatusRejected})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDeleteBookingRequest(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "S-3001", models.RoleStudent)
	req := seedRequest(t, db, user.ID, "2027-06-10")

	require.NoError(t, db.DeleteBookingRequest(ctx, req.ID))

	_, err := db.GetBookingRequest(ctx, req.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, db.DeleteBookingRequest(ctx, req.ID), ErrNotFound)
}

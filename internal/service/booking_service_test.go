package service

import (
	"context"
	"testing"

	"campusinfo/internal/database"
	"campusinfo/internal/events"
	"campusinfo/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishJSON(eventType string, payload interface{}) error {
	args := m.Called(eventType, payload)
	return args.Error(0)
}

type bookingFixture struct {
	svc       *BookingRequestService
	db        *database.DB
	publisher *mockPublisher
	admin     models.Identity
	student   models.Identity
	other     models.Identity
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctx := context.Background()
	db := newTestRepo(t)
	logger := zerolog.Nop()

	publisher := &mockPublisher{}
	publisher.On("PublishJSON", mock.Anything, mock.Anything).Return(nil).Maybe()

	seed := func(studentID, role string) models.Identity {
		user := &models.User{StudentID: studentID, Name: "User " + studentID, Role: role, PasswordHash: "x"}
		require.NoError(t, db.CreateUser(ctx, user))
		return models.Identity{ID: user.ID, StudentID: user.StudentID, Name: user.Name, Role: user.Role}
	}

	return &bookingFixture{
		svc:       NewBookingRequestService(db, publisher, &logger),
		db:        db,
		publisher: publisher,
		admin:     seed("ADMIN-1", models.RoleAdmin),
		student:   seed("S-1001", models.RoleStudent),
		other:     seed("S-1002", models.RoleStudent),
	}
}

func validInput() models.BookingRequest {
	return models.BookingRequest{
		ResourceType:     models.ResourceLab,
		ResourceID:       3,
		Date:             "2027-06-10",
		StartTime:        "09:00",
		EndTime:          "11:00",
		ProgramName:      "Robotics Demo",
		ParticipantCount: 40,
	}
}

func TestCreateBookingRequest(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.student, validInput())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, f.student.ID, created.UserID)
	assert.Equal(t, "User S-1001", created.RequesterName)

	f.publisher.AssertCalled(t, "PublishJSON", events.EventBookingRequestCreated, mock.Anything)
}

func TestCreateBookingRequestValidation(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	cases := map[string]func(*models.BookingRequest){
		"missing program name":  func(r *models.BookingRequest) { r.ProgramName = "" },
		"missing date":          func(r *models.BookingRequest) { r.Date = "" },
		"malformed date":        func(r *models.BookingRequest) { r.Date = "10/06/2027" },
		"malformed start time":  func(r *models.BookingRequest) { r.StartTime = "9am" },
		"unpadded start time":   func(r *models.BookingRequest) { r.StartTime = "9:00" },
		"start equals end":      func(r *models.BookingRequest) { r.StartTime = "11:00" },
		"start after end":       func(r *models.BookingRequest) { r.StartTime = "12:00" },
		"unknown resource type": func(r *models.BookingRequest) { r.ResourceType = "gym" },
		"zero resource id":      func(r *models.BookingRequest) { r.ResourceID = 0 },
		"negative participants": func(r *models.BookingRequest) { r.ParticipantCount = -5 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := validInput()
			mutate(&input)
			_, err := f.svc.Create(ctx, f.student, input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestListVisibility(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	mine, err := f.svc.Create(ctx, f.student, validInput())
	require.NoError(t, err)
	theirs, err := f.svc.Create(ctx, f.other, validInput())
	require.NoError(t, err)

	_, err = f.svc.Transition(ctx, f.admin, theirs.ID, models.StatusApproved, "")
	require.NoError(t, err)

	// A student's default view is their own requests only.
	visible, err := f.svc.List(ctx, f.student, database.BookingFilters{})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, mine.ID, visible[0].ID)

	// The approved feed is public: the other student's request shows up.
	approved, err := f.svc.List(ctx, f.student, database.BookingFilters{Status: models.StatusApproved})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, theirs.ID, approved[0].ID)

	// Admins see everything.
	all, err := f.svc.List(ctx, f.admin, database.BookingFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetEnforcesOwnership(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	req, err := f.svc.Create(ctx, f.student, validInput())
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, f.other, req.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := f.svc.Get(ctx, f.admin, req.ID)
	require.NoError(t, err)
	assert.Equal(t, req.ID, got.ID)
}

func TestTransition(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	req, err := f.svc.Create(ctx, f.student, validInput())
	require.NoError(t, err)

	_, err = f.svc.Transition(ctx, f.student, req.ID, models.StatusApproved, "")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Transition(ctx, f.admin, req.ID, models.StatusPending, "")
	assert.ErrorIs(t, err, ErrValidation)

	reviewed, err := f.svc.Transition(ctx, f.admin, req.ID, models.StatusApproved, "Approved for demo day")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, reviewed.Status)
	assert.Equal(t, f.admin.ID, reviewed.ReviewedBy)
	assert.Equal(t, "Approved for demo day", reviewed.AdminNotes)
	f.publisher.AssertCalled(t, "PublishJSON", events.EventBookingRequestApproved, mock.Anything)

	// Terminal requests stay put.
	_, err = f.svc.Transition(ctx, f.admin, req.ID, models.StatusRejected, "")
	assert.ErrorIs(t, err, database.ErrAlreadyReviewed)
}

func TestDeleteOwnerRules(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	req, err := f.svc.Create(ctx, f.student, validInput())
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, f.other, req.ID), ErrForbidden)

	require.NoError(t, f.svc.Delete(ctx, f.student, req.ID))
	f.publisher.AssertCalled(t, "PublishJSON", events.EventBookingRequestDeleted, mock.Anything)

	_, err = f.svc.Get(ctx, f.student, req.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDeleteReviewedRequest(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	req, err := f.svc.Create(ctx, f.student, validInput())
	require.NoError(t, err)
	_, err = f.svc.Transition(ctx, f.admin, req.ID, models.StatusRejected, "")
	require.NoError(t, err)

	// Owners can only withdraw while pending; admins can always delete.
	assert.ErrorIs(t, f.svc.Delete(ctx, f.student, req.ID), ErrValidation)
	require.NoError(t, f.svc.Delete(ctx, f.admin, req.ID))
}

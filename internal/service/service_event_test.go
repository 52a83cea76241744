package service

import (
	"context"
	"testing"
	"time"

	"github.com/calkeep/go-cal-keeper/internal/config"
	"github.com/calkeep/go-cal-keeper/internal/logger"
	"github.com/calkeep/go-cal-keeper/internal/mock"
	"github.com/calkeep/go-cal-keeper/internal/store"
	"github.com/calkeep/go-cal-keeper/internal/utils"
	"github.com/calkeep/go-cal-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testCreds = models.Credentials{Email: "a@x.com", Password: "pw1"}

// newTestEventSvc builds an eventService with a real authService on top of
// mocked repositories, and pre-registers the owner account behind testCreds.
func newTestEventSvc(t *testing.T, ctrl *gomock.Controller) (EventService, *mock.MockUserRepository, *mock.MockEventRepository) {
	t.Helper()

	userRepo := mock.NewMockUserRepository(ctrl)
	eventRepo := mock.NewMockEventRepository(ctrl)

	authSvc := NewAuthService(userRepo, config.App{PasswordHashCost: bcrypt.MinCost}, logger.Nop())
	svc := NewEventService(authSvc, eventRepo, logger.Nop())

	return svc, userRepo, eventRepo
}

// expectOwnerLookup makes the mocked user repository resolve testCreds to a
// user with the given id.
func expectOwnerLookup(t *testing.T, userRepo *mock.MockUserRepository, userID int64) {
	t.Helper()

	hash, err := utils.HashPassword(testCreds.Password, bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().FindUserByEmail(gomock.Any(), testCreds.Email).Return(models.User{
		UserID:       userID,
		Email:        testCreds.Email,
		PasswordHash: hash,
	}, nil)
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, eventRepo := newTestEventSvc(t, ctrl)
	ctx := context.Background()
	expectOwnerLookup(t, userRepo, 42)

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	event := models.Event{Name: "Standup", Start: start, End: start.Add(15 * time.Minute)}

	eventRepo.EXPECT().CreateEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.Event) (models.Event, error) {
			// ownership is stamped from the authenticated user, not the payload
			assert.Equal(t, int64(42), e.UserID)
			e.ID = 1
			return e, nil
		},
	)

	saved, err := svc.CreateEvent(ctx, testCreds, event)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, int64(42), saved.UserID)
}

func TestEventService_CreateEvent_StartAfterEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, _ := newTestEventSvc(t, ctrl)
	ctx := context.Background()
	expectOwnerLookup(t, userRepo, 42)

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	// no CreateEvent expectation: nothing may be persisted
	_, err := svc.CreateEvent(ctx, testCreds, models.Event{Name: "Backwards", Start: start, End: end})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestEventService_CreateEvent_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, _ := newTestEventSvc(t, ctrl)
	ctx := context.Background()
	expectOwnerLookup(t, userRepo, 42)

	now := time.Now()
	_, err := svc.CreateEvent(ctx, testCreds, models.Event{Start: now, End: now})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestEventService_CreateEvent_AuthFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, _ := newTestEventSvc(t, ctrl)
	ctx := context.Background()

	userRepo.EXPECT().FindUserByEmail(gomock.Any(), testCreds.Email).Return(models.User{}, store.ErrUserNotFound)

	now := time.Now()
	_, err := svc.CreateEvent(ctx, testCreds, models.Event{Name: "X", Start: now, End: now})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestEventService_DeleteEvent_Owner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, eventRepo := newTestEventSvc(t, ctrl)
	ctx := context.Background()
	expectOwnerLookup(t, userRepo, 42)

	gomock.InOrder(
		eventRepo.EXPECT().FindEventByID(ctx, int64(3)).Return(models.Event{ID: 3, UserID: 42}, nil),
		eventRepo.EXPECT().DeleteEvent(ctx, int64(3)).Return(nil),
	)

	require.NoError(t, svc.DeleteEvent(ctx, testCreds, 3))
}

func TestEventService_DeleteEvent_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, eventRepo := newTestEventSvc(t, ctrl)
	ctx := context.Background()
	expectOwnerLookup(t, userRepo, 42)

	// owned by someone else; DeleteEvent must not be called
	eventRepo.EXPECT().FindEventByID(ctx, int64(3)).Return(models.Event{ID: 3, UserID: 7}, nil)

	err := svc.DeleteEvent(ctx, testCreds, 3)
	assert.ErrorIs(t, err, store.ErrEventNotFound)
}

func TestEventService_DeleteEvent_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, eventRepo := newTestEventSvc(t, ctrl)
	ctx := context.Background()
	expectOwnerLookup(t, userRepo, 42)

	eventRepo.EXPECT().FindEventByID(ctx, int64(404)).Return(models.Event{}, store.ErrEventNotFound)

	err := svc.DeleteEvent(ctx, testCreds, 404)
	assert.ErrorIs(t, err, store.ErrEventNotFound)
}

func TestEventService_QueryEvents_ScopedToOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, eventRepo := newTestEventSvc(t, ctrl)
	ctx := context.Background()
	expectOwnerLookup(t, userRepo, 42)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := models.EventFilter{Start: &start, Search: "stand"}
	expected := []models.Event{{ID: 1, UserID: 42, Name: "Standup"}}

	eventRepo.EXPECT().FindEvents(ctx, int64(42), filter).Return(expected, nil)

	events, err := svc.QueryEvents(ctx, testCreds, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, events)
}

func TestEventService_QueryEvents_AuthFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, _ := newTestEventSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("other", bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.EXPECT().FindUserByEmail(gomock.Any(), testCreds.Email).Return(models.User{
		UserID:       42,
		Email:        testCreds.Email,
		PasswordHash: hash,
	}, nil)

	_, err = svc.QueryEvents(ctx, testCreds, models.EventFilter{})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

package service

import (
	"context"
	"fmt"

	"github.com/calkeep/go-cal-keeper/internal/logger"
	"github.com/calkeep/go-cal-keeper/internal/store"
	"github.com/calkeep/go-cal-keeper/models"
)

// eventService is the concrete implementation of EventService. Every
// operation authenticates the caller first; all reads and mutations are
// scoped to the authenticated user's id.
type eventService struct {
	authService     AuthService
	eventRepository store.EventRepository
	logger          *logger.Logger
}

// NewEventService constructs an EventService that authenticates through
// authService and persists through eventRepository.
func NewEventService(authService AuthService, eventRepository store.EventRepository, logger *logger.Logger) EventService {
	return &eventService{
		authService:     authService,
		eventRepository: eventRepository,
		logger:          logger,
	}
}

// CreateEvent authenticates the caller, checks the start <= end invariant
// and persists the event under the caller's ownership.
//
// Returns the persisted event or:
//   - an authentication error (see AuthService.Authenticate).
//   - ErrInvalidDataProvided if the name is empty.
//   - ErrInvalidTimeRange if start is after end; nothing is persisted.
func (s *eventService) CreateEvent(ctx context.Context, creds models.Credentials, event models.Event) (models.Event, error) {
	log := logger.FromContext(ctx)

	user, err := s.authService.Authenticate(ctx, creds)
	if err != nil {
		return models.Event{}, err
	}

	if event.Name == "" {
		log.Error().Msg("event name is required")
		return models.Event{}, ErrInvalidDataProvided
	}

	if event.Start.After(event.End) {
		log.Error().
			Time("start", event.Start).
			Time("end", event.End).
			Msg("event start is after its end")
		return models.Event{}, ErrInvalidTimeRange
	}

	event.UserID = user.UserID

	savedEvent, err := s.eventRepository.CreateEvent(ctx, event)
	if err != nil {
		log.Err(err).Str("name", event.Name).Msg("event creation ended with error")
		return models.Event{}, fmt.Errorf("event creation ended with error: %w", err)
	}

	return savedEvent, nil
}

// DeleteEvent authenticates the caller and removes the event if the caller
// owns it.
//
// An event that does not exist and an event owned by another user fail the
// same way, with store.ErrEventNotFound: ownership is never disclosed
// through the error.
func (s *eventService) DeleteEvent(ctx context.Context, creds models.Credentials, eventID int64) error {
	log := logger.FromContext(ctx)

	user, err := s.authService.Authenticate(ctx, creds)
	if err != nil {
		return err
	}

	event, err := s.eventRepository.FindEventByID(ctx, eventID)
	if err != nil {
		log.Err(err).Int64("event_id", eventID).Msg("event lookup failed")
		return fmt.Errorf("event lookup failed: %w", err)
	}

	if event.UserID != user.UserID {
		log.Warn().
			Int64("event_id", eventID).
			Int64("caller_id", user.UserID).
			Msg("delete attempt on event owned by another user")
		return store.ErrEventNotFound
	}

	if err = s.eventRepository.DeleteEvent(ctx, eventID); err != nil {
		log.Err(err).Int64("event_id", eventID).Msg("event deletion ended with error")
		return fmt.Errorf("event deletion ended with error: %w", err)
	}

	return nil
}

// QueryEvents authenticates the caller and returns the caller's events
// narrowed by the filter, in insertion order.
func (s *eventService) QueryEvents(ctx context.Context, creds models.Credentials, filter models.EventFilter) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	user, err := s.authService.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepository.FindEvents(ctx, user.UserID, filter)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("event query ended with error")
		return nil, fmt.Errorf("event query ended with error: %w", err)
	}

	return events, nil
}

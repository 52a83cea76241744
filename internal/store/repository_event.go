package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/calkeep/go-cal-keeper/internal/logger"
	"github.com/calkeep/go-cal-keeper/models"
)

// eventRepository is the SQL-backed implementation of [EventRepository].
// It handles event creation, lookup, deletion and filtered queries against
// the "events" table.
type eventRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEventRepository constructs an [EventRepository] backed by the provided
// database connection and logger.
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEvent persists a new event row and returns the fully populated
// [models.Event] with server-assigned fields (ID, CreatedAt). Empty notes
// are stored as NULL.
func (r *eventRepository) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	log := logger.FromContext(ctx)

	notes := sql.NullString{String: event.Notes, Valid: event.Notes != ""}
	row := r.db.QueryRowContext(ctx, createEvent, event.UserID, event.Start, event.End, event.Name, notes)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*eventRepository.CreateEvent").Msg("error: row is nil")
		return models.Event{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanEventRow(row)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.CreateEvent").Msg("error: scanning error")
		return models.Event{}, err
	}

	return saved, nil
}

// FindEventByID retrieves a single event row by its id.
//
// Returns [ErrEventNotFound] when no row matches.
func (r *eventRepository) FindEventByID(ctx context.Context, eventID int64) (models.Event, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findEventByID, eventID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*eventRepository.FindEventByID").Msg("error: row is nil")
		return models.Event{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	event, err := scanEventRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, ErrEventNotFound
		}

		log.Err(err).Str("func", "*eventRepository.FindEventByID").Msg("error: scanning error")
		return models.Event{}, err
	}

	return event, nil
}

// DeleteEvent removes an event row by id.
//
// Returns [ErrEventNotFound] when no row was deleted.
func (r *eventRepository) DeleteEvent(ctx context.Context, eventID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteEvent, eventID)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.DeleteEvent").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// FindEvents returns all events owned by userID that match the filter,
// ordered by insertion.
func (r *eventRepository) FindEvents(ctx context.Context, userID int64, filter models.EventFilter) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEventsQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.FindEvents").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.FindEvents").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, scanErr := scanEventRow(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*eventRepository.FindEvents").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEventRow(row rowScanner) (models.Event, error) {
	var event models.Event
	var notes sql.NullString

	if err := row.Scan(&event.ID, &event.UserID, &event.Start, &event.End, &event.Name, &notes, &event.CreatedAt); err != nil {
		return models.Event{}, err
	}
	event.Notes = notes.String

	return event, nil
}

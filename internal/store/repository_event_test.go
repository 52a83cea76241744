package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/calkeep/go-cal-keeper/internal/logger"
	"github.com/calkeep/go-cal-keeper/models"
)

func newTestEventRepo(t *testing.T) (*eventRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &eventRepository{
		db:     &DB{DB: db, driver: "pgx", classifier: NewPostgresErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func eventRows(events ...models.Event) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "start_time", "end_time", "name", "notes", "created_at"})
	for _, e := range events {
		var notes any
		if e.Notes != "" {
			notes = e.Notes
		}
		rows.AddRow(e.ID, e.UserID, e.Start, e.End, e.Name, notes, e.CreatedAt)
	}
	return rows
}

func TestCreateEvent_Success(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	event := models.Event{
		UserID: 1,
		Start:  now,
		End:    now.Add(time.Hour),
		Name:   "Standup",
		Notes:  "daily sync",
	}

	saved := event
	saved.ID = 5
	saved.CreatedAt = now

	mock.ExpectQuery("INSERT INTO events").
		WithArgs(event.UserID, event.Start, event.End, event.Name, sql.NullString{String: "daily sync", Valid: true}).
		WillReturnRows(eventRows(saved))

	got, err := repo.CreateEvent(ctx, event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 5 {
		t.Errorf("expected ID=5, got %d", got.ID)
	}
	if got.Notes != "daily sync" {
		t.Errorf("expected notes to round-trip, got %q", got.Notes)
	}
}

func TestCreateEvent_EmptyNotesStoredAsNull(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	event := models.Event{UserID: 1, Start: now, End: now, Name: "Focus"}

	saved := event
	saved.ID = 6
	saved.CreatedAt = now

	mock.ExpectQuery("INSERT INTO events").
		WithArgs(event.UserID, event.Start, event.End, event.Name, sql.NullString{}).
		WillReturnRows(eventRows(saved))

	got, err := repo.CreateEvent(ctx, event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Notes != "" {
		t.Errorf("expected empty notes, got %q", got.Notes)
	}
}

func TestFindEventByID_NotFound(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM events").
		WithArgs(int64(99)).
		WillReturnRows(eventRows())

	_, err := repo.FindEventByID(ctx, 99)
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestFindEventByID_Success(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	event := models.Event{ID: 3, UserID: 2, Start: now, End: now, Name: "Review", CreatedAt: now}

	mock.ExpectQuery("SELECT (.+) FROM events").
		WithArgs(int64(3)).
		WillReturnRows(eventRows(event))

	got, err := repo.FindEventByID(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserID != 2 {
		t.Errorf("expected UserID=2, got %d", got.UserID)
	}
}

func TestDeleteEvent_Success(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM events").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteEvent(ctx, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteEvent_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM events").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteEvent(ctx, 404)
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestFindEvents_OrderedAndScanned(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	first := models.Event{ID: 1, UserID: 7, Start: now, End: now, Name: "A", CreatedAt: now}
	second := models.Event{ID: 2, UserID: 7, Start: now, End: now, Name: "B", Notes: "n", CreatedAt: now}

	mock.ExpectQuery("SELECT (.+) FROM events").
		WithArgs(int64(7)).
		WillReturnRows(eventRows(first, second))

	events, err := repo.FindEvents(ctx, 7, models.EventFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != 1 || events[1].ID != 2 {
		t.Errorf("expected insertion order, got %v then %v", events[0].ID, events[1].ID)
	}
	if events[1].Notes != "n" {
		t.Errorf("expected notes scanned, got %q", events[1].Notes)
	}
}

func TestFindEvents_QueryError(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM events").
		WithArgs(int64(7)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindEvents(ctx, 7, models.EventFilter{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

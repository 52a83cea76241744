package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/calkeep/go-cal-keeper/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1
    ORDER BY user_id
    LIMIT 1;`

	createEvent = `INSERT INTO events (user_id, start_time, end_time, name, notes)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, user_id, start_time, end_time, name, notes, created_at;`

	findEventByID = `SELECT id, user_id, start_time, end_time, name, notes, created_at
    FROM events
    WHERE id = $1;`

	deleteEvent = `DELETE FROM events
    WHERE id = $1;`
)

// eventColumns is the canonical column order scanned by event queries.
var eventColumns = []string{"id", "user_id", "start_time", "end_time", "name", "notes", "created_at"}

// buildSelectEventsQuery builds the filtered event SELECT dynamically.
// Base result set: all events owned by userID, ordered by insertion (id).
// Optional narrowing: start_time >= filter.Start, end_time <= filter.End,
// and a case-insensitive substring match against name or notes.
func buildSelectEventsQuery(userID int64, filter models.EventFilter) (string, []any, error) {
	builder := sq.Select(eventColumns...).
		From("events").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)

	if filter.Start != nil {
		builder = builder.Where(sq.GtOrEq{"start_time": *filter.Start})
	}
	if filter.End != nil {
		builder = builder.Where(sq.LtOrEq{"end_time": *filter.End})
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		builder = builder.Where(sq.Or{
			sq.Like{"LOWER(name)": pattern},
			sq.Like{"LOWER(COALESCE(notes, ''))": pattern},
		})
	}

	return builder.ToSql()
}

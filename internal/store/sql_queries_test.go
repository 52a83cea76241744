// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-cal-keeper Authors

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/calkeep/go-cal-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(value string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", value)
	return t
}

func Test_buildSelectEventsQuery_NoFilters(t *testing.T) {
	query, args, err := buildSelectEventsQuery(42, models.EventFilter{})
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from events")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by id")

	// placeholder format should be $1 (works for both backends)
	require.Contains(t, query, "$1")

	// no filter clauses without filters
	require.NotContains(t, q, ">=")
	require.NotContains(t, q, "<=")
	require.NotContains(t, q, "like")
}

func Test_buildSelectEventsQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildSelectEventsQuery(1, models.EventFilter{})
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, c := range eventColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildSelectEventsQuery(t *testing.T) {
	start := ts("2024-01-01T00:00:00")
	end := ts("2024-01-02T00:00:00")

	tests := []struct {
		name       string
		filter     models.EventFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "start filter adds lower bound",
			filter: models.EventFilter{Start: &start},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "start_time >= $2")
				require.Len(t, args, 2)
				assert.Equal(t, start, args[1])
			},
		},
		{
			name:   "end filter adds upper bound",
			filter: models.EventFilter{End: &end},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "end_time <= $2")
				require.Len(t, args, 2)
				assert.Equal(t, end, args[1])
			},
		},
		{
			name:   "search filter matches name or notes case-insensitively",
			filter: models.EventFilter{Search: "StAnD"},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToUpper(query)
				assert.Contains(t, q, "LOWER(NAME) LIKE")
				assert.Contains(t, q, "OR")
				assert.Contains(t, q, "LOWER(COALESCE(NOTES, '')) LIKE")

				// the pattern is lowercased once, shared by both clauses
				require.Len(t, args, 3)
				assert.Equal(t, "%stand%", args[1])
				assert.Equal(t, "%stand%", args[2])
			},
		},
		{
			name:   "all filters combined",
			filter: models.EventFilter{Start: &start, End: &end, Search: "sync"},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Len(t, args, 5)
				assert.Contains(t, query, "start_time >= $2")
				assert.Contains(t, query, "end_time <= $3")
				assert.Equal(t, "%sync%", args[3])
				assert.Equal(t, "%sync%", args[4])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectEventsQuery(7, tt.filter)
			require.NoError(t, err)

			// owner scoping always first
			require.GreaterOrEqual(t, len(args), 1)
			assert.Equal(t, int64(7), args[0])
			assert.Contains(t, query, "user_id = $1")

			tt.checkQuery(t, query, args)
		})
	}
}

package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villastay/internal/entities"
)

func testWindow(t *testing.T) entities.StayWindow {
	t.Helper()
	w, err := entities.NewStayWindow(
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return w
}

func TestParseSortField_AllowList(t *testing.T) {
	assert.Equal(t, SortSubtotal, ParseSortField("subtotal"))
	assert.Equal(t, SortRating, ParseSortField("rating"))
	assert.Equal(t, SortAverageNightlyRate, ParseSortField("average_nightly_rate"))

	// Anything outside the allow-list falls back; raw input never reaches SQL.
	assert.Equal(t, SortAverageNightlyRate, ParseSortField("rating; DROP TABLE villas"))
	assert.Equal(t, SortAverageNightlyRate, ParseSortField(""))
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, OrderDesc, ParseSortOrder("DESC"))
	assert.Equal(t, OrderDesc, ParseSortOrder("desc"))
	assert.Equal(t, OrderAsc, ParseSortOrder("ASC"))
	assert.Equal(t, OrderAsc, ParseSortOrder("sideways"))
}

func TestBuildSearchRows_NoFilters(t *testing.T) {
	q := SearchQuery{
		Window: testWindow(t),
		Nights: 3,
		Sort:   SortAverageNightlyRate,
		Order:  OrderAsc,
		Limit:  10,
		Offset: 0,
	}
	sql, args := buildSearchRows(q)

	assert.Contains(t, sql, "vc.date >= $1 AND vc.date < $2")
	assert.Contains(t, sql, "vc.is_available = TRUE")
	assert.Contains(t, sql, "HAVING COUNT(vc.date) = $3")
	assert.Contains(t, sql, "ORDER BY average_nightly_rate ASC, v.id ASC")
	assert.Contains(t, sql, "LIMIT $4 OFFSET $5")

	require.Len(t, args, 5)
	assert.Equal(t, q.Window.CheckIn, args[0])
	assert.Equal(t, q.Window.CheckOut, args[1])
	assert.Equal(t, 3, args[2])
	assert.Equal(t, 10, args[3])
	assert.Equal(t, 0, args[4])
}

func TestBuildSearchRows_AllFilters(t *testing.T) {
	min, max := 1000, 5000
	q := SearchQuery{
		Window: testWindow(t),
		Nights: 3,
		Filters: SearchFilters{
			Search:   "goa",
			Tags:     []string{"Pet-friendly", "Event-friendly"},
			MinPrice: &min,
			MaxPrice: &max,
		},
		Sort:   SortRating,
		Order:  OrderDesc,
		Limit:  20,
		Offset: 40,
	}
	sql, args := buildSearchRows(q)

	assert.Contains(t, sql, "(v.name ILIKE $3 OR v.location ILIKE $3)")
	assert.Contains(t, sql, "v.tags && $4::text[]")
	assert.Contains(t, sql, "vc.rate >= $5")
	assert.Contains(t, sql, "vc.rate <= $6")
	assert.Contains(t, sql, "HAVING COUNT(vc.date) = $7")
	assert.Contains(t, sql, "ORDER BY rating DESC, v.id ASC")
	assert.Contains(t, sql, "LIMIT $8 OFFSET $9")

	require.Len(t, args, 9)
	assert.Equal(t, "%goa%", args[2])
	assert.Equal(t, 1000, args[4])
	assert.Equal(t, 5000, args[5])
	assert.Equal(t, 3, args[6])
	assert.Equal(t, 20, args[7])
	assert.Equal(t, 40, args[8])
}

func TestBuildSearchCount_SharesFilterArgs(t *testing.T) {
	min := 2000
	q := SearchQuery{
		Window:  testWindow(t),
		Nights:  3,
		Filters: SearchFilters{Search: "beach", MinPrice: &min},
		Sort:    SortSubtotal,
		Order:   OrderDesc,
		Limit:   10,
		Offset:  20,
	}
	rowsSQL, rowsArgs := buildSearchRows(q)
	countSQL, countArgs := buildSearchCount(q)

	// The count wraps the identical grouped query and drops only pagination.
	assert.True(t, strings.HasPrefix(countSQL, "SELECT COUNT(*) FROM ("))
	assert.NotContains(t, countSQL, "LIMIT")
	assert.NotContains(t, countSQL, "ORDER BY")
	assert.Equal(t, rowsArgs[:len(rowsArgs)-2], countArgs)
	assert.Contains(t, rowsSQL, "LIMIT")
}

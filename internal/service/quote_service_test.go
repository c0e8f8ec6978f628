package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villastay/internal/db"
	"villastay/internal/entities"
)

func calendarDays(start string, rates []int, available []bool) []db.CalendarEntry {
	day, _ := time.Parse(entities.DateLayout, start)
	entries := make([]db.CalendarEntry, 0, len(rates))
	for i, rate := range rates {
		entries = append(entries, db.CalendarEntry{
			VillaID:     1,
			Date:        day.AddDate(0, 0, i),
			Rate:        rate,
			IsAvailable: available[i],
		})
	}
	return entries
}

func TestQuote_FullyAvailable(t *testing.T) {
	store := &mockStore{
		entriesFunc: func(villaID int, w entities.StayWindow) ([]db.CalendarEntry, error) {
			return calendarDays("2025-06-01", []int{1000, 1200, 1100}, []bool{true, true, true}), nil
		},
	}
	svc := NewQuoteService(store, 0.18)

	quote, err := svc.Quote(1, window(t, "2025-06-01", "2025-06-04"))
	require.NoError(t, err)

	assert.True(t, quote.IsAvailable)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, int64(3300), quote.Subtotal)
	assert.Equal(t, 0.18, quote.GSTRate)
	assert.Equal(t, int64(594), quote.GST)
	assert.Equal(t, int64(3894), quote.Total)
	assert.GreaterOrEqual(t, quote.Total, quote.Subtotal)

	require.Len(t, quote.NightlyBreakdown, 3)
	assert.Equal(t, entities.NightlyRate{Date: "2025-06-01", Rate: 1000, IsAvailable: true}, quote.NightlyBreakdown[0])
	assert.Equal(t, "2025-06-03", quote.NightlyBreakdown[2].Date)
}

func TestQuote_MissingNightZeroesPricing(t *testing.T) {
	// Only two of three nights exist in the calendar.
	store := &mockStore{
		entriesFunc: func(villaID int, w entities.StayWindow) ([]db.CalendarEntry, error) {
			return calendarDays("2025-06-01", []int{1000, 1200}, []bool{true, true}), nil
		},
	}
	svc := NewQuoteService(store, 0.18)

	quote, err := svc.Quote(1, window(t, "2025-06-01", "2025-06-04"))
	require.NoError(t, err)

	assert.False(t, quote.IsAvailable)
	assert.Equal(t, 3, quote.Nights, "nights reflects the requested window, not the rows found")
	assert.Zero(t, quote.Subtotal)
	assert.Zero(t, quote.GST)
	assert.Zero(t, quote.Total)
	assert.Len(t, quote.NightlyBreakdown, 2, "breakdown still shows what exists")
}

func TestQuote_UnavailableNightZeroesPricing(t *testing.T) {
	store := &mockStore{
		entriesFunc: func(villaID int, w entities.StayWindow) ([]db.CalendarEntry, error) {
			return calendarDays("2025-06-01", []int{1000, 1200, 1100}, []bool{true, false, true}), nil
		},
	}
	svc := NewQuoteService(store, 0.18)

	quote, err := svc.Quote(1, window(t, "2025-06-01", "2025-06-04"))
	require.NoError(t, err)

	assert.False(t, quote.IsAvailable)
	assert.Zero(t, quote.Subtotal)
	assert.Zero(t, quote.Total)
	require.Len(t, quote.NightlyBreakdown, 3)
	assert.False(t, quote.NightlyBreakdown[1].IsAvailable, "caller can see which night blocked the stay")
}

func TestQuote_EmptyWindowDegenerates(t *testing.T) {
	svc := NewQuoteService(&mockStore{}, 0.18)

	quote, err := svc.Quote(7, window(t, "2025-06-01", "2025-06-03"))
	require.NoError(t, err)

	assert.False(t, quote.IsAvailable)
	assert.Empty(t, quote.NightlyBreakdown)
	assert.NotNil(t, quote.NightlyBreakdown)
	assert.Zero(t, quote.Subtotal)
	assert.Zero(t, quote.Total)
}

func TestQuote_AlternateGSTRate(t *testing.T) {
	store := &mockStore{
		entriesFunc: func(villaID int, w entities.StayWindow) ([]db.CalendarEntry, error) {
			return calendarDays("2025-06-01", []int{1001}, []bool{true}), nil
		},
	}
	svc := NewQuoteService(store, 0.05)

	quote, err := svc.Quote(1, window(t, "2025-06-01", "2025-06-02"))
	require.NoError(t, err)

	assert.Equal(t, 0.05, quote.GSTRate)
	// 1001 * 0.05 = 50.05 rounds to 50.
	assert.Equal(t, int64(50), quote.GST)
	assert.Equal(t, int64(1051), quote.Total)
}

func TestNewQuoteService_DefaultsRate(t *testing.T) {
	svc := NewQuoteService(&mockStore{}, 0)
	assert.Equal(t, DefaultGSTRate, svc.gstRate)

	svc = NewQuoteService(&mockStore{}, -1)
	assert.Equal(t, DefaultGSTRate, svc.gstRate)
}

func TestQuote_StoreFailurePropagates(t *testing.T) {
	boom := errors.New("store unavailable")
	store := &mockStore{
		entriesFunc: func(villaID int, w entities.StayWindow) ([]db.CalendarEntry, error) {
			return nil, boom
		},
	}
	svc := NewQuoteService(store, 0.18)

	_, err := svc.Quote(1, window(t, "2025-06-01", "2025-06-03"))
	assert.ErrorIs(t, err, boom)
}

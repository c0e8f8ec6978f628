package service

import (
	"fmt"
	"math"

	"villastay/internal/entities"
)

// DefaultGSTRate applies when no rate is configured.
const DefaultGSTRate = 0.18

type QuoteService struct {
	Store   CalendarStore
	gstRate float64
}

func NewQuoteService(store CalendarStore, gstRate float64) *QuoteService {
	if gstRate <= 0 {
		gstRate = DefaultGSTRate
	}
	return &QuoteService{Store: store, gstRate: gstRate}
}

// Quote prices one villa for the window. The stay is available only when a
// calendar row exists for every night and all of them are marked available;
// anything less quotes as zero, never a partial price. The breakdown always
// lists whatever rows were found so callers can tell missing days from
// unavailable ones.
func (s *QuoteService) Quote(villaID int, window entities.StayWindow) (*entities.Quote, error) {
	entries, err := s.Store.EntriesFor(villaID, window)
	if err != nil {
		return nil, fmt.Errorf("quote failed for villa %d: %w", villaID, err)
	}

	expectedNights := window.Nights()
	hasAllNights := len(entries) == expectedNights

	isAvailable := hasAllNights
	breakdown := make([]entities.NightlyRate, 0, len(entries))
	for _, e := range entries {
		if !e.IsAvailable {
			isAvailable = false
		}
		breakdown = append(breakdown, entities.NightlyRate{
			Date:        e.Date.Format(entities.DateLayout),
			Rate:        e.Rate,
			IsAvailable: e.IsAvailable,
		})
	}

	var subtotal, gst, total int64
	if isAvailable {
		for _, e := range entries {
			subtotal += int64(e.Rate)
		}
		gst = int64(math.Round(float64(subtotal) * s.gstRate))
		total = subtotal + gst
	}

	return &entities.Quote{
		Nights:           expectedNights,
		IsAvailable:      isAvailable,
		NightlyBreakdown: breakdown,
		Subtotal:         subtotal,
		GSTRate:          s.gstRate,
		GST:              gst,
		Total:            total,
	}, nil
}

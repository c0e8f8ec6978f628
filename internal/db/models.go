package db

import (
	"time"

	"github.com/lib/pq"
)

type Villa struct {
	ID          int
	Name        string
	Location    string
	Rating      float64
	ReviewCount int
	Tags        pq.StringArray
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CalendarEntry is one villa-night. (villa_id, date) is unique in the store.
type CalendarEntry struct {
	ID          int
	VillaID     int
	Date        time.Time
	IsAvailable bool
	Rate        int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

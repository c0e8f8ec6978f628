package entities

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidWindow = errors.New("check_in must be before check_out")

// StayWindow is the half-open interval [CheckIn, CheckOut). CheckOut is the
// departure day and is never charged as a night.
type StayWindow struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewStayWindow builds a StayWindow from two calendar dates. Both times are
// truncated to midnight UTC so night counting only ever sees whole dates.
func NewStayWindow(checkIn, checkOut time.Time) (StayWindow, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)
	if !in.Before(out) {
		return StayWindow{}, ErrInvalidWindow
	}
	return StayWindow{CheckIn: in, CheckOut: out}, nil
}

// ParseStayWindow parses strict YYYY-MM-DD date strings into a StayWindow.
func ParseStayWindow(checkIn, checkOut string) (StayWindow, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return StayWindow{}, fmt.Errorf("invalid check_in %q: %w", checkIn, err)
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return StayWindow{}, fmt.Errorf("invalid check_out %q: %w", checkOut, err)
	}
	return NewStayWindow(in, out)
}

// Nights returns the number of calendar dates in [CheckIn, CheckOut).
// This is the single completeness definition shared by the availability
// search (HAVING parameter) and the quote engine (expected nights).
func (w StayWindow) Nights() int {
	return int(w.CheckOut.Sub(w.CheckIn).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

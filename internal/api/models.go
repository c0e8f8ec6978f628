package api

import "villastay/internal/entities"

// VillaSummary is the villa block of the quote response.
type VillaSummary struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Tags        []string `json:"tags"`
}

type QuoteResponse struct {
	Villa    VillaSummary `json:"villa"`
	CheckIn  string       `json:"check_in"`
	CheckOut string       `json:"check_out"`
	entities.Quote
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// CalendarDay is the admin view of one raw calendar row.
type CalendarDay struct {
	Date        string `json:"date"`
	Rate        int    `json:"rate"`
	IsAvailable bool   `json:"is_available"`
}

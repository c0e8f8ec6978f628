package entities

// SearchRequest carries the normalized query for the availability search.
// Dates are already validated by the transport layer; everything else is
// clamped/resolved by the service.
type SearchRequest struct {
	Window   StayWindow
	Page     int
	Limit    int
	Sort     string
	Order    string
	Search   string
	Tags     []string
	MinPrice *int
	MaxPrice *int
}

type SearchMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// AvailabilityResult is one fully covered villa for the requested window,
// with stay-level aggregates.
type AvailabilityResult struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Location           string   `json:"location"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"review_count"`
	Tags               []string `json:"tags"`
	Nights             int      `json:"nights"`
	Subtotal           int64    `json:"subtotal"`
	AverageNightlyRate float64  `json:"average_nightly_rate"`
}

type SearchResponse struct {
	Meta SearchMeta           `json:"meta"`
	Data []AvailabilityResult `json:"data"`
}

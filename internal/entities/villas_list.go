package entities

// VillaCoverage is the admin view of one villa and the span of calendar
// data currently loaded for it.
type VillaCoverage struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Tags          []string `json:"tags"`
	CalendarDays  int      `json:"calendar_days"`
	FirstDate     *string  `json:"first_date"`
	LastDate      *string  `json:"last_date"`
	AvailableDays int      `json:"available_days"`
}

type VillasList struct {
	Total  int             `json:"total"`
	Villas []VillaCoverage `json:"villas"`
}

package repository

import (
	"strconv"
	"strings"

	"villastay/internal/entities"
)

// SortField is the closed set of sortable columns. Only the output of
// column() is ever spliced into SQL, so no caller-supplied string can reach
// the query text.
type SortField int

const (
	SortAverageNightlyRate SortField = iota
	SortSubtotal
	SortRating
)

// ParseSortField resolves a request value, falling back to the average
// nightly rate for anything outside the allow-list.
func ParseSortField(s string) SortField {
	switch s {
	case "subtotal":
		return SortSubtotal
	case "rating":
		return SortRating
	default:
		return SortAverageNightlyRate
	}
}

func (f SortField) column() string {
	switch f {
	case SortSubtotal:
		return "subtotal"
	case SortRating:
		return "rating"
	default:
		return "average_nightly_rate"
	}
}

type SortOrder int

const (
	OrderAsc SortOrder = iota
	OrderDesc
)

func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, "DESC") {
		return OrderDesc
	}
	return OrderAsc
}

func (o SortOrder) keyword() string {
	if o == OrderDesc {
		return "DESC"
	}
	return "ASC"
}

// SearchFilters narrows which calendar entries qualify before the coverage
// rule is applied. Min/MaxPrice apply to a single night's rate, so a villa
// with one priced-out night loses full coverage and drops out entirely.
type SearchFilters struct {
	Search   string
	Tags     []string
	MinPrice *int
	MaxPrice *int
}

// SearchQuery is everything MatchingVillas and CountMatchingVillas need.
// Both must be built from the same value so rows and total stay consistent.
type SearchQuery struct {
	Window  entities.StayWindow
	Nights  int
	Filters SearchFilters
	Sort    SortField
	Order   SortOrder
	Limit   int
	Offset  int
}

const matchedVillasBase = `
	SELECT
		v.id,
		v.name,
		v.location,
		v.rating,
		v.review_count,
		v.tags,
		COUNT(vc.date) AS nights,
		SUM(vc.rate) AS subtotal,
		SUM(vc.rate)::float / COUNT(vc.date) AS average_nightly_rate
	FROM villas v
	JOIN villa_calendar vc ON vc.villa_id = v.id`

// buildMatchedVillas renders the shared grouped query: every qualifying
// entry available, qualifying-entry count equal to the window's night count.
// Returns the SQL without ORDER BY/LIMIT and the positional args so far.
func buildMatchedVillas(q SearchQuery) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(matchedVillasBase)

	args := []interface{}{q.Window.CheckIn, q.Window.CheckOut}
	sb.WriteString(`
	WHERE vc.date >= $1 AND vc.date < $2 AND vc.is_available = TRUE`)
	idx := 3

	if q.Filters.Search != "" {
		p := "$" + strconv.Itoa(idx)
		sb.WriteString(" AND (v.name ILIKE " + p + " OR v.location ILIKE " + p + ")")
		args = append(args, "%"+q.Filters.Search+"%")
		idx++
	}
	if len(q.Filters.Tags) > 0 {
		sb.WriteString(" AND v.tags && $" + strconv.Itoa(idx) + "::text[]")
		args = append(args, tagsParam(q.Filters.Tags))
		idx++
	}
	if q.Filters.MinPrice != nil {
		sb.WriteString(" AND vc.rate >= $" + strconv.Itoa(idx))
		args = append(args, *q.Filters.MinPrice)
		idx++
	}
	if q.Filters.MaxPrice != nil {
		sb.WriteString(" AND vc.rate <= $" + strconv.Itoa(idx))
		args = append(args, *q.Filters.MaxPrice)
		idx++
	}

	sb.WriteString(`
	GROUP BY v.id, v.name, v.location, v.rating, v.review_count, v.tags
	HAVING COUNT(vc.date) = $` + strconv.Itoa(idx))
	args = append(args, q.Nights)

	return sb.String(), args
}

// buildSearchRows renders the paginated data query.
func buildSearchRows(q SearchQuery) (string, []interface{}) {
	sql, args := buildMatchedVillas(q)
	idx := len(args) + 1

	// Villa id is the tiebreak so pagination stays deterministic.
	sql += `
	ORDER BY ` + q.Sort.column() + " " + q.Order.keyword() + `, v.id ASC
	LIMIT $` + strconv.Itoa(idx) + " OFFSET $" + strconv.Itoa(idx+1)
	args = append(args, q.Limit, q.Offset)

	return sql, args
}

// buildSearchCount wraps the same grouped query in a COUNT so the total
// reflects the full matching set regardless of pagination.
func buildSearchCount(q SearchQuery) (string, []interface{}) {
	sql, args := buildMatchedVillas(q)
	return "SELECT COUNT(*) FROM (" + sql + "\n\t) AS matched", args
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"villastay/internal/db"
	"villastay/internal/entities"
)

var ErrVillaNotFound = errors.New("villa not found")

type VillaRepository struct {
	DB *sql.DB
}

func NewVillaRepository(database *sql.DB) *VillaRepository {
	return &VillaRepository{DB: database}
}

func (r *VillaRepository) GetVillaByID(id int) (*db.Villa, error) {
	var v db.Villa
	query := `
	SELECT id, name, location, rating, review_count, tags, created_at, updated_at
	FROM villas WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&v.ID, &v.Name, &v.Location, &v.Rating, &v.ReviewCount, &v.Tags, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("villa %d: %w", id, ErrVillaNotFound)
		}
		return nil, fmt.Errorf("error querying villa %d: %w", id, err)
	}
	return &v, nil
}

// EntriesFor returns the calendar rows for one villa inside the window,
// date ascending. The result may be shorter than the window's night count
// when days are missing; callers must not assume completeness.
func (r *VillaRepository) EntriesFor(villaID int, window entities.StayWindow) ([]db.CalendarEntry, error) {
	query := `
	SELECT id, villa_id, date, is_available, rate, created_at, updated_at
	FROM villa_calendar
	WHERE villa_id = $1 AND date >= $2 AND date < $3
	ORDER BY date ASC`

	rows, err := r.DB.Query(query, villaID, window.CheckIn, window.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("error querying calendar for villa %d: %w", villaID, err)
	}
	defer rows.Close()

	var entries []db.CalendarEntry
	for rows.Next() {
		var e db.CalendarEntry
		if err := rows.Scan(&e.ID, &e.VillaID, &e.Date, &e.IsAvailable, &e.Rate, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning calendar entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating calendar rows: %w", err)
	}
	return entries, nil
}

// MatchingVillas returns the page of villas whose filtered calendar fully
// covers the window, with stay aggregates.
func (r *VillaRepository) MatchingVillas(q SearchQuery) ([]entities.AvailabilityResult, error) {
	query, args := buildSearchRows(q)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying matching villas: %w", err)
	}
	defer rows.Close()

	var results []entities.AvailabilityResult
	for rows.Next() {
		var res entities.AvailabilityResult
		var tags pq.StringArray
		err := rows.Scan(
			&res.ID, &res.Name, &res.Location, &res.Rating, &res.ReviewCount, &tags,
			&res.Nights, &res.Subtotal, &res.AverageNightlyRate,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning availability row: %w", err)
		}
		res.Tags = tags
		results = append(results, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating availability rows: %w", err)
	}
	return results, nil
}

// CountMatchingVillas counts the full matching set for the same query,
// independent of Limit/Offset.
func (r *VillaRepository) CountMatchingVillas(q SearchQuery) (int64, error) {
	query, args := buildSearchCount(q)

	var total int64
	if err := r.DB.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting matching villas: %w", err)
	}
	return total, nil
}

func tagsParam(tags []string) interface{} {
	return pq.Array(tags)
}

package repository

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/lib/pq"

	"villastay/internal/db"
	"villastay/internal/entities"
)

type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(database *sql.DB) *AdminRepository {
	return &AdminRepository{DB: database}
}

// ListVillas returns every villa with its calendar coverage span, optionally
// filtered by location.
func (r *AdminRepository) ListVillas(location string) ([]entities.VillaCoverage, error) {
	query := `
	SELECT
		v.id, v.name, v.location, v.rating, v.review_count, v.tags,
		COUNT(vc.id) AS calendar_days,
		MIN(vc.date)::text AS first_date,
		MAX(vc.date)::text AS last_date,
		COUNT(vc.id) FILTER (WHERE vc.is_available) AS available_days
	FROM villas v
	LEFT JOIN villa_calendar vc ON vc.villa_id = v.id
	WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if location != "" {
		query += " AND v.location = $" + strconv.Itoa(idx)
		args = append(args, location)
		idx++
	}
	query += `
	GROUP BY v.id, v.name, v.location, v.rating, v.review_count, v.tags
	ORDER BY v.id`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing villas: %w", err)
	}
	defer rows.Close()

	var villas []entities.VillaCoverage
	for rows.Next() {
		var vc entities.VillaCoverage
		var tags pq.StringArray
		err := rows.Scan(
			&vc.ID, &vc.Name, &vc.Location, &vc.Rating, &vc.ReviewCount, &tags,
			&vc.CalendarDays, &vc.FirstDate, &vc.LastDate, &vc.AvailableDays,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning villa coverage: %w", err)
		}
		vc.Tags = tags
		villas = append(villas, vc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating villa rows: %w", err)
	}
	return villas, nil
}

// CalendarSlice returns raw calendar rows for one villa, optionally bounded
// by from/to dates (inclusive from, exclusive to).
func (r *AdminRepository) CalendarSlice(villaID int, from, to string) ([]db.CalendarEntry, error) {
	query := `
	SELECT id, villa_id, date, is_available, rate, created_at, updated_at
	FROM villa_calendar
	WHERE villa_id = $1`
	args := []interface{}{villaID}
	idx := 2

	if from != "" {
		query += " AND date >= $" + strconv.Itoa(idx)
		args = append(args, from)
		idx++
	}
	if to != "" {
		query += " AND date < $" + strconv.Itoa(idx)
		args = append(args, to)
		idx++
	}
	query += " ORDER BY date ASC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying calendar slice: %w", err)
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

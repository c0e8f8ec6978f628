package repository

import (
	"database/sql"
	"fmt"
	"time"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// DeleteCalendarBefore removes calendar rows dated strictly before the given
// day. Past nights can never be searched or quoted again, so keeping them
// only slows the (villa_id, date) window scans.
func (r *JobRepository) DeleteCalendarBefore(day time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM villa_calendar WHERE date < $1`, day)
	if err != nil {
		return 0, fmt.Errorf("error deleting stale calendar rows: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %w", err)
	}
	return rowsAffected, nil
}

// CountCalendarRows reports the calendar table size for the job report.
func (r *JobRepository) CountCalendarRows() (int64, error) {
	var total int64
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM villa_calendar`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting calendar rows: %w", err)
	}
	return total, nil
}

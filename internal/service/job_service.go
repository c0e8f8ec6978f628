package service

import (
	"fmt"
	"log"
	"time"

	"villastay/internal/repository"
)

type JobService struct {
	Repo     *repository.JobRepository
	Notifier *NotifyService
}

func NewJobService(repo *repository.JobRepository, notifier *NotifyService) *JobService {
	return &JobService{Repo: repo, Notifier: notifier}
}

// PruneStaleCalendar deletes calendar rows dated before today (UTC) and
// reports the outcome. Past nights are dead weight for the window scans.
func (s *JobService) PruneStaleCalendar() error {
	log.Println("Cron Job: pruning calendar rows older than today...")

	today := time.Now().UTC().Truncate(24 * time.Hour)
	deleted, err := s.Repo.DeleteCalendarBefore(today)
	if err != nil {
		s.Notifier.SendJobReport("Calendar prune FAILED", fmt.Sprintf("Prune run at %s failed: %v", time.Now().UTC().Format(time.RFC3339), err))
		return fmt.Errorf("cron job: failed to prune calendar: %w", err)
	}

	if deleted == 0 {
		log.Println("Cron Job: no stale calendar rows found.")
		return nil
	}

	remaining, err := s.Repo.CountCalendarRows()
	if err != nil {
		log.Printf("Cron Job: pruned %d rows but could not count remainder: %v", deleted, err)
		remaining = -1
	}
	log.Printf("Cron Job: pruned %d stale calendar rows (%d remaining).", deleted, remaining)

	s.Notifier.SendJobReport(
		"Calendar prune completed",
		fmt.Sprintf("Pruned %d calendar rows before %s; %d rows remain.", deleted, today.Format("2006-01-02"), remaining),
	)
	return nil
}

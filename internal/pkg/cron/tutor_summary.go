package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
)

const RefreshTutorSummaryJob = "refresh_tutor_summary_snapshots"

type TutorSummaryJobs struct {
	repo     tutorreport.TutorAttendanceRepository
	service  tutorreport.TutorReportService
	interval time.Duration
	now      func() time.Time
}

func NewTutorSummaryJobs(repo tutorreport.TutorAttendanceRepository, service tutorreport.TutorReportService, interval time.Duration) *TutorSummaryJobs {
	return &TutorSummaryJobs{
		repo:     repo,
		service:  service,
		interval: interval,
		now:      time.Now,
	}
}

func (j *TutorSummaryJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(RefreshTutorSummaryJob, j.interval, j.RefreshSnapshots)
}

// RefreshSnapshots recomputes the current month's stored summary for every
// shelter. One failing shelter does not stop the others.
func (j *TutorSummaryJobs) RefreshSnapshots(ctx context.Context) error {
	shelterIDs, err := j.repo.ListShelterIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list shelters: %w", err)
	}

	period := tutorreport.CurrentPeriod(j.now())
	slog.Info("Cron: refreshing tutor summary snapshots", "period", period.String(), "shelters", len(shelterIDs))

	var errs []error
	refreshed := 0
	for _, shelterID := range shelterIDs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := j.service.RefreshShelterSnapshot(ctx, shelterID, period); err != nil {
			slog.Error("Cron: failed to refresh tutor summary", "shelter_id", shelterID, "error", err)
			errs = append(errs, fmt.Errorf("shelter %s: %w", shelterID, err))
			continue
		}
		refreshed++
	}

	slog.Info("Cron: tutor summary snapshots refreshed", "refreshed", refreshed, "failed", len(errs))
	return errors.Join(errs...)
}

package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShelterRepo struct {
	tutorreport.TutorAttendanceRepository
	ids []string
	err error
}

func (f *fakeShelterRepo) ListShelterIDs(ctx context.Context) ([]string, error) {
	return f.ids, f.err
}

type fakeRefresher struct {
	tutorreport.TutorReportService
	failFor   string
	refreshed []string
	periods   []tutorreport.Period
}

func (f *fakeRefresher) RefreshShelterSnapshot(ctx context.Context, shelterID string, period tutorreport.Period) (*tutorreport.CanonicalSummary, error) {
	if shelterID == f.failFor {
		return nil, errors.New("boom")
	}
	f.refreshed = append(f.refreshed, shelterID)
	f.periods = append(f.periods, period)
	return &tutorreport.CanonicalSummary{}, nil
}

func TestTutorSummaryJobs_RefreshSnapshots(t *testing.T) {
	repo := &fakeShelterRepo{ids: []string{"s1", "s2", "s3"}}
	svc := &fakeRefresher{failFor: "s2"}
	jobs := NewTutorSummaryJobs(repo, svc, time.Hour)
	jobs.now = func() time.Time { return time.Date(2025, time.July, 31, 23, 0, 0, 0, time.UTC) }

	err := jobs.RefreshSnapshots(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "shelter s2")
	assert.Equal(t, []string{"s1", "s3"}, svc.refreshed)
	assert.Equal(t, tutorreport.Period{Year: 2025, Month: 7}, svc.periods[0])
}

func TestTutorSummaryJobs_ListError(t *testing.T) {
	jobs := NewTutorSummaryJobs(&fakeShelterRepo{err: errors.New("db down")}, &fakeRefresher{}, time.Hour)

	err := jobs.RefreshSnapshots(context.Background())
	assert.ErrorContains(t, err, "failed to list shelters")
}

func TestScheduler_RunOnce(t *testing.T) {
	scheduler := NewScheduler(context.Background())
	repo := &fakeShelterRepo{ids: []string{"s1"}}
	svc := &fakeRefresher{}
	NewTutorSummaryJobs(repo, svc, time.Hour).RegisterJobs(scheduler)

	require.NoError(t, scheduler.RunOnce(context.Background()))
	assert.Equal(t, []string{"s1"}, svc.refreshed)
}

func TestScheduler_StartStop(t *testing.T) {
	scheduler := NewScheduler(context.Background())

	var runs atomic.Int32
	ran := make(chan struct{}, 1)
	scheduler.AddJob("tick", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	scheduler.Start()
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	scheduler.Stop()

	assert.Equal(t, int32(1), runs.Load())

	scheduler.AddJob("late", time.Hour, func(ctx context.Context) error { return nil })
	assert.Len(t, scheduler.jobs, 1)
}

package tutorreport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

type TutorReportServiceImpl struct {
	repo      tutorreport.TutorAttendanceRepository
	presenter *Presenter
	now       func() time.Time
}

func NewTutorReportService(repo tutorreport.TutorAttendanceRepository, presenter *Presenter) tutorreport.TutorReportService {
	if presenter == nil {
		presenter = defaultPresenter
	}
	return &TutorReportServiceImpl{
		repo:      repo,
		presenter: presenter,
		now:       time.Now,
	}
}

// getShelterID extracts shelter_id from JWT claims
func (s *TutorReportServiceImpl) getShelterID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	shelterID, ok := claims["shelter_id"].(string)
	if !ok || validator.IsEmpty(shelterID) {
		return "", tutorreport.ErrShelterIDRequired
	}
	if !validator.IsValidUUID(shelterID) {
		return "", tutorreport.ErrInvalidShelterID
	}
	return shelterID, nil
}

func (s *TutorReportServiceImpl) respond(summary *tutorreport.CanonicalSummary, period *tutorreport.Period) *tutorreport.SummaryResponse {
	resp := &tutorreport.SummaryResponse{
		Summary:     summary,
		Cards:       s.presenter.SummaryCards(summary.Record()),
		Sections:    s.presenter.DetailSections(summary),
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
	}
	if period != nil {
		resp.Period = periodResponse(*period)
	}
	return resp
}

func periodResponse(p tutorreport.Period) *tutorreport.PeriodResponse {
	return &tutorreport.PeriodResponse{Month: p.Month, Year: p.Year, Label: p.String()}
}

// Summarize implements tutorreport.TutorReportService.
func (s *TutorReportServiceImpl) Summarize(ctx context.Context, req tutorreport.SummarizeRequest) (*tutorreport.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	summary := SummarizeTutors(req.Tutors, req.Summary)
	return s.respond(summary, nil), nil
}

// NormalizeTutors implements tutorreport.TutorReportService.
func (s *TutorReportServiceImpl) NormalizeTutors(ctx context.Context, req tutorreport.NormalizeTutorsRequest) ([]tutorreport.NormalizedTutor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return NormalizeTutorRecords(req.Tutors), nil
}

// GetSummary loads tutor records and the stored snapshot in parallel and
// reconciles them. Snapshot fields win over live records and may lag them by
// up to one refresh interval. Snapshots cover whole shelters, so a kelompok
// filter skips them.
func (s *TutorReportServiceImpl) GetSummary(ctx context.Context, filter tutorreport.ReportFilter) (*tutorreport.SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	shelterID, err := s.getShelterID(ctx)
	if err != nil {
		return nil, err
	}
	period := filter.Period(s.now())

	var (
		records  []map[string]any
		snapshot map[string]any
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		records, err = s.repo.ListTutorRecords(gCtx, tutorreport.RecordQuery{
			ShelterID:  shelterID,
			KelompokID: filter.KelompokID,
			Period:     period,
		})
		return err
	})

	if validator.IsEmpty(filter.KelompokID) {
		g.Go(func() error {
			var err error
			snapshot, err = s.repo.GetSummarySnapshot(gCtx, shelterID, period)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("Tutor summary sources loaded",
		"shelter_id", shelterID,
		"period", period.String(),
		"tutor_records", len(records),
		"has_snapshot", snapshot != nil,
	)

	summary := SummarizeTutors(records, snapshot)
	return s.respond(summary, &period), nil
}

// ListTutors implements tutorreport.TutorReportService.
func (s *TutorReportServiceImpl) ListTutors(ctx context.Context, filter tutorreport.ReportFilter) (*tutorreport.ListTutorsResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	shelterID, err := s.getShelterID(ctx)
	if err != nil {
		return nil, err
	}
	period := filter.Period(s.now())

	records, err := s.repo.ListTutorRecords(ctx, tutorreport.RecordQuery{
		ShelterID:  shelterID,
		KelompokID: filter.KelompokID,
		Period:     period,
	})
	if err != nil {
		return nil, err
	}

	tutors := make([]tutorreport.NormalizedTutor, 0, len(records))
	for i, raw := range records {
		tutor := NormalizeTutorRecord(raw, i)
		if !validator.IsEmpty(filter.Category) && bucketCategory(tutor) != tutorreport.Category(filter.Category) {
			continue
		}
		tutors = append(tutors, tutor)
	}

	return &tutorreport.ListTutorsResponse{
		Period: periodResponse(period),
		Tutors: tutors,
		Total:  len(tutors),
	}, nil
}

// RefreshSnapshot implements tutorreport.TutorReportService.
func (s *TutorReportServiceImpl) RefreshSnapshot(ctx context.Context, filter tutorreport.ReportFilter) (*tutorreport.CanonicalSummary, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	shelterID, err := s.getShelterID(ctx)
	if err != nil {
		return nil, err
	}

	return s.RefreshShelterSnapshot(ctx, shelterID, filter.Period(s.now()))
}

// RefreshShelterSnapshot implements tutorreport.TutorReportService.
func (s *TutorReportServiceImpl) RefreshShelterSnapshot(ctx context.Context, shelterID string, period tutorreport.Period) (*tutorreport.CanonicalSummary, error) {
	records, err := s.repo.ListTutorRecords(ctx, tutorreport.RecordQuery{
		ShelterID: shelterID,
		Period:    period,
	})
	if err != nil {
		return nil, err
	}

	summary := SummarizeTutors(records, nil)
	if err := s.repo.UpsertSummarySnapshot(ctx, shelterID, period, summary.Record()); err != nil {
		return nil, err
	}

	slog.Info("Tutor summary snapshot refreshed",
		"shelter_id", shelterID,
		"period", period.String(),
		"total_tutors", summary.TotalTutors,
	)
	return summary, nil
}

package tutorreport

import "context"

// TutorReportService defines tutor attendance report operations
type TutorReportService interface {
	// Summarize reconciles caller-supplied tutors and summary without touching storage
	Summarize(ctx context.Context, req SummarizeRequest) (*SummaryResponse, error)

	// NormalizeTutors maps caller-supplied tutor records to the canonical shape
	NormalizeTutors(ctx context.Context, req NormalizeTutorsRequest) ([]NormalizedTutor, error)

	// GetSummary builds the summary for the caller's shelter from stored attendance
	GetSummary(ctx context.Context, filter ReportFilter) (*SummaryResponse, error)

	// ListTutors returns normalized tutors for the caller's shelter
	ListTutors(ctx context.Context, filter ReportFilter) (*ListTutorsResponse, error)

	// RefreshSnapshot recomputes the stored summary for the caller's shelter
	RefreshSnapshot(ctx context.Context, filter ReportFilter) (*CanonicalSummary, error)

	// RefreshShelterSnapshot recomputes the stored summary for one shelter (background jobs)
	RefreshShelterSnapshot(ctx context.Context, shelterID string, period Period) (*CanonicalSummary, error)
}

package tutorreport

import "context"

// RecordQuery scopes raw attendance lookups.
type RecordQuery struct {
	ShelterID  string
	KelompokID string
	Period     Period
}

// TutorAttendanceRepository loads raw, loosely shaped attendance data
type TutorAttendanceRepository interface {
	// ListTutorRecords returns one raw record per tutor with aggregated counts for the period
	ListTutorRecords(ctx context.Context, q RecordQuery) ([]map[string]any, error)

	// GetSummarySnapshot returns the stored summary payload, or nil when none exists
	GetSummarySnapshot(ctx context.Context, shelterID string, period Period) (map[string]any, error)

	// UpsertSummarySnapshot stores the summary payload for the shelter and period
	UpsertSummarySnapshot(ctx context.Context, shelterID string, period Period, payload map[string]any) error

	// ListShelterIDs returns every shelter that has at least one active tutor
	ListShelterIDs(ctx context.Context) ([]string, error)
}

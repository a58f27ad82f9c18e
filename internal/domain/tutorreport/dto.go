package tutorreport

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/validator"
)

// MaxTutorsPerRequest bounds request bodies for the stateless endpoints.
const MaxTutorsPerRequest = 5000

// ========================================
// STATELESS NORMALIZATION
// ========================================

type SummarizeRequest struct {
	Tutors  []map[string]any `json:"tutors"`
	Summary map[string]any   `json:"summary"`
}

func (r *SummarizeRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Tutors) > MaxTutorsPerRequest {
		errs = append(errs, validator.ValidationError{
			Field:   "tutors",
			Message: fmt.Sprintf("at most %d tutors per request", MaxTutorsPerRequest),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NormalizeTutorsRequest struct {
	Tutors []map[string]any `json:"tutors"`
}

func (r *NormalizeTutorsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Tutors == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "tutors",
			Message: "tutors is required",
		})
	} else if len(r.Tutors) > MaxTutorsPerRequest {
		errs = append(errs, validator.ValidationError{
			Field:   "tutors",
			Message: fmt.Sprintf("at most %d tutors per request", MaxTutorsPerRequest),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// STORED REPORTS
// ========================================

// Period is a calendar month.
type Period struct {
	Year  int
	Month int
}

// CurrentPeriod returns the month containing now.
func CurrentPeriod(now time.Time) Period {
	return Period{Year: now.Year(), Month: int(now.Month())}
}

// Start is the first instant of the month (UTC).
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End is the first instant of the following month (UTC).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

func (p Period) String() string {
	return p.Start().Format("2006-01")
}

type ReportFilter struct {
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	KelompokID string `json:"kelompok_id,omitempty"`
	Category   string `json:"category,omitempty"`
}

// Period resolves the filter month, defaulting to the month of now when
// neither month nor year is given.
func (f *ReportFilter) Period(now time.Time) Period {
	if f.Month == 0 && f.Year == 0 {
		return CurrentPeriod(now)
	}
	return Period{Year: f.Year, Month: f.Month}
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != 0 || f.Year != 0 {
		if !validator.IsInRange(f.Month, 1, 12) {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}

		currentYear := time.Now().Year()
		if !validator.IsInRange(f.Year, 2020, currentYear+1) {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
			})
		}
	}

	if !validator.IsEmpty(f.KelompokID) {
		if !validator.IsValidUUID(f.KelompokID) {
			errs = append(errs, validator.ValidationError{
				Field:   "kelompok_id",
				Message: "kelompok_id must be a valid UUID",
			})
		}
	}

	if !validator.IsEmpty(f.Category) && !validator.IsInSlice(f.Category, CategoryKeys()) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of high, medium, low, no_data",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// RESPONSES
// ========================================

type PeriodResponse struct {
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Label string `json:"label"`
}

type SummaryResponse struct {
	Period      *PeriodResponse   `json:"period,omitempty"`
	Summary     *CanonicalSummary `json:"summary"`
	Cards       []DisplayCard     `json:"cards"`
	Sections    []DetailSection   `json:"sections"`
	GeneratedAt string            `json:"generated_at"`
}

type ListTutorsResponse struct {
	Period *PeriodResponse   `json:"period,omitempty"`
	Tutors []NormalizedTutor `json:"tutors"`
	Total  int               `json:"total"`
}

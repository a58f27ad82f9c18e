package tutorreport

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriod(t *testing.T) {
	p := Period{Year: 2024, Month: 12}

	assert.Equal(t, "2024-12", p.String())
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), p.End())
}

func TestReportFilter_Period(t *testing.T) {
	now := time.Date(2025, time.May, 20, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, Period{Year: 2025, Month: 5}, (&ReportFilter{}).Period(now))
	assert.Equal(t, Period{Year: 2024, Month: 1}, (&ReportFilter{Month: 1, Year: 2024}).Period(now))
}

func TestReportFilter_Validate(t *testing.T) {
	tests := []struct {
		name   string
		filter ReportFilter
		fields []string
	}{
		{name: "empty", filter: ReportFilter{}},
		{name: "valid", filter: ReportFilter{Month: 3, Year: 2025, KelompokID: "33333333-3333-3333-3333-333333333333", Category: "low"}},
		{name: "month without year", filter: ReportFilter{Month: 3}, fields: []string{"year"}},
		{name: "bad month", filter: ReportFilter{Month: 13, Year: 2025}, fields: []string{"month"}},
		{name: "year too old", filter: ReportFilter{Month: 1, Year: 2019}, fields: []string{"year"}},
		{name: "bad kelompok", filter: ReportFilter{KelompokID: "kelompok-1"}, fields: []string{"kelompok_id"}},
		{name: "unknown category", filter: ReportFilter{Category: "excellent"}, fields: []string{"category"}},
		{name: "category is case sensitive", filter: ReportFilter{Category: "HIGH"}, fields: []string{"category"}},
		{name: "blank filters are ignored", filter: ReportFilter{KelompokID: "   ", Category: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			got := validationErrs.ToMap()
			assert.Len(t, got, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, got, f)
			}
		})
	}
}

func TestNormalizeTutorsRequest_Validate(t *testing.T) {
	assert.Error(t, (&NormalizeTutorsRequest{}).Validate())
	assert.NoError(t, (&NormalizeTutorsRequest{Tutors: []map[string]any{}}).Validate())

	tooMany := make([]map[string]any, MaxTutorsPerRequest+1)
	assert.Error(t, (&SummarizeRequest{Tutors: tooMany}).Validate())
	assert.NoError(t, (&SummarizeRequest{}).Validate())
}

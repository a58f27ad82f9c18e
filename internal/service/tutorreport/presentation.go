package tutorreport

import (
	"fmt"

	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/numeric"
)

// Presenter turns canonical summaries into display cards and detail rows.
type Presenter struct {
	formatter *numeric.Formatter
}

func NewPresenter(formatter *numeric.Formatter) *Presenter {
	if formatter == nil {
		formatter = numeric.NewFormatterFromString("id")
	}
	return &Presenter{formatter: formatter}
}

var defaultPresenter = NewPresenter(nil)

// BuildSummaryCards uses the default (Indonesian) presenter.
func BuildSummaryCards(summary map[string]any) []tutorreport.DisplayCard {
	return defaultPresenter.SummaryCards(summary)
}

// BuildDetailSections uses the default (Indonesian) presenter.
func BuildDetailSections(summary *tutorreport.CanonicalSummary) []tutorreport.DetailSection {
	return defaultPresenter.DetailSections(summary)
}

// SummaryCards returns the average-rate and total-tutor cards, or an empty
// slice when there is no summary. The rate card carries a bare number.
func (p *Presenter) SummaryCards(summary map[string]any) []tutorreport.DisplayCard {
	if summary == nil {
		return []tutorreport.DisplayCard{}
	}

	average, ok := numeric.NormalizePercentageValue(SummaryAverageRateAliases.Resolve(summary))
	if !ok {
		average = 0
	}

	return []tutorreport.DisplayCard{
		{
			ID:          "average-attendance-rate",
			Icon:        "stats-chart",
			Label:       "Rata-rata Kehadiran",
			Value:       average,
			Description: "Rata-rata persentase kehadiran tutor",
			Color:       "#3498db",
		},
		{
			ID:          "total-tutors",
			Icon:        "people",
			Label:       "Total Tutor",
			Value:       p.formatter.FormatInteger(SummaryTotalTutorsAliases.Resolve(summary)),
			Description: "Jumlah tutor yang dipantau",
			Color:       "#2ecc71",
		},
	}
}

type valueKind int

const (
	kindCount valueKind = iota
	kindPercentage
	kindRate
	kindCombined
)

type detailField struct {
	key   string
	label string
	kind  valueKind
	count *int
	share *float64
}

// DetailSections returns the totals, breakdown and verified sections in
// that order. A nil summary yields zero rows.
func (p *Presenter) DetailSections(summary *tutorreport.CanonicalSummary) []tutorreport.DetailSection {
	detail := &tutorreport.AttendanceDetail{}
	if summary != nil && summary.AttendanceDetail != nil {
		detail = summary.AttendanceDetail
	}
	verified := detail.Verified
	if verified == nil {
		verified = &tutorreport.VerifiedAttendance{}
	}

	totals := []detailField{
		{key: "activities", label: "Total Aktivitas", kind: kindCount, count: &detail.Activities},
		{key: "records", label: "Total Catatan Kehadiran", kind: kindCount, count: &detail.Records},
		{key: "attended", label: "Hadir (termasuk terlambat)", kind: kindCount, count: &detail.Attended},
		{key: "late", label: "Terlambat", kind: kindCount, count: &detail.Late},
		{key: "absent", label: "Tidak Hadir", kind: kindCount, count: &detail.Absent},
		{key: "rate", label: "Tingkat Kehadiran", kind: kindRate, share: &detail.Rate},
	}

	breakdown := []detailField{
		{key: "present", label: "Hadir", kind: kindCombined, count: detail.Breakdown.Present.Count, share: detail.Breakdown.Present.Percentage},
		{key: "late", label: "Terlambat", kind: kindCombined, count: detail.Breakdown.Late.Count, share: detail.Breakdown.Late.Percentage},
		{key: "absent", label: "Tidak Hadir", kind: kindCombined, count: detail.Breakdown.Absent.Count, share: detail.Breakdown.Absent.Percentage},
	}

	verifiedRows := []detailField{
		{key: "total", label: "Total Terverifikasi", kind: kindCount, count: verified.Total},
		{key: "present", label: "Hadir", kind: kindCount, count: verified.Present},
		{key: "late", label: "Terlambat", kind: kindCount, count: verified.Late},
		{key: "absent", label: "Tidak Hadir", kind: kindCount, count: verified.Absent},
		{key: "rate", label: "Tingkat Kehadiran Terverifikasi", kind: kindRate, share: verified.Rate},
		{key: "pending", label: "Menunggu Verifikasi", kind: kindCount, count: verified.Pending},
	}

	return []tutorreport.DetailSection{
		p.section("totals", "Total Kehadiran", totals),
		p.section("breakdown", "Rincian Kehadiran", breakdown),
		p.section("verified", "Kehadiran Terverifikasi", verifiedRows),
	}
}

func (p *Presenter) section(id, title string, fields []detailField) tutorreport.DetailSection {
	rows := make([]tutorreport.DetailRow, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, tutorreport.DetailRow{
			Key:   f.key,
			Label: f.label,
			Value: p.formatValue(f.kind, f.count, f.share),
		})
	}
	return tutorreport.DetailSection{ID: id, Title: title, Rows: rows}
}

func (p *Presenter) formatValue(kind valueKind, count *int, share *float64) string {
	switch kind {
	case kindCount:
		if count == nil {
			return "0"
		}
		return p.formatter.FormatInteger(*count)
	case kindPercentage, kindRate:
		if share == nil {
			return "0%"
		}
		return formatPercent(*share)
	case kindCombined:
		switch {
		case count != nil && share != nil:
			return fmt.Sprintf("%s (%s)", p.formatter.FormatInteger(*count), formatPercent(*share))
		case count != nil:
			return p.formatter.FormatInteger(*count)
		case share != nil:
			return formatPercent(*share)
		}
	}
	return "0"
}

func formatPercent(v float64) string {
	return numeric.FormatDecimal(numeric.Round(v, 2)) + "%"
}

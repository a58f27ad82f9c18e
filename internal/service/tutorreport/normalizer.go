package tutorreport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/alias"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/numeric"
)

const defaultTutorName = "Tutor"

// tutorScope exposes the nested attendance blocks of one raw tutor record
// under fixed keys so a single alias list can span all of them.
// The verification block holds verification tallies only and never stands
// in for the tutor's own attendance counts.
type tutorScope struct {
	source       alias.Record
	attendance   alias.Record
	verified     alias.Record
	verification alias.Record
	breakdown    alias.Record
	totals       alias.Record
}

func newTutorScope(raw map[string]any) tutorScope {
	attendance := alias.FirstRecord(raw, alias.Key("attendance"), alias.Path("raw", "attendance"))
	return tutorScope{
		source:       raw,
		attendance:   attendance,
		verified:     alias.AsRecord(attendance["verified"]),
		verification: alias.AsRecord(attendance["verification"]),
		breakdown:    alias.AsRecord(attendance["breakdown"]),
		totals:       alias.AsRecord(attendance["totals"]),
	}
}

func (s tutorScope) record() alias.Record {
	return alias.Record{
		"source":       s.source,
		"attendance":   s.attendance,
		"verified":     s.verified,
		"verification": s.verification,
		"breakdown":    s.breakdown,
		"totals":       s.totals,
	}
}

// verifiedCounts returns the block holding verification tallies, if any.
func (s tutorScope) verifiedCounts() alias.Record {
	if s.verified != nil {
		return s.verified
	}
	return s.verification
}

// NormalizeTutorRecord maps an arbitrarily shaped tutor record onto the
// canonical shape. It never fails: missing fields fall back to defaults.
func NormalizeTutorRecord(raw map[string]any, index int) tutorreport.NormalizedTutor {
	tutor, _ := normalizeTutor(raw, index)
	return tutor
}

// NormalizeTutorRecords normalizes a batch, using each position as the id fallback.
func NormalizeTutorRecords(raws []map[string]any) []tutorreport.NormalizedTutor {
	out := make([]tutorreport.NormalizedTutor, 0, len(raws))
	for i, raw := range raws {
		out = append(out, NormalizeTutorRecord(raw, i))
	}
	return out
}

func normalizeTutor(raw map[string]any, index int) (tutorreport.NormalizedTutor, tutorScope) {
	scope := newTutorScope(raw)
	rec := scope.record()

	var rate *float64
	if v, ok := numeric.NormalizePercentageValue(TutorRateAliases.Resolve(rec)); ok {
		rate = &v
	}

	present := numeric.ToIntegerOrZero(TutorPresentAliases.Resolve(rec))
	late := numeric.ToIntegerOrZero(TutorLateAliases.Resolve(rec))
	absent := numeric.ToIntegerOrZero(TutorAbsentAliases.Resolve(rec))

	total := present + late + absent
	if v, ok := numeric.ToInteger(TutorTotalActivitiesAliases.Resolve(rec)); ok {
		total = v
	}

	id := stringify(TutorIDAliases.Resolve(rec))
	if id == "" {
		id = fmt.Sprintf("tutor-%d", index)
	}

	name := stringify(TutorNameAliases.Resolve(rec))
	if name == "" {
		name = defaultTutorName
	}

	category := tutorreport.Category(strings.ToLower(strings.TrimSpace(stringify(TutorCategoryAliases.Resolve(rec)))))
	if category == "" {
		category = tutorreport.DeriveCategoryFrom(rate)
	}

	label := stringify(TutorCategoryLabelAliases.Resolve(rec))
	if label == "" {
		label = tutorreport.CategoryLabel(category)
	}

	return tutorreport.NormalizedTutor{
		ID:              id,
		Name:            name,
		AttendanceRate:  rate,
		PresentCount:    present,
		LateCount:       late,
		AbsentCount:     absent,
		TotalActivities: total,
		Category:        category,
		CategoryLabel:   label,
		Raw:             raw,
	}, scope
}

// bucketCategory returns the distribution bucket of a tutor: the explicit
// category when it is a known one, otherwise the category of its rate.
func bucketCategory(t tutorreport.NormalizedTutor) tutorreport.Category {
	if t.Category.IsValid() {
		return t.Category
	}
	return tutorreport.DeriveCategoryFrom(t.AttendanceRate)
}

// stringify renders scalar identifiers; objects and arrays yield "".
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case bool:
		return strconv.FormatBool(s)
	}
	if numeric.Classify(v) == numeric.KindNumber {
		if n, ok := numeric.ToNumber(v); ok {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
	}
	return ""
}

package tutorreport

import (
	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/alias"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/numeric"
)

// SummarizeTutors builds the canonical summary from raw tutor records and an
// optional backend summary. Explicit backend values win; anything the
// backend omits falls back to what the tutor list yields on its own.
func SummarizeTutors(tutors []map[string]any, summary map[string]any) *tutorreport.CanonicalSummary {
	local := summarizeLocal(tutors)
	if summary == nil {
		return local
	}
	return reconcile(summary, local)
}

// summarizeLocal derives every summary field from the tutor list alone.
func summarizeLocal(tutors []map[string]any) *tutorreport.CanonicalSummary {
	distribution := tutorreport.NewDistribution()

	var (
		rateSum   float64
		rateCount int

		present, late, absent, activities int

		verified *verifiedTally
	)

	for i, raw := range tutors {
		tutor, scope := normalizeTutor(raw, i)

		if tutor.AttendanceRate != nil {
			rateSum += *tutor.AttendanceRate
			rateCount++
		}

		bucket := bucketCategory(tutor)
		entry := distribution[bucket]
		entry.Count++
		distribution[bucket] = entry

		present += tutor.PresentCount
		late += tutor.LateCount
		absent += tutor.AbsentCount
		activities += tutor.TotalActivities

		if scope.verifiedCounts() != nil {
			if verified == nil {
				verified = &verifiedTally{}
			}
			verified.add(scope)
		}
	}

	total := len(tutors)
	for c, e := range distribution {
		e.Percentage = numeric.Ratio(e.Count, total)
		distribution[c] = e
	}

	average := 0.0
	if rateCount > 0 {
		average = numeric.Round(rateSum/float64(rateCount), 2)
	}

	records := present + late + absent
	attended := present + late
	detail := &tutorreport.AttendanceDetail{
		Activities: activities,
		Records:    records,
		Attended:   attended,
		Rate:       numeric.Ratio(attended, records),
		Late:       late,
		Absent:     absent,
		Breakdown: tutorreport.Breakdown{
			Present: shareOf(present, records),
			Late:    shareOf(late, records),
			Absent:  shareOf(absent, records),
		},
	}
	if verified != nil {
		detail.Verified = verified.build()
	}

	return &tutorreport.CanonicalSummary{
		TotalTutors:           total,
		AverageAttendanceRate: average,
		Distribution:          distribution,
		Attendance:            detail,
		AttendanceDetail:      detail,
	}
}

type verifiedTally struct {
	total, present, late, absent, pending int
}

func (v *verifiedTally) add(scope tutorScope) {
	counts := scope.verifiedCounts()
	p := numeric.ToIntegerOrZero(VerifiedPresentAliases.Resolve(counts))
	l := numeric.ToIntegerOrZero(VerifiedLateAliases.Resolve(counts))
	a := numeric.ToIntegerOrZero(VerifiedAbsentAliases.Resolve(counts))

	v.present += p
	v.late += l
	v.absent += a
	v.total += intOr(VerifiedTotalAliases.Resolve(counts), p+l+a)
	v.pending += numeric.ToIntegerOrZero(TutorPendingAliases.Resolve(scope.record()))
}

func (v *verifiedTally) build() *tutorreport.VerifiedAttendance {
	out := &tutorreport.VerifiedAttendance{
		Total:   intPtr(v.total),
		Present: intPtr(v.present),
		Late:    intPtr(v.late),
		Absent:  intPtr(v.absent),
		Pending: intPtr(v.pending),
	}
	if v.total > 0 {
		out.Rate = floatPtr(numeric.Ratio(v.present+v.late, v.total))
	}
	return out
}

// shareOf pairs a count with its share of records; the share is omitted
// when there are no records.
func shareOf(count, records int) tutorreport.BreakdownEntry {
	entry := tutorreport.BreakdownEntry{Count: intPtr(count)}
	if records > 0 {
		entry.Percentage = floatPtr(numeric.Ratio(count, records))
	}
	return entry
}

// reconcile overlays explicit backend values on the local fallback.
func reconcile(summary map[string]any, local *tutorreport.CanonicalSummary) *tutorreport.CanonicalSummary {
	total := numeric.ToIntegerOrZero(SummaryTotalTutorsAliases.Resolve(summary))
	if total == 0 {
		total = local.TotalTutors
	}

	average, ok := numeric.NormalizePercentageValue(SummaryAverageRateAliases.Resolve(summary))
	if !ok {
		average = local.AverageAttendanceRate
	}

	distribution := local.Distribution
	if source := alias.FirstRecord(summary, SummaryDistributionSources...); source != nil {
		distribution = distributionFrom(source)
	}

	detail := local.AttendanceDetail
	if source := alias.FirstRecord(summary, SummaryAttendanceSources...); source != nil {
		detail = detailFrom(source, local.AttendanceDetail)
	}

	return &tutorreport.CanonicalSummary{
		TotalTutors:           total,
		AverageAttendanceRate: average,
		Distribution:          distribution,
		Attendance:            detail,
		AttendanceDetail:      detail,
	}
}

// distributionFrom reads a backend distribution object. Categories the
// backend leaves out are zero, not the locally derived value.
func distributionFrom(source alias.Record) tutorreport.Distribution {
	distribution := tutorreport.NewDistribution()
	for category, keys := range DistributionCategoryAliases {
		value := keys.Resolve(source)
		if value == nil {
			continue
		}

		entry := tutorreport.DistributionEntry{}
		if obj := alias.AsRecord(value); obj != nil {
			entry.Count = numeric.ToIntegerOrZero(EntryCountAliases.Resolve(obj))
			if pct, ok := numeric.ToNumber(EntryPercentageAliases.Resolve(obj)); ok {
				entry.Percentage = pct
			}
		} else {
			entry.Count = numeric.ToIntegerOrZero(value)
		}
		distribution[category] = entry
	}
	return distribution
}

// detailFrom resolves each attendance field from the backend object and
// falls back per field to the local detail.
func detailFrom(source alias.Record, local *tutorreport.AttendanceDetail) *tutorreport.AttendanceDetail {
	activities := intOr(DetailActivitiesAliases.Resolve(source), local.Activities)
	records := intOr(DetailRecordsAliases.Resolve(source), local.Records)
	attended := intOr(DetailAttendedAliases.Resolve(source), local.Attended)

	rate, ok := numeric.NormalizePercentageValue(DetailRateAliases.Resolve(source))
	if !ok {
		if records > 0 {
			rate = numeric.Ratio(attended, records)
		} else {
			rate = local.Rate
		}
	}

	breakdownSource := alias.AsRecord(source["breakdown"])
	return &tutorreport.AttendanceDetail{
		Activities: activities,
		Records:    records,
		Attended:   attended,
		Rate:       rate,
		Late:       intOr(DetailLateAliases.Resolve(source), local.Late),
		Absent:     intOr(DetailAbsentAliases.Resolve(source), local.Absent),
		Breakdown: tutorreport.Breakdown{
			Present: breakdownEntryFrom(breakdownSource, "present", local.Breakdown.Present),
			Late:    breakdownEntryFrom(breakdownSource, "late", local.Breakdown.Late),
			Absent:  breakdownEntryFrom(breakdownSource, "absent", local.Breakdown.Absent),
		},
		Verified: verifiedFrom(alias.AsRecord(source["verified"]), local.Verified),
	}
}

func breakdownEntryFrom(source alias.Record, key string, local tutorreport.BreakdownEntry) tutorreport.BreakdownEntry {
	value := alias.Key(key)(source)
	if value == nil {
		return local
	}

	obj := alias.AsRecord(value)
	if obj == nil {
		if n, ok := numeric.ToInteger(value); ok {
			return tutorreport.BreakdownEntry{Count: intPtr(n)}
		}
		return local
	}

	entry := tutorreport.BreakdownEntry{}
	if n, ok := numeric.ToInteger(EntryCountAliases.Resolve(obj)); ok {
		entry.Count = intPtr(n)
	}
	if pct, ok := numeric.ToNumber(EntryPercentageAliases.Resolve(obj)); ok {
		entry.Percentage = floatPtr(numeric.Round(pct, 2))
	}
	return entry
}

func verifiedFrom(source alias.Record, local *tutorreport.VerifiedAttendance) *tutorreport.VerifiedAttendance {
	if source == nil {
		return local
	}
	if local == nil {
		local = &tutorreport.VerifiedAttendance{}
	}

	out := &tutorreport.VerifiedAttendance{
		Total:   intPtrOr(VerifiedTotalAliases.Resolve(source), local.Total),
		Present: intPtrOr(VerifiedPresentAliases.Resolve(source), local.Present),
		Late:    intPtrOr(VerifiedLateAliases.Resolve(source), local.Late),
		Absent:  intPtrOr(VerifiedAbsentAliases.Resolve(source), local.Absent),
		Pending: intPtrOr(VerifiedPendingAliases.Resolve(source), local.Pending),
		Rate:    local.Rate,
	}
	if rate, ok := numeric.NormalizePercentageValue(VerifiedRateAliases.Resolve(source)); ok {
		out.Rate = &rate
	}
	return out
}

func intOr(v any, fallback int) int {
	if n, ok := numeric.ToInteger(v); ok {
		return n
	}
	return fallback
}

func intPtrOr(v any, fallback *int) *int {
	if n, ok := numeric.ToInteger(v); ok {
		return intPtr(n)
	}
	return fallback
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

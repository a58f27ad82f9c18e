package tutorreport

import "encoding/json"

// NormalizedTutor is the canonical per-tutor record. Raw keeps the original
// input so unknown fields pass through to callers.
type NormalizedTutor struct {
	ID              string
	Name            string
	AttendanceRate  *float64 // 0-100, nil when no data
	PresentCount    int
	LateCount       int
	AbsentCount     int
	TotalActivities int
	Category        Category
	CategoryLabel   string

	Raw map[string]any
}

// MarshalJSON merges the raw input with the canonical fields. Canonical
// fields win on key collision.
func (t NormalizedTutor) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(t.Raw)+9)
	for k, v := range t.Raw {
		out[k] = v
	}
	out["id"] = t.ID
	out["name"] = t.Name
	if t.AttendanceRate != nil {
		out["attendance_rate"] = *t.AttendanceRate
	} else {
		out["attendance_rate"] = nil
	}
	out["present_count"] = t.PresentCount
	out["late_count"] = t.LateCount
	out["absent_count"] = t.AbsentCount
	out["total_activities"] = t.TotalActivities
	out["category"] = string(t.Category)
	out["category_label"] = t.CategoryLabel
	return json.Marshal(out)
}

type DistributionEntry struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Distribution always carries all four categories.
type Distribution map[Category]DistributionEntry

// NewDistribution returns a fresh, zero-filled distribution.
func NewDistribution() Distribution {
	d := make(Distribution, 4)
	for _, c := range Categories() {
		d[c] = DistributionEntry{}
	}
	return d
}

// BreakdownEntry holds an optional count and share; either may be missing.
type BreakdownEntry struct {
	Count      *int     `json:"count"`
	Percentage *float64 `json:"percentage"`
}

type Breakdown struct {
	Present BreakdownEntry `json:"present"`
	Late    BreakdownEntry `json:"late"`
	Absent  BreakdownEntry `json:"absent"`
}

// VerifiedAttendance covers records that passed the approval step.
type VerifiedAttendance struct {
	Total   *int     `json:"total"`
	Present *int     `json:"present"`
	Late    *int     `json:"late"`
	Absent  *int     `json:"absent"`
	Rate    *float64 `json:"rate"`
	Pending *int     `json:"pending"`
}

type AttendanceDetail struct {
	Activities int     `json:"activities"`
	Records    int     `json:"records"`
	Attended   int     `json:"attended"`
	Rate       float64 `json:"rate"`

	Late      int                 `json:"late"`
	Absent    int                 `json:"absent"`
	Breakdown Breakdown           `json:"breakdown"`
	Verified  *VerifiedAttendance `json:"verified,omitempty"`
}

// CanonicalSummary is the aggregate root. Attendance and AttendanceDetail
// point at the same value.
type CanonicalSummary struct {
	TotalTutors           int               `json:"total_tutors"`
	AverageAttendanceRate float64           `json:"average_attendance_rate"`
	Distribution          Distribution      `json:"distribution"`
	Attendance            *AttendanceDetail `json:"attendance"`
	AttendanceDetail      *AttendanceDetail `json:"attendance_detail"`
}

// Record exposes the summary in the loose backend shape so it can be fed
// back into alias-based consumers.
func (s *CanonicalSummary) Record() map[string]any {
	if s == nil {
		return nil
	}
	dist := make(map[string]any, len(s.Distribution))
	for c, e := range s.Distribution {
		dist[string(c)] = map[string]any{"count": e.Count, "percentage": e.Percentage}
	}
	out := map[string]any{
		"total_tutors":            s.TotalTutors,
		"average_attendance_rate": s.AverageAttendanceRate,
		"distribution":            dist,
	}
	if s.AttendanceDetail != nil {
		detail := s.AttendanceDetail.Record()
		out["attendance"] = detail
		out["attendance_detail"] = detail
	}
	return out
}

// Record renders the detail as a plain object, nil pointers as nulls.
func (d *AttendanceDetail) Record() map[string]any {
	if d == nil {
		return nil
	}
	entry := func(e BreakdownEntry) map[string]any {
		return map[string]any{"count": intOrNil(e.Count), "percentage": floatOrNil(e.Percentage)}
	}
	out := map[string]any{
		"activities": d.Activities,
		"records":    d.Records,
		"attended":   d.Attended,
		"rate":       d.Rate,
		"late":       d.Late,
		"absent":     d.Absent,
		"breakdown": map[string]any{
			"present": entry(d.Breakdown.Present),
			"late":    entry(d.Breakdown.Late),
			"absent":  entry(d.Breakdown.Absent),
		},
	}
	if v := d.Verified; v != nil {
		out["verified"] = map[string]any{
			"total":   intOrNil(v.Total),
			"present": intOrNil(v.Present),
			"late":    intOrNil(v.Late),
			"absent":  intOrNil(v.Absent),
			"rate":    floatOrNil(v.Rate),
			"pending": intOrNil(v.Pending),
		}
	}
	return out
}

func intOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func floatOrNil(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

// DisplayCard is one headline metric. Value is a number for rates (the
// caller appends "%") and a preformatted string for counts.
type DisplayCard struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Label       string `json:"label"`
	Value       any    `json:"value"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type DetailRow struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type DetailSection struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Rows  []DetailRow `json:"rows"`
}

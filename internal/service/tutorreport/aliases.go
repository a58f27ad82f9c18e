package tutorreport

import (
	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/alias"
)

// Tutor aliases are resolved against a scope record with the keys
// "source" (the raw tutor), "attendance", "verified", "verification",
// "breakdown" and "totals".

func flat(names ...string) alias.Aliases {
	return alias.Keys(names...).Under("source")
}

func nested(names ...string) alias.Aliases {
	return alias.Keys(names...).Under("raw").Under("source")
}

var (
	TutorRateAliases = alias.Aliases{
		alias.Path("attendance", "rate"),
		alias.Path("verified", "rate"),
	}.Then(flat(
		"attendance_rate", "attendanceRate", "rate",
		"verified_attendance_rate", "verifiedAttendanceRate",
		"attendance_percentage", "attendancePercentage", "percentage",
		"persentase_kehadiran", "presentase_kehadiran", "tingkat_kehadiran", "kehadiran",
	)...).Then(nested(
		"attendance_rate", "attendanceRate", "rate", "persentase_kehadiran",
	)...)

	TutorPresentAliases = alias.Aliases{
		alias.Path("verified", "present"),
		alias.Path("breakdown", "present", "count"),
		alias.Scalar(alias.Path("breakdown", "present")),
	}.Then(flat(
		"present", "present_count", "presentCount", "hadir",
		"jumlah_hadir", "total_hadir", "total_present",
	)...).Then(nested("present", "present_count", "presentCount", "hadir")...)

	TutorLateAliases = alias.Aliases{
		alias.Path("verified", "late"),
		alias.Path("breakdown", "late", "count"),
		alias.Scalar(alias.Path("breakdown", "late")),
	}.Then(flat(
		"late", "late_count", "lateCount", "terlambat",
		"jumlah_terlambat", "total_terlambat", "total_late",
	)...).Then(nested("late", "late_count", "lateCount", "terlambat")...)

	TutorAbsentAliases = alias.Aliases{
		alias.Path("verified", "absent"),
		alias.Path("breakdown", "absent", "count"),
		alias.Scalar(alias.Path("breakdown", "absent")),
	}.Then(flat(
		"absent", "absent_count", "absentCount", "tidak_hadir", "alpha", "alpa",
		"jumlah_tidak_hadir", "total_tidak_hadir", "total_absent",
	)...).Then(nested("absent", "absent_count", "absentCount", "tidak_hadir")...)

	TutorTotalActivitiesAliases = alias.Aliases{
		alias.Path("totals", "activities"),
		alias.Path("totals", "total"),
		alias.Path("verified", "total"),
	}.Then(flat(
		"total_activities", "totalActivities", "total_aktivitas", "jumlah_aktivitas",
		"activities_count", "activitiesCount", "total",
	)...).Then(nested("total_activities", "totalActivities", "total_aktivitas")...)

	TutorPendingAliases = alias.Aliases{
		alias.Path("verified", "pending"),
		alias.Path("verified", "pending_count"),
		alias.Path("verification", "pending"),
	}.Then(flat("pending_verification", "pendingVerification", "menunggu_verifikasi")...)

	TutorIDAliases = flat(
		"id", "id_tutor", "user_id", "code", "tutorId", "tutor_id",
	).Then(nested("id", "id_tutor", "user_id", "tutorId")...)

	TutorNameAliases = flat(
		"name", "nama", "full_name", "nama_lengkap",
	).Then(nested("name", "nama", "full_name")...)

	TutorCategoryAliases = flat(
		"category", "kategori", "attendance_category", "attendanceCategory",
	).Then(nested("category", "kategori")...)

	TutorCategoryLabelAliases = flat(
		"category_label", "categoryLabel", "label_kategori",
	).Then(nested("category_label", "categoryLabel")...)
)

// Backend summary aliases, resolved against the summary object itself.
var (
	SummaryTotalTutorsAliases = alias.Keys("total_tutors", "totalTutors", "total", "count")

	SummaryAverageRateAliases = alias.Keys(
		"average_attendance_rate", "averageAttendanceRate", "attendanceRate", "attendance_rate", "rate",
	)

	SummaryDistributionSources = alias.Aliases{
		alias.Key("distribution"),
		alias.Path("attendance", "distribution"),
		alias.Key("category_distribution"),
		alias.Key("categoryDistribution"),
	}

	SummaryAttendanceSources = alias.Keys(
		"attendance", "attendance_detail", "attendanceDetail",
		"attendance_stats", "attendanceStats", "attendanceSummary",
	)
)

// DistributionCategoryAliases lists accepted keys per category inside a
// backend distribution object.
var DistributionCategoryAliases = map[tutorreport.Category]alias.Aliases{
	tutorreport.CategoryHigh:   alias.Keys("high", "tinggi", "baik"),
	tutorreport.CategoryMedium: alias.Keys("medium", "sedang"),
	tutorreport.CategoryLow:    alias.Keys("low", "rendah"),
	tutorreport.CategoryNoData: alias.Keys("no_data", "noData", "tidak_ada_data"),
}

var (
	EntryCountAliases      = alias.Keys("count", "total", "jumlah")
	EntryPercentageAliases = alias.Keys("percentage", "percent", "persentase")
)

// Attendance detail aliases, resolved against the backend attendance object.
var (
	DetailActivitiesAliases = alias.Keys("activities", "total_activities", "totalActivities").Then(
		alias.Path("totals", "activities"),
		alias.Path("totals", "total_activities"),
		alias.Path("verified", "total_activities"),
	)

	DetailRecordsAliases = alias.Keys("records", "total_records", "totalRecords").Then(
		alias.Path("totals", "records"),
		alias.Path("totals", "total_records"),
		alias.Path("verified", "total"),
		alias.Path("verified", "records"),
	)

	DetailAttendedAliases = alias.Keys("attended", "total_attended", "attended_count", "attendedCount").Then(
		alias.Path("totals", "attended"),
		alias.Path("verified", "attended"),
		alias.Scalar(alias.Path("breakdown", "attended")),
	)

	DetailRateAliases = alias.Keys("rate", "attendance_rate", "attendanceRate").Then(
		alias.Path("verified", "rate"),
		alias.Path("totals", "rate"),
	)

	DetailLateAliases = alias.Keys("late", "total_late", "late_count", "lateCount").Then(
		alias.Path("totals", "late"),
		alias.Path("breakdown", "late", "count"),
		alias.Scalar(alias.Path("breakdown", "late")),
	)

	DetailAbsentAliases = alias.Keys("absent", "total_absent", "absent_count", "absentCount").Then(
		alias.Path("totals", "absent"),
		alias.Path("breakdown", "absent", "count"),
		alias.Scalar(alias.Path("breakdown", "absent")),
	)
)

// Verified block aliases, resolved against the verified object.
var (
	VerifiedTotalAliases   = alias.Keys("total", "records", "total_records")
	VerifiedPresentAliases = alias.Keys("present", "hadir", "present_count")
	VerifiedLateAliases    = alias.Keys("late", "terlambat", "late_count")
	VerifiedAbsentAliases  = alias.Keys("absent", "tidak_hadir", "absent_count")
	VerifiedRateAliases    = alias.Keys("rate", "attendance_rate", "attendanceRate")
	VerifiedPendingAliases = alias.Keys("pending", "pending_count", "menunggu_verifikasi")
)

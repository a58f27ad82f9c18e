package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/database"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type tutorAttendanceRepositoryImpl struct {
	db *database.DB
}

func NewTutorAttendanceRepository(db *database.DB) tutorreport.TutorAttendanceRepository {
	return &tutorAttendanceRepositoryImpl{db: db}
}

// ListTutorRecords aggregates attendance per tutor for the period. Records
// are emitted in the loosely keyed shape the normalizer reads.
func (r *tutorAttendanceRepositoryImpl) ListTutorRecords(ctx context.Context, q tutorreport.RecordQuery) ([]map[string]any, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		WITH tutor_counts AS (
			SELECT
				t.id,
				t.nama,
				COUNT(CASE WHEN ta.status = 'present' THEN 1 END) AS hadir,
				COUNT(CASE WHEN ta.status = 'late' THEN 1 END) AS terlambat,
				COUNT(CASE WHEN ta.status = 'absent' THEN 1 END) AS tidak_hadir,
				COUNT(DISTINCT ta.activity_id) AS total_aktivitas,
				COUNT(CASE WHEN ta.verification_status = 'verified' AND ta.status = 'present' THEN 1 END) AS verified_present,
				COUNT(CASE WHEN ta.verification_status = 'verified' AND ta.status = 'late' THEN 1 END) AS verified_late,
				COUNT(CASE WHEN ta.verification_status = 'verified' AND ta.status = 'absent' THEN 1 END) AS verified_absent,
				COUNT(CASE WHEN ta.verification_status = 'pending' THEN 1 END) AS pending
			FROM tutors t
			LEFT JOIN tutor_attendances ta ON ta.tutor_id = t.id
				AND ta.date >= $2 AND ta.date < $3
			WHERE t.shelter_id = $1
				AND t.deleted_at IS NULL
				AND ($4::uuid IS NULL OR t.kelompok_id = $4::uuid)
			GROUP BY t.id, t.nama
		)
		SELECT
			id::text,
			nama,
			hadir,
			terlambat,
			tidak_hadir,
			total_aktivitas,
			verified_present,
			verified_late,
			verified_absent,
			pending,
			CASE WHEN hadir + terlambat + tidak_hadir > 0
				THEN (hadir + terlambat)::float8 / (hadir + terlambat + tidak_hadir)
			END AS attendance_rate
		FROM tutor_counts
		ORDER BY nama ASC
	`

	var kelompokID *string
	if !validator.IsEmpty(q.KelompokID) {
		kelompokID = &q.KelompokID
	}

	rows, err := querier.Query(ctx, query, q.ShelterID, q.Period.Start(), q.Period.End(), kelompokID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tutor attendance: %w", err)
	}
	defer rows.Close()

	records := make([]map[string]any, 0)
	for rows.Next() {
		var (
			id, nama                                      string
			hadir, terlambat, tidakHadir, totalAktivitas  int
			verifiedPresent, verifiedLate, verifiedAbsent int
			pending                                       int
			rate                                          *float64
		)
		if err := rows.Scan(
			&id, &nama,
			&hadir, &terlambat, &tidakHadir, &totalAktivitas,
			&verifiedPresent, &verifiedLate, &verifiedAbsent,
			&pending, &rate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tutor attendance: %w", err)
		}

		verification := map[string]any{
			"present": verifiedPresent,
			"late":    verifiedLate,
			"absent":  verifiedAbsent,
			"total":   verifiedPresent + verifiedLate + verifiedAbsent,
			"pending": pending,
		}

		record := map[string]any{
			"id_tutor":        id,
			"nama":            nama,
			"hadir":           hadir,
			"terlambat":       terlambat,
			"tidak_hadir":     tidakHadir,
			"total_aktivitas": totalAktivitas,
			"attendance":      map[string]any{"verification": verification},
		}
		// fraction; the normalizer scales it
		if rate != nil {
			record["attendance_rate"] = *rate
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tutor attendance: %w", err)
	}

	return records, nil
}

func (r *tutorAttendanceRepositoryImpl) GetSummarySnapshot(ctx context.Context, shelterID string, period tutorreport.Period) (map[string]any, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT payload
		FROM tutor_attendance_summaries
		WHERE shelter_id = $1 AND period_year = $2 AND period_month = $3
	`

	var payloadJSON []byte
	err := q.QueryRow(ctx, query, shelterID, period.Year, period.Month).Scan(&payloadJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get summary snapshot: %w", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary snapshot: %w", err)
	}
	return payload, nil
}

func (r *tutorAttendanceRepositoryImpl) UpsertSummarySnapshot(ctx context.Context, shelterID string, period tutorreport.Period, payload map[string]any) error {
	q := GetQuerier(ctx, r.db)

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal summary snapshot: %w", err)
	}

	query := `
		INSERT INTO tutor_attendance_summaries (shelter_id, period_year, period_month, payload, computed_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (shelter_id, period_year, period_month) DO UPDATE SET
			payload = EXCLUDED.payload,
			computed_at = NOW()
	`

	if _, err := q.Exec(ctx, query, shelterID, period.Year, period.Month, payloadJSON); err != nil {
		return fmt.Errorf("failed to upsert summary snapshot: %w", err)
	}
	return nil
}

func (r *tutorAttendanceRepositoryImpl) ListShelterIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT shelter_id::text
		FROM tutors
		WHERE deleted_at IS NULL
		ORDER BY 1
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shelters: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan shelter id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shelters: %w", err)
	}
	return ids, nil
}

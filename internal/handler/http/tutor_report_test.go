package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/jwt"
	tutorReportService "github.com/cmlabs-hris/tutor-report-go/internal/service/tutorreport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShelterID = "0192f3a4-5b6c-7d8e-9f01-23456789abcd"

type stubTutorAttendanceRepo struct {
	records  []map[string]any
	lastQ    tutorreport.RecordQuery
	upserted map[string]any
}

func (s *stubTutorAttendanceRepo) ListTutorRecords(ctx context.Context, q tutorreport.RecordQuery) ([]map[string]any, error) {
	s.lastQ = q
	return s.records, nil
}

func (s *stubTutorAttendanceRepo) GetSummarySnapshot(ctx context.Context, shelterID string, period tutorreport.Period) (map[string]any, error) {
	return nil, nil
}

func (s *stubTutorAttendanceRepo) UpsertSummarySnapshot(ctx context.Context, shelterID string, period tutorreport.Period, payload map[string]any) error {
	s.upserted = payload
	return nil
}

func (s *stubTutorAttendanceRepo) ListShelterIDs(ctx context.Context) ([]string, error) {
	return []string{testShelterID}, nil
}

type testEnv struct {
	router http.Handler
	jwt    jwt.Service
	repo   *stubTutorAttendanceRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := &stubTutorAttendanceRepo{
		records: []map[string]any{
			{"id_tutor": "t-1", "nama": "Andi", "hadir": 4, "tidak_hadir": 1, "attendance_rate": 0.8},
			{"id_tutor": "t-2", "nama": "Budi", "hadir": 1, "tidak_hadir": 4, "attendance_rate": 0.2},
		},
	}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	handler := NewTutorReportHandler(tutorReportService.NewTutorReportService(repo, nil))
	router := NewRouter(RouterOptions{Env: "test", LogLevel: slog.LevelError}, jwtService, handler)
	return &testEnv{router: router, jwt: jwtService, repo: repo}
}

func (e *testEnv) do(t *testing.T, method, target, body string, role tutorreport.Role) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if role != "" {
		token, _, err := e.jwt.GenerateAccessToken("user-1", testShelterID, role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success, rec.Body.String())
	return body.Data
}

func TestTutorReportHandler_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/tutor-reports/summary", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTutorReportHandler_Summarize(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/tutor-reports/summary",
		`{"tutors":[{"id":"a","attendance_rate":"75%"}],"summary":{"totalTutors":"12"}}`,
		tutorreport.RoleTutor)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	summary := data["summary"].(map[string]any)
	assert.Equal(t, 12.0, summary["total_tutors"])
	assert.Equal(t, 75.0, summary["average_attendance_rate"])

	cards := data["cards"].([]any)
	require.Len(t, cards, 2)
	assert.Equal(t, 75.0, cards[0].(map[string]any)["value"])
	assert.Equal(t, "12", cards[1].(map[string]any)["value"])
}

func TestTutorReportHandler_Summarize_BadBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/tutor-reports/summary", `{"tutors":`, tutorreport.RoleTutor)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/tutor-reports/summary", `{"tutors":"nope"}`, tutorreport.RoleTutor)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTutorReportHandler_NormalizeTutors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/tutor-reports/tutors/normalize",
		`{"tutors":[{"nama":"Sari","hadir":"3","alpha":1,"kategori":"HIGH"}]}`,
		tutorreport.RoleTutor)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Sari", body.Data[0]["name"])
	assert.Equal(t, "tutor-0", body.Data[0]["id"])
	assert.Equal(t, 3.0, body.Data[0]["present_count"])
	assert.Equal(t, 1.0, body.Data[0]["absent_count"])

	rec = env.do(t, http.MethodPost, "/api/v1/tutor-reports/tutors/normalize", `{}`, tutorreport.RoleTutor)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestTutorReportHandler_GetSummary(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/tutor-reports/summary?month=2&year=2025", "", tutorreport.RoleTutor)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	assert.Equal(t, "2025-02", data["period"].(map[string]any)["label"])
	summary := data["summary"].(map[string]any)
	assert.Equal(t, 2.0, summary["total_tutors"])
	assert.Equal(t, 50.0, summary["average_attendance_rate"])
	assert.Equal(t, testShelterID, env.repo.lastQ.ShelterID)
}

func TestTutorReportHandler_GetSummary_InvalidQuery(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/tutor-reports/summary?month=feb&year=2025", "", tutorreport.RoleTutor)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "month must be a number")

	rec = env.do(t, http.MethodGet, "/api/v1/tutor-reports/tutors?kelompok_id=abc", "", tutorreport.RoleTutor)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "kelompok_id")
}

func TestTutorReportHandler_ListTutors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/tutor-reports/tutors?category=HIGH", "", tutorreport.RoleTutor)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	assert.Equal(t, 1.0, data["total"])
	tutors := data["tutors"].([]any)
	assert.Equal(t, "t-1", tutors[0].(map[string]any)["id"])
}

func TestTutorReportHandler_RefreshSummary(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/tutor-reports/summary/refresh", "", tutorreport.RoleTutor)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, env.repo.upserted)

	rec = env.do(t, http.MethodPost, "/api/v1/tutor-reports/summary/refresh", "", tutorreport.RoleAdminShelter)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, env.repo.upserted)
	assert.Equal(t, 2, env.repo.upserted["total_tutors"])
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/cmlabs-hris/tutor-report-go/internal/handler/http/response"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/validator"
)

// maxBodyBytes caps request bodies for the stateless endpoints
const maxBodyBytes = 8 << 20

type TutorReportHandler interface {
	// Summarize normalizes a posted tutor list and optional backend summary
	Summarize(w http.ResponseWriter, r *http.Request)
	// NormalizeTutors returns the canonical form of posted tutor records
	NormalizeTutors(w http.ResponseWriter, r *http.Request)
	// GetSummary returns the stored report for the caller's shelter
	GetSummary(w http.ResponseWriter, r *http.Request)
	// ListTutors returns normalized tutors for the caller's shelter
	ListTutors(w http.ResponseWriter, r *http.Request)
	// RefreshSummary recomputes the stored snapshot
	RefreshSummary(w http.ResponseWriter, r *http.Request)
}

type tutorReportHandlerImpl struct {
	tutorReportService tutorreport.TutorReportService
}

func NewTutorReportHandler(tutorReportService tutorreport.TutorReportService) TutorReportHandler {
	return &tutorReportHandlerImpl{tutorReportService: tutorReportService}
}

// Summarize handles POST /tutor-reports/summary
func (h *tutorReportHandlerImpl) Summarize(w http.ResponseWriter, r *http.Request) {
	var req tutorreport.SummarizeRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleDecodeError(w, err)
		return
	}

	result, err := h.tutorReportService.Summarize(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// NormalizeTutors handles POST /tutor-reports/tutors/normalize
func (h *tutorReportHandlerImpl) NormalizeTutors(w http.ResponseWriter, r *http.Request) {
	var req tutorreport.NormalizeTutorsRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleDecodeError(w, err)
		return
	}

	result, err := h.tutorReportService.NormalizeTutors(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSummary handles GET /tutor-reports/summary
func (h *tutorReportHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReportFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.tutorReportService.GetSummary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListTutors handles GET /tutor-reports/tutors
func (h *tutorReportHandlerImpl) ListTutors(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReportFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.tutorReportService.ListTutors(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RefreshSummary handles POST /tutor-reports/summary/refresh
func (h *tutorReportHandlerImpl) RefreshSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReportFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.tutorReportService.RefreshSnapshot(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Summary snapshot refreshed", result)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	return dec.Decode(dst)
}

func handleDecodeError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		response.HandleError(w, err)
		return
	}
	response.BadRequest(w, "Invalid request format", nil)
}

// parseReportFilter reads month, year, kelompok_id and category from the query string
func parseReportFilter(r *http.Request) (tutorreport.ReportFilter, error) {
	q := r.URL.Query()
	filter := tutorreport.ReportFilter{
		KelompokID: strings.TrimSpace(q.Get("kelompok_id")),
		Category:   strings.ToLower(strings.TrimSpace(q.Get("category"))),
	}

	var errs validator.ValidationErrors
	if v := q.Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a number"})
		}
		filter.Month = month
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a number"})
		}
		filter.Year = year
	}

	if len(errs) > 0 {
		return filter, errs
	}
	return filter, nil
}

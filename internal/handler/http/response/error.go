package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		PayloadTooLarge(w, "Request body too large")
		return
	}

	switch {
	case errors.Is(err, tutorreport.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, tutorreport.ErrShelterIDRequired),
		errors.Is(err, tutorreport.ErrInvalidShelterID):
		Forbidden(w, err.Error())
	case errors.Is(err, tutorreport.ErrAdminOnly):
		Forbidden(w, err.Error())

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/cmlabs-hris/tutor-report-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token. It runs
// after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.HandleError(w, tutorreport.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "access" {
			response.HandleError(w, tutorreport.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}

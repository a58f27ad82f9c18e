package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/tutor-report-go/internal/domain/tutorreport"
	"github.com/cmlabs-hris/tutor-report-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, tutorreport.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)
		if !tutorreport.Role(role).CanRefreshSnapshots() {
			response.HandleError(w, tutorreport.ErrAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

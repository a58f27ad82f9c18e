package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/tutor-report-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Env            string
	AllowedOrigins []string
	LogLevel       slog.Level
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, tutorReportHandler TutorReportHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tutor-report"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired)

		r.Route("/tutor-reports", func(r chi.Router) {
			r.Route("/summary", func(r chi.Router) {
				r.Get("/", tutorReportHandler.GetSummary)
				r.With(chiMiddleware.AllowContentType("application/json")).Post("/", tutorReportHandler.Summarize)

				// Admin only
				r.With(middleware.AdminOnly).Post("/refresh", tutorReportHandler.RefreshSummary)
			})

			r.Route("/tutors", func(r chi.Router) {
				r.Get("/", tutorReportHandler.ListTutors)
				r.With(chiMiddleware.AllowContentType("application/json")).Post("/normalize", tutorReportHandler.NormalizeTutors)
			})
		})
	})

	return r
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/tutor-report-go/internal/config"
	appHTTP "github.com/cmlabs-hris/tutor-report-go/internal/handler/http"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/cron"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/database"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/tutor-report-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/tutor-report-go/internal/repository/postgresql"
	tutorReportService "github.com/cmlabs-hris/tutor-report-go/internal/service/tutorreport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tutorAttendanceRepo := postgresql.NewTutorAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	presenter := tutorReportService.NewPresenter(numeric.NewFormatterFromString(cfg.Report.Locale))
	tutorReportSvc := tutorReportService.NewTutorReportService(tutorAttendanceRepo, presenter)

	scheduler := cron.NewScheduler(ctx)
	cron.NewTutorSummaryJobs(tutorAttendanceRepo, tutorReportSvc, cfg.Report.RefreshInterval).RegisterJobs(scheduler)
	scheduler.Start()

	tutorReportHandler := appHTTP.NewTutorReportHandler(tutorReportSvc)
	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Env:            cfg.App.Env,
		AllowedOrigins: cfg.App.CORSOrigins,
		LogLevel:       level,
	}, JWTService, tutorReportHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	scheduler.Stop()
	slog.Info("Server stopped")
}

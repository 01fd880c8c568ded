package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/config"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/export"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/handler"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/jobs"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/middleware"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/repository"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/service"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/utils/dates"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	resolver := dates.LocationResolver{}
	discipline := service.NewDiscipline(repo, repo, repo, resolver, logger)
	authSvc := service.NewAuth(repo, logger, cfg)
	userSvc := service.NewUsers(repo, repo, repo, logger)
	missionSvc := service.NewMissions(repo, repo, repo, discipline, logger)
	transactionSvc := service.NewTransactions(repo, repo, discipline, resolver, logger)
	analyticsSvc := service.NewAnalytics(repo, repo)
	notificationSvc := service.NewNotifications(repo, repo, resolver)
	exporter := export.NewExporter(repo, repo, repo)
	sweep := jobs.NewDisciplineSweep(repo, discipline, cfg.SweepSchedule, logger)
	h := handler.NewHandler(authSvc, userSvc, missionSvc, transactionSvc,
		analyticsSvc, notificationSvc, exporter, sweep, logger)

	// Start the daily discipline sweep
	if err := sweep.Start(); err != nil {
		logger.Fatalf("Failed to start discipline sweep: %v", err)
	}
	defer sweep.Stop()

	// Setup router
	limiter := middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	r.Use(limiter.Middleware)

	// Public routes
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/auth/signup", h.SignUp).Methods("POST")
	r.HandleFunc("/auth/login", h.Login).Methods("POST")

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))

	authRouter.HandleFunc("/users/me", h.Profile).Methods("GET")
	authRouter.HandleFunc("/users/me", h.UpdateProfile).Methods("PATCH")
	authRouter.HandleFunc("/users/me/privacy", h.PrivacySettings).Methods("GET")
	authRouter.HandleFunc("/users/me/audit", h.AuditTrail).Methods("GET")
	authRouter.HandleFunc("/users/me/export", h.ExportAccount).Methods("GET")
	authRouter.HandleFunc("/users/me/erase", h.EraseAccount).Methods("POST")

	authRouter.HandleFunc("/missions", h.CreateMission).Methods("POST")
	authRouter.HandleFunc("/missions", h.ListMissions).Methods("GET")
	authRouter.HandleFunc("/missions/reorder", h.ReorderMissions).Methods("POST")
	authRouter.HandleFunc("/missions/allocate", h.AllocateSavings).Methods("POST")
	authRouter.HandleFunc("/missions/{id}", h.GetMission).Methods("GET")
	authRouter.HandleFunc("/missions/{id}", h.UpdateMission).Methods("PATCH")
	authRouter.HandleFunc("/missions/{id}", h.DeleteMission).Methods("DELETE")
	authRouter.HandleFunc("/missions/{id}/archive", h.ArchiveMission).Methods("POST")

	authRouter.HandleFunc("/transactions", h.CreateTransaction).Methods("POST")
	authRouter.HandleFunc("/transactions", h.TransactionHistory).Methods("GET")
	authRouter.HandleFunc("/transactions/sync/sms", h.SyncSMS).Methods("POST")
	authRouter.HandleFunc("/transactions/sync/aa", h.SyncAA).Methods("POST")
	authRouter.HandleFunc("/transactions/today", h.TodaySummary).Methods("GET")

	authRouter.HandleFunc("/analytics", h.Analytics).Methods("GET")
	authRouter.HandleFunc("/notifications/daily-summary", h.DailySummary).Methods("GET")
	authRouter.HandleFunc("/cron/discipline", h.TriggerSweep).Methods("POST")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}

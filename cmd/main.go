package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminAuthHandler "github.com/inovalogics-art/booking-service/internal/api/handlers/admin_auth"
	bookingStatsHandler "github.com/inovalogics-art/booking-service/internal/api/handlers/booking_stats"
	cancelBookingHandler "github.com/inovalogics-art/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/inovalogics-art/booking-service/internal/api/handlers/create_booking"
	createScheduleEntryHandler "github.com/inovalogics-art/booking-service/internal/api/handlers/create_schedule_entry"
	deleteScheduleEntryHandler "github.com/inovalogics-art/booking-service/internal/api/handlers/delete_schedule_entry"
	getAvailabilityHandler "github.com/inovalogics-art/booking-service/internal/api/handlers/get_availability"
	getScheduleHandler "github.com/inovalogics-art/booking-service/internal/api/handlers/get_schedule"
	listBookingsHandler "github.com/inovalogics-art/booking-service/internal/api/handlers/list_bookings"
	updateBookingHandler "github.com/inovalogics-art/booking-service/internal/api/handlers/update_booking"
	updateSlotRuleHandler "github.com/inovalogics-art/booking-service/internal/api/handlers/update_slot_rule"
	"github.com/inovalogics-art/booking-service/internal/api/middleware"
	"github.com/inovalogics-art/booking-service/internal/auth"
	"github.com/inovalogics-art/booking-service/internal/config"
	adminRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/admin"
	bookingRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/booking"
	scheduleRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/schedule"
	bookingsService "github.com/inovalogics-art/booking-service/internal/service/bookings"
	scheduleService "github.com/inovalogics-art/booking-service/internal/service/schedule"
	createBookingUC "github.com/inovalogics-art/booking-service/internal/usecase/create_booking"
	getAvailabilityUC "github.com/inovalogics-art/booking-service/internal/usecase/get_availability"
	"github.com/inovalogics-art/booking-service/pkg/logger"
	"github.com/inovalogics-art/booking-service/pkg/metrics"
	"github.com/inovalogics-art/booking-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Два пула к одной базе: публичная роль ограничена RLS-политиками,
	// админская — нет. Репозитории не переиспользуются между уровнями доверия.
	publicDB, err := openDB(cfg.Database.PublicDSN(), &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database as public role: %v", err)
	}
	defer publicDB.Close()

	adminDB, err := openDB(cfg.Database.AdminDSN(), &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database as admin role: %v", err)
	}
	defer adminDB.Close()

	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории публичного уровня доверия
	publicBookingRepository := bookingRepo.NewRepository(publicDB)
	publicScheduleRepository := scheduleRepo.NewRepository(publicDB)
	publicTxManager := txmanager.NewTransactionManager(publicDB)

	// Репозитории админского уровня доверия
	adminBookingRepository := bookingRepo.NewRepository(adminDB)
	adminScheduleRepository := scheduleRepo.NewRepository(adminDB)
	adminUserRepository := adminRepo.NewRepository(adminDB)
	adminTxManager := txmanager.NewTransactionManager(adminDB)

	// Сессии администраторов
	sessionManager := auth.NewSessionManager(
		cfg.Auth.SessionSecret,
		time.Duration(cfg.Auth.SessionTTLHours)*time.Hour,
		cfg.Auth.CookieName,
		cfg.Auth.CookieSecure,
	)
	authService := auth.NewService(adminUserRepository, log)

	// Сервисы
	bookingSvc := bookingsService.NewService(
		adminBookingRepository,
		adminScheduleRepository,
		adminTxManager,
		log,
	)
	scheduleSvc := scheduleService.NewService(adminScheduleRepository, log)

	// Use cases (публичный уровень доверия)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		publicScheduleRepository,
		publicBookingRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		publicBookingRepository,
		publicScheduleRepository,
		publicTxManager,
		log,
	)

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	adminAuth := adminAuthHandler.NewHandler(authService, sessionManager, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	bookingStats := bookingStatsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	createScheduleEntry := createScheduleEntryHandler.NewHandler(scheduleSvc, log)
	updateSlotRule := updateSlotRuleHandler.NewHandler(scheduleSvc, log)
	deleteScheduleEntry := deleteScheduleEntryHandler.NewHandler(scheduleSvc, log)

	// Роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Публичные ручки
	api.HandleFunc("/bookings", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Аутентификация администраторов
	api.HandleFunc("/admin/auth", adminAuth.Login).Methods(http.MethodPost)
	api.HandleFunc("/admin/auth", adminAuth.Probe).Methods(http.MethodGet)
	api.HandleFunc("/admin/auth", adminAuth.Logout).Methods(http.MethodDelete)

	// Чтение расписания открыто: его использует публичный календарь
	api.HandleFunc("/admin/slots", getSchedule.Handle).Methods(http.MethodGet)

	// Админские ручки за сессионной cookie
	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.SessionAuth(sessionManager))

	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/stats", bookingStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings", cancelBooking.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/slots", createScheduleEntry.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots", updateSlotRule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/slots", deleteScheduleEntry.Handle).Methods(http.MethodDelete)

	// HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func openDB(dsn string, cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

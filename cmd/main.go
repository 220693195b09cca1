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

	assignAssistantHandler "github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers/assign_assistant"
	cancelBookingHandler "github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers/create_booking"
	findConflictsHandler "github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers/find_conflicts"
	getAvailabilityHandler "github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers/get_client_bookings"
	getLocationBookingsHandler "github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers/get_location_bookings"
	getLocationConfigHandler "github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers/get_location_config"
	markNoShowHandler "github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers/mark_no_show"
	unassignAssistantHandler "github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers/unassign_assistant"
	updateLocationConfigHandler "github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers/update_location_config"
	"github.com/glamora-dev/GLM-SchedulingService/internal/api/middleware"
	"github.com/glamora-dev/GLM-SchedulingService/internal/config"
	assignmentRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/assignment"
	bookingRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/booking"
	configRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/config"
	clientServiceClient "github.com/glamora-dev/GLM-SchedulingService/internal/integrations/clientservice"
	rosterServiceClient "github.com/glamora-dev/GLM-SchedulingService/internal/integrations/rosterservice"
	bookingsService "github.com/glamora-dev/GLM-SchedulingService/internal/service/bookings"
	configService "github.com/glamora-dev/GLM-SchedulingService/internal/service/config"
	conflictsService "github.com/glamora-dev/GLM-SchedulingService/internal/service/conflicts"
	assignAssistantUC "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/assign_assistant"
	createBookingUC "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/create_booking"
	findConflictsUC "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/find_conflicts"
	getAvailabilityUC "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/get_availability"
	unassignAssistantUC "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/unassign_assistant"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/dbmetrics"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/logger"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/metrics"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/simpletxmanager"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/txmanager"
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

	log.Info("Starting GLM-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	rosterClient := rosterServiceClient.NewClient(
		cfg.RosterService.URL,
		time.Duration(cfg.RosterService.Timeout)*time.Second,
		log,
	)
	clientClient := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (RosterService=%s timeout=%ds, ClientService=%s timeout=%ds)",
		cfg.RosterService.URL, cfg.RosterService.Timeout, cfg.ClientService.URL, cfg.ClientService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		assignmentRepository *assignmentRepo.Repository
		configRepository     *configRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		assignmentRepository = assignmentRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		assignmentRepository = assignmentRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	conflictsSvc := conflictsService.NewService(
		bookingRepository,
		assignmentRepository,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		assignmentRepository,
		log,
	)
	configSvc := configService.NewService(
		configRepository,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		assignmentRepository,
		configRepository,
		rosterClient,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		assignmentRepository,
		configRepository,
		conflictsSvc,
		rosterClient,
		clientClient,
		txMgr,
		log,
	)

	assignAssistantUseCase := assignAssistantUC.NewUseCase(
		bookingRepository,
		assignmentRepository,
		conflictsSvc,
		rosterClient,
		txMgr,
		log,
	)

	unassignAssistantUseCase := unassignAssistantUC.NewUseCase(
		bookingRepository,
		assignmentRepository,
		log,
	)

	findConflictsUseCase := findConflictsUC.NewUseCase(conflictsSvc, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	assignAssistant := assignAssistantHandler.NewHandler(assignAssistantUseCase, log)
	unassignAssistant := unassignAssistantHandler.NewHandler(unassignAssistantUseCase, log)
	findConflicts := findConflictsHandler.NewHandler(findConflictsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	markNoShow := markNoShowHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getLocationBookings := getLocationBookingsHandler.NewHandler(bookingSvc, log)
	getLocationConfig := getLocationConfigHandler.NewHandler(configSvc, log)
	updateLocationConfig := updateLocationConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты мастера
	api.HandleFunc("/masters/{masterId}/available-slots",
		getAvailability.Handle).Methods(http.MethodGet)

	// Конфигурация расписания локации
	api.HandleFunc("/locations/{locationId}/config",
		getLocationConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Назначение ассистента
	protected.HandleFunc("/bookings/{bookingId}/assistants", assignAssistant.Handle).Methods(http.MethodPost)

	// Снятие ассистента
	protected.HandleFunc("/bookings/{bookingId}/assistants/{assistantId}", unassignAssistant.Handle).Methods(http.MethodDelete)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Пометка неявки
	protected.HandleFunc("/bookings/{bookingId}/no-show", markNoShow.Handle).Methods(http.MethodPatch)

	// Batch-проверка конфликтов
	protected.HandleFunc("/conflicts/check", findConflicts.Handle).Methods(http.MethodPost)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Управление локацией (для администраторов) ---
	// Список бронирований локации
	protected.HandleFunc("/locations/{locationId}/bookings", getLocationBookings.Handle).Methods(http.MethodGet)

	// Обновление конфигурации локации
	protected.HandleFunc("/locations/{locationId}/config", updateLocationConfig.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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

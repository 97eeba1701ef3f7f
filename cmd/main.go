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

	bookSlotHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/book_slot"
	cancelSessionHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/cancel_session"
	completeSessionHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/complete_session"
	confirmSessionHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/confirm_session"
	createTemplateHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_template"
	deleteTemplateHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_template"
	generateSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/generate_slots"
	getScheduleInfoHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_schedule_info"
	getSessionHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_session"
	listMySessionsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_my_sessions"
	listTemplatesHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_templates"
	requestFreeTimeHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/request_free_time"
	setScheduleEnforcedHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/set_schedule_enforced"
	setTemplateActiveHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/set_template_active"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/app"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	sessionRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/session"
	slotRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/slot"
	specialistRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/specialist"
	templateRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/template"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	sessionsService "github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
	templatesService "github.com/m04kA/SMC-ScheduleService/internal/service/templates"
	bookSlotUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/book_slot"
	generateSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/generate_slots"
	requestFreeTimeUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/request_free_time"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
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

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона, в которой шаблоны разворачиваются в слоты
	location, err := cfg.Service.Location()
	if err != nil {
		log.Fatal("Failed to load service timezone: %v", err)
	}
	log.Info("Schedule expansion timezone: %s", location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Применяем миграции (если включено)
	if cfg.Database.RunMigrations {
		migrator, err := app.NewMigrator(db, cfg.Database.MigrationsPath)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrator.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to read migrations version: %v", err)
		}
		log.Info("Database migrations applied, version=%d", version)
	}

	// Сбор метрик connection pool
	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, 15*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	templateRepository := templateRepo.NewRepository(db)
	slotRepository := slotRepo.NewRepository(db)
	sessionRepository := sessionRepo.NewRepository(db)
	specialistRepository := specialistRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	templatesSvc := templatesService.NewService(
		templateRepository,
		specialistRepository,
		log,
	)
	sessionsSvc := sessionsService.NewService(
		sessionRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		specialistRepository,
		slotRepository,
		log,
	)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		templateRepository,
		slotRepository,
		location,
		log,
	)
	bookSlotUseCase := bookSlotUC.NewUseCase(
		slotRepository,
		sessionRepository,
		txMgr,
		log,
	)
	requestFreeTimeUseCase := requestFreeTimeUC.NewUseCase(
		sessionRepository,
		specialistRepository,
		log,
	)

	// Инициализируем handlers
	createTemplate := createTemplateHandler.NewHandler(templatesSvc, log)
	listTemplates := listTemplatesHandler.NewHandler(templatesSvc, log)
	setTemplateActive := setTemplateActiveHandler.NewHandler(templatesSvc, log)
	deleteTemplate := deleteTemplateHandler.NewHandler(templatesSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getScheduleInfo := getScheduleInfoHandler.NewHandler(scheduleSvc, log)
	setScheduleEnforced := setScheduleEnforcedHandler.NewHandler(scheduleSvc, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	requestFreeTime := requestFreeTimeHandler.NewHandler(requestFreeTimeUseCase, log)
	getSession := getSessionHandler.NewHandler(sessionsSvc, log)
	listMySessions := listMySessionsHandler.NewHandler(sessionsSvc, log)
	confirmSession := confirmSessionHandler.NewHandler(sessionsSvc, log)
	completeSession := completeSessionHandler.NewHandler(sessionsSvc, log)
	cancelSession := cancelSessionHandler.NewHandler(sessionsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Режим бронирования и доступные слоты специалиста
	api.HandleFunc("/specialists/{specialistId}/schedule",
		getScheduleInfo.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Шаблоны расписания ---
	protected.HandleFunc("/templates", createTemplate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/templates", listTemplates.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/templates/{templateId}/active", setTemplateActive.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/templates/{templateId}", deleteTemplate.Handle).Methods(http.MethodDelete)

	// --- Слоты доступности ---
	protected.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}/book", bookSlot.Handle).Methods(http.MethodPost)

	// --- Сессии ---
	protected.HandleFunc("/sessions/requests", requestFreeTime.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions", listMySessions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{sessionId}/confirm", confirmSession.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/sessions/{sessionId}/complete", completeSession.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/sessions/{sessionId}/cancel", cancelSession.Handle).Methods(http.MethodPatch)

	// --- Режим бронирования специалиста ---
	protected.HandleFunc("/specialists/{specialistId}/schedule-enforced",
		setScheduleEnforced.Handle).Methods(http.MethodPut)

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

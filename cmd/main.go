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

	createAppointmentHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/create_appointment"
	createBlockedDateHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/create_blocked_date"
	createServiceHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/create_service"
	deleteAppointmentHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/delete_appointment"
	deleteBlockedDateHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/delete_blocked_date"
	deleteServiceHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/delete_service"
	getAppointmentHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_client_appointments"
	getWorkingHoursHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_working_hours"
	listAppointmentsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/list_appointments"
	listBlockedDatesHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/list_blocked_dates"
	listServicesHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/list_services"
	setServiceActiveHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/set_service_active"
	updateAppointmentStatusHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/update_appointment_status"
	updateServiceHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/update_service"
	updateWorkingHoursHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/update_working_hours"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/availability"
	"github.com/m04kA/barbershop-booking/internal/config"
	"github.com/m04kA/barbershop-booking/internal/infra/migrations"
	appointmentRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/appointment"
	blockedDateRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/blockeddate"
	catalogRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/catalog"
	workingHoursRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/workinghours"
	appointmentsService "github.com/m04kA/barbershop-booking/internal/service/appointments"
	catalogService "github.com/m04kA/barbershop-booking/internal/service/catalog"
	scheduleService "github.com/m04kA/barbershop-booking/internal/service/schedule"
	createAppointmentUC "github.com/m04kA/barbershop-booking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/logger"
	"github.com/m04kA/barbershop-booking/pkg/metrics"
	"github.com/m04kA/barbershop-booking/pkg/redisclient"
	"github.com/m04kA/barbershop-booking/pkg/txmanager"
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

	log.Info("Starting barbershop-booking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	// Методы *metrics.Metrics безопасны для nil, поэтому выключенные метрики передаются как nil
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

	// Применяем миграции
	if cfg.Database.MigrateOnStart {
		if err := migrations.Run(db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Оборачиваем БД: замер запросов и статистика пула только при включенных метриках
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	workingHoursRepository := workingHoursRepo.NewRepository(wrappedDB)
	blockedDateRepository := blockedDateRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(
		wrappedDB,
		txmanager.WithMaxRetries(cfg.Booking.MaxSerializationRetries),
		txmanager.WithRetryObserver(metricsCollector),
	)

	// Загрузчик данных дня для расчета слотов
	dayLoader := availability.NewLoader(
		workingHoursRepository,
		blockedDateRepository,
		appointmentRepository,
		catalogRepository,
	)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		catalogRepository,
		txMgr,
		metricsCollector,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	scheduleSvc := scheduleService.NewService(
		workingHoursRepository,
		blockedDateRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		dayLoader,
		txMgr,
		metricsCollector,
		cfg.Booking.MinNoticeMinutes,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogRepository,
		dayLoader,
		txMgr,
		cfg.Booking.MinNoticeMinutes,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listPublicServices := listServicesHandler.NewHandler(catalogSvc, true, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)

	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)

	listAllServices := listServicesHandler.NewHandler(catalogSvc, false, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	setServiceActive := setServiceActiveHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	updateWorkingHours := updateWorkingHoursHandler.NewHandler(scheduleSvc, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(scheduleSvc, log)
	createBlockedDate := createBlockedDateHandler.NewHandler(scheduleSvc, log)
	deleteBlockedDate := deleteBlockedDateHandler.NewHandler(scheduleSvc, log)

	// Ограничение частоты создания записей (Redis)
	var createAppointmentRoute http.Handler = http.HandlerFunc(createAppointment.Handle)
	if cfg.RateLimit.Enabled {
		rdb, err := redisclient.New(context.Background(), redisclient.Config{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		})
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()

		limiter := middleware.NewRateLimiter(
			rdb,
			cfg.RateLimit.Limit,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
			"rl:appointments",
			cfg.RateLimit.FailOpen,
			cfg.RateLimit.TrustForwardedFor,
			metricsCollector,
			log,
		)
		createAppointmentRoute = limiter.Middleware(createAppointmentRoute)
		log.Info("Rate limit enabled for appointment creation: limit=%d, window=%ds",
			cfg.RateLimit.Limit, cfg.RateLimit.WindowSeconds)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Warn("GET /health - Database unavailable: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог активных услуг
	api.HandleFunc("/services", listPublicServices.Handle).Methods(http.MethodGet)

	// Расписание работы
	api.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)

	// Слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.Handle("/appointments", createAppointmentRoute).Methods(http.MethodPost)

	// Записи клиента по телефону
	api.HandleFunc("/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId:[0-9]+}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId:[0-9]+}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId:[0-9]+}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Услуги ---
	admin.HandleFunc("/services", listAllServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId:[0-9]+}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId:[0-9]+}/active", setServiceActive.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/services/{serviceId:[0-9]+}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	admin.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/blocked-dates", listBlockedDates.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-dates", createBlockedDate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-dates/{blockedDateId:[0-9]+}", deleteBlockedDate.Handle).Methods(http.MethodDelete)

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
	close(stopMetricsCh)

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

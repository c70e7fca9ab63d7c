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

	cancelBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_booking"
	getDaySlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_day_slots"
	getEventScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_event_schedule"
	getMonthAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_month_availability"
	updateBookingStatusHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/slotcache"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	eventRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/event"
	ruleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/rule"
	bookingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	scheduleService "github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
	createBookingUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	getDaySlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_day_slots"
	getMonthAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_month_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting SMC-AvailabilityService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		eventRepository   *eventRepo.Repository
		ruleRepository    *ruleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		eventRepository = eventRepo.NewRepository(wrappedDB)
		ruleRepository = ruleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		eventRepository = eventRepo.NewRepository(db)
		ruleRepository = ruleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем кэш слотов (если включен)
	// Интерфейсы кэша в usecases принимают nil - конкретный *slotcache.Cache
	// присваивается только когда кэш реально создан
	var slotCache *slotcache.Cache
	var daySlotsCache getDaySlotsUC.SlotCache
	var cacheInvalidator createBookingUC.CacheInvalidator
	var bookingsInvalidator bookingsService.CacheInvalidator

	if cfg.Cache.Enabled {
		var cacheMetrics slotcache.MetricsObserver
		if metricsCollector != nil {
			cacheMetrics = metricsCollector
		}

		slotCache, err = slotcache.New(
			cfg.Cache.Size,
			time.Duration(cfg.Cache.MaxAgeSec)*time.Second,
			cacheMetrics,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize slot cache: %v", err)
		}

		daySlotsCache = slotCache
		cacheInvalidator = slotCache
		bookingsInvalidator = slotCache
		log.Info("Slot cache enabled (size=%d, max_age=%ds)", cfg.Cache.Size, cfg.Cache.MaxAgeSec)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		eventRepository,
		bookingsInvalidator,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		eventRepository,
		ruleRepository,
		log,
	)

	// Инициализируем use cases
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		eventRepository,
		ruleRepository,
		bookingRepository,
		daySlotsCache,
		log,
	)

	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(
		getDaySlotsUseCase,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		eventRepository,
		ruleRepository,
		bookingRepository,
		txMgr,
		cacheInvalidator,
		log,
	)

	// Инициализируем handlers
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	getEventSchedule := getEventScheduleHandler.NewHandler(scheduleSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

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

	// --- Доступность ---
	// Слоты события на день
	api.HandleFunc("/events/{eventSlug}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Даты месяца с хотя бы одним свободным слотом
	api.HandleFunc("/events/{eventSlug}/available-dates", getMonthAvailability.Handle).Methods(http.MethodGet)

	// Расписание события: опции и правила доступности
	api.HandleFunc("/events/{eventSlug}/schedule", getEventSchedule.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

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

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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/sporzo/turf-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/sporzo/turf-booking-service/internal/api/handlers/create_booking"
	createFlexibleBookingHandler "github.com/sporzo/turf-booking-service/internal/api/handlers/create_flexible_booking"
	getAvailableSlotsHandler "github.com/sporzo/turf-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/sporzo/turf-booking-service/internal/api/handlers/get_booking"
	getTurfBookingsHandler "github.com/sporzo/turf-booking-service/internal/api/handlers/get_turf_bookings"
	getUserBookingsHandler "github.com/sporzo/turf-booking-service/internal/api/handlers/get_user_bookings"
	"github.com/sporzo/turf-booking-service/internal/api/middleware"
	"github.com/sporzo/turf-booking-service/internal/config"
	bookingRepo "github.com/sporzo/turf-booking-service/internal/infra/storage/booking"
	paymentsClient "github.com/sporzo/turf-booking-service/internal/integrations/payments"
	turfCatalogClient "github.com/sporzo/turf-booking-service/internal/integrations/turfcatalog"
	availabilityService "github.com/sporzo/turf-booking-service/internal/service/availability"
	bookingsService "github.com/sporzo/turf-booking-service/internal/service/bookings"
	commitReservationUC "github.com/sporzo/turf-booking-service/internal/usecase/commit_reservation"
	createFlexibleBookingUC "github.com/sporzo/turf-booking-service/internal/usecase/create_flexible_booking"
	getAvailableSlotsUC "github.com/sporzo/turf-booking-service/internal/usecase/get_available_slots"
	"github.com/sporzo/turf-booking-service/pkg/dbmetrics"
	"github.com/sporzo/turf-booking-service/pkg/logger"
	"github.com/sporzo/turf-booking-service/pkg/metrics"
	"github.com/sporzo/turf-booking-service/pkg/simpletxmanager"
	"github.com/sporzo/turf-booking-service/pkg/txmanager"
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

	log.Info("Starting Turf Booking Service...")
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

	// Подключаемся к Redis для кеша занятости слотов (если включен)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)
	} else {
		log.Info("Redis cache disabled, availability reads go directly to database")
	}

	// Инициализируем интеграционных клиентов
	catalogClient := turfCatalogClient.NewClient(
		cfg.TurfCatalog.URL,
		time.Duration(cfg.TurfCatalog.Timeout)*time.Second,
		log,
	)
	providerClient := paymentsClient.NewClient(
		cfg.PaymentProvider.URL,
		cfg.PaymentProvider.APIKey,
		time.Duration(cfg.PaymentProvider.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (TurfCatalog=%s timeout=%ds, PaymentProvider=%s timeout=%ds)",
		cfg.TurfCatalog.URL, cfg.TurfCatalog.Timeout, cfg.PaymentProvider.URL, cfg.PaymentProvider.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		txMgr               availabilityService.TransactionManager
		availabilityMetrics availabilityService.MetricsCollector
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		availabilityMetrics = metricsCollector
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	ledger := availabilityService.NewService(
		bookingRepository,
		txMgr,
		redisClient,
		availabilityMetrics,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		ledger,
		catalogClient,
		log,
	)

	// Инициализируем use cases
	commitReservationUseCase := commitReservationUC.NewUseCase(
		catalogClient,
		ledger,
		providerClient,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogClient,
		ledger,
		log,
	)

	createFlexibleBookingUseCase := createFlexibleBookingUC.NewUseCase(
		catalogClient,
		ledger,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(commitReservationUseCase, log)
	createFlexibleBooking := createFlexibleBookingHandler.NewHandler(createFlexibleBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getTurfBookings := getTurfBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Доступные слоты площадки на дату
	api.HandleFunc("/turfs/{turfId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание слотового бронирования с оплатой
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Создание гибкого бронирования по диапазону времени
	protected.HandleFunc("/bookings/flexible", createFlexibleBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление площадкой (для владельцев) ---
	// Список бронирований площадки
	protected.HandleFunc("/turfs/{turfId}/bookings", getTurfBookings.Handle).Methods(http.MethodGet)

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

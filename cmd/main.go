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

	cancelReservationHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_booking"
	getTurfHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_turf"
	getTurfBookingsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_turf_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_user_bookings"
	listTurfsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/list_turfs"
	seedSlotsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/seed_slots"
	toggleSlotLockHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/toggle_slot_lock"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/config"
	bookingRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	paymentServiceClient "github.com/m04kA/SMC-TurfService/internal/integrations/paymentservice"
	bookingsService "github.com/m04kA/SMC-TurfService/internal/service/bookings"
	turfsService "github.com/m04kA/SMC-TurfService/internal/service/turfs"
	cancelReservationUC "github.com/m04kA/SMC-TurfService/internal/usecase/cancel_reservation"
	createReservationUC "github.com/m04kA/SMC-TurfService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-TurfService/internal/usecase/get_available_slots"
	seedSlotsUC "github.com/m04kA/SMC-TurfService/internal/usecase/seed_slots"
	toggleSlotLockUC "github.com/m04kA/SMC-TurfService/internal/usecase/toggle_slot_lock"
	"github.com/m04kA/SMC-TurfService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfService/pkg/logger"
	"github.com/m04kA/SMC-TurfService/pkg/metrics"
	"github.com/m04kA/SMC-TurfService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-TurfService/pkg/txmanager"
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

	log.Info("Starting SMC-TurfService...")
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

	// Инициализируем клиент PaymentService (если включён).
	// При выключенной интеграции создание брони работает без проверки оплаты
	var paymentClient createReservationUC.PaymentServiceClient
	if cfg.PaymentService.Enabled {
		paymentClient = paymentServiceClient.NewClient(
			cfg.PaymentService.URL,
			time.Duration(cfg.PaymentService.Timeout)*time.Second,
			log,
		)
		log.Info("PaymentService client initialized (url=%s, timeout=%ds)",
			cfg.PaymentService.URL, cfg.PaymentService.Timeout)
	} else {
		log.Info("PaymentService integration disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		turfRepository    *turfRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		turfRepository = turfRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		turfRepository = turfRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, turfRepository, log)
	turfSvc := turfsService.NewService(turfRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		bookingRepository,
		turfRepository,
		paymentClient,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(turfRepository, log)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(bookingRepository, turfRepository, log)
	seedSlotsUseCase := seedSlotsUC.NewUseCase(turfRepository, txMgr, nil, cfg.Seeding.HorizonDays, log)
	toggleSlotLockUseCase := toggleSlotLockUC.NewUseCase(turfRepository, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getTurfBookings := getTurfBookingsHandler.NewHandler(bookingSvc, log)
	seedSlots := seedSlotsHandler.NewHandler(seedSlotsUseCase, log)
	toggleSlotLock := toggleSlotLockHandler.NewHandler(toggleSlotLockUseCase, log)
	getTurf := getTurfHandler.NewHandler(turfSvc, log)
	listTurfs := listTurfsHandler.NewHandler(turfSvc, log)

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

	// Каталог площадок
	api.HandleFunc("/turfs", listTurfs.Handle).Methods(http.MethodGet)
	api.HandleFunc("/turfs/{turfId}", getTurf.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/turfs/{turfId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление площадкой (для владельцев) ---
	// Список бронирований площадки
	protected.HandleFunc("/turfs/{turfId}/bookings", getTurfBookings.Handle).Methods(http.MethodGet)

	// Аудит бронирований, разошедшихся с календарём слотов
	protected.HandleFunc("/turfs/{turfId}/bookings/unsynced", getTurfBookings.HandleUnsynced).Methods(http.MethodGet)

	// Генерация слотов на горизонт вперёд
	protected.HandleFunc("/turfs/{turfId}/slots/seed", seedSlots.Handle).Methods(http.MethodPost)

	// Переключение операторской блокировки слота
	protected.HandleFunc("/turfs/{turfId}/slots/lock", toggleSlotLock.Handle).Methods(http.MethodPatch)

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

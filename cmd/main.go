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

	bookSlotHandler "github.com/KeshavDaBoss/smartparkv5/internal/api/handlers/book_slot"
	cancelBookingHandler "github.com/KeshavDaBoss/smartparkv5/internal/api/handlers/cancel_booking"
	listSlotsHandler "github.com/KeshavDaBoss/smartparkv5/internal/api/handlers/list_slots"
	navigateHandler "github.com/KeshavDaBoss/smartparkv5/internal/api/handlers/navigate"
	updateOccupancyHandler "github.com/KeshavDaBoss/smartparkv5/internal/api/handlers/update_occupancy"
	"github.com/KeshavDaBoss/smartparkv5/internal/api/middleware"
	"github.com/KeshavDaBoss/smartparkv5/internal/config"
	"github.com/KeshavDaBoss/smartparkv5/internal/floorplan"
	bookingRepo "github.com/KeshavDaBoss/smartparkv5/internal/infra/storage/booking"
	slotRepo "github.com/KeshavDaBoss/smartparkv5/internal/infra/storage/slot"
	identityClient "github.com/KeshavDaBoss/smartparkv5/internal/integrations/identity"
	bookSlotUC "github.com/KeshavDaBoss/smartparkv5/internal/usecase/book_slot"
	cancelBookingUC "github.com/KeshavDaBoss/smartparkv5/internal/usecase/cancel_booking"
	listSlotsUC "github.com/KeshavDaBoss/smartparkv5/internal/usecase/list_slots"
	navigateUC "github.com/KeshavDaBoss/smartparkv5/internal/usecase/navigate"
	updateOccupancyUC "github.com/KeshavDaBoss/smartparkv5/internal/usecase/update_occupancy"
	"github.com/KeshavDaBoss/smartparkv5/pkg/dbmetrics"
	"github.com/KeshavDaBoss/smartparkv5/pkg/logger"
	"github.com/KeshavDaBoss/smartparkv5/pkg/metrics"
	"github.com/KeshavDaBoss/smartparkv5/pkg/simpletxmanager"
	"github.com/KeshavDaBoss/smartparkv5/pkg/txmanager"
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

	log.Info("Starting SmartPark wayfinding service...")
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

	// Загружаем планы этажей
	floorplans, err := floorplan.Load(cfg.Floorplan.Path)
	if err != nil {
		log.Fatal("Failed to load floorplans from %s: %v", cfg.Floorplan.Path, err)
	}
	log.Info("Floorplans loaded from %s", cfg.Floorplan.Path)

	// Инициализируем интеграционного клиента
	identity := identityClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Identity client initialized (url=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Сверяем реестр слотов с планами этажей. Слоты, указывающие на
	// несуществующие узлы графа, лучше поймать на старте, чем в маршрутах.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	allSlots, err := slotRepository.List(startupCtx, nil)
	cancelStartup()
	if err != nil {
		log.Fatal("Failed to load slot registry: %v", err)
	}
	if err := floorplans.ValidateSlots(allSlots); err != nil {
		log.Fatal("Slot registry does not match floorplans: %v", err)
	}
	log.Info("Slot registry validated against floorplans (%d slots)", len(allSlots))

	// Инициализируем use cases
	listSlotsUseCase := listSlotsUC.NewUseCase(slotRepository, bookingRepository, log)
	bookSlotUseCase := bookSlotUC.NewUseCase(slotRepository, bookingRepository, identity, txMgr, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, log)
	navigateUseCase := navigateUC.NewUseCase(slotRepository, bookingRepository, identity, floorplans, log)
	updateOccupancyUseCase := updateOccupancyUC.NewUseCase(slotRepository, log)

	// Инициализируем handlers
	listSlots := listSlotsHandler.NewHandler(listSlotsUseCase, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	navigate := navigateHandler.NewHandler(navigateUseCase, log)
	updateOccupancy := updateOccupancyHandler.NewHandler(updateOccupancyUseCase, log)

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

	// Список слотов с их статусами на дату
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Сигнал о физической занятости слота (датчики)
	api.HandleFunc("/slots/{slotId}/occupancy", updateOccupancy.Handle).Methods(http.MethodPut)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Бронирование слота
	protected.HandleFunc("/bookings", bookSlot.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/bookings/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Подбор свободного слота и маршрут к нему
	protected.HandleFunc("/navigate", navigate.Handle).Methods(http.MethodPost)

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

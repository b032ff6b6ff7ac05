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

	addMenuItemHandler "github.com/m04kA/DMR-ReservationService/internal/api/handlers/add_menu_item"
	cancelReservationHandler "github.com/m04kA/DMR-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/DMR-ReservationService/internal/api/handlers/create_reservation"
	getDayOverviewHandler "github.com/m04kA/DMR-ReservationService/internal/api/handlers/get_day_overview"
	getUserReservationsHandler "github.com/m04kA/DMR-ReservationService/internal/api/handlers/get_user_reservations"
	removeMenuItemHandler "github.com/m04kA/DMR-ReservationService/internal/api/handlers/remove_menu_item"
	setBusinessHoursHandler "github.com/m04kA/DMR-ReservationService/internal/api/handlers/set_business_hours"
	setHolidayHandler "github.com/m04kA/DMR-ReservationService/internal/api/handlers/set_holiday"
	"github.com/m04kA/DMR-ReservationService/internal/api/middleware"
	"github.com/m04kA/DMR-ReservationService/internal/config"
	calendarRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/calendar"
	menuRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/menu"
	reservationRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/DMR-ReservationService/internal/infra/storage/user"
	calendarService "github.com/m04kA/DMR-ReservationService/internal/service/calendar"
	catalogService "github.com/m04kA/DMR-ReservationService/internal/service/catalog"
	ledgerService "github.com/m04kA/DMR-ReservationService/internal/service/ledger"
	cancelReservationUC "github.com/m04kA/DMR-ReservationService/internal/usecase/cancel_reservation"
	createReservationUC "github.com/m04kA/DMR-ReservationService/internal/usecase/create_reservation"
	getDayOverviewUC "github.com/m04kA/DMR-ReservationService/internal/usecase/get_day_overview"
	"github.com/m04kA/DMR-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/DMR-ReservationService/pkg/logger"
	"github.com/m04kA/DMR-ReservationService/pkg/metrics"
	"github.com/m04kA/DMR-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/DMR-ReservationService/pkg/txmanager"
	"github.com/m04kA/DMR-ReservationService/pkg/types"
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

	log.Info("Starting DMR-ReservationService...")
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

	// Дефолтное окно прибытия
	defaultOpen, err := types.NewTimeStringFromString(cfg.Booking.DefaultOpenTime)
	if err != nil {
		log.Fatal("Invalid default_open_time %q: %v", cfg.Booking.DefaultOpenTime, err)
	}
	defaultClose, err := types.NewTimeStringFromString(cfg.Booking.DefaultCloseTime)
	if err != nil {
		log.Fatal("Invalid default_close_time %q: %v", cfg.Booking.DefaultCloseTime, err)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		menuRepository        *menuRepo.Repository
		reservationRepository *reservationRepo.Repository
		calendarRepository    *calendarRepo.Repository
		userRepository        *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		menuRepository = menuRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		menuRepository = menuRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(menuRepository, log)
	calendarSvc := calendarService.NewService(calendarRepository, defaultOpen, defaultClose, log)
	ledgerSvc := ledgerService.NewService(reservationRepository, menuRepository, log)

	// Инициализируем use cases
	getDayOverviewUseCase := getDayOverviewUC.NewUseCase(
		calendarSvc,
		catalogSvc,
		ledgerSvc,
		userRepository,
		cfg.Booking.SlotStepMinutes,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		calendarSvc,
		menuRepository,
		reservationRepository,
		txMgr,
		cfg.Booking.SlotStepMinutes,
		log,
	)

	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		menuRepository,
		reservationRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getDayOverview := getDayOverviewHandler.NewHandler(getDayOverviewUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getUserReservations := getUserReservationsHandler.NewHandler(ledgerSvc, log)
	addMenuItem := addMenuItemHandler.NewHandler(catalogSvc, log)
	removeMenuItem := removeMenuItemHandler.NewHandler(catalogSvc, log)
	setBusinessHours := setBusinessHoursHandler.NewHandler(calendarSvc, log)
	setHoliday := setHolidayHandler.NewHandler(calendarSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Обзор дня: расписание, слоты, меню с подсказками действий
	protected.HandleFunc("/days/{date}", getDayOverview.Handle).Methods(http.MethodGet)

	// Создание брони (меню или только время прибытия)
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Отмена брони
	protected.HandleFunc("/reservations/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Брони пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth, middleware.AdminOnly)

	// Управление меню
	admin.HandleFunc("/menus", addMenuItem.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/menus/{menuId}", removeMenuItem.Handle).Methods(http.MethodDelete)

	// Управление календарем
	admin.HandleFunc("/calendar/{date}/hours", setBusinessHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/calendar/{date}/holiday", setHoliday.Handle).Methods(http.MethodPut)

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

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

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/create_booking"
	createClientHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/create_client"
	createProfessionalHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/create_professional"
	findProfessionalsHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/find_professionals"
	getBookingHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/get_booking"
	getClientHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/get_client"
	getClientBookingsHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/get_client_bookings"
	getProfessionalHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/get_professional"
	removeAvailabilityHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/remove_availability"
	setActiveHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/set_active"
	setAvailabilityHandler "github.com/t1mga/FSP-BookingService/internal/api/handlers/set_availability"
	"github.com/t1mga/FSP-BookingService/internal/api/middleware"
	"github.com/t1mga/FSP-BookingService/internal/config"
	bookingRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/client"
	professionalRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/professional"
	bookingsService "github.com/t1mga/FSP-BookingService/internal/service/bookings"
	clientsService "github.com/t1mga/FSP-BookingService/internal/service/clients"
	professionalsService "github.com/t1mga/FSP-BookingService/internal/service/professionals"
	createBookingUC "github.com/t1mga/FSP-BookingService/internal/usecase/create_booking"
	findProfessionalsUC "github.com/t1mga/FSP-BookingService/internal/usecase/find_professionals"
	"github.com/t1mga/FSP-BookingService/pkg/dbmetrics"
	"github.com/t1mga/FSP-BookingService/pkg/logger"
	"github.com/t1mga/FSP-BookingService/pkg/metrics"
	"github.com/t1mga/FSP-BookingService/pkg/simpletxmanager"
	"github.com/t1mga/FSP-BookingService/pkg/txmanager"
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

	log.Info("Starting FSP-BookingService...")
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
		bookingRepository      *bookingRepo.Repository
		professionalRepository *professionalRepo.Repository
		clientRepository       *clientRepo.Repository
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
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	professionalSvc := professionalsService.NewService(professionalRepository, log)
	clientSvc := clientsService.NewService(clientRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		professionalRepository,
		clientRepository,
		txMgr,
		log,
	)

	findProfessionalsUseCase := findProfessionalsUC.NewUseCase(
		professionalRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	findProfessionals := findProfessionalsHandler.NewHandler(findProfessionalsUseCase, log)
	createProfessional := createProfessionalHandler.NewHandler(professionalSvc, log)
	getProfessional := getProfessionalHandler.NewHandler(professionalSvc, log)
	setAvailability := setAvailabilityHandler.NewHandler(professionalSvc, log)
	removeAvailability := removeAvailabilityHandler.NewHandler(professionalSvc, log)
	setActive := setActiveHandler.NewHandler(professionalSvc, log)
	createClient := createClientHandler.NewHandler(clientSvc, log)
	getClient := getClientHandler.NewHandler(clientSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Логирование запросов
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Профессионалы ---
	api.HandleFunc("/professionals", createProfessional.Handle).Methods(http.MethodPost)
	api.HandleFunc("/professionals/nearby", findProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}", getProfessional.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}/availability", setAvailability.Handle).Methods(http.MethodPut)
	api.HandleFunc("/professionals/{professionalId}/availability/{weekday}", removeAvailability.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/professionals/{professionalId}/active", setActive.Handle).Methods(http.MethodPatch)

	// --- Клиенты ---
	api.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// Восстановление после паник в обработчиках
	handler := gorillahandlers.RecoveryHandler(
		gorillahandlers.PrintRecoveryStack(true),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

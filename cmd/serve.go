package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	getChainAvailabilityHandler "github.com/m04kA/SMC-ChainBookingService/internal/api/handlers/get_chain_availability"
	getLocationConfigHandler "github.com/m04kA/SMC-ChainBookingService/internal/api/handlers/get_location_config"
	getStaffAvailabilityHandler "github.com/m04kA/SMC-ChainBookingService/internal/api/handlers/get_staff_availability"
	"github.com/m04kA/SMC-ChainBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ChainBookingService/internal/infra/migrations"
	bookingRepo "github.com/m04kA/SMC-ChainBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-ChainBookingService/internal/infra/storage/catalog"
	configRepo "github.com/m04kA/SMC-ChainBookingService/internal/infra/storage/config"
	staffServiceClient "github.com/m04kA/SMC-ChainBookingService/internal/integrations/staffservice"
	availabilityService "github.com/m04kA/SMC-ChainBookingService/internal/service/availability"
	configService "github.com/m04kA/SMC-ChainBookingService/internal/service/config"
	getChainAvailabilityUC "github.com/m04kA/SMC-ChainBookingService/internal/usecase/get_chain_availability"
	"github.com/m04kA/SMC-ChainBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ChainBookingService/pkg/metrics"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrateOnStart bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*configPath, migrateOnStart)
		},
	}

	cmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply database migrations before start")
	return cmd
}

func runServer(configPath string, migrateOnStart bool) error {
	cfg, log, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting SMC-ChainBookingService...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключаемся к базе данных
	db, err := openDB(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrateOnStart {
		applied, err := migrations.Up(ctx, db, log)
		if err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		log.Info("Migrations applied on startup: %d", applied)
	}

	// Инициализируем метрики (если включены) и репозитории
	var (
		executor         dbmetrics.DBExecutor = db
		metricsCollector *metrics.Metrics
		chainMetrics     getChainAvailabilityUC.MetricsRecorder
	)
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		chainMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	catalogRepository := catalogRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)
	configRepository := configRepo.NewRepository(executor)

	// Инициализируем интеграционных клиентов
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем сервисы
	configSvc := configService.NewService(
		configRepository,
		configService.Defaults{
			StepMinutes:             cfg.Scheduling.StepMinutes,
			MinBookingNoticeMinutes: cfg.Scheduling.MinBookingNoticeMinutes,
			AdvanceBookingDays:      cfg.Scheduling.AdvanceBookingDays,
			TimeZone:                cfg.Scheduling.TimeZone,
		},
		log,
	)
	availabilitySvc := availabilityService.NewService(
		configSvc,
		staffClient,
		bookingRepository,
		log,
	)

	// Инициализируем use cases
	getChainAvailabilityUseCase := getChainAvailabilityUC.NewUseCase(
		catalogRepository,
		availabilitySvc,
		configSvc,
		chainMetrics,
		log,
	)

	// Инициализируем handlers
	getChainAvailability := getChainAvailabilityHandler.NewHandler(getChainAvailabilityUseCase, log)
	getStaffAvailability := getStaffAvailabilityHandler.NewHandler(availabilitySvc, log)
	getLocationConfig := getLocationConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Подбор времени для цепочки услуг
	api.HandleFunc("/locations/{locationId}/chain-availability",
		getChainAvailability.Handle).Methods(http.MethodPost)

	// Доступность одного мастера на дату
	api.HandleFunc("/locations/{locationId}/staff/{staffId}/availability",
		getStaffAvailability.Handle).Methods(http.MethodGet)

	// Действующая конфигурация расписания локации
	api.HandleFunc("/locations/{locationId}/config",
		getLocationConfig.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Ожидаем сигнал завершения или падение сервера
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelDraftHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/cancel_draft"
	createDraftHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_draft"
	getBookingSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_booking_slots"
	getCatalogHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_catalog"
	getDraftHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_draft"
	submitDraftHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/submit_draft"
	updateDraftHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_draft"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/draftstore"
	appointmentServiceClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/appointmentservice"
	salonServiceClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/salonservice"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	draftsService "github.com/m04kA/SMC-SalonBooking/internal/service/drafts"
	scheduleService "github.com/m04kA/SMC-SalonBooking/internal/service/schedule"
	getBookingSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_booking_slots"
	getCatalogUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_catalog"
	submitBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
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

	log.Info("Starting SMC-SalonBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	salonClient := salonServiceClient.NewClient(
		cfg.SalonService.URL,
		time.Duration(cfg.SalonService.Timeout)*time.Second,
		log,
	)
	appointmentClient := appointmentServiceClient.NewClient(
		cfg.AppointmentService.URL,
		time.Duration(cfg.AppointmentService.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		salonClient.WithMetrics(metricsCollector)
		appointmentClient.WithMetrics(metricsCollector)
	}
	log.Info("Integration clients initialized (SalonService=%s timeout=%ds, AppointmentService=%s timeout=%ds)",
		cfg.SalonService.URL, cfg.SalonService.Timeout, cfg.AppointmentService.URL, cfg.AppointmentService.Timeout)

	// Хранилище сессий черновиков: Redis с фолбэком в память,
	// либо только память, если Redis выключен
	draftTTL := time.Duration(cfg.Drafts.TTLMinutes) * time.Minute
	memoryStore := draftstore.NewMemoryStore(draftTTL)

	var draftStore draftstore.Store = memoryStore
	if cfg.Redis.Enabled {
		redisClient := draftstore.NewRedisClient(cfg.Redis)
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := draftstore.Ping(pingCtx, redisClient); err != nil {
			log.Warn("Redis unavailable at startup, drafts will start on memory fallback: %v", err)
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Address)
		}
		cancelPing()

		redisStore := draftstore.NewRedisStore(redisClient, draftTTL)
		draftStore = draftstore.NewFailoverStore(redisStore, memoryStore, log)
	} else {
		log.Info("Redis disabled, draft sessions are stored in memory only")
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		salonClient,
		time.Duration(cfg.Drafts.ScheduleCacheTTLMinutes)*time.Minute,
		log,
	)
	catalogSvc := catalogService.NewService(salonClient, log)
	draftsSvc := draftsService.NewService(draftStore, salonClient, catalogSvc, scheduleSvc, log)

	// Инициализируем use cases
	getBookingSlotsUseCase := getBookingSlotsUC.NewUseCase(scheduleSvc, log)
	getCatalogUseCase := getCatalogUC.NewUseCase(catalogSvc, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(draftStore, scheduleSvc, appointmentClient, log)

	if cfg.Metrics.Enabled {
		draftsSvc.WithMetrics(metricsCollector)
		submitBookingUseCase.WithMetrics(metricsCollector)
	}

	// Инициализируем handlers
	getBookingSlots := getBookingSlotsHandler.NewHandler(getBookingSlotsUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(getCatalogUseCase, log)
	createDraft := createDraftHandler.NewHandler(draftsSvc, log)
	getDraft := getDraftHandler.NewHandler(draftsSvc, log)
	updateDraft := updateDraftHandler.NewHandler(draftsSvc, log)
	cancelDraft := cancelDraftHandler.NewHandler(draftsSvc, log)
	submitDraft := submitDraftHandler.NewHandler(submitBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		api.Use(rateLimiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты выбора времени
	api.HandleFunc("/booking-slots", getBookingSlots.Handle).Methods(http.MethodGet)

	// Каталог услуг и комбо-предложений
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Черновики записи ---
	protected.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/drafts/{draftId}", updateDraft.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/drafts/{draftId}", cancelDraft.Handle).Methods(http.MethodDelete)

	// Отправка собранного черновика в AppointmentService
	protected.HandleFunc("/drafts/{draftId}/submit", submitDraft.Handle).Methods(http.MethodPost)

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

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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addAppointmentHandler "github.com/m04kA/RET-CalendarService/internal/api/handlers/add_appointment"
	checkScheduleHandler "github.com/m04kA/RET-CalendarService/internal/api/handlers/check_schedule"
	findApartmentHandler "github.com/m04kA/RET-CalendarService/internal/api/handlers/find_apartment"
	getApartmentInfoHandler "github.com/m04kA/RET-CalendarService/internal/api/handlers/get_apartment_info"
	getApartmentQualificationHandler "github.com/m04kA/RET-CalendarService/internal/api/handlers/get_apartment_qualification"
	getApartmentsHandler "github.com/m04kA/RET-CalendarService/internal/api/handlers/get_apartments"
	getDayScheduleHandler "github.com/m04kA/RET-CalendarService/internal/api/handlers/get_day_schedule"
	healthHandler "github.com/m04kA/RET-CalendarService/internal/api/handlers/health"
	"github.com/m04kA/RET-CalendarService/internal/api/middleware"
	"github.com/m04kA/RET-CalendarService/internal/config"
	"github.com/m04kA/RET-CalendarService/internal/infra/seed"
	calendarRepo "github.com/m04kA/RET-CalendarService/internal/infra/storage/calendar"
	catalogRepo "github.com/m04kA/RET-CalendarService/internal/infra/storage/catalog"
	geminiClient "github.com/m04kA/RET-CalendarService/internal/integrations/gemini"
	appointmentsService "github.com/m04kA/RET-CalendarService/internal/service/appointments"
	catalogService "github.com/m04kA/RET-CalendarService/internal/service/catalog"
	createAppointmentUC "github.com/m04kA/RET-CalendarService/internal/usecase/create_appointment"
	findAvailableSlotsUC "github.com/m04kA/RET-CalendarService/internal/usecase/find_available_slots"
	"github.com/m04kA/RET-CalendarService/pkg/logger"
	"github.com/m04kA/RET-CalendarService/pkg/metrics"
)

func main() {
	// Подтягиваем переменные окружения из .env (если файл есть)
	_ = godotenv.Load()

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

	log.Info("Starting RET-CalendarService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем каталог квартир
	catalogRepository, err := catalogRepo.NewRepository(cfg.Catalog.ApartmentsFile)
	if err != nil {
		log.Fatal("Failed to load apartment catalog: %v", err)
	}
	log.Info("Apartment catalog loaded from %s", cfg.Catalog.ApartmentsFile)

	// Инициализируем календарь просмотров (in-memory)
	calendarRepository := calendarRepo.NewRepository()

	// Наполняем календарь демонстрационными данными
	if cfg.Calendar.SeedDemoData {
		seeder := seed.NewSeeder(
			calendarRepository,
			catalogRepository,
			&findAvailableSlotsUC.RealTimeProvider{},
			log,
		)
		if err := seeder.Run(context.Background()); err != nil {
			log.Fatal("Failed to seed demo calendar: %v", err)
		}
	}

	// Инициализируем клиент подбора квартиры.
	// Без GEMINI_API_KEY сервис стартует, но /tool/find-apartment отвечает 503.
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Warn("GEMINI_API_KEY is not set, apartment matching will be unavailable")
	}
	matcherClient := geminiClient.NewClient(
		cfg.Gemini.URL,
		cfg.Gemini.Model,
		apiKey,
		time.Duration(cfg.Gemini.Timeout)*time.Second,
		log,
	)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(calendarRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	findAvailableSlotsUseCase := findAvailableSlotsUC.NewUseCase(
		calendarRepository,
		catalogRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		calendarRepository,
		catalogRepository,
		log,
	)

	// Инициализируем handlers
	checkSchedule := checkScheduleHandler.NewHandler(findAvailableSlotsUseCase, cfg.Calendar.DefaultSearchDays, log)
	addAppointment := addAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getApartments := getApartmentsHandler.NewHandler(catalogSvc, log)
	getApartmentInfo := getApartmentInfoHandler.NewHandler(catalogSvc, log)
	getApartmentQualification := getApartmentQualificationHandler.NewHandler(catalogSvc, log)
	findApartment := findApartmentHandler.NewHandler(matcherClient, catalogRepository, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(appointmentsSvc, log)
	health := healthHandler.NewHandler(cfg.Metrics.ServiceName)

	// Настраиваем роутер
	r := mux.NewRouter()

	// CORS: сервис вызывается голосовым агентом с другого origin
	r.Use(middleware.CORS)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Tool endpoints (вызываются голосовым агентом)
	tool := r.PathPrefix("/tool").Subrouter()

	// Поиск и оценка свободных слотов просмотра
	tool.HandleFunc("/check-schedule", checkSchedule.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Запись клиента на просмотр
	tool.HandleFunc("/add-appointment", addAppointment.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Каталог квартир
	tool.HandleFunc("/get-apartments", getApartments.Handle).Methods(http.MethodPost, http.MethodOptions)
	tool.HandleFunc("/get-apartment-info", getApartmentInfo.Handle).Methods(http.MethodPost, http.MethodOptions)
	tool.HandleFunc("/get-apartment-qualification", getApartmentQualification.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Подбор квартиры по свободному описанию
	tool.HandleFunc("/find-apartment", findApartment.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Расписание встреч на день
	tool.HandleFunc("/day-schedule", getDaySchedule.Handle).Methods(http.MethodGet, http.MethodOptions)

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

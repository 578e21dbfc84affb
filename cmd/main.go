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

	createContactMessageHandler "github.com/kodbuds/leads-service/internal/api/handlers/create_contact_message"
	createEnrollmentHandler "github.com/kodbuds/leads-service/internal/api/handlers/create_enrollment"
	createTrialRequestHandler "github.com/kodbuds/leads-service/internal/api/handlers/create_trial_request"
	getCoursesHandler "github.com/kodbuds/leads-service/internal/api/handlers/get_courses"
	getTrialSlotsHandler "github.com/kodbuds/leads-service/internal/api/handlers/get_trial_slots"
	sendNotificationHandler "github.com/kodbuds/leads-service/internal/api/handlers/send_notification"
	"github.com/kodbuds/leads-service/internal/api/middleware"
	"github.com/kodbuds/leads-service/internal/config"
	"github.com/kodbuds/leads-service/internal/infra/mail"
	leadsRepo "github.com/kodbuds/leads-service/internal/infra/storage/leads"
	notifierClient "github.com/kodbuds/leads-service/internal/integrations/notifier"
	coursesService "github.com/kodbuds/leads-service/internal/service/courses"
	notificationsService "github.com/kodbuds/leads-service/internal/service/notifications"
	getTrialSlotsUC "github.com/kodbuds/leads-service/internal/usecase/get_trial_slots"
	submitContactMessageUC "github.com/kodbuds/leads-service/internal/usecase/submit_contact_message"
	submitEnrollmentUC "github.com/kodbuds/leads-service/internal/usecase/submit_enrollment"
	submitTrialRequestUC "github.com/kodbuds/leads-service/internal/usecase/submit_trial_request"
	"github.com/kodbuds/leads-service/pkg/logger"
	"github.com/kodbuds/leads-service/pkg/metrics"
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

	log.Info("Starting KodBuds leads-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Клиент эндпоинта уведомлений
	// Диспетчер заявок ходит в него по HTTP, отказ письма не валит заявку
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Notifier client initialized (url=%s timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Инициализируем репозиторий
	leadsRepository := leadsRepo.NewRepository(db)

	// Инициализируем сервисы
	mailSender := mail.NewSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)
	notificationsSvc := notificationsService.NewService(mailSender, cfg.SMTP.AdminEmail, log)
	coursesSvc := coursesService.NewService(log)

	// Инициализируем use cases
	getTrialSlotsUseCase := getTrialSlotsUC.NewUseCase(log)
	submitTrialRequestUseCase := submitTrialRequestUC.NewUseCase(leadsRepository, notifier, log)
	submitEnrollmentUseCase := submitEnrollmentUC.NewUseCase(leadsRepository, notifier, log)
	submitContactMessageUseCase := submitContactMessageUC.NewUseCase(leadsRepository, notifier, log)

	// Инициализируем handlers
	getTrialSlots := getTrialSlotsHandler.NewHandler(getTrialSlotsUseCase, log)
	createTrialRequest := createTrialRequestHandler.NewHandler(submitTrialRequestUseCase, log)
	createEnrollment := createEnrollmentHandler.NewHandler(submitEnrollmentUseCase, log)
	createContactMessage := createContactMessageHandler.NewHandler(submitContactMessageUseCase, log)
	getCourses := getCoursesHandler.NewHandler(coursesSvc, log)
	sendNotification := sendNotificationHandler.NewHandler(notificationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (формы на сайте, без аутентификации)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступные слоты пробного занятия на дату
	api.HandleFunc("/trial-slots", getTrialSlots.Handle).Methods(http.MethodGet)

	// Заявка на бесплатное пробное занятие
	api.HandleFunc("/trial-requests", createTrialRequest.Handle).Methods(http.MethodPost)

	// Заявка на запись на курс
	api.HandleFunc("/enrollments", createEnrollment.Handle).Methods(http.MethodPost)

	// Сообщение через контактную форму
	api.HandleFunc("/contact-messages", createContactMessage.Handle).Methods(http.MethodPost)

	// Каталог курсов
	api.HandleFunc("/courses", getCourses.Handle).Methods(http.MethodGet)

	// ============================================================
	// INTERNAL ROUTES
	// ============================================================

	// Рендеринг и отправка email-уведомления администратору
	r.HandleFunc("/internal/notifications", sendNotification.Handle).Methods(http.MethodPost)

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

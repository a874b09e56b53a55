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

	adminLoginHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/admin_login"
	cancelTimerHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/cancel_deactivation_timer"
	changePasswordHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/change_password"
	createBookingHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/delete_booking"
	downloadTicketHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/download_ticket"
	getAdminBookingsHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/get_admin_bookings"
	getEventConfigHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/get_event_config"
	getMyBookingHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/get_my_booking"
	getProfileHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/get_profile"
	getSlotBoardHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/get_slot_board"
	getSystemStatusHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/get_system_status"
	loginUserHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/login_user"
	registerUserHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/register_user"
	setTimerHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/set_deactivation_timer"
	streamEventsHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/stream_events"
	toggleSystemHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/toggle_system"
	updateEventConfigHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/update_event_config"
	updateProfileHandler "github.com/m04kA/IRP-BookingService/internal/api/handlers/update_profile"
	"github.com/m04kA/IRP-BookingService/internal/api/middleware"
	"github.com/m04kA/IRP-BookingService/internal/config"
	adminUserRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/adminuser"
	bookingRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/booking"
	eventConfigRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/eventconfig"
	settingsRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/settings"
	userRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/user"
	mailerClient "github.com/m04kA/IRP-BookingService/internal/integrations/mailer"
	"github.com/m04kA/IRP-BookingService/internal/notify"
	authService "github.com/m04kA/IRP-BookingService/internal/service/auth"
	bookingsService "github.com/m04kA/IRP-BookingService/internal/service/bookings"
	eventConfigService "github.com/m04kA/IRP-BookingService/internal/service/eventconfig"
	"github.com/m04kA/IRP-BookingService/internal/service/liverefresh"
	statusService "github.com/m04kA/IRP-BookingService/internal/service/status"
	ticketService "github.com/m04kA/IRP-BookingService/internal/service/ticket"
	usersService "github.com/m04kA/IRP-BookingService/internal/service/users"
	createBookingUC "github.com/m04kA/IRP-BookingService/internal/usecase/create_booking"
	getSlotBoardUC "github.com/m04kA/IRP-BookingService/internal/usecase/get_slot_board"
	"github.com/m04kA/IRP-BookingService/pkg/authtoken"
	"github.com/m04kA/IRP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/IRP-BookingService/pkg/logger"
	"github.com/m04kA/IRP-BookingService/pkg/metrics"
	"github.com/m04kA/IRP-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/IRP-BookingService/pkg/txmanager"
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

	log.Info("Starting IRP-BookingService...")
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

	// Инициализируем менеджеры токенов
	// Пользовательские и администраторские сессии живут разное время
	userTokens := authtoken.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.UserTokenTTLHours)*time.Hour)
	adminTokens := authtoken.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.AdminTokenTTLHours)*time.Hour)

	// Инициализируем почтовый клиент
	var mailer createBookingUC.MailerClient
	if cfg.Mailer.Enabled {
		mailer = mailerClient.NewClient(
			cfg.Mailer.URL,
			time.Duration(cfg.Mailer.Timeout)*time.Second,
			log,
		)
		log.Info("Mailer client initialized (url=%s timeout=%ds)", cfg.Mailer.URL, cfg.Mailer.Timeout)
	} else {
		mailer = mailerClient.NewDisabledClient(log)
		log.Info("Mailer disabled, booking confirmations will not be sent")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		userRepository        *userRepo.Repository
		settingsRepository    *settingsRepo.Repository
		adminUserRepository   *adminUserRepo.Repository
		eventConfigRepository *eventConfigRepo.Repository
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
		userRepository = userRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		adminUserRepository = adminUserRepo.NewRepository(wrappedDB)
		eventConfigRepository = eventConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		adminUserRepository = adminUserRepo.NewRepository(db)
		eventConfigRepository = eventConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Шина событий для live-обновления доски слотов
	hub := notify.NewHub()
	publisher := notify.NewPublisher(hub)

	// Контекст фоновых процессов (таймер деактивации, координатор доски)
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		adminUserRepository,
		userTokens,
		adminTokens,
		log,
	)
	usersSvc := usersService.NewService(userRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, publisher, log)
	eventConfigSvc := eventConfigService.NewService(eventConfigRepository, publisher, log)
	statusSvc := statusService.NewService(settingsRepository, publisher, nil, log)
	ticketSvc := ticketService.NewService(
		bookingRepository,
		userRepository,
		eventConfigRepository,
		log,
	)

	// Сидируем конфигурацию события из TOML (работает только при пустой таблице)
	if err := eventConfigSvc.Seed(rootCtx, cfg.Event.ToDomain()); err != nil {
		log.Warn("Failed to seed event config, falling back to TOML defaults: %v", err)
	}

	// Восстанавливаем состояние системы и запускаем таймер автодеактивации
	if err := statusSvc.Load(rootCtx); err != nil {
		log.Warn("Failed to load system settings, assuming active: %v", err)
	}
	go statusSvc.Run(rootCtx)

	// Инициализируем use cases
	getSlotBoardUseCase := getSlotBoardUC.NewUseCase(
		bookingRepository,
		eventConfigRepository,
		settingsRepository,
		cfg.Event.ToDomain(),
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		userRepository,
		eventConfigRepository,
		settingsRepository,
		mailer,
		publisher,
		txMgr,
		log,
	)

	// Координатор live-обновлений доски слотов
	coordinator := liverefresh.NewCoordinator(getSlotBoardUseCase, hub, log)
	go coordinator.Run(rootCtx)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(authSvc, log)
	loginUser := loginUserHandler.NewHandler(authSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	changePassword := changePasswordHandler.NewHandler(authSvc, log)
	getSlotBoard := getSlotBoardHandler.NewHandler(coordinator, getSlotBoardUseCase, log)
	streamEvents := streamEventsHandler.NewHandler(coordinator, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getMyBooking := getMyBookingHandler.NewHandler(bookingsSvc, log)
	getProfile := getProfileHandler.NewHandler(usersSvc, log)
	updateProfile := updateProfileHandler.NewHandler(usersSvc, log)
	downloadTicket := downloadTicketHandler.NewHandler(ticketSvc, log)
	getEventConfig := getEventConfigHandler.NewHandler(eventConfigSvc, log)
	updateEventConfig := updateEventConfigHandler.NewHandler(eventConfigSvc, log)
	getSystemStatus := getSystemStatusHandler.NewHandler(statusSvc, log)
	toggleSystem := toggleSystemHandler.NewHandler(statusSvc, log)
	setTimer := setTimerHandler.NewHandler(statusSvc, log)
	cancelTimer := cancelTimerHandler.NewHandler(statusSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)

	authMw := middleware.NewAuth(userTokens)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Healthcheck
	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// Доска слотов и live-обновления
	api.HandleFunc("/slots", getSlotBoard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/events", streamEvents.Handle).Methods(http.MethodGet)

	// Конфигурация события и состояние системы
	api.HandleFunc("/config", getEventConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/status", getSystemStatus.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют пользовательский токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMw.RequireUser)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Активное бронирование пользователя
	protected.HandleFunc("/users/{userId}/booking", getMyBooking.Handle).Methods(http.MethodGet)

	// Профиль команды
	protected.HandleFunc("/users/{userId}/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/profile", updateProfile.Handle).Methods(http.MethodPut)

	// PDF билет бронирования
	protected.HandleFunc("/bookings/{bookingId}/ticket", downloadTicket.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют администраторский токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMw.RequireAdmin)

	// Смена пароля администратора
	admin.HandleFunc("/password", changePassword.Handle).Methods(http.MethodPut)

	// Управление бронированиями
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Управление состоянием системы
	admin.HandleFunc("/system/toggle", toggleSystem.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/system/timer", setTimer.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/system/timer", cancelTimer.Handle).Methods(http.MethodDelete)

	// Обновление конфигурации события
	admin.HandleFunc("/config", updateEventConfig.Handle).Methods(http.MethodPut)

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

	// Останавливаем фоновые процессы и сбор метрик
	rootCancel()
	coordinator.Close()
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

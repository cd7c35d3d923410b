package main

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	adminListBookingsHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/admin_list_bookings"
	cancelBookingHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/create_booking"
	depositConfirmHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/deposit_confirm"
	depositIntentHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/deposit_intent"
	estimateBookingHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/estimate_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/get_booking"
	getEventsHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/get_events"
	getPricingConfigHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/get_pricing_config"
	listBookingsHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/list_bookings"
	recalculatePricingHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/recalculate_pricing"
	streamEventsHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/stream_events"
	updatePricingConfigHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/update_pricing_config"
	updateStatusHandler "github.com/m04kA/SMC-PartyBookingService/internal/api/handlers/update_status"
	"github.com/m04kA/SMC-PartyBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-PartyBookingService/internal/config"
	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/internal/events"
	eventsAMQP "github.com/m04kA/SMC-PartyBookingService/internal/events/amqp"
	catalogCache "github.com/m04kA/SMC-PartyBookingService/internal/infra/cache/catalog"
	bookingRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/catalog"
	guardianRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/guardian"
	paymentRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/payment"
	pricingConfigRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/pricingconfig"
	"github.com/m04kA/SMC-PartyBookingService/internal/integrations/payments"
	addonsService "github.com/m04kA/SMC-PartyBookingService/internal/service/addons"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-PartyBookingService/internal/service/bookings"
	configService "github.com/m04kA/SMC-PartyBookingService/internal/service/config"
	pricingService "github.com/m04kA/SMC-PartyBookingService/internal/service/pricing"
	checkAvailabilityUC "github.com/m04kA/SMC-PartyBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-PartyBookingService/internal/usecase/create_booking"
	depositPaymentUC "github.com/m04kA/SMC-PartyBookingService/internal/usecase/deposit_payment"
	estimateBookingUC "github.com/m04kA/SMC-PartyBookingService/internal/usecase/estimate_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-PartyBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-PartyBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
	"github.com/m04kA/SMC-PartyBookingService/pkg/metrics"
	"github.com/m04kA/SMC-PartyBookingService/pkg/txmanager"
	"github.com/m04kA/SMC-PartyBookingService/pkg/types"
)

const eventForwarderBuffer = 256

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

	log.Info("Starting SMC-PartyBookingService...")
	log.Info("Configuration loaded from config.toml")

	venueTZ, _ := cfg.Booking.Location() // проверено в config.Validate
	dailySlots := make([]types.TimeString, 0, len(cfg.Booking.DailySlots))
	for _, slot := range cfg.Booking.DailySlots {
		dailySlots = append(dailySlots, types.TimeString(slot))
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Без метрик обёртка работает как прозрачный прокси
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Шина событий
	bus := events.NewBus(events.DefaultCapacity, log)
	if cfg.Metrics.Enabled {
		bus.OnPublish(func(e domain.Event) {
			metricsCollector.BookingEventsTotal.WithLabelValues(e.Type).Inc()
		})
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// Пересылка событий в RabbitMQ (если настроено)
	if cfg.RabbitMQ.Enabled() {
		forwarder, err := eventsAMQP.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer forwarder.Close()

		ch, unsubscribe := bus.Subscribe(eventForwarderBuffer)
		defer unsubscribe()
		go forwarder.Run(appCtx, ch)
		log.Info("Event forwarding to RabbitMQ enabled (exchange=%s)", cfg.RabbitMQ.Exchange)
	}

	// Redis: кэш каталога и хранилище лимитера
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(appCtx).Err(); err != nil {
			log.Fatal("Failed to ping Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Connected to Redis at %s", cfg.Redis.Addr)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	guardianRepository := guardianRepo.NewRepository(wrappedDB)
	paymentRepository := paymentRepo.NewRepository(wrappedDB)
	pricingConfigRepository := pricingConfigRepo.NewRepository(wrappedDB)

	var addOnSource addonsService.AddOnRepository = catalogRepository
	if redisClient != nil {
		addOnSource = catalogCache.NewAddOnCache(
			catalogRepository,
			redisClient,
			time.Duration(cfg.Redis.CatalogCacheTTL)*time.Second,
			log,
		)
		log.Info("Add-on catalog cache enabled (ttl=%ds)", cfg.Redis.CatalogCacheTTL)
	}

	// Платёжный провайдер
	var provider depositPaymentUC.Provider
	switch cfg.Payments.Mode {
	case config.PaymentsModeRazorpay:
		if cfg.Payments.RazorpayKeyID != "" && cfg.Payments.RazorpayKeySecret != "" {
			provider = payments.NewRazorpayProvider(cfg.Payments.RazorpayKeyID, cfg.Payments.RazorpayKeySecret, cfg.Payments.Currency)
			log.Info("Payments: razorpay provider enabled")
		} else {
			log.Warn("Payments: razorpay keys are missing, deposit endpoints will answer 503")
		}
	default:
		provider = payments.NewMockProvider(cfg.Payments.Currency)
		log.Info("Payments: mock provider enabled")
	}

	// Инициализируем сервисы
	configSvc := configService.NewService(pricingConfigRepository, txMgr, log)
	addOnResolver := addonsService.NewResolver(addOnSource, log)
	pricingSvc := pricingService.NewService(
		catalogRepository,
		addOnResolver,
		configSvc,
		cfg.Booking.ExtraHourMinutes,
		log,
	)
	checker := availability.NewChecker(
		bookingRepository,
		time.Duration(cfg.Booking.BufferMinutes)*time.Minute,
		venueTZ,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		guardianRepository,
		pricingSvc,
		bus,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		guardianRepository,
		pricingSvc,
		checker,
		bus,
		txMgr,
		createBookingUC.Settings{
			Locations: cfg.Booking.Locations,
			MaxGuests: cfg.Booking.MaxGuests,
			Timezone:  venueTZ,
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		checker,
		getAvailableSlotsUC.Settings{
			Locations:        cfg.Booking.Locations,
			DailySlots:       dailySlots,
			DurationMinutes:  cfg.Booking.DefaultDurationMinutes,
			ExtraHourMinutes: cfg.Booking.ExtraHourMinutes,
			Timezone:         venueTZ,
		},
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		checker,
		cfg.Booking.DefaultDurationMinutes,
		venueTZ,
		log,
	)

	estimateBookingUseCase := estimateBookingUC.NewUseCase(pricingSvc, cfg.Booking.MaxGuests, log)

	depositPaymentUseCase := depositPaymentUC.NewUseCase(
		bookingRepository,
		guardianRepository,
		paymentRepository,
		provider,
		bus,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	estimateBooking := estimateBookingHandler.NewHandler(estimateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	depositIntent := depositIntentHandler.NewHandler(depositPaymentUseCase, log)
	depositConfirm := depositConfirmHandler.NewHandler(depositPaymentUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	adminListBookings := adminListBookingsHandler.NewHandler(bookingSvc, log)
	recalculatePricing := recalculatePricingHandler.NewHandler(bookingSvc, log)
	getPricingConfig := getPricingConfigHandler.NewHandler(configSvc, log)
	updatePricingConfig := updatePricingConfigHandler.NewHandler(configSvc, log)
	getEvents := getEventsHandler.NewHandler(bus, log)
	streamEvents := streamEventsHandler.NewHandler(bus, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		store, err := middleware.NewRateLimitStore(redisClient)
		if err != nil {
			log.Fatal("Failed to create rate limit store: %v", err)
		}
		rateLimit, err := middleware.RateLimit(cfg.RateLimit.Public, cfg.RateLimit.TrustForwardHeader, store, log)
		if err != nil {
			log.Fatal("Failed to configure rate limit: %v", err)
		}
		public.Use(rateLimit)
		log.Info("Rate limit for public routes: %s", cfg.RateLimit.Public)
	}

	// Сетка слотов площадки на дату
	public.HandleFunc("/bookings/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Оценка стоимости без сохранения
	public.HandleFunc("/bookings/estimate", estimateBooking.Handle).Methods(http.MethodPost)

	// Бронирование без аккаунта
	public.HandleFunc("/bookings/guest", createBooking.HandleGuest).Methods(http.MethodPost)

	// ============================================================
	// GUARDIAN ROUTES (Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/availability", checkAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Депозит ---
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/deposit-intent", depositIntent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/deposit/confirm", depositConfirm.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (роль admin или staff)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.Auth(cfg.Auth.JWTSecret, log))
	staff.Use(middleware.RequireRoles(middleware.RoleAdmin, middleware.RoleStaff))

	staff.HandleFunc("/bookings/{bookingId:[0-9]+}/status", updateStatus.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/admin/bookings", adminListBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/admin/bookings/{bookingId:[0-9]+}/recalculate-pricing", recalculatePricing.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/admin/pricing-config", getPricingConfig.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/admin/pricing-config", updatePricingConfig.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/admin/events", getEvents.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/admin/events/stream", streamEvents.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		// Контексты запросов наследуют appCtx, чтобы stopApp закрывал SSE потоки
		BaseContext: func(net.Listener) context.Context { return appCtx },
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

	// SSE клиенты и пересылка событий завершаются по отмене appCtx
	stopApp()

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

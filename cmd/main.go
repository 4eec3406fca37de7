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
	"github.com/redis/go-redis/v9"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	authHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/auth"
	blockedPeriodsHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/blocked_periods"
	cashHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/cash"
	catalogHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/catalog"
	createBookingHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/create_booking"
	customersHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/customers"
	getAppointmentHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/get_appointment"
	getAvailableDatesHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/get_business_hours"
	getCustomerAppointmentsHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/get_customer_appointments"
	listAppointmentsHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/list_appointments"
	reportsHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/reports"
	salesHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/sales"
	updateAppointmentStatusHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/update_appointment_status"
	updateBusinessHoursHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/update_business_hours"
	usersHandler "github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers/users"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/middleware"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/config"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	appointmentRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/appointment"
	blockedPeriodRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/blocked_period"
	businessHoursRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/business_hours"
	cashMovementRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/cash_movement"
	customerRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/customer"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/migrations"
	productRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/product"
	professionalRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/professional"
	saleRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/sale"
	serviceRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/services"
	userRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/user"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/integrations/identityservice"
	appointmentsService "github.com/rian23304/sistema-pdv-nail-designer/internal/service/appointments"
	authService "github.com/rian23304/sistema-pdv-nail-designer/internal/service/auth"
	cashService "github.com/rian23304/sistema-pdv-nail-designer/internal/service/cash"
	catalogService "github.com/rian23304/sistema-pdv-nail-designer/internal/service/catalog"
	customersService "github.com/rian23304/sistema-pdv-nail-designer/internal/service/customers"
	reportsService "github.com/rian23304/sistema-pdv-nail-designer/internal/service/reports"
	salesService "github.com/rian23304/sistema-pdv-nail-designer/internal/service/sales"
	scheduleService "github.com/rian23304/sistema-pdv-nail-designer/internal/service/schedule"
	usersService "github.com/rian23304/sistema-pdv-nail-designer/internal/service/users"
	cancelSaleUC "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/cancel_sale"
	checkoutSaleUC "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/checkout_sale"
	createBookingUC "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/create_booking"
	getAvailableDatesUC "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/get_available_slots"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/clock"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/dbmetrics"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/jwt"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/logger"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/metrics"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/txmanager"
)

const configPath = "config.toml"

func main() {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting salon POS service...")

	// Initialize metrics (when enabled). A disabled collector is replaced by a no-op.
	var (
		metricsCollector *metrics.Metrics
		dbObserver       dbmetrics.Observer
		outcomeCounter   interface {
			IncBooking(outcome string)
			IncSale(outcome string)
		} = metrics.Discard{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbObserver = metricsCollector
		outcomeCounter = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Verify connection
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Wrap the pool so repositories and the transaction manager share one executor
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, dbObserver, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Apply schema migrations
	if cfg.Database.RunMigrations {
		migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := migrations.Run(migrateCtx, wrappedDB, log)
		cancel()
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Clock and transaction manager shared by services and use cases
	timeProvider := clock.NewRealClock(cfg.Scheduling.Location())
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Repositories
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	professionalRepository := professionalRepo.NewRepository(wrappedDB)
	productRepository := productRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	blockedPeriodRepository := blockedPeriodRepo.NewRepository(wrappedDB)
	businessHoursRepository := businessHoursRepo.NewRepository(wrappedDB)
	saleRepository := saleRepo.NewRepository(wrappedDB)
	cashMovementRepository := cashMovementRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	// Services
	catalogSvc := catalogService.NewService(serviceRepository, professionalRepository, productRepository, log)
	customersSvc := customersService.NewService(customerRepository, log)
	scheduleSvc := scheduleService.NewService(blockedPeriodRepository, businessHoursRepository, professionalRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)
	salesSvc := salesService.NewService(saleRepository, timeProvider, log)
	cashSvc := cashService.NewService(cashMovementRepository, timeProvider, log)
	reportsSvc := reportsService.NewService(
		saleRepository,
		appointmentRepository,
		productRepository,
		professionalRepository,
		txMgr,
		timeProvider,
		log,
	)
	usersSvc := usersService.NewService(userRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		serviceRepository,
		professionalRepository,
		customerRepository,
		appointmentRepository,
		blockedPeriodRepository,
		businessHoursRepository,
		txMgr,
		timeProvider,
		createBookingUC.Options{
			MinNoticeMinutes:  cfg.Scheduling.MinBookingNoticeMinutes,
			PublicBookingDays: cfg.Scheduling.PublicBookingDays,
		},
		outcomeCounter,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		serviceRepository,
		professionalRepository,
		appointmentRepository,
		blockedPeriodRepository,
		businessHoursRepository,
		timeProvider,
		cfg.Scheduling.MinBookingNoticeMinutes,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		professionalRepository,
		blockedPeriodRepository,
		businessHoursRepository,
		timeProvider,
		cfg.Scheduling.PublicBookingDays,
		log,
	)
	checkoutSaleUseCase := checkoutSaleUC.NewUseCase(
		productRepository,
		serviceRepository,
		customerRepository,
		saleRepository,
		cashMovementRepository,
		txMgr,
		timeProvider,
		outcomeCounter,
		log,
	)
	cancelSaleUseCase := cancelSaleUC.NewUseCase(
		saleRepository,
		productRepository,
		customerRepository,
		cashMovementRepository,
		txMgr,
		timeProvider,
		outcomeCounter,
		log,
	)

	// Authentication: local users by default, IdentityService in remote mode
	tokens := jwt.NewService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL())

	var authenticator authHandler.Authenticator
	switch cfg.Auth.Mode {
	case config.AuthModeRemote:
		identityClient := identityservice.NewClient(
			cfg.IdentityService.URL,
			time.Duration(cfg.IdentityService.Timeout)*time.Second,
			log,
		)
		authenticator = authService.NewRemoteAuthenticator(identityClient, tokens, log)
		log.Info("Remote authentication enabled (IdentityService=%s timeout=%ds)",
			cfg.IdentityService.URL, cfg.IdentityService.Timeout)
	default:
		authenticator = authService.NewLocalAuthenticator(userRepository, tokens, timeProvider, log)

		// Seed the first owner so a fresh install can log in
		if cfg.Auth.BootstrapOwnerUsername != "" && cfg.Auth.BootstrapOwnerPassword != "" {
			if err := usersSvc.EnsureOwner(
				context.Background(),
				cfg.Auth.BootstrapOwnerUsername,
				cfg.Auth.BootstrapOwnerName,
				cfg.Auth.BootstrapOwnerPassword,
			); err != nil {
				log.Fatal("Failed to bootstrap owner account: %v", err)
			}
		}
	}

	// Handlers
	login := authHandler.NewHandler(authenticator, log)
	catalog := catalogHandler.NewHandler(catalogSvc, log)
	customers := customersHandler.NewHandler(customersSvc, log)
	blockedPeriods := blockedPeriodsHandler.NewHandler(scheduleSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(scheduleSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(scheduleSvc, log)
	publicBooking := createBookingHandler.NewHandler(createBookingUseCase, createBookingUC.SourcePublic, log)
	staffBooking := createBookingHandler.NewHandler(createBookingUseCase, createBookingUC.SourceStaff, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentsSvc, log)
	sales := salesHandler.NewHandler(checkoutSaleUseCase, cancelSaleUseCase, salesSvc, log)
	cash := cashHandler.NewHandler(cashSvc, log)
	reports := reportsHandler.NewHandler(reportsSvc, log)
	users := usersHandler.NewHandler(usersSvc, log)

	// Configure router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		// Metrics endpoint (public, no auth)
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check pings the database
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			handlers.RespondError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/auth/login", login.Login).Methods(http.MethodPost)
	api.HandleFunc("/services", catalog.ListActiveServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", catalog.GetService).Methods(http.MethodGet)
	api.HandleFunc("/professionals", catalog.ListActiveProfessionals).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Public booking, rate limited per client IP through Redis when enabled
	var bookingHandler http.Handler = http.HandlerFunc(publicBooking.Handle)
	if cfg.RateLimit.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		limiter := middleware.NewRedisRateLimiter(
			rdb,
			cfg.RateLimit.Requests,
			cfg.RateLimit.Window(),
			"rl:bookings",
			cfg.RateLimit.FailOpen,
			log,
		)
		bookingHandler = limiter.Middleware(bookingHandler)
		log.Info("Rate limiting public bookings: %d requests per %s (redis=%s)",
			cfg.RateLimit.Requests, cfg.RateLimit.Window(), cfg.Redis.Addr)
	}
	api.Handle("/bookings", bookingHandler).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Bearer token + permission)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	need := func(p domain.Permission, h http.HandlerFunc) http.Handler {
		return middleware.RequirePermission(p)(h)
	}

	protected.HandleFunc("/auth/me", login.Me).Methods(http.MethodGet)

	// --- Appointments ---
	protected.Handle("/appointments", need(domain.PermAppointments, listAppointments.Handle)).Methods(http.MethodGet)
	protected.Handle("/appointments", need(domain.PermAppointments, staffBooking.Handle)).Methods(http.MethodPost)
	protected.Handle("/appointments/{appointmentId}", need(domain.PermAppointments, getAppointment.Handle)).Methods(http.MethodGet)
	protected.Handle("/appointments/{appointmentId}/status", need(domain.PermAppointments, updateAppointmentStatus.Handle)).Methods(http.MethodPatch)
	protected.Handle("/customers/{customerId}/appointments", need(domain.PermAppointments, getCustomerAppointments.Handle)).Methods(http.MethodGet)

	// --- Schedule ---
	protected.Handle("/blocked-periods", need(domain.PermAppointments, blockedPeriods.List)).Methods(http.MethodGet)
	protected.Handle("/blocked-periods", need(domain.PermAppointments, blockedPeriods.Create)).Methods(http.MethodPost)
	protected.Handle("/blocked-periods/{blockedPeriodId}", need(domain.PermAppointments, blockedPeriods.Delete)).Methods(http.MethodDelete)
	protected.Handle("/business-hours", need(domain.PermAppointments, getBusinessHours.Handle)).Methods(http.MethodGet)
	protected.Handle("/business-hours/{dayOfWeek}", need(domain.PermStoreSettings, updateBusinessHours.Handle)).Methods(http.MethodPut)

	// --- Catalog ---
	protected.Handle("/admin/services", need(domain.PermServices, catalog.ListServices)).Methods(http.MethodGet)
	protected.Handle("/services", need(domain.PermServices, catalog.CreateService)).Methods(http.MethodPost)
	protected.Handle("/services/{serviceId}", need(domain.PermServices, catalog.UpdateService)).Methods(http.MethodPut)
	protected.Handle("/services/{serviceId}/toggle", need(domain.PermServices, catalog.ToggleService)).Methods(http.MethodPatch)
	protected.Handle("/admin/professionals", need(domain.PermServices, catalog.ListProfessionals)).Methods(http.MethodGet)
	protected.Handle("/professionals", need(domain.PermServices, catalog.CreateProfessional)).Methods(http.MethodPost)
	protected.Handle("/professionals/{professionalId}", need(domain.PermServices, catalog.UpdateProfessional)).Methods(http.MethodPut)
	protected.Handle("/products", need(domain.PermProducts, catalog.ListProducts)).Methods(http.MethodGet)
	protected.Handle("/products", need(domain.PermProducts, catalog.CreateProduct)).Methods(http.MethodPost)
	protected.Handle("/products/low-stock", need(domain.PermProducts, catalog.ListLowStock)).Methods(http.MethodGet)
	protected.Handle("/products/import-template", need(domain.PermProducts, catalog.ImportTemplate)).Methods(http.MethodGet)
	protected.Handle("/products/{productId}", need(domain.PermProducts, catalog.UpdateProduct)).Methods(http.MethodPut)

	// --- Customers ---
	protected.Handle("/customers", need(domain.PermCustomers, customers.List)).Methods(http.MethodGet)
	protected.Handle("/customers", need(domain.PermCustomers, customers.Create)).Methods(http.MethodPost)
	protected.Handle("/customers/{customerId}", need(domain.PermCustomers, customers.Get)).Methods(http.MethodGet)
	protected.Handle("/customers/{customerId}", need(domain.PermCustomers, customers.Update)).Methods(http.MethodPut)

	// --- Sales & cash ---
	protected.Handle("/sales", need(domain.PermSales, sales.Checkout)).Methods(http.MethodPost)
	protected.Handle("/sales", need(domain.PermSales, sales.List)).Methods(http.MethodGet)
	protected.Handle("/sales/{saleId}", need(domain.PermSales, sales.Get)).Methods(http.MethodGet)
	protected.Handle("/sales/{saleId}/cancel", need(domain.PermSales, sales.Cancel)).Methods(http.MethodPost)
	protected.Handle("/cash/movements", need(domain.PermFinancial, cash.CreateMovement)).Methods(http.MethodPost)
	protected.Handle("/cash/movements", need(domain.PermFinancial, cash.ListMovements)).Methods(http.MethodGet)
	protected.Handle("/cash/summary", need(domain.PermFinancial, cash.Summary)).Methods(http.MethodGet)

	// --- Reports ---
	protected.Handle("/reports/sales", need(domain.PermReports, reports.Sales)).Methods(http.MethodGet)
	protected.Handle("/reports/professionals/{professionalId}", need(domain.PermReports, reports.Professional)).Methods(http.MethodGet)
	protected.Handle("/reports/stock", need(domain.PermReports, reports.Stock)).Methods(http.MethodGet)

	// --- Users ---
	protected.Handle("/users", need(domain.PermUsers, users.List)).Methods(http.MethodGet)
	protected.Handle("/users", need(domain.PermUsers, users.Create)).Methods(http.MethodPost)

	// Create HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for termination signal
	<-quit

	log.Info("Shutting down server...")

	// Stop connection pool metrics collection
	close(stopMetricsCh)

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

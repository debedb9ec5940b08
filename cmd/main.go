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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/create_booking"
	createRoomHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/create_room"
	createUserHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/create_user"
	deleteBookingHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/get_dashboard"
	getRoomHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/get_room"
	getRoomScheduleHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/get_room_schedule"
	getUserHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/get_user"
	listBookingsHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/list_bookings"
	listRoomsHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/list_rooms"
	listUsersHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/list_users"
	updateBookingStatusHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/update_booking_status"
	updateRoomHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/update_room"
	updateUserHandler "github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers/update_user"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/middleware"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/config"
	bookingRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/booking"
	roomRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/room"
	userRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/user"
	bookingsService "github.com/VitorMachadoSilva/ReservationSystem/internal/service/bookings"
	roomsService "github.com/VitorMachadoSilva/ReservationSystem/internal/service/rooms"
	usersService "github.com/VitorMachadoSilva/ReservationSystem/internal/service/users"
	createBookingUC "github.com/VitorMachadoSilva/ReservationSystem/internal/usecase/create_booking"
	getRoomScheduleUC "github.com/VitorMachadoSilva/ReservationSystem/internal/usecase/get_room_schedule"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/dbmetrics"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/logger"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/metrics"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/simpletxmanager"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/txmanager"
)

func main() {
	// .env is optional; real deployments set DB_PASSWORD in the environment
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ReservationSystem...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Transaction manager interface shared by both implementations
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
		userRepository    *userRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		roomRepository,
		userRepository,
		log,
	)
	roomSvc := roomsService.NewService(roomRepository, log)
	userSvc := usersService.NewService(userRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		userRepository,
		txMgr,
		log,
	)
	getRoomScheduleUseCase := getRoomScheduleUC.NewUseCase(
		bookingRepository,
		roomRepository,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(bookingSvc, log)
	getRoomSchedule := getRoomScheduleHandler.NewHandler(getRoomScheduleUseCase, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	createUser := createUserHandler.NewHandler(userSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	updateUser := updateUserHandler.NewHandler(userSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/rooms/{roomId}/schedule", getRoomSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(userRepository))

	// Bookings
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Rooms
	protected.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPatch)

	// Users
	protected.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}", updateUser.Handle).Methods(http.MethodPatch)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

	log.Info("Server stopped")
}

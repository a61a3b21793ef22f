package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusinfo/internal/api"
	"campusinfo/internal/config"
	"campusinfo/internal/database"
	"campusinfo/internal/domain"
	"campusinfo/internal/events"
	"campusinfo/internal/logging"
	"campusinfo/internal/metrics"
	"campusinfo/internal/models"
	"campusinfo/internal/repository"
	"campusinfo/internal/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "campusinfo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", envOr("CONFIG_PATH", "configs/config.yaml"), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDB(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := seedAdmin(ctx, db, cfg.Bootstrap, logger); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	tokens := buildTokenStore(ctx, cfg, logger)

	bus := events.NewEventBus()
	subscribeBookingMetrics(bus, logger)

	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	serviceLogger := componentLogger(logger, "service")
	deps := api.Deps{
		Users:     service.NewUserService(db, tokens, cfg.Auth.JWTSecret, tokenTTL, serviceLogger),
		Bookings:  service.NewBookingRequestService(db, bus, serviceLogger),
		Schedules: service.NewTimetableService(db, serviceLogger),
		Notices:   service.NewEventNoticeService(db),
		DB:        db,
	}
	server := api.NewServer(cfg, deps, componentLogger(logger, "http"))

	if cfg.Backup.Enabled {
		backup := database.NewBackupService(cfg.Database.Path, cfg.Backup, componentLogger(logger, "backup"))
		go backup.Start(ctx)
	}

	if cfg.Monitoring.PrometheusEnabled {
		go servePrometheus(cfg.Monitoring.PrometheusPort, logger)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// seedAdmin creates the bootstrap admin account if it does not exist yet.
func seedAdmin(ctx context.Context, db *database.DB, cfg config.BootstrapConfig, logger *zerolog.Logger) error {
	if cfg.AdminStudentID == "" || cfg.AdminPassword == "" {
		return nil
	}

	_, err := db.GetUserByStudentID(ctx, cfg.AdminStudentID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := cfg.AdminName
	if name == "" {
		name = "Administrator"
	}
	admin := &models.User{
		StudentID:    cfg.AdminStudentID,
		Name:         name,
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	}
	if err := db.CreateUser(ctx, admin); err != nil {
		return err
	}
	logger.Info().Str("student_id", cfg.AdminStudentID).Msg("bootstrap admin created")
	return nil
}

// buildTokenStore wires Redis-backed revocation with an in-memory fallback.
// Without a Redis address the portal runs on the memory store alone.
func buildTokenStore(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) domain.TokenStore {
	memory := repository.NewMemoryTokenStore()
	if cfg.Redis.Address == "" {
		logger.Info().Msg("redis not configured, using in-memory token revocation")
		return memory
	}

	client := repository.NewRedisClient(cfg.Redis)
	if err := repository.Ping(ctx, client); err != nil {
		logger.Warn().Err(err).Msg("redis unreachable at startup, failover will retry")
	}
	return repository.NewFailoverTokenStore(repository.NewRedisTokenStore(client), memory, logger)
}

func subscribeBookingMetrics(bus *events.EventBus, logger *zerolog.Logger) {
	for _, eventType := range []string{
		events.EventBookingRequestCreated,
		events.EventBookingRequestApproved,
		events.EventBookingRequestRejected,
		events.EventBookingRequestDeleted,
	} {
		eventType := eventType
		bus.Subscribe(eventType, func(event *events.Event) error {
			metrics.IncBookingEvent(eventType)
			logger.Debug().Str("event", eventType).RawJSON("payload", event.Payload).Msg("booking event")
			return nil
		})
	}
}

func servePrometheus(port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	logger.Info().Str("addr", addr).Msg("prometheus metrics listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error().Err(err).Msg("prometheus listener failed")
	}
}

func componentLogger(base *zerolog.Logger, component string) *zerolog.Logger {
	sub := base.With().Str("component", component).Logger()
	return &sub
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

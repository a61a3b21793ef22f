package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"campusinfo/internal/config"
	"campusinfo/internal/database"
	"campusinfo/internal/domain"

	"github.com/rs/zerolog"
)

// Server is the HTTP front of the portal. Auth endpoints and the health
// probe are open; everything else sits behind bearer authentication.
type Server struct {
	users     domain.UserService
	bookings  domain.BookingService
	schedules domain.ScheduleService
	notices   domain.NoticeService
	db        *database.DB
	limiter   *identityLimiter
	logger    *zerolog.Logger
	sheetName string

	httpServer *http.Server
}

type Deps struct {
	Users     domain.UserService
	Bookings  domain.BookingService
	Schedules domain.ScheduleService
	Notices   domain.NoticeService
	DB        *database.DB
}

func NewServer(cfg *config.Config, deps Deps, logger *zerolog.Logger) *Server {
	sheetName := cfg.Exports.SheetName
	if sheetName == "" {
		sheetName = "Booking Requests"
	}
	s := &Server{
		users:     deps.Users,
		bookings:  deps.Bookings,
		schedules: deps.Schedules,
		notices:   deps.Notices,
		db:        deps.DB,
		limiter:   newIdentityLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		logger:    logger,
		sheetName: sheetName,
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.routes(),
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)

	mux.HandleFunc("POST /api/auth/signup", s.limitByHost(s.handleSignUp))
	mux.HandleFunc("POST /api/auth/signin", s.limitByHost(s.handleSignIn))
	mux.HandleFunc("POST /api/auth/signout", s.requireAuth(s.handleSignOut))
	mux.HandleFunc("GET /api/auth/me", s.requireAuth(s.handleMe))
	mux.HandleFunc("GET /api/auth/users", s.requireAuth(s.handleListUsers))

	mux.HandleFunc("GET /api/classrooms", s.requireAuth(s.handleListClassrooms))
	mux.HandleFunc("GET /api/classrooms/{id}", s.requireAuth(s.handleGetClassroom))
	mux.HandleFunc("POST /api/classrooms", s.requireAuth(s.handleCreateClassroom))
	mux.HandleFunc("PUT /api/classrooms/{id}", s.requireAuth(s.handleUpdateClassroom))
	mux.HandleFunc("DELETE /api/classrooms/{id}", s.requireAuth(s.handleDeleteClassroom))

	mux.HandleFunc("GET /api/labs", s.requireAuth(s.handleListLabs))
	mux.HandleFunc("GET /api/labs/{id}", s.requireAuth(s.handleGetLab))
	mux.HandleFunc("POST /api/labs", s.requireAuth(s.handleCreateLab))
	mux.HandleFunc("PUT /api/labs/{id}", s.requireAuth(s.handleUpdateLab))
	mux.HandleFunc("PATCH /api/labs/{id}/status", s.requireAuth(s.handleUpdateLabStatus))
	mux.HandleFunc("DELETE /api/labs/{id}", s.requireAuth(s.handleDeleteLab))

	mux.HandleFunc("GET /api/buses", s.requireAuth(s.handleListBuses))
	mux.HandleFunc("POST /api/buses", s.requireAuth(s.handleCreateBus))
	mux.HandleFunc("PUT /api/buses/{id}", s.requireAuth(s.handleUpdateBus))
	mux.HandleFunc("DELETE /api/buses/{id}", s.requireAuth(s.handleDeleteBus))

	mux.HandleFunc("GET /api/cafeteria/menu", s.requireAuth(s.handleListMenu))
	mux.HandleFunc("GET /api/cafeteria/menu/{id}", s.requireAuth(s.handleGetMenuItem))
	mux.HandleFunc("POST /api/cafeteria/menu", s.requireAuth(s.handleCreateMenuItem))
	mux.HandleFunc("PUT /api/cafeteria/menu/{id}", s.requireAuth(s.handleUpdateMenuItem))
	mux.HandleFunc("DELETE /api/cafeteria/menu/{id}", s.requireAuth(s.handleDeleteMenuItem))
	mux.HandleFunc("GET /api/cafeteria/info", s.requireAuth(s.handleGetCafeteriaInfo))
	mux.HandleFunc("PUT /api/cafeteria/info", s.requireAuth(s.handleUpdateCafeteriaInfo))

	mux.HandleFunc("GET /api/schedules/{type}/{id}", s.requireAuth(s.handleListSchedules))
	mux.HandleFunc("POST /api/schedules", s.requireAuth(s.handleCreateSchedule))
	mux.HandleFunc("PUT /api/schedules/{id}", s.requireAuth(s.handleUpdateSchedule))
	mux.HandleFunc("DELETE /api/schedules/{id}", s.requireAuth(s.handleDeleteSchedule))

	mux.HandleFunc("POST /api/booking-requests", s.requireAuth(s.handleCreateBookingRequest))
	mux.HandleFunc("GET /api/booking-requests", s.requireAuth(s.handleListBookingRequests))
	mux.HandleFunc("GET /api/booking-requests/export", s.requireAuth(s.handleExportBookingRequests))
	mux.HandleFunc("GET /api/booking-requests/{id}", s.requireAuth(s.handleGetBookingRequest))
	mux.HandleFunc("PATCH /api/booking-requests/{id}/status", s.requireAuth(s.handleReviewBookingRequest))
	mux.HandleFunc("DELETE /api/booking-requests/{id}", s.requireAuth(s.handleDeleteBookingRequest))

	mux.HandleFunc("GET /api/bookings/notices", s.requireAuth(s.handleListNotices))

	return withRequestID(withLogging(s.logger, mux))
}

// Handler exposes the full middleware chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("http server starting")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Campus Info API is running",
	})
}

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/limbo/hydration/docs"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/cleanup"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultPageLimit      = 10
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	intakeService  service.IntakeServiceI
	requestTimeout time.Duration
	pageLimit      int
}

type ServicesList struct {
	UserService   service.UserServiceI
	IntakeService service.IntakeServiceI
	// Deadline of service calls made by a handler, 10s when zero
	RequestTimeout time.Duration
	// Page size used when request has no valid limit, 10 when out of 1..50
	PageLimit int
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		intakeService:  servicesOptions.IntakeService,
		requestTimeout: servicesOptions.RequestTimeout,
		pageLimit:      servicesOptions.PageLimit,
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = defaultRequestTimeout
	}
	if s.pageLimit < 1 || s.pageLimit > maxLimit {
		s.pageLimit = defaultPageLimit
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", s.CreateUser)
		r.Get("/users", s.GetUsers)
		r.Route("/users/{id}", func(r chi.Router) {
			r.Use(s.UserIDMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/", s.GetUser)
			r.Delete("/", s.DeleteUser)
			r.Post("/drink", s.RecordIntake)
			r.Get("/summary", s.GetSummary)
			r.Get("/history", s.GetHistory)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until the server is shut down by the cleanup job it registers
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
	slog.Info("server started", slog.String("address", addr))
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

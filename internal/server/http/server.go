// Package http exposes the REST surface of the Puptrack server: the
// registration, login, Google sign-in, and pet endpoints, plus the bearer
// token middleware gating protected routes.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/puptrack/puptrack/internal/logging"
	"github.com/puptrack/puptrack/internal/server/models"
	"github.com/puptrack/puptrack/internal/server/services"
)

type userSvc interface {
	Register(ctx context.Context, input services.RegisterInput) (string, error)
	Login(ctx context.Context, identifier, pass string) (string, error)
	GoogleAuth(ctx context.Context, rawIDToken string) (string, error)
}

type petSvc interface {
	Register(ctx context.Context, name, imageBase64 string, userID int64) (*models.Pet, error)
}

type Server struct {
	address        string
	users          userSvc
	pets           petSvc
	logger         logging.Logger
	jwtSecret      []byte
	requestTimeout time.Duration
}

func NewServer(address string, l logging.Logger, us userSvc, ps petSvc, secretKey string, requestTimeout time.Duration) *Server {
	return &Server{
		address:        address,
		logger:         l.With("module", "http_server"),
		users:          us,
		pets:           ps,
		jwtSecret:      []byte(secretKey),
		requestTimeout: requestTimeout,
	}
}

// Router builds the route table. Everything under /api/auth is public except
// /api/auth/pet, which sits behind the bearer token middleware.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogMiddleware)
	r.Use(s.timeoutMiddleware)

	r.HandleFunc("/health", s.health).Methods("GET")

	api := r.PathPrefix("/api/auth").Subrouter()
	api.HandleFunc("/register", s.register).Methods("POST")
	api.HandleFunc("/login", s.login).Methods("POST")
	api.HandleFunc("/google-auth", s.googleAuth).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(s.authMiddleware)
	protected.HandleFunc("/pet", s.pet).Methods("POST")

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

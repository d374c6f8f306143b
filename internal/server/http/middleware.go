package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/puptrack/puptrack/internal/common"
	"github.com/puptrack/puptrack/internal/server/auth"
)

type ctxKey string

const (
	subjectKey   ctxKey = "subject"
	requestIDKey ctxKey = "requestID"
)

// authMiddleware gates protected routes. The mobile client sends the raw
// token in the Authorization header; a "Bearer " prefix is tolerated. On any
// verification failure the protected handler is never invoked.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(common.AuthorizationHeaderName)
		if raw == "" {
			respondJSON(w, http.StatusUnauthorized, messageResponse{Message: "access denied"})
			return
		}

		raw = strings.TrimPrefix(raw, "Bearer ")

		subject, err := auth.GetSubjectFromToken(raw, s.jwtSecret)
		if err != nil {
			s.logger.Warn(r.Context(), "token rejected", "reason", err.Error())
			respondJSON(w, http.StatusUnauthorized, messageResponse{Message: "invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), subjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SubjectFromContext returns the verified token subject attached by
// authMiddleware.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok
}

// requestLogMiddleware tags every request with an ID and logs it.
func (s *Server) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)

		s.logger.Info(ctx, "request", "method", r.Method, "path", r.URL.Path, "request_id", id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the ID assigned by requestLogMiddleware.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// timeoutMiddleware bounds store and upstream calls to the configured
// per-request deadline.
func (s *Server) timeoutMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.requestTimeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

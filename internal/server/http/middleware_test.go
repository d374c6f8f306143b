package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/puptrack/puptrack/internal/server/auth"
)

func protectedProbe(s *Server, invoked *bool, subject *string) http.Handler {
	return s.authMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*invoked = true
		if subject != nil {
			*subject, _ = SubjectFromContext(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakePets{})
	invoked := false

	req := httptest.NewRequest(http.MethodPost, "/api/auth/pet", nil)
	rec := httptest.NewRecorder()
	protectedProbe(s, &invoked, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if invoked {
		t.Fatal("handler invoked without a token")
	}
	if decodeBody(t, rec)["message"] != "access denied" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakePets{})
	invoked := false

	token, err := auth.GenerateToken("x@test.com", []byte(testSecret), -time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/pet", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	protectedProbe(s, &invoked, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if invoked {
		t.Fatal("handler invoked with an expired token")
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakePets{})
	invoked := false

	token, err := auth.GenerateToken("x@test.com", []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/pet", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	protectedProbe(s, &invoked, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if invoked {
		t.Fatal("handler invoked with a forged token")
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakePets{})
	invoked := false
	var subject string

	token, err := auth.GenerateToken("x@test.com", []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/pet", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	protectedProbe(s, &invoked, &subject).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !invoked {
		t.Fatal("handler was not invoked")
	}
	if subject != "x@test.com" {
		t.Fatalf("subject = %q", subject)
	}
}

func TestAuthMiddleware_BearerPrefixTolerated(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakePets{})
	invoked := false

	token, err := auth.GenerateToken("x@test.com", []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/pet", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protectedProbe(s, &invoked, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !invoked {
		t.Fatal("handler was not invoked")
	}
}

func TestTimeoutMiddleware_SetsDeadline(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakePets{})

	var hadDeadline bool
	h := s.timeoutMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadDeadline = r.Context().Deadline()
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !hadDeadline {
		t.Fatal("expected a context deadline")
	}
}

func TestTimeoutMiddleware_DisabledWhenZero(t *testing.T) {
	s := NewServer("127.0.0.1:0", nopLogger{}, &fakeUsers{}, &fakePets{}, testSecret, 0)

	var hadDeadline bool
	h := s.timeoutMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadDeadline = r.Context().Deadline()
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if hadDeadline {
		t.Fatal("deadline must not be set when the timeout is disabled")
	}
}

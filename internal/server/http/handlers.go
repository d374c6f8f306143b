package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/puptrack/puptrack/internal/common"
	"github.com/puptrack/puptrack/internal/server/services"
)

// Request bodies keep the field names the mobile client already sends.
type registerRequest struct {
	Name     string `json:"NyA"`
	Address  string `json:"direc"`
	Phone    string `json:"telefono"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"telefono"`
	Password string `json:"password"`
}

type googleAuthRequest struct {
	IDToken string `json:"idToken"`
}

type petRequest struct {
	Name   string `json:"nom"`
	Image  string `json:"imagen"`
	UserID int64  `json:"id_user"`
}

type tokenResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	s.logger.Info(r.Context(), "Registration request", "email", req.Email)

	token, err := s.users.Register(r.Context(), services.RegisterInput{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, tokenResponse{Message: "user registered", Token: token})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Phone
	}

	token, err := s.users.Login(r.Context(), identifier, req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) googleAuth(w http.ResponseWriter, r *http.Request) {
	var req googleAuthRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	token, err := s.users.GoogleAuth(r.Context(), req.IDToken)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, tokenResponse{Message: "authenticated with Google", Token: token})
}

func (s *Server) pet(w http.ResponseWriter, r *http.Request) {
	var req petRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	if _, err := s.pets.Register(r.Context(), req.Name, req.Image, req.UserID); err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, messageResponse{Message: "pet registered"})
}

// --- helpers below ---

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return false
	}
	return true
}

// respondError maps service sentinels to HTTP responses. Unknown-user and
// bad-password failures share one message so responses cannot be used to
// enumerate accounts. Internal error detail stays in the logs.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
	case errors.Is(err, common.ErrorAlreadyExists):
		respondJSON(w, http.StatusConflict, messageResponse{Message: "email is already registered"})
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrInvalidCredentials):
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid email or password"})
	case errors.Is(err, common.ErrIdentityTokenInvalid), errors.Is(err, common.ErrIdentityTokenIncomplete):
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Google token invalid or incomplete"})
	case errors.Is(err, common.ErrTimeout):
		s.logger.Error(r.Context(), "request timed out", "path", r.URL.Path)
		respondJSON(w, http.StatusGatewayTimeout, messageResponse{Message: "request timed out"})
	default:
		s.logger.Error(r.Context(), err.Error(), "path", r.URL.Path)
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

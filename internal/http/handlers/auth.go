package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/weiminglau/family-tree-be/internal/auth"
	"github.com/weiminglau/family-tree-be/internal/http/respond"
	"github.com/weiminglau/family-tree-be/internal/models"
	"github.com/weiminglau/family-tree-be/internal/models/dto"
	"github.com/weiminglau/family-tree-be/internal/storage"
)

// AuthHandler owns the register and login endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
	logger *logrus.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, logger: logger}
}

// Routes attaches the auth endpoints to a router group.
func (h *AuthHandler) Routes(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload.")
		return
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Please provide username, email, and password.")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.WithError(err).Error("hash password")
		respond.ServerError(w, "Server error during registration.", err)
		return
	}

	userID, err := h.store.CreateUser(r.Context(), models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusBadRequest, "User already exists with this email or username.")
			return
		}
		h.logger.WithError(err).Error("create user")
		respond.ServerError(w, "Server error during registration.", err)
		return
	}

	respond.JSON(w, http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully.",
		UserID:  userID,
	})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload.")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Please provide email and password.")
		return
	}

	user, err := h.store.FindUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Same body as a wrong password so callers cannot probe
			// which accounts exist.
			respond.Error(w, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		h.logger.WithError(err).Error("fetch user for login")
		respond.ServerError(w, "Server error during login.", err)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		h.logger.WithError(err).Error("generate token")
		respond.ServerError(w, "Server error during login.", err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful.",
		Token:   token,
		User:    user.Summary(),
	})
}

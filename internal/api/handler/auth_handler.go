package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/projecthub/internal/api/metrics"
	"github.com/projecthub/projecthub/internal/core/domain"
	"github.com/projecthub/projecthub/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type registerResponse struct {
	Msg    string `json:"msg"`
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type loginResponse struct {
	UserID      int64  `json:"user_id"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// reqRole parses the optional role field, defaulting to the user role.
func reqRole(s string) (domain.Role, bool) {
	if s == "" {
		return domain.RoleUser, true
	}
	return domain.ParseRole(s)
}

// Register creates a new user account identified by (username, role).
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	role, ok := reqRole(req.Role)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid role"})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, role)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			metrics.RegistrationsTotal.WithLabelValues(string(role), "duplicate").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role), "ok").Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Msg:    "User created successfully",
		UserID: user.ID,
		Role:   string(user.Role),
	})
}

// Login authenticates a (username, password, role) triple and returns a
// bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	role, ok := reqRole(req.Role)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid role"})
	}

	signed, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password, role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(string(role), "invalid_credentials").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(user.Role), "ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		UserID:      user.ID,
		Role:        string(user.Role),
		AccessToken: signed,
		TokenType:   "bearer",
	})
}

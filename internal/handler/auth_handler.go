package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "tripvista/internal/errors"
	"tripvista/internal/logger"
	"tripvista/internal/metrics"
	"tripvista/internal/service"
	"tripvista/internal/session"
)

// AuthHandler handles the login gate endpoints.
type AuthHandler struct {
	authService service.AuthService
	sessions    session.StoreInterface
	metrics     *metrics.Metrics
	log         logger.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions session.StoreInterface, m *metrics.Metrics, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		metrics:     m,
		log:         log,
	}
}

// LoginRequest represents submitted login credentials.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginForm godoc
// @Summary Describe the login form
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	if session.IsAuthenticated(c) {
		return c.Redirect(http.StatusFound, "/admin")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"action": "/login",
		"method": http.MethodPost,
		"fields": []string{"username", "password"},
	})
}

// Login godoc
// @Summary Authenticate as the site admin
// @Tags auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param username formData string true "Admin username"
// @Param password formData string true "Admin password"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthFailure) {
			h.metrics.AuthFailures.Inc()
			he := apperrors.MapErrorToHTTP(err)
			return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
		}
		h.log.Error("login failed", "error", err)
		h.metrics.ErrorsCount.WithLabelValues("login").Inc()
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "an error occurred during login, please try again",
			Code:  "LOGIN_FAILED",
		})
	}

	token, err := h.sessions.Create(c.Request().Context(), user.ID, user.Username)
	if err != nil {
		h.log.Error("session creation failed", "error", err)
		h.metrics.ErrorsCount.WithLabelValues("login").Inc()
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "an error occurred during login, please try again",
			Code:  "LOGIN_FAILED",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.metrics.LoginsTotal.Inc()
	h.log.Info("admin logged in", "username", user.Username)
	return c.Redirect(http.StatusFound, "/admin")
}

// Logout godoc
// @Summary End the admin session
// @Tags auth
// @Success 302
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
			// Log and continue: the cookie is cleared regardless.
			h.log.Error("session invalidation failed", "error", err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/login")
}

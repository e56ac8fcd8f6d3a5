package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/quarmyne/otpauth/internal/pkg/middleware"
	"github.com/quarmyne/otpauth/internal/pkg/models"
	httpHandler "github.com/quarmyne/otpauth/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *httpHandler.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *httpHandler.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/otp", h.authHandler.RequestOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)

	protected := authGroup.Group("", middleware.JWT(h.cfg.JWT))
	protected.GET("/session", h.authHandler.Session)
}

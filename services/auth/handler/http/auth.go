package http

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
	"github.com/quarmyne/otpauth/internal/pkg/logger"
	"github.com/quarmyne/otpauth/internal/pkg/middleware"
	"github.com/quarmyne/otpauth/internal/pkg/models"
	"github.com/quarmyne/otpauth/internal/utils"
	"github.com/quarmyne/otpauth/services/auth"
)

// AuthHandler handles HTTP requests for OTP authentication
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// RequestOTP handles OTP issuance requests
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOtpRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP issuance",
			logger.ErrorField(err),
			logger.String("endpoint", "RequestOTP"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.MSISDN == "" {
		return utils.BadRequestResponse(c, "Mobile number is required")
	}

	result := h.authUC.RequestOtpCode(c.Request().Context(), req.MSISDN)
	return utils.WriteResult(c, result)
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOtpRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP verification",
			logger.ErrorField(err),
			logger.String("endpoint", "VerifyOTP"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.MSISDN == "" || req.RequestID == "" {
		return utils.BadRequestResponse(c, "Mobile number and request id are required")
	}

	result := h.authUC.VerifyOtpCode(c.Request().Context(), req.MSISDN, &req)
	return utils.WriteResult(c, result)
}

// Session returns the account payload of the presented bearer token. The
// route sits behind the JWT middleware, so reaching here means the token
// already validated.
func (h *AuthHandler) Session(c echo.Context) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var account models.UserAccount
	if err := json.Unmarshal([]byte(claims.User), &account); err != nil {
		logger.Error("Failed to decode user claim",
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.WriteResult(c, models.Success("Session is active", &account))
}

package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/quarmyne/otpauth/internal/pkg/models"
)

// WriteResult sends a flow result as JSON. The envelope code doubles as the
// HTTP status; upstream-propagated codes outside the valid status range are
// transported as 502 while the body keeps the original code verbatim.
func WriteResult(c echo.Context, result *models.Result) error {
	status := result.Code
	if status < 100 || status > 599 {
		status = http.StatusBadGateway
	}
	return c.JSON(status, result)
}

// BadRequestResponse sends a 400 Bad Request envelope
func BadRequestResponse(c echo.Context, message string) error {
	return WriteResult(c, models.BadRequest(message))
}

// UnauthorizedResponse sends a 401 Unauthorized envelope
func UnauthorizedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return c.JSON(http.StatusUnauthorized, &models.Result{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

// InternalServerErrorResponse sends a 500 envelope
func InternalServerErrorResponse(c echo.Context) error {
	return WriteResult(c, models.InternalError())
}

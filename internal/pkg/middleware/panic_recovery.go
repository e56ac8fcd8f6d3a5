package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/quarmyne/otpauth/internal/pkg/logger"
	"github.com/quarmyne/otpauth/internal/utils"
)

// PanicRecovery recovers from panics escaping any handler, logs the stack
// trace and answers with the generic internal error envelope.
func PanicRecovery(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					zapLogger.Error("Panic recovered during request processing",
						logger.Any("panic_value", r),
						logger.String("panic_type", fmt.Sprintf("%T", r)),
						logger.String("stack_trace", string(debug.Stack())),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
					)

					if !c.Response().Committed {
						_ = utils.InternalServerErrorResponse(c)
					}
				}
			}()

			return next(c)
		}
	}
}

package middleware

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/quarmyne/otpauth/internal/pkg/jwt"
	"github.com/quarmyne/otpauth/internal/pkg/models"
)

// ContextKeyClaims is the echo context key the verified token claims are
// stored under.
const ContextKeyClaims = "auth_claims"

// JWT returns middleware that rejects requests without a valid bearer token
// and exposes the parsed claims on the request context.
func JWT(cfg models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.Secret),
		SuccessHandler: func(c echo.Context) {
			// Re-parse into our typed claims so handlers get the account
			// payload without touching the raw token.
			authHeader := c.Request().Header.Get("Authorization")
			if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				claims, err := jwtpkg.ValidateToken(authHeader[7:], cfg.Secret)
				if err == nil {
					c.Set(ContextKeyClaims, claims)
				}
			}
		},
	})
}

// ClaimsFromContext returns the verified claims set by the JWT middleware,
// or nil when the request was not authenticated.
func ClaimsFromContext(c echo.Context) *jwtpkg.Claims {
	claims, ok := c.Get(ContextKeyClaims).(*jwtpkg.Claims)
	if !ok {
		return nil
	}
	return claims
}

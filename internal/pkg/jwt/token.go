package jwt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/quarmyne/otpauth/internal/pkg/models"
)

const (
	// TokenValidity is the lifetime of a minted bearer token. There is no
	// refresh or revocation: a token stays valid until natural expiry even
	// if the account changes afterwards.
	TokenValidity = 12 * time.Hour

	// ClockSkewTolerance backdates NotBefore so a token minted here is
	// immediately usable against a consumer whose clock runs slightly behind.
	ClockSkewTolerance = 30 * time.Millisecond
)

// Claims carries the account payload as a single serialized claim plus the
// registered time-bound claims.
type Claims struct {
	User string `json:"user"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed bearer token for the given account and
// returns the token string together with its expiry as a unix timestamp.
func GenerateToken(account *models.UserAccount, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(TokenValidity)

	payload, err := json.Marshal(account)
	if err != nil {
		return "", 0, fmt.Errorf("failed to serialize account payload: %w", err)
	}

	claims := Claims{
		User: string(payload),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-ClockSkewTolerance)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt.Unix(), nil
}

// ValidateToken validates a bearer token signature and time bounds and
// returns the parsed claims.
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// Account deserializes the user claim back into the account payload.
func (c *Claims) Account() (*models.UserAccount, error) {
	var account models.UserAccount
	if err := json.Unmarshal([]byte(c.User), &account); err != nil {
		return nil, fmt.Errorf("failed to decode user claim: %w", err)
	}
	return &account, nil
}

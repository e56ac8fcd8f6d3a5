package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/quarmyne/otpauth/internal/pkg/constants"
	"github.com/quarmyne/otpauth/internal/pkg/database"
	"github.com/quarmyne/otpauth/internal/pkg/models"
	"github.com/quarmyne/otpauth/services/auth"
)

// OTPRepo stores OTP records in redis, JSON-encoded under a key composed of
// the MSISDN and the request id. Expiry is delegated to redis TTL.
type OTPRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewOTPRepo creates a new OTP repository
func NewOTPRepo(cfg *models.Config, redisClient *database.RedisClient) *OTPRepo {
	return &OTPRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// StoreOTP persists an OTP record with the configured TTL
func (r *OTPRepo) StoreOTP(ctx context.Context, msisdn string, code *models.OtpCode) error {
	payload, err := json.Marshal(code)
	if err != nil {
		return fmt.Errorf("failed to encode OTP record: %w", err)
	}

	key := fmt.Sprintf(constants.KeyAuthOTP, msisdn, code.RequestID)
	ttl := time.Duration(r.cfg.OTP.ExpiryMinutes) * time.Minute

	if err := r.redisClient.Set(ctx, key, payload, ttl); err != nil {
		return fmt.Errorf("failed to store OTP record: %w", err)
	}

	return nil
}

// GetOTP retrieves an OTP record. Absence (never stored or expired) returns
// auth.ErrOTPNotFound; a present but undecodable value returns
// auth.ErrOTPDecode; anything else is a store failure.
func (r *OTPRepo) GetOTP(ctx context.Context, msisdn, requestID string) (*models.OtpCode, error) {
	key := fmt.Sprintf(constants.KeyAuthOTP, msisdn, requestID)

	val, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return nil, auth.ErrOTPNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read OTP record: %w", err)
	}

	var code models.OtpCode
	if err := json.Unmarshal([]byte(val), &code); err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrOTPDecode, err)
	}

	return &code, nil
}

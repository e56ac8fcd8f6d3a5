package auth

import (
	"context"

	"github.com/quarmyne/otpauth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/quarmyne/otpauth/services/auth OTPRepo

// OTPRepo is the OTP store. Records expire via the store's TTL mechanism;
// there is no delete after verification, so a record stays retrievable for
// its full lifetime.
type OTPRepo interface {
	StoreOTP(ctx context.Context, msisdn string, code *models.OtpCode) error
	GetOTP(ctx context.Context, msisdn, requestID string) (*models.OtpCode, error)
}

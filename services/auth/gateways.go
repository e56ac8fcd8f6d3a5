package auth

import (
	"context"

	"github.com/quarmyne/otpauth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/quarmyne/otpauth/services/auth SMSGW,AccountGW

// SMSGW dispatches OTP codes over SMS. All transport failures collapse to
// false; the reason is logged at the gateway, never propagated.
type SMSGW interface {
	SendOTP(ctx context.Context, req models.SendSmsRequest) bool
}

// AccountGW looks up user accounts on the external account service.
type AccountGW interface {
	GetUserAccount(ctx context.Context, msisdn string) (*models.AccountResult, error)
}

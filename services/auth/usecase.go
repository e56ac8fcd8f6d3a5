package auth

import (
	"context"

	"github.com/quarmyne/otpauth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/quarmyne/otpauth/services/auth AuthUC

// AuthUC represents the OTP authentication usecase interface. Both flows
// resolve to a coded Result: success, validation failure, dependency
// failure, internal failure, or an upstream account-service status
// forwarded verbatim.
type AuthUC interface {
	RequestOtpCode(ctx context.Context, msisdn string) *models.Result
	VerifyOtpCode(ctx context.Context, msisdn string, req *models.VerifyOtpRequest) *models.Result
}

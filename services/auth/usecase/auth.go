package usecase

import (
	"context"
	"errors"
	"net/http"

	jwtpkg "github.com/quarmyne/otpauth/internal/pkg/jwt"
	"github.com/quarmyne/otpauth/internal/pkg/logger"
	"github.com/quarmyne/otpauth/internal/pkg/models"
	"github.com/quarmyne/otpauth/internal/pkg/otp"
	"github.com/quarmyne/otpauth/internal/utils"
	"github.com/quarmyne/otpauth/services/auth"
)

const (
	msgOtpSent       = "OTP sent successfully"
	msgOtpVerified   = "OTP verified successfully"
	msgOtpNotFound   = "OTP verification failed"
	msgOtpMismatch   = "Incorrect authentication code"
	msgInvalidMSISDN = "Invalid mobile number"
)

// AuthUC coordinates OTP issuance and verification. Each flow runs its
// steps strictly in sequence and resolves to a coded result; concurrent
// flows never share state since every issuance gets its own store key.
type AuthUC struct {
	cfg       *models.Config
	otpRepo   auth.OTPRepo
	smsGW     auth.SMSGW
	accountGW auth.AccountGW
	generator otp.Generator
}

// NewAuthUC creates a new auth usecase
func NewAuthUC(
	cfg *models.Config,
	otpRepo auth.OTPRepo,
	smsGW auth.SMSGW,
	accountGW auth.AccountGW,
	generator otp.Generator,
) *AuthUC {
	return &AuthUC{
		cfg:       cfg,
		otpRepo:   otpRepo,
		smsGW:     smsGW,
		accountGW: accountGW,
		generator: generator,
	}
}

// RequestOtpCode issues a fresh OTP for the given mobile number: account
// lookup, code generation, store with TTL, SMS dispatch. A dispatch failure
// leaves the already-stored code in place until its TTL lapses.
func (u *AuthUC) RequestOtpCode(ctx context.Context, msisdn string) (result *models.Result) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unexpected failure during OTP issuance",
				logger.Any("panic_value", r),
				logger.String("msisdn", msisdn))
			result = models.InternalError()
		}
	}()

	isValid, formattedMSISDN, err := utils.ValidateMSISDN(msisdn)
	if err != nil || !isValid {
		return models.BadRequest(msgInvalidMSISDN)
	}

	account, err := u.accountGW.GetUserAccount(ctx, formattedMSISDN)
	if err != nil {
		logger.Error("Account lookup failed during OTP issuance",
			logger.Err(err),
			logger.String("msisdn", formattedMSISDN))
		return models.InternalError()
	}
	if account.Code != http.StatusOK {
		// Externally sourced status, forwarded verbatim
		return models.Upstream(account.Code, account.Message)
	}

	code := u.generator.Generate()

	if err := u.otpRepo.StoreOTP(ctx, formattedMSISDN, &code); err != nil {
		logger.Error("Failed to persist OTP record",
			logger.Err(err),
			logger.String("msisdn", formattedMSISDN),
			logger.String("request_id", code.RequestID))
		return models.DependencyError()
	}

	sent := u.smsGW.SendOTP(ctx, models.SendSmsRequest{
		MSISDN: formattedMSISDN,
		Code:   code.Code,
		Prefix: code.Prefix,
	})
	if !sent {
		logger.Error("OTP SMS dispatch failed",
			logger.String("msisdn", formattedMSISDN),
			logger.String("request_id", code.RequestID))
		return models.InternalError()
	}

	logger.Info("OTP issued",
		logger.String("msisdn", formattedMSISDN),
		logger.String("request_id", code.RequestID))

	return models.Success(msgOtpSent, &models.OtpIssuedData{
		Prefix:           code.Prefix,
		RequestID:        code.RequestID,
		ExpiresInMinutes: u.cfg.OTP.ExpiryMinutes,
	})
}

// VerifyOtpCode checks a submitted code against the stored record and mints
// a bearer token on a match. The record is not invalidated afterwards; it
// stays in the store until its TTL lapses.
func (u *AuthUC) VerifyOtpCode(ctx context.Context, msisdn string, req *models.VerifyOtpRequest) (result *models.Result) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unexpected failure during OTP verification",
				logger.Any("panic_value", r),
				logger.String("msisdn", msisdn),
				logger.Any("request", req))
			result = models.InternalError()
		}
	}()

	isValid, formattedMSISDN, err := utils.ValidateMSISDN(msisdn)
	if err != nil || !isValid {
		return models.BadRequest(msgInvalidMSISDN)
	}

	stored, err := u.otpRepo.GetOTP(ctx, formattedMSISDN, req.RequestID)
	if err != nil {
		if errors.Is(err, auth.ErrOTPNotFound) {
			return models.BadRequest(msgOtpNotFound)
		}
		logger.Error("Failed to read OTP record",
			logger.Err(err),
			logger.String("msisdn", formattedMSISDN),
			logger.Any("request", req))
		return models.DependencyError()
	}

	if stored.Code != req.Code || stored.Prefix != req.Prefix {
		return models.BadRequest(msgOtpMismatch)
	}

	account, err := u.accountGW.GetUserAccount(ctx, formattedMSISDN)
	if err != nil {
		logger.Error("Account lookup failed during OTP verification",
			logger.Err(err),
			logger.String("msisdn", formattedMSISDN))
		return models.InternalError()
	}
	if account.Code != http.StatusOK {
		return models.Upstream(account.Code, account.Message)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(account.Data, u.cfg.JWT)
	if err != nil {
		logger.Error("Failed to mint bearer token",
			logger.Err(err),
			logger.String("msisdn", formattedMSISDN))
		return models.InternalError()
	}

	logger.Info("OTP verified",
		logger.String("msisdn", formattedMSISDN),
		logger.String("request_id", req.RequestID))

	return models.Success(msgOtpVerified, &models.AuthData{
		BearerToken: token,
		ExpiresAt:   expiresAt,
		User:        account.Data,
	})
}

package models

// OtpCode is the artifact generated for a single authentication attempt.
// A fresh value is created per issuance request and never mutated afterwards.
type OtpCode struct {
	Prefix    string `json:"prefix"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id"`
}

// SendSmsRequest carries a generated code to the SMS dispatcher. It is a
// transient payload and is never persisted.
type SendSmsRequest struct {
	MSISDN string
	Code   int
	Prefix string
}

// RequestOtpRequest represents a request to start OTP authentication
type RequestOtpRequest struct {
	MSISDN string `json:"msisdn" validate:"required"`
}

// VerifyOtpRequest represents a request to verify a previously issued OTP
type VerifyOtpRequest struct {
	MSISDN    string `json:"msisdn" validate:"required"`
	RequestID string `json:"request_id" validate:"required"`
	Code      int    `json:"code" validate:"required"`
	Prefix    string `json:"prefix" validate:"required"`
}

// OtpIssuedData is the issuance response payload. The numeric code itself
// travels only over SMS and must never appear here.
type OtpIssuedData struct {
	Prefix           string `json:"prefix"`
	RequestID        string `json:"request_id"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}

// AuthData is the verification response payload after a successful match.
type AuthData struct {
	BearerToken string       `json:"bearer_token"`
	ExpiresAt   int64        `json:"expires_at"`
	User        *UserAccount `json:"user"`
}

package auth

import "errors"

var (
	// ErrOTPNotFound marks normal absence of an OTP record: never issued,
	// expired, or looked up under the wrong key.
	ErrOTPNotFound = errors.New("otp record not found")

	// ErrOTPDecode marks a record that was present but could not be
	// deserialized back into an OtpCode.
	ErrOTPDecode = errors.New("otp record not decodable")
)

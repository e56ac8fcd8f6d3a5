package constants

// Redis key formats
const (
	// KeyAuthOTP stores an issued OTP record.
	// Format: authentication:otp:{msisdn}:{request_id}
	// Keying on both values lets concurrent requests for the same MSISDN
	// live side by side without clobbering each other.
	KeyAuthOTP = "authentication:otp:%s:%s"
)

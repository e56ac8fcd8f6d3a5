package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	JWT      JWTConfig
	OTP      OTPConfig
	SMS      SMSConfig
	Accounts AccountsConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains bearer token signing configuration
type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// OTPConfig contains OTP issuance configuration
type OTPConfig struct {
	ExpiryMinutes int // TTL of a stored OTP record
}

// SMSConfig contains the outbound SMS gateway configuration
type SMSConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	From         string // sender id shown on the handset
	Timeout      int    // request timeout in seconds
}

// AccountsConfig contains the external account lookup service configuration
type AccountsConfig struct {
	BaseURL string
	Timeout int // request timeout in seconds
}

// LoggerConfig contains structured logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

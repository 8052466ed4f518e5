package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
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

// MongoConfig contains document database connection configuration
type MongoConfig struct {
	URI      string
	Database string
	Timeout  int // connect/ping timeout in seconds
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address    string
	AlertTopic string
	Enabled    bool
}

// RateLimitConfig contains limits applied to the auth endpoints
type RateLimitConfig struct {
	Limit         int
	PeriodSeconds int
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

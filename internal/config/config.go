package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, storage backends,
// the editor vendor, background workers and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS. Empty allows any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"campaigner" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis holds the token cache connection
	Redis struct {
		// Addr is host:port or a redis:// URL
		Addr string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		Username string `env:"REDIS_USERNAME" yaml:"username"`
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		DB       int    `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// KeyPrefix namespaces every key written by this service
		KeyPrefix string `env:"REDIS_KEY_PREFIX" env-default:"campaigner:" yaml:"keyPrefix"`
	} `yaml:"redis"`

	// JWT holds the RS256 key pair used for API authentication
	JWT struct {
		// PublicKey verifies bearer tokens (PEM)
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs development tokens with the jwt command (PEM)
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Editor configures the embedded email editor vendor
	Editor struct {
		ClientID     string `env:"EDITOR_CLIENT_ID" yaml:"clientId"`
		ClientSecret string `env:"EDITOR_CLIENT_SECRET" yaml:"clientSecret"`
		// APIKey authorizes the HTML conversion endpoint
		APIKey        string `env:"EDITOR_API_KEY" yaml:"apiKey"`
		AuthURL       string `env:"EDITOR_AUTH_URL" env-default:"https://auth.getbee.io/apiauth" yaml:"authUrl"`
		ConversionURL string `env:"EDITOR_CONVERSION_URL" env-default:"https://api.getbee.io/v1/conversion/html-to-json" yaml:"conversionUrl"` //nolint: lll
		// HTTPTimeout bounds each call to the vendor
		HTTPTimeout time.Duration `env:"EDITOR_HTTP_TIMEOUT" env-default:"15s" yaml:"httpTimeout"`
		// TokenTTLMargin is subtracted from the vendor's expires_in when caching tokens
		TokenTTLMargin time.Duration `env:"EDITOR_TOKEN_TTL_MARGIN" env-default:"30s" yaml:"tokenTtlMargin"`
	} `yaml:"editor"`

	// Estimator configures projection requests
	Estimator struct {
		// ReadTimeout bounds the audience and history reads of one estimate
		ReadTimeout time.Duration `env:"ESTIMATOR_READ_TIMEOUT" env-default:"5s" yaml:"readTimeout"`
		// GuardSize caps how many sessions the stale-answer guard tracks
		GuardSize int `env:"ESTIMATOR_GUARD_SIZE" env-default:"10000" yaml:"guardSize"`
		// GuardTTL is how long an idle session stays tracked
		GuardTTL time.Duration `env:"ESTIMATOR_GUARD_TTL" env-default:"15m" yaml:"guardTTL"`
	} `yaml:"estimator"`

	// Worker configures the background job runner
	Worker struct {
		// MaxWorkers is the concurrency of the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is how many times a template conversion is tried before the fallback is stored
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// RateLimitBackoff is how long a throttled conversion is snoozed
		RateLimitBackoff time.Duration `env:"WORKER_RATE_LIMIT_BACKOFF" env-default:"30s" yaml:"rateLimitBackoff"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: values then come from the environment and defaults.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	}

	return &cfg, nil
}

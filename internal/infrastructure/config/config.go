package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Storage drivers accepted in STORE_DRIVER.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
	Login LoginConfig

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:4200"`
	SeedUsersPath  string   `env:"SEED_USERS_PATH"`
}

type AuthConfig struct {
	// SecretKey is never logged.
	SecretKey      string        `env:"SECRET_KEY"`
	SecretKeyFile  string        `env:"SECRET_KEY_FILE, default=.secret_key"`
	TokenTTL       time.Duration `env:"TOKEN_TTL,       default=1h"`
	PasswordScheme string        `env:"PASSWORD_SCHEME, default=sha256"`
}

type StoreConfig struct {
	Driver string `env:"STORE_DRIVER, default=mysql"`
	DSN    string `env:"DATABASE_DSN"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=customer_api"`
}

// RedisConfig is optional: an empty Addr disables the login limiter.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type LoginConfig struct {
	MaxAttempts   int           `env:"LOGIN_MAX_ATTEMPTS,   default=5"`
	AttemptWindow time.Duration `env:"LOGIN_ATTEMPT_WINDOW, default=15m"`
	LockDuration  time.Duration `env:"LOGIN_LOCK_DURATION,  default=10m"`
}

// IsDevelopment reports whether the service runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads an optional .env file, then configuration from environment
// variables. Variables already set in the environment win over .env.
func Load(ctx context.Context, dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", dotenvPath, err)
		}
	}
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMySQL, DriverPostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("config: DATABASE_DSN is required for STORE_DRIVER=%s", c.Store.Driver)
		}
	case DriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return errors.New("config: MONGO_URI and MONGO_DB are required for STORE_DRIVER=mongo")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Auth.PasswordScheme {
	case "sha256", "argon2id":
	default:
		return fmt.Errorf("config: unknown PASSWORD_SCHEME %q", c.Auth.PasswordScheme)
	}

	if c.Auth.TokenTTL <= 0 {
		return errors.New("config: TOKEN_TTL must be positive")
	}
	if c.Auth.SecretKey == "" && c.Auth.SecretKeyFile == "" {
		return errors.New("config: one of SECRET_KEY or SECRET_KEY_FILE is required")
	}
	if c.Login.MaxAttempts <= 0 || c.Login.AttemptWindow <= 0 || c.Login.LockDuration <= 0 {
		return errors.New("config: login limiter settings must be positive")
	}
	return nil
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Session storage backends.
const (
	BackendRedis  = "redis"
	BackendCookie = "cookie"
	BackendMemory = "memory"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session   SessionConfig
	Bootstrap BootstrapConfig
	Enquiry   EnquiryConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

type SessionConfig struct {
	Backend    string        `env:"SESSION_BACKEND,     default=redis"`
	Secret     string        `env:"SESSION_SECRET"`
	StorageKey string        `env:"SESSION_STORAGE_KEY, default=adminAuth"`
	CookieName string        `env:"SESSION_COOKIE,      default=storefront_sid"`
	TTL        time.Duration `env:"SESSION_TTL,         default=720h"`
	LoginPath  string        `env:"LOGIN_PATH,          default=/admin/login"`
}

// BootstrapConfig seeds the first admin when the directory is empty.
type BootstrapConfig struct {
	Username string `env:"ADMIN_BOOTSTRAP_USERNAME"`
	Password string `env:"ADMIN_BOOTSTRAP_PASSWORD"`
}

type EnquiryConfig struct {
	DedupWindow time.Duration `env:"ENQUIRY_DEDUP_WINDOW, default=1h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Session.Backend {
	case BackendRedis:
	case BackendMemory:
		if !c.IsDevelopment() {
			return fmt.Errorf("SESSION_BACKEND=memory is only allowed when ENV=development")
		}
	case BackendCookie:
		if len(c.Session.Secret) < 32 {
			return fmt.Errorf("SESSION_SECRET must be at least 32 bytes for the cookie backend")
		}
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.Session.Backend)
	}
	if (c.Bootstrap.Username == "") != (c.Bootstrap.Password == "") {
		return fmt.Errorf("ADMIN_BOOTSTRAP_USERNAME and ADMIN_BOOTSTRAP_PASSWORD must be set together")
	}
	return nil
}

// IsDevelopment reports whether the service runs locally.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Package config loads runtime settings from configs/config.yml, an optional
// .env file and the process environment, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"

	envProduction = "production"
)

type Config struct {
	Port string
	Env  string

	Log     LogConfig
	DB      DBConfig
	Session SessionConfig
	HTTP    HTTPConfig
	Public  PublicConfig
	Uploads UploadsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type DBConfig struct {
	Driver string
	DSN    string
}

type SessionConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type HTTPConfig struct {
	RequestTimeout time.Duration
}

type PublicConfig struct {
	Dir string
}

type UploadsConfig struct {
	Dir      string
	MaxBytes int64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.dsn", "app.db")
	v.SetDefault("session.secret", "development")
	v.SetDefault("session.cookie_name", "session")
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.secure", false)
	v.SetDefault("http.request_timeout", "5s")
	v.SetDefault("public.dir", "public")
	v.SetDefault("uploads.dir", "public/uploads")
	v.SetDefault("uploads.max_bytes", 5<<20)
}

// Load reads configuration. configPaths are searched for config.yml; when
// empty, "configs" is used. A missing config file is not an error.
func Load(configPaths ...string) (Config, error) {
	// .env is optional, as in development only
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(configPaths) == 0 {
		configPaths = []string{"configs"}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Port: v.GetString("port"),
		Env:  v.GetString("env"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		DB: DBConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("db.driver"))),
			DSN:    v.GetString("db.dsn"),
		},
		Session: SessionConfig{
			Secret:     v.GetString("session.secret"),
			CookieName: v.GetString("session.cookie_name"),
			TTL:        v.GetDuration("session.ttl"),
			Secure:     v.GetBool("session.secure"),
		},
		HTTP: HTTPConfig{
			RequestTimeout: v.GetDuration("http.request_timeout"),
		},
		Public:  PublicConfig{Dir: v.GetString("public.dir")},
		Uploads: UploadsConfig{
			Dir:      v.GetString("uploads.dir"),
			MaxBytes: v.GetInt64("uploads.max_bytes"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at runtime.
func (c Config) Validate() error {
	var problems []string
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		problems = append(problems, fmt.Sprintf("unsupported db.driver %q", c.DB.Driver))
	}
	if c.DB.DSN == "" {
		problems = append(problems, "db.dsn is empty")
	}
	if c.Session.Secret == "" || (c.Env == envProduction && c.Session.Secret == "development") {
		problems = append(problems, "session.secret must be set")
	}
	if c.Session.CookieName == "" {
		problems = append(problems, "session.cookie_name is empty")
	}
	if c.Session.TTL <= 0 {
		problems = append(problems, "session.ttl must be positive")
	}
	if c.HTTP.RequestTimeout <= 0 {
		problems = append(problems, "http.request_timeout must be positive")
	}
	if c.Uploads.MaxBytes <= 0 {
		problems = append(problems, "uploads.max_bytes must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool { return c.Env == envProduction }

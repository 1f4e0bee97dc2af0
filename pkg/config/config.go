package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	SMTP         SMTPConfig
	Export       ExportConfig
	Cron         CronConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHEMBE_APP_ENV" required:"true"`
	Port         string `envconfig:"SHEMBE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SHEMBE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHEMBE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"SHEMBE_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"SHEMBE_DB_DSN"`
	Driver string `envconfig:"SHEMBE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SHEMBE_DB_HOST"`
	LegacyPort     int    `envconfig:"SHEMBE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SHEMBE_DB_USER"`
	LegacyPassword string `envconfig:"SHEMBE_DB_PASSWORD"`
	LegacyName     string `envconfig:"SHEMBE_DB_NAME"`
	LegacySSLMode  string `envconfig:"SHEMBE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHEMBE_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"SHEMBE_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"SHEMBE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHEMBE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SHEMBE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SHEMBE_REDIS_ADDR"`
	Password     string        `envconfig:"SHEMBE_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHEMBE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHEMBE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHEMBE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHEMBE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHEMBE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHEMBE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SHEMBE_SMTP_HOST"`
	Port     int    `envconfig:"SHEMBE_SMTP_PORT" default:"465"`
	Username string `envconfig:"SHEMBE_SMTP_USER"`
	Password string `envconfig:"SHEMBE_SMTP_PASS"`
}

// ExportConfig drives the unsent-registration export cycle.
type ExportConfig struct {
	Recipient  string `envconfig:"SHEMBE_EXPORT_RECIPIENT"`
	From       string `envconfig:"SHEMBE_EXPORT_FROM" default:"registrations@shembeark.com"`
	CC         string `envconfig:"SHEMBE_EXPORT_CC"`
	CronSecret string `envconfig:"SHEMBE_EXPORT_CRON_SECRET"`
	BatchSize  int    `envconfig:"SHEMBE_EXPORT_BATCH_SIZE" default:"1000"`
	MarkAsSent bool   `envconfig:"SHEMBE_EXPORT_MARK_AS_SENT" default:"true"`
}

// CCList splits the comma-separated CC recipients, dropping blanks.
func (e ExportConfig) CCList() []string {
	if strings.TrimSpace(e.CC) == "" {
		return nil
	}
	var out []string
	for _, addr := range strings.Split(e.CC, ",") {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type CronConfig struct {
	Interval time.Duration `envconfig:"SHEMBE_CRON_INTERVAL" default:"24h"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SHEMBE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

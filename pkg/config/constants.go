package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names so
// the prefix mostly serves error messages.
const EnvPrefix = "SHEMBE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "SHEMBE_APP_ENV"
	EnvPort     = "SHEMBE_APP_PORT"
	EnvDBDSN    = "SHEMBE_DB_DSN"
	EnvDBHost   = "SHEMBE_DB_HOST"
	EnvDBUser   = "SHEMBE_DB_USER"
	EnvDBName   = "SHEMBE_DB_NAME"
	EnvRedisURL = "SHEMBE_REDIS_URL"

	EnvExportRecipient  = "SHEMBE_EXPORT_RECIPIENT"
	EnvExportCronSecret = "SHEMBE_EXPORT_CRON_SECRET"
	EnvExportMarkAsSent = "SHEMBE_EXPORT_MARK_AS_SENT"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

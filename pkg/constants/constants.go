package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. CLINICD_DATABASE_HOST overrides database.host.
	EnvPrefix = "CLINICD"
)

package config

// Environment variable names
const (
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"
	EnvEnvironment = "ENVIRONMENT"
	EnvDBUser      = "DB_USER"
	EnvDBPassword  = "DB_PASSWORD"
	EnvDBHost      = "DB_HOST"
	EnvDBPort      = "DB_PORT"
	EnvDBName      = "DB_NAME"
	EnvConfigDir   = "CONFIG_DIR"

	EnvAPIKey         = "API_KEY"
	EnvTrustedProxies = "TRUSTED_PROXIES"
)

// Default configuration values
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "forgecore"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
	DefaultDBUser      = "postgres"
	DefaultDBPassword  = "postgres"
	DefaultDBHost      = "localhost"
	DefaultDBPort      = "5432"
	DefaultDBName      = "forgecore"
	DefaultConfigDir   = "configs"
)

// Configuration file paths relative to ConfigDir
const (
	ConfigFileMaterials = "materials.json"
	ConfigFileRecipes   = "recipes.json"

	SchemaFileMaterials = "schemas/materials.schema.json"
	SchemaFileRecipes   = "schemas/recipes.schema.json"
)

package constants

// ConfigDirName is the per-user directory for cronclaw files under os.UserConfigDir()
const ConfigDirName = "cronclaw"

// ConfigFileName is the filename of the stored credentials
const ConfigFileName = "config.json"

// DefaultsFileName is the filename of the optional CLI preferences file
const DefaultsFileName = "defaults.toml"

// EnvAPIKey is the environment variable that overrides the stored API key
const EnvAPIKey = "CRONCLAW_API_KEY"

// EnvAPIURL is the environment variable that overrides the stored API URL
const EnvAPIURL = "CRONCLAW_API_URL"

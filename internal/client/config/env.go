package config

import "os"

// Environment variable names. The API base URL historically came either
// hard-coded or from a deployment variable; the env overlay makes the
// latter one explicit configuration source.
const (
	EnvAPIBaseURL         = "INVOTRACK_API_URL"
	EnvSessionPersistence = "INVOTRACK_SESSION_PERSISTENCE"
)

// parseEnv overlays Config with values from the environment. Unset variables
// leave the current values untouched.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvSessionPersistence); ok && v != "" {
		cfg.SessionPersistence = SessionPersistence(v)
	}
}

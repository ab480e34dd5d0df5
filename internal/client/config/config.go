package config

import "time"

// SessionPersistence selects where the session token lives between commands.
type SessionPersistence string

const (
	// PersistenceMemory keeps the token in process memory only, the
	// equivalent of session-scoped browser storage.
	PersistenceMemory SessionPersistence = "memory"
	// PersistenceFile stores the token (and refresh token, when issued) in
	// a file under the user config dir so it survives restarts.
	PersistenceFile SessionPersistence = "file"
)

// Config holds runtime settings for the InvoTrack CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the InvoTrack REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionPersistence: "memory" or "file".
//   - SessionFilePath: where PersistenceFile keeps the session; empty means
//     a default under os.UserConfigDir.
type Config struct {
	APIBaseURL         string
	RequestTimeout     time.Duration
	SessionPersistence SessionPersistence
	SessionFilePath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://invotrack-2.onrender.com"
	c.RequestTimeout = 15 * time.Second
	c.SessionPersistence = PersistenceMemory
	c.SessionFilePath = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Package config loads runtime configuration for the InvoTrack CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the InvoTrack API
//	-t int      per-request timeout (seconds)
//	-s string   session persistence: memory or file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://invotrack-2.onrender.com",
//	  "request_timeout": "15s",
//	  "session_persistence": "file",
//	  "session_file_path": "/home/user/.config/invocli/session.json"
//	}
//
// # Environment
//
//	INVOTRACK_API_URL                base URL of the API
//	INVOTRACK_SESSION_PERSISTENCE    memory | file
//
// Primary API
//
//   - type Config                     — runtime settings for the CLI
//   - func LoadConfig() *Config       — defaults, then JSON, env, flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config

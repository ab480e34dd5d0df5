package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/invotrack/invocli/internal/flagx"
	"github.com/invotrack/invocli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	APIBaseURL         string         `json:"api_base_url"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	SessionPersistence string         `json:"session_persistence"`
	SessionFilePath    string         `json:"session_file_path"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. With no such flag the function is a no-op. Read
// or unmarshal errors panic, matching the behavior of the flag loader.
// Only fields present in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionPersistence != "" {
		cfg.SessionPersistence = SessionPersistence(jc.SessionPersistence)
	}
	if jc.SessionFilePath != "" {
		cfg.SessionFilePath = jc.SessionFilePath
	}
}

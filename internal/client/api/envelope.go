package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeList decodes a listing response that may arrive either as a bare
// JSON array or wrapped in an envelope like {"success": true, "invoices":
// [...]}. key names the envelope field holding the array. A message
// containing emptyHint (e.g. "no invoices found") decodes as the empty
// list. Known API revisions differ on the shape, so both are accepted;
// anything else is a decode error rather than a silent coercion.
//
// An envelope with "success": false is an error even on HTTP 2xx. An
// absent success flag implies success.
func decodeList[T any](data []byte, key, emptyHint string) ([]T, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decoding %s list: %w", key, err)
		}
		return items, nil
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", key, err)
	}

	var message string
	if raw, ok := env["message"]; ok {
		_ = json.Unmarshal(raw, &message)
	}

	if raw, ok := env["success"]; ok {
		var success bool
		if err := json.Unmarshal(raw, &success); err != nil {
			return nil, fmt.Errorf("decoding %s response: invalid success flag", key)
		}
		if !success {
			if message == "" {
				message = "request failed"
			}
			return nil, &APIError{StatusCode: 0, Message: message}
		}
	}

	if raw, ok := env[key]; ok {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decoding %s list: %w", key, err)
		}
		return items, nil
	}

	if emptyHint != "" && strings.Contains(strings.ToLower(message), emptyHint) {
		return []T{}, nil
	}

	return nil, fmt.Errorf("unexpected %s response shape", key)
}

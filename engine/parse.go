package engine

import "encoding/json"

// ParseMaybeJSON decodes a value that legacy writers stored either as a JSON
// object or as a JSON-encoded string of an object. Absent or unparseable
// input yields the fallback; this boundary never raises.
func ParseMaybeJSON[T any](raw json.RawMessage, fallback T) T {
	if len(raw) == 0 {
		return fallback
	}

	var out T
	if err := json.Unmarshal(raw, &out); err == nil {
		return out
	}

	// Double-encoded: the payload is a string holding JSON.
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fallback
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return fallback
	}
	return out
}

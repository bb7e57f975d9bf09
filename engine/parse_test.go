package engine

import (
	"encoding/json"
	"testing"

	"packhouse/models"
)

func TestParseMaybeJSON_Object(t *testing.T) {
	raw := json.RawMessage(`{"fuerte4kgTotal": 12, "hass10kgTotal": 3}`)
	got := ParseMaybeJSON(raw, models.CountingTotals{})
	if got.Fuerte4kgTotal != 12 || got.Hass10kgTotal != 3 {
		t.Errorf("parsed %+v, want fuerte4kg=12 hass10kg=3", got)
	}
}

func TestParseMaybeJSON_DoubleEncodedString(t *testing.T) {
	raw := json.RawMessage(`"{\"fuerte4kgTotal\": 12}"`)
	got := ParseMaybeJSON(raw, models.CountingTotals{})
	if got.Fuerte4kgTotal != 12 {
		t.Errorf("parsed %+v, want fuerte4kg=12", got)
	}
}

func TestParseMaybeJSON_FallbackOnGarbage(t *testing.T) {
	fallback := models.CountingTotals{Hass4kgTotal: 7}

	if got := ParseMaybeJSON(nil, fallback); got != fallback {
		t.Errorf("nil input: got %+v, want fallback", got)
	}
	if got := ParseMaybeJSON(json.RawMessage(`"not json at all"`), fallback); got != fallback {
		t.Errorf("garbage string: got %+v, want fallback", got)
	}
	if got := ParseMaybeJSON(json.RawMessage(`12345`), fallback); got != fallback {
		t.Errorf("wrong shape: got %+v, want fallback", got)
	}
}

package entities

import (
	"encoding/json"
	"strings"
)

// MaskPrefix marks a secret value as redacted. Values carrying it are
// display-only and must never be written back into stored configuration.
const MaskPrefix = "****"

const maskVisible = 4

// MaskSecret returns the operator-facing form of a secret: the mask
// prefix plus the last four characters. Empty secrets stay empty.
func MaskSecret(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= maskVisible {
		return MaskPrefix
	}
	return MaskPrefix + v[len(v)-maskVisible:]
}

// IsMasked reports whether a value is a redacted representation rather
// than a real secret.
func IsMasked(v string) bool {
	return strings.HasPrefix(v, MaskPrefix)
}

// Secret is a secret field as received from the management API. It
// distinguishes three cases: the field was absent (unset), the client
// echoed back a masked display value (redacted), or the client supplied
// a new literal value.
type Secret struct {
	value    string
	redacted bool
	set      bool
}

func (s *Secret) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.set = true
	if IsMasked(v) {
		s.redacted = true
		return nil
	}
	s.value = v
	return nil
}

// Resolve returns the value to store: the current value when the field
// was unset or redacted, otherwise the supplied literal.
func (s Secret) Resolve(current string) string {
	if !s.set || s.redacted {
		return current
	}
	return s.value
}

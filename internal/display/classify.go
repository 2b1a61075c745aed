package display

import (
	"strings"

	"messagehub/backend/internal/models"
)

// Direction is the binary origin classification applied before rendering.
type Direction string

const (
	PatientOrigin Direction = models.ChatTypePatient
	TenantOrigin  Direction = models.ChatTypeTenant
)

// patientAliases collects every chatType value observed to mean a
// patient-side message across producers.
var patientAliases = map[string]bool{
	"patient":           true,
	"inbound":           true,
	"sms":               true,
	"user":              true,
	"user_from_patient": true,
	"from_patient":      true,
}

// Classify maps a raw record onto one of the two origins. The chatType alias
// table is checked first, then the direction/source/fromType hint for
// "inbound" or "patient" substrings, then a phone-shaped From field.
// Anything unrecognized falls back to TenantOrigin; the default is an
// arbitrary but fixed tie-break that keeps the classification total.
func Classify(raw models.RawMessage) Direction {
	if patientAliases[strings.ToLower(raw.ChatType)] {
		return PatientOrigin
	}

	hint := strings.ToLower(raw.DirectionHint())
	if strings.Contains(hint, "inbound") || strings.Contains(hint, "patient") {
		return PatientOrigin
	}

	if looksLikePhone(raw.From) {
		return PatientOrigin
	}

	return TenantOrigin
}

// looksLikePhone reports whether s resembles a dialable number: an optional
// leading '+' followed by at least seven digits.
func looksLikePhone(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if len(s) < 7 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

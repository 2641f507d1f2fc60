package common

import (
	"strconv"
	"strings"
)

// FormInt coerces a form value to an integer, falling back to def when the
// value is absent or malformed.
func FormInt(value string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return v
}

// FormFloat coerces a form value to a float, falling back to def when the
// value is absent or malformed.
func FormFloat(value string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return def
	}
	return v
}

// SafeString dereferences a possibly-nil string pointer.
func SafeString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StringOrNil returns a pointer to s, or nil when s is blank. Used to map
// optional form fields onto nullable columns.
func StringOrNil(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

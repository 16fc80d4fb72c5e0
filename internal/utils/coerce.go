package utils

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseFloatLoose parses s as a float and returns 0 when it is empty,
// malformed, or not finite.
func ParseFloatLoose(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// CoerceFloat reads a JSON value as a float. Numbers and numeric strings are
// accepted; anything else, including a missing value, yields 0.
func CoerceFloat(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		return ParseFloatLoose(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// StringOr reads a JSON string value, returning fallback when raw is
// missing, null, or not a string.
func StringOr(raw json.RawMessage, fallback string) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return fallback
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fallback
	}
	return s
}

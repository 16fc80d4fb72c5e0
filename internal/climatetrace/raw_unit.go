package climatetrace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// RawUnit is one element of an emissions API response: usually an object
// keyed by country code, but the API does not guarantee that shape.
type RawUnit struct {
	raw json.RawMessage
}

// NewRawUnit wraps a JSON document. The bytes are copied.
func NewRawUnit(b []byte) RawUnit {
	return RawUnit{raw: append(json.RawMessage(nil), b...)}
}

func (u RawUnit) MarshalJSON() ([]byte, error) {
	if len(u.raw) == 0 {
		return []byte("null"), nil
	}
	return u.raw, nil
}

func (u *RawUnit) UnmarshalJSON(b []byte) error {
	u.raw = append(u.raw[:0], b...)
	return nil
}

// IsObject reports whether the unit is a JSON object.
func (u RawUnit) IsObject() bool {
	trimmed := bytes.TrimLeft(u.raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// CountryEntries is the entry list found under one country key.
type CountryEntries struct {
	Code    string
	Entries []json.RawMessage
}

// Countries walks an object unit in document order. Keys whose value is not
// a list are skipped; a null value yields an empty entry list. A repeated key
// keeps the position of its first occurrence and the value of its last.
func (u RawUnit) Countries() ([]CountryEntries, error) {
	if !u.IsObject() {
		return nil, errors.New("response unit is not an object")
	}

	dec := json.NewDecoder(bytes.NewReader(u.raw))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading unit: %w", err)
	}

	type slot struct {
		entries []json.RawMessage
		isList  bool
	}
	var (
		order []string
		slots = make(map[string]*slot)
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading country key: %w", err)
		}
		code, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("reading entries for %q: %w", code, err)
		}

		s, seen := slots[code]
		if !seen {
			s = &slot{}
			slots[code] = s
			order = append(order, code)
		}
		s.entries = nil
		s.isList = json.Unmarshal(value, &s.entries) == nil
	}

	out := make([]CountryEntries, 0, len(order))
	for _, code := range order {
		if s := slots[code]; s.isList {
			out = append(out, CountryEntries{Code: code, Entries: s.entries})
		}
	}
	return out, nil
}

// splitUnits normalises a response body: an array contributes each element
// as its own unit, anything else contributes itself.
func splitUnits(body []byte) ([]RawUnit, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, errors.New("response is not valid JSON")
	}

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, fmt.Errorf("decoding response list: %w", err)
		}
		units := make([]RawUnit, 0, len(elems))
		for _, e := range elems {
			units = append(units, NewRawUnit(e))
		}
		return units, nil
	}

	return []RawUnit{NewRawUnit(trimmed)}, nil
}

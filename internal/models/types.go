package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSON stores an object column, used for multilingual content snapshots.
type JSON map[string]interface{}

// Value implements driver.Valuer.
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner.
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSON)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, j)
}

// StringArray stores a string list column (images, sizes, colors).
type StringArray []string

// Value implements driver.Valuer.
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if str, ok := value.(string); ok {
			bytes = []byte(str)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, s)
}

// JSONValue stores a single polymorphic JSON value (scalar, array or
// object). The settings table declares the expected kind in a separate
// column; decoding happens at the service boundary.
type JSONValue []byte

// Value implements driver.Valuer.
func (v JSONValue) Value() (driver.Value, error) {
	if len(v) == 0 {
		return nil, nil
	}
	return []byte(v), nil
}

// Scan implements sql.Scanner.
func (v *JSONValue) Scan(value interface{}) error {
	if value == nil {
		*v = nil
		return nil
	}
	switch data := value.(type) {
	case []byte:
		*v = append(JSONValue(nil), data...)
	case string:
		*v = JSONValue(data)
	}
	return nil
}

// MarshalJSON passes the raw value through unchanged.
func (v JSONValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return []byte(v), nil
}

// UnmarshalJSON keeps the raw value as-is.
func (v *JSONValue) UnmarshalJSON(data []byte) error {
	*v = append(JSONValue(nil), data...)
	return nil
}

package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// Flag is a nullable boolean persisted as an integer column (NULL, 0 or 1).
// Columns such as active and markedfordelete use it.
type Flag struct {
	Bool  bool
	Valid bool
}

// FlagOf returns a set flag holding b.
func FlagOf(b bool) Flag {
	return Flag{Bool: b, Valid: true}
}

// IsSet reports whether the flag is present and true. NULL counts as false.
func (f Flag) IsSet() bool {
	return f.Valid && f.Bool
}

// Scan implements sql.Scanner.
func (f *Flag) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*f = Flag{}
	case int64:
		*f = FlagOf(v != 0)
	case int32:
		*f = FlagOf(v != 0)
	case int:
		*f = FlagOf(v != 0)
	case bool:
		*f = FlagOf(v)
	case []byte:
		return f.scanText(string(v))
	case string:
		return f.scanText(v)
	default:
		return fmt.Errorf("flag: unsupported scan type %T", value)
	}
	return nil
}

func (f *Flag) scanText(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("flag: parse %q: %w", s, err)
	}
	*f = FlagOf(n != 0)
	return nil
}

// Value implements driver.Valuer.
func (f Flag) Value() (driver.Value, error) {
	if !f.Valid {
		return nil, nil
	}
	if f.Bool {
		return int64(1), nil
	}
	return int64(0), nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Bool)
}

// UnmarshalJSON accepts null, true/false and the integers 0/1.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = Flag{}
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlagOf(b)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flag: expected boolean, integer or null, got %s", data)
	}
	*f = FlagOf(n != 0)
	return nil
}

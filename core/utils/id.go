package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when a value cannot be used as an identifier.
var ErrInvalidID = errors.New("invalid identifier")

// ID is the normalized, comparable form of a catalog identifier.
// Numeric identifiers are stored in canonical decimal form so that 9, 9.0 and "9" compare equal.
type ID string

// String returns the raw identifier text.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty.
func (id ID) IsZero() bool {
	return id == ""
}

// IsNumeric reports whether the identifier is a canonical integer.
func (id ID) IsNumeric() bool {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return err == nil && strconv.FormatInt(n, 10) == string(id)
}

// JSONValue returns the value used when the identifier is written to JSON:
// numeric identifiers become JSON numbers, everything else stays a string.
func (id ID) JSONValue() any {
	if id.IsNumeric() {
		return json.Number(id)
	}
	return string(id)
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.JSONValue())
}

// UnmarshalJSON implements json.Unmarshaler. It accepts numbers and strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := NormalizeID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Less orders identifiers numerically when both are numeric, lexicographically otherwise.
// Numeric identifiers sort before non-numeric ones. Equal numeric values ("7", "007") fall back
// to a lexicographic comparison so the order is total.
func (id ID) Less(other ID) bool {
	a, aErr := strconv.ParseInt(string(id), 10, 64)
	b, bErr := strconv.ParseInt(string(other), 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		if a != b {
			return a < b
		}
		return id < other
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	default:
		return id < other
	}
}

// NormalizeID converts various types to an ID using explicit type switching.
// It handles standard integer types, integral floats, json.Number, strings and byte slices.
// Strings are trimmed and otherwise kept as written (" 9 " becomes "9", "007" stays "007").
func NormalizeID(val any) (ID, error) {
	switch v := val.(type) {
	case nil:
		return "", fmt.Errorf("%w: null", ErrInvalidID)
	case ID:
		return normalizeString(string(v))
	case int:
		return ID(strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return ID(strconv.FormatInt(v, 10)), nil
	case int32:
		return ID(strconv.FormatInt(int64(v), 10)), nil
	case int16:
		return ID(strconv.FormatInt(int64(v), 10)), nil
	case int8:
		return ID(strconv.FormatInt(int64(v), 10)), nil
	case uint:
		return ID(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return ID(strconv.FormatUint(v, 10)), nil
	case uint32:
		return ID(strconv.FormatUint(uint64(v), 10)), nil
	case uint16:
		return ID(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return ID(strconv.FormatUint(uint64(v), 10)), nil
	case float64:
		return fromFloat(v)
	case float32:
		return fromFloat(float64(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return ID(strconv.FormatInt(i, 10)), nil
		}
		f, err := v.Float64()
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidID, v.String())
		}
		return fromFloat(f)
	case string:
		return normalizeString(v)
	case []byte:
		return normalizeString(string(v))
	case bool:
		return "", fmt.Errorf("%w: boolean %v", ErrInvalidID, v)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidID, v)
	}
}

// MustID is NormalizeID for literals known to be valid. It panics otherwise.
func MustID(val any) ID {
	id, err := NormalizeID(val)
	if err != nil {
		panic(err)
	}
	return id
}

func fromFloat(f float64) (ID, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidID, f)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return ID(strconv.FormatInt(int64(f), 10)), nil
	}
	return ID(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// normalizeString trims s and copies it, since callers pass strings backed by reused
// request buffers and IDs end up as map keys.
func normalizeString(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidID)
	}
	return ID(strings.Clone(s)), nil
}

package data

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NullFloat is a float64 that may be absent.
// The zero value is the missing value.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float wraps a present value
func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// Null is the missing value
func Null() NullFloat {
	return NullFloat{}
}

// ParseNullFloat parses a source cell. Empty, unparseable and non-finite
// cells are all treated as missing.
func ParseNullFloat(s string) NullFloat {
	s = strings.TrimSpace(s)
	if s == "" {
		return Null()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Null()
	}
	return Float(v)
}

// String returns the canonical text form, or "" when missing
func (n NullFloat) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Float64, 'g', -1, 64)
}

// MarshalJSON encodes a missing value as null
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// UnmarshalJSON accepts a number or null
func (n *NullFloat) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = Null()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Float(v)
	return nil
}

package requests

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field is a scalar request value that may arrive as a JSON string, number or
// boolean, or as a form value. Conversion to a column type is deferred to the
// caller so that a bad value surfaces as a persistence failure rather than a
// decoding one.
type Field struct {
	raw     string
	set     bool
	literal bool // JSON number or boolean
}

// Value builds a Field as if it had been submitted as a string.
func Value(s string) Field {
	return Field{raw: s, set: true}
}

func (f *Field) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null":
		*f = Field{}
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = Field{raw: str, set: true}
	case strings.HasPrefix(s, "{"), strings.HasPrefix(s, "["):
		return fmt.Errorf("expected a scalar value, got %s", s)
	default:
		*f = Field{raw: s, set: true, literal: true}
	}
	return nil
}

// UnmarshalParam lets gin's form binding fill a Field.
func (f *Field) UnmarshalParam(param string) error {
	*f = Value(param)
	return nil
}

func (f Field) IsSet() bool { return f.set }

func (f Field) String() string { return f.raw }

// Blank reports whether the field was omitted or holds only whitespace.
// Update endpoints skip blank fields.
func (f Field) Blank() bool {
	return !f.set || strings.TrimSpace(f.raw) == ""
}

// Truthy reports whether the field counts as supplied for a required check:
// absent, null, empty, JSON false and JSON zero do not.
func (f Field) Truthy() bool {
	if !f.set || f.raw == "" {
		return false
	}
	if f.literal {
		if f.raw == "false" {
			return false
		}
		if d, err := decimal.NewFromString(f.raw); err == nil && d.IsZero() {
			return false
		}
	}
	return true
}

// Flag reads the field as a filter switch: boolean spellings are honoured,
// anything else falls back to Truthy.
func (f Field) Flag() bool {
	if b, err := f.Bool(); err == nil {
		return b
	}
	return f.Truthy()
}

var (
	minInteger = decimal.NewFromInt(math.MinInt32)
	maxInteger = decimal.NewFromInt(math.MaxInt32)
)

// Int64 reads the field as a value for an INTEGER column. Strings must use
// integer syntax; a JSON number may be written as an integral decimal (3.0).
// Values outside the 32-bit column range are rejected.
func (f Field) Int64() (int64, error) {
	s := strings.TrimSpace(f.raw)
	if i, err := strconv.ParseInt(s, 10, 32); err == nil {
		return i, nil
	}

	switch {
	case isIntegerSyntax(s):
		return 0, fmt.Errorf("value %q is out of range for type integer", f.raw)
	case !f.literal:
		return 0, fmt.Errorf("invalid input syntax for type integer: %q", f.raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("invalid input syntax for type integer: %q", f.raw)
	}
	if d.LessThan(minInteger) || d.GreaterThan(maxInteger) {
		return 0, fmt.Errorf("value %q is out of range for type integer", f.raw)
	}
	return d.IntPart(), nil
}

func isIntegerSyntax(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (f Field) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(f.raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid input syntax for type numeric: %q", f.raw)
	}
	return d, nil
}

func (f Field) Bool() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(f.raw)) {
	case "t", "true", "y", "yes", "on", "1":
		return true, nil
	case "f", "false", "n", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid input syntax for type boolean: %q", f.raw)
}

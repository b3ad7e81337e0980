package calculator

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that always encodes as a floating-point literal:
// integral values keep a ".0" suffix and the exponent form is used outside
// 1e-4 <= |x| < 1e16. JSON has no literal for non-finite values, so they
// are encoded as the strings "Infinity", "-Infinity" and "NaN".
type Number float64

var errNotANumber = errors.New("not a number")

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	}
	return []byte(FormatNumber(f)), nil
}

// FormatNumber renders a finite f using the shortest representation that
// round-trips, always with a fraction or an exponent.
func FormatNumber(f float64) string {
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}

// ParseNumber parses a decimal float literal. Surrounding whitespace is
// ignored, underscores are allowed between digits, "inf", "infinity" and
// "nan" are accepted in any case with an optional sign, and literals beyond float64 range become
// ±Inf. Hexadecimal literals are rejected.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	unsigned := strings.TrimLeft(s, "+-")
	if len(s)-len(unsigned) > 1 {
		return 0, errNotANumber
	}
	if strings.EqualFold(unsigned, "nan") {
		return math.NaN(), nil
	}
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, errNotANumber
	}
	if strings.Contains(s, "_") {
		if !validUnderscores(s) {
			return 0, errNotANumber
		}
		s = strings.ReplaceAll(s, "_", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, errNotANumber
	}
	return f, nil
}

func validUnderscores(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Coerce converts a loosely typed JSON value to a float: JSON numbers,
// numeric strings, and booleans as 1 or 0.
func Coerce(v any) (float64, error) {
	switch v := v.(type) {
	case json.Number:
		return ParseNumber(v.String())
	case float64:
		return v, nil
	case string:
		return ParseNumber(v)
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, errNotANumber
	}
}

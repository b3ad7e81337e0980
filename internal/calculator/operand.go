package calculator

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// maxBodyBytes caps POST /calc bodies. Larger bodies are treated as absent.
const maxBodyBytes = 1 << 20

// ParseQuery splits a raw query string on '&' only. Unlike url.ParseQuery it
// never drops a pair: ';' stays part of the value, and malformed percent
// escapes are kept literally while valid ones around them are decoded.
// A pair without '=' has an empty value.
func ParseQuery(raw string) url.Values {
	q := url.Values{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		name = unescapeLenient(name)
		q[name] = append(q[name], unescapeLenient(value))
	}
	return q
}

func unescapeLenient(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case isDigit(c):
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// QueryOperand reads and parses the named query parameter. A present but
// empty parameter is an invalid number, not a missing one.
func QueryOperand(q url.Values, name string) (float64, error) {
	values, ok := q[name]
	if !ok || len(values) == 0 {
		return 0, errMissingParameter(name)
	}

	raw := values[0]
	f, err := ParseNumber(raw)
	if err != nil {
		return 0, errInvalidNumber(name, raw)
	}
	return f, nil
}

// QueryOperands reads a then b, stopping at the first failure.
func QueryOperands(q url.Values) (float64, float64, error) {
	a, err := QueryOperand(q, "a")
	if err != nil {
		return 0, 0, err
	}

	b, err := QueryOperand(q, "b")
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

// DecodeBody reads a POST /calc body. Anything other than a single JSON
// object sent with a JSON content type decodes as an empty request.
func DecodeBody(w http.ResponseWriter, r *http.Request) CalcRequest {
	var req CalcRequest

	if r.Body == nil || !isJSONContentType(r.Header.Get("Content-Type")) {
		return req
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return req
	}

	fields, ok := decodeObject(data)
	if !ok {
		return req
	}

	req.Op, _ = fields["op"].(string)
	req.A = fields["a"]
	req.B = fields["b"]
	return req
}

func decodeObject(data []byte) (map[string]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return fields, true
}

func isJSONContentType(header string) bool {
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mt == "application/json" ||
		(strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}

// Operation validates the op field.
func (req CalcRequest) Operation() (Operation, error) {
	op, ok := ParseOperation(req.Op)
	if !ok {
		return "", ErrInvalidOperation
	}
	return op, nil
}

// Operands coerces a and b. Either failing reports the same combined error.
func (req CalcRequest) Operands() (float64, float64, error) {
	a, errA := Coerce(req.A)
	b, errB := Coerce(req.B)
	if errA != nil || errB != nil {
		return 0, 0, ErrInvalidOperands
	}
	return a, b, nil
}

package calculator

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryOperand(t *testing.T) {
	tests := []struct {
		query   string
		want    float64
		wantErr string
	}{
		{query: "a=2", want: 2},
		{query: "a=-0.5&a=9", want: -0.5},
		{query: "b=2", wantErr: "Missing query parameter: 'a'"},
		{query: "a=foo", wantErr: "Invalid number for 'a': 'foo'"},
		{query: "a=", wantErr: "Invalid number for 'a': ''"},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			got, err := QueryOperand(q, "a")
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseQueryKeepsEveryPair(t *testing.T) {
	tests := []struct {
		raw  string
		want url.Values
	}{
		{raw: "a=1&b=2", want: url.Values{"a": {"1"}, "b": {"2"}}},
		{raw: "a=%zz&b=2", want: url.Values{"a": {"%zz"}, "b": {"2"}}},
		{raw: "a=%zz%41", want: url.Values{"a": {"%zzA"}}},
		{raw: "a=1;b=2", want: url.Values{"a": {"1;b=2"}}},
		{raw: "a=1+2&b=%2B3", want: url.Values{"a": {"1 2"}, "b": {"+3"}}},
		{raw: "a&&b=", want: url.Values{"a": {""}, "b": {""}}},
		{raw: "a=1&a=2", want: url.Values{"a": {"1", "2"}}},
		{raw: "", want: url.Values{}},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseQuery(tc.raw))
		})
	}
}

func TestQueryOperandsShortCircuitsOnA(t *testing.T) {
	q, err := url.ParseQuery("a=foo")
	require.NoError(t, err)

	_, _, err = QueryOperands(q)
	require.Error(t, err)
	assert.Equal(t, "Invalid number for 'a': 'foo'", err.Error())

	q, err = url.ParseQuery("a=1&b=bar")
	require.NoError(t, err)

	_, _, err = QueryOperands(q)
	require.Error(t, err)
	assert.Equal(t, "Invalid number for 'b': 'bar'", err.Error())
}

func newCalcRequest(body, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/calc", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestDecodeBody(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		req := DecodeBody(httptest.NewRecorder(), newCalcRequest(`{"op":"mul","a":"2","b":4}`, "application/json"))
		assert.Equal(t, "mul", req.Op)
		a, b, err := req.Operands()
		require.NoError(t, err)
		assert.Equal(t, 2.0, a)
		assert.Equal(t, 4.0, b)
	})

	t.Run("vendor json content type", func(t *testing.T) {
		req := DecodeBody(httptest.NewRecorder(), newCalcRequest(`{"op":"add"}`, "application/vnd.api+json; charset=utf-8"))
		assert.Equal(t, "add", req.Op)
	})

	empty := []struct {
		name        string
		body        string
		contentType string
	}{
		{name: "no content type", body: `{"op":"add","a":1,"b":2}`},
		{name: "text content type", body: `{"op":"add","a":1,"b":2}`, contentType: "text/plain"},
		{name: "malformed", body: `{"op":`, contentType: "application/json"},
		{name: "trailing data", body: `{"op":"add"} {}`, contentType: "application/json"},
		{name: "array", body: `[1,2]`, contentType: "application/json"},
		{name: "null", body: `null`, contentType: "application/json"},
		{name: "non-string op", body: `{"op":1,"a":1,"b":2}`, contentType: "application/json"},
	}
	for _, tc := range empty {
		t.Run(tc.name, func(t *testing.T) {
			req := DecodeBody(httptest.NewRecorder(), newCalcRequest(tc.body, tc.contentType))
			_, err := req.Operation()
			require.Error(t, err)
			assert.Equal(t, "Invalid or missing 'op'. Use: add/sub/mul/div", err.Error())
		})
	}
}

func TestCalcRequestOperandsIsAtomic(t *testing.T) {
	for _, req := range []CalcRequest{
		{Op: "add", A: "x", B: 2.0},
		{Op: "add", A: 2.0, B: "x"},
		{Op: "add", A: nil, B: nil},
		{Op: "add", A: 1.0},
	} {
		_, _, err := req.Operands()
		require.Error(t, err)
		assert.Equal(t, "Fields 'a' and 'b' must be numbers", err.Error())
	}
}

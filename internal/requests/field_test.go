package requests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Value Field `json:"value"`
}

func decode(t *testing.T, body string) Field {
	t.Helper()
	var s sample
	require.NoError(t, json.Unmarshal([]byte(body), &s))
	return s.Value
}

func TestFieldFromJSON(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		set    bool
		blank  bool
		truthy bool
		raw    string
	}{
		{name: "absent", body: `{}`, set: false, blank: true, truthy: false},
		{name: "null", body: `{"value":null}`, set: false, blank: true, truthy: false},
		{name: "empty string", body: `{"value":""}`, set: true, blank: true, truthy: false},
		{name: "whitespace", body: `{"value":"   "}`, set: true, blank: true, truthy: true, raw: "   "},
		{name: "string", body: `{"value":"Acme"}`, set: true, blank: false, truthy: true, raw: "Acme"},
		{name: "string zero", body: `{"value":"0"}`, set: true, blank: false, truthy: true, raw: "0"},
		{name: "number", body: `{"value":12}`, set: true, blank: false, truthy: true, raw: "12"},
		{name: "number zero", body: `{"value":0}`, set: true, blank: false, truthy: false, raw: "0"},
		{name: "float zero", body: `{"value":0.0}`, set: true, blank: false, truthy: false, raw: "0.0"},
		{name: "true", body: `{"value":true}`, set: true, blank: false, truthy: true, raw: "true"},
		{name: "false", body: `{"value":false}`, set: true, blank: false, truthy: false, raw: "false"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := decode(t, tc.body)

			assert.Equal(t, tc.set, f.IsSet())
			assert.Equal(t, tc.blank, f.Blank())
			assert.Equal(t, tc.truthy, f.Truthy())
			assert.Equal(t, tc.raw, f.String())
		})
	}
}

func TestFieldRejectsNonScalar(t *testing.T) {
	var s sample
	assert.Error(t, json.Unmarshal([]byte(`{"value":{"a":1}}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"value":[1]}`), &s))
}

func TestFieldConversions(t *testing.T) {
	i, err := Value(" 42 ").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(42), i)

	i, err = decode(t, `{"value":3.0}`).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(3), i)

	_, err = Value("3.5").Int64()
	assert.Error(t, err)
	_, err = Value("abc").Int64()
	assert.Error(t, err)

	d, err := Value("9.99").Decimal()
	require.NoError(t, err)
	assert.Equal(t, "9.99", d.String())
	_, err = Value("cheap").Decimal()
	assert.Error(t, err)

	b, err := Value("FALSE").Bool()
	require.NoError(t, err)
	assert.False(t, b)
	b, err = decode(t, `{"value":true}`).Bool()
	require.NoError(t, err)
	assert.True(t, b)
	_, err = Value("maybe").Bool()
	assert.Error(t, err)
}

func TestFieldFlag(t *testing.T) {
	testCases := []struct {
		name     string
		field    Field
		expected bool
	}{
		{name: "absent", field: Field{}, expected: false},
		{name: "empty", field: Value(""), expected: false},
		{name: "string false", field: Value("false"), expected: false},
		{name: "string zero", field: Value("0"), expected: false},
		{name: "string true", field: Value("true"), expected: true},
		{name: "other text", field: Value("anything"), expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.field.Flag())
		})
	}
}

func TestFieldInt64Bounds(t *testing.T) {
	testCases := []struct {
		name        string
		field       Field
		expected    int64
		expectedErr string
	}{
		{name: "largest integer", field: Value("2147483647"), expected: 2147483647},
		{name: "smallest integer", field: decodeValue(t, `-2147483648`), expected: -2147483648},
		{name: "integral JSON exponent", field: decodeValue(t, `1e1`), expected: 10},
		{name: "string past uint64", field: Value("18446744073709551617"), expectedErr: `value "18446744073709551617" is out of range for type integer`},
		{name: "JSON number past uint64", field: decodeValue(t, `18446744073709551617`), expectedErr: `value "18446744073709551617" is out of range for type integer`},
		{name: "string past int64", field: Value("9223372036854775808"), expectedErr: `value "9223372036854775808" is out of range for type integer`},
		{name: "JSON number past int32", field: decodeValue(t, `2147483648`), expectedErr: `value "2147483648" is out of range for type integer`},
		{name: "negative past int32", field: Value("-2147483649"), expectedErr: `value "-2147483649" is out of range for type integer`},
		{name: "decimal string", field: Value("12.0"), expectedErr: `invalid input syntax for type integer: "12.0"`},
		{name: "exponent string", field: Value("1e1"), expectedErr: `invalid input syntax for type integer: "1e1"`},
		{name: "fractional JSON number", field: decodeValue(t, `3.5`), expectedErr: `invalid input syntax for type integer: "3.5"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			i, err := tc.field.Int64()
			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectedErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, i)
		})
	}
}

func decodeValue(t *testing.T, raw string) Field {
	t.Helper()
	return decode(t, `{"value":`+raw+`}`)
}

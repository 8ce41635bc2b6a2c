package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Float(t *testing.T) {
	p := Params{
		"f":      1.5,
		"i":      3,
		"i64":    int64(4),
		"num":    json.Number("2.25"),
		"str":    " $1,250.50 ",
		"pct":    "7%",
		"bad":    "abc",
		"bool":   true,
		"absent": nil,
	}

	cases := map[string]float64{"f": 1.5, "i": 3, "i64": 4, "num": 2.25, "str": 1250.5, "pct": 7}
	for name, want := range cases {
		got, err := p.Float(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	for _, name := range []string{"bad", "bool", "absent", "missing"} {
		_, err := p.Float(name)
		assert.ErrorIs(t, err, ErrInvalidParams, name)
	}
}

func TestParams_Int(t *testing.T) {
	p := Params{"whole": 30.0, "str": "65", "frac": 30.5, "huge": 1e12}

	v, err := p.Int("whole")
	require.NoError(t, err)
	assert.Equal(t, 30, v)

	v, err = p.Int("str")
	require.NoError(t, err)
	assert.Equal(t, 65, v)

	_, err = p.Int("frac")
	assert.ErrorIs(t, err, ErrInvalidParams)
	_, err = p.Int("huge")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestParams_String(t *testing.T) {
	p := Params{"s": "married", "n": 42.0, "list": []string{"a"}}

	s, err := p.String("s")
	require.NoError(t, err)
	assert.Equal(t, "married", s)

	s, err = p.String("n")
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	_, err = p.String("list")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestParams_JSON(t *testing.T) {
	p := Params{
		"raw": `{"Cash": 10}`,
		"obj": map[string]interface{}{"Cash": 10.0},
		"bad": func() {},
	}

	s, err := p.JSON("raw")
	require.NoError(t, err)
	assert.Equal(t, `{"Cash": 10}`, s)

	s, err = p.JSON("obj")
	require.NoError(t, err)
	assert.JSONEq(t, `{"Cash": 10}`, s)

	_, err = p.JSON("bad")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

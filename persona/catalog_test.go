package persona

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{
		"marcus_chen",
		"coach_mike",
		"dr_sarah",
		"tony_money",
		"british_marcus",
		"southern_marcus",
	}, c.Keys())
	assert.Equal(t, "marcus_chen", c.Default().Key)
	assert.Len(t, c.List(), 6)
}

func TestCatalog_Get(t *testing.T) {
	c := Default()

	p, err := c.Get("tony_money")
	require.NoError(t, err)
	assert.Equal(t, "Tony 'The Money Man' Rodriguez", p.Name)
	assert.Equal(t, "onyx", p.Voice)
	assert.Equal(t, "street_smart_advisor", p.Personality)
	assert.True(t, strings.HasPrefix(p.Instructions, `You are Tony "The Money Man" Rodriguez`))
	assert.NotEmpty(t, p.Greeting)

	_, err = c.Get("nobody")
	assert.ErrorIs(t, err, ErrUnknownPersona)
}

func TestCatalog_Select(t *testing.T) {
	c := Default()

	p, err := c.Select("")
	require.NoError(t, err)
	assert.Equal(t, "Marcus Chen", p.Name)

	p, err = c.Select("british_marcus")
	require.NoError(t, err)
	assert.Equal(t, "british_advisor", p.Personality)
}

func TestCatalog_KeysAreCopies(t *testing.T) {
	c := Default()
	keys := c.Keys()
	keys[0] = "changed"

	assert.Equal(t, "marcus_chen", c.Keys()[0])
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":        "order: [",
		"empty order":     "personas: {}",
		"undefined key":   "order: [a]\npersonas:\n  b: {name: B, voice: echo}\n",
		"missing voice":   "order: [a]\npersonas:\n  a: {name: A}\n",
		"unknown default": "default: z\norder: [a]\npersonas:\n  a: {name: A, voice: echo}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

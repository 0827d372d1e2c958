package ytdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKinds(t *testing.T) {
	n, err := Parse([]byte(`{"s":"x","n":212,"f":1.5e3,"t":true,"z":null,"o":{},"a":[]}`))
	require.NoError(t, err)
	require.Equal(t, Object, n.Kind())

	tests := []struct {
		key  string
		kind Kind
		text string
		ok   bool
	}{
		{"s", String, "x", true},
		{"n", Number, "212", true},
		{"f", Number, "1.5e3", true},
		{"t", Bool, "true", true},
		{"z", Null, "", false},
		{"o", Object, "", false},
		{"a", Array, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := n.Get(tt.key)
			require.NotNil(t, v)
			assert.Equal(t, tt.kind, v.Kind())
			text, ok := v.Text()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.text, text)
		})
	}
}

func TestParseKeepsMemberOrder(t *testing.T) {
	n, err := Parse([]byte(`{"zeta":1,"alpha":2,"mid":3}`))
	require.NoError(t, err)

	var keys []string
	for _, m := range n.Members() {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
}

func TestParseDuplicateKey(t *testing.T) {
	n, err := Parse([]byte(`{"a":1,"b":2,"a":3}`))
	require.NoError(t, err)
	require.Equal(t, 2, n.Len())
	assert.Equal(t, "a", n.Members()[0].Key)
	assert.Equal(t, "3", n.Get("a").String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"unterminated object", `{"a":1`},
		{"unterminated array", `[1,2`},
		{"bad token", `{"a":}`},
		{"trailing value", `{} {}`},
		{"javascript", `{a:1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 5000
	in := strings.Repeat(`{"k":[`, depth) + "1" + strings.Repeat(`]}`, depth)
	n, err := Parse([]byte(in))
	require.NoError(t, err)
	assert.Len(t, FindValuesByKey(n, "k"), depth)
}

func TestDig(t *testing.T) {
	n, err := Parse([]byte(`{"title":{"runs":[{"text":"first"},{"text":"second"}]}}`))
	require.NoError(t, err)

	assert.Equal(t, "first", n.Dig("title", "runs", "0", "text").String())
	assert.Equal(t, "second", n.Dig("title", "runs", "1", "text").String())
	assert.Nil(t, n.Dig("title", "runs", "2", "text"))
	assert.Nil(t, n.Dig("title", "runs", "x"))
	assert.Nil(t, n.Dig("title", "runs", "0", "text", "deeper"))
	assert.Same(t, n, n.Dig())

	var nilNode *Node
	assert.Nil(t, nilNode.Dig("a"))
	assert.Equal(t, Null, nilNode.Kind())
}

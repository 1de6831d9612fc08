package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{CLASS, "class"},
		{TOKEN, "token"},
		{IGNORE, "ignore"},
		{ID, "ID"},
		{SET_START, "["},
		{SET_START_NEGATE, "[^"},
		{SET_END, "]"},
		{DASH_SET_END, "-]"},
		{OPEN_PAREN, "("},
		{CLOSE_PAREN, ")"},
		{SLASH, "/"},
		{PIPE, "|"},
		{CHARACTER, "CHARACTER"},
		{DASH, "-"},
		{STAR, "*"},
		{PLUS, "+"},
		{QUESTION, "?"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.kind.String())
	}
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, CLASS, KEYWORDS["class"])
	assert.Equal(t, TOKEN, KEYWORDS["token"])
	assert.Equal(t, IGNORE, KEYWORDS["ignore"])

	_, ok := KEYWORDS["Class"]
	assert.False(t, ok)
}

func TestTokenName(t *testing.T) {
	id := New("Foo", ID, NewPosition("test.lag", 1, 1))
	assert.Equal(t, "Foo", id.Name())

	keyword := New("class", CLASS, NewPosition("test.lag", 1, 1))
	assert.Equal(t, "class", keyword.Name())

	character := New("\n", CHARACTER, NewPosition("test.lag", 1, 1))
	assert.Equal(t, "\n", character.Name())
}

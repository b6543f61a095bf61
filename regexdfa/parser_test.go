package regexdfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnclosedParentheses(t *testing.T) {
	for _, pattern := range []string{"((", "(a", "(a|b", "a(bc"} {
		_, err := Convert(pattern)
		require.Error(t, err, "pattern %q", pattern)
		assert.ErrorIs(t, err, ErrMismatchedParentheses, "pattern %q", pattern)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := Convert("a$")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedCharacter)

	var uc *UnexpectedCharError
	require.ErrorAs(t, err, &uc)
	assert.Equal(t, '$', uc.Char)
	assert.False(t, uc.EOF)
}

func TestEmptyPattern(t *testing.T) {
	_, err := Convert("")
	require.Error(t, err)

	var uc *UnexpectedCharError
	require.ErrorAs(t, err, &uc)
	assert.True(t, uc.EOF)
}

func TestDanglingUnion(t *testing.T) {
	_, err := Convert("a|")
	require.Error(t, err)

	var uc *UnexpectedCharError
	require.ErrorAs(t, err, &uc)
	assert.True(t, uc.EOF)
}

func TestUnexpectedOperator(t *testing.T) {
	// '|' where a symbol is required
	_, err := Convert("(|a)")
	require.Error(t, err)

	var uc *UnexpectedCharError
	require.ErrorAs(t, err, &uc)
	assert.Equal(t, '|', uc.Char)
}

func TestErrorMessages(t *testing.T) {
	_, err := Convert("((")
	require.EqualError(t, err, "mismatched parentheses")

	_, err = Convert("a$")
	require.EqualError(t, err, `unexpected character '$'`)

	_, err = Convert("")
	require.EqualError(t, err, "unexpected end of pattern")
}

func TestTrailingCloseParenIgnored(t *testing.T) {
	// a ')' with no open group ends the parse; everything before it still
	// converts
	a := convert(t, "ab)")
	assert.True(t, a.Match("ab"))
	assert.False(t, a.Match("ab)"))
}

func TestUnicodeSymbols(t *testing.T) {
	a := convert(t, "д0ж*")
	assert.True(t, a.Match("д0"))
	assert.True(t, a.Match("д0жжж"))
	assert.False(t, a.Match("д"))
}

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// typesOf strips position info so tests can assert on type+literal only.
func typesOf(toks []Token) []Token {
	out := make([]Token, len(toks))
	for i, t := range toks {
		out[i] = Token{Type: t.Type, Literal: t.Literal, IsFloat: t.IsFloat}
	}
	return out
}

func TestNextToken_NumbersOperatorsIdentifiers(t *testing.T) {
	input := `123 + 2.5 * foo_1 - bar`
	toks := typesOf(Tokenize(input))

	expected := []Token{
		NewToken(NUMBER_LIT, "123", 0, 0),
		NewToken(PLUS_OP, "+", 0, 0),
		{Type: NUMBER_LIT, Literal: "2.5", IsFloat: true},
		NewToken(MUL_OP, "*", 0, 0),
		NewToken(IDENTIFIER_ID, "foo_1", 0, 0),
		NewToken(MINUS_OP, "-", 0, 0),
		NewToken(IDENTIFIER_ID, "bar", 0, 0),
		NewToken(EOF_TYPE, "", 0, 0),
	}
	assert.Equal(t, expected, toks)
}

func TestNextToken_Keywords(t *testing.T) {
	input := `let const func return if then else end while do for in break continue import true false nil and or not try catch`
	toks := Tokenize(input)
	want := []Type{
		LET_KEY, CONST_KEY, FUNC_KEY, RETURN_KEY, IF_KEY, THEN_KEY, ELSE_KEY,
		END_KEY, WHILE_KEY, DO_KEY, FOR_KEY, IN_KEY, BREAK_KEY, CONTINUE_KEY,
		IMPORT_KEY, TRUE_KEY, FALSE_KEY, NIL_KEY, AND_KEY, OR_KEY, NOT_KEY,
		TRY_KEY, CATCH_KEY, EOF_TYPE,
	}
	assert.Len(t, toks, len(want))
	for i, w := range want {
		assert.Equal(t, w, toks[i].Type, "token %d", i)
	}
}

func TestNextToken_TwoCharOperatorsBeforeOneChar(t *testing.T) {
	input := `== != <= >= < > =`
	toks := Tokenize(input)
	want := []Type{EQ_OP, NE_OP, LE_OP, GE_OP, LT_OP, GT_OP, ASSIGN, EOF_TYPE}
	for i, w := range want {
		assert.Equal(t, w, toks[i].Type, "token %d", i)
	}
}

func TestNextToken_StringEscapes(t *testing.T) {
	toks := Tokenize(`"hello\nworld" "a\"b" "plain"`)
	assert.Equal(t, STRING_LIT, toks[0].Type)
	assert.Equal(t, "hello\nworld", toks[0].Literal)
	assert.Equal(t, `a"b`, toks[1].Literal)
	assert.Equal(t, "plain", toks[2].Literal)
}

func TestNextToken_UnterminatedString(t *testing.T) {
	toks := Tokenize(`"unterminated`)
	assert.Equal(t, INVALID_TYPE, toks[0].Type)
}

func TestNextToken_UnterminatedStringAcrossNewline(t *testing.T) {
	toks := Tokenize("\"oops\nmore")
	assert.Equal(t, INVALID_TYPE, toks[0].Type)
}

func TestNextToken_UnexpectedCharacter(t *testing.T) {
	toks := Tokenize(`@`)
	assert.Equal(t, INVALID_TYPE, toks[0].Type)
}

func TestNextToken_CommentsIgnored(t *testing.T) {
	input := "let x = 1 # this is a comment\nlet y = 2"
	toks := Tokenize(input)
	var types []Type
	for _, tk := range toks {
		types = append(types, tk.Type)
	}
	assert.Contains(t, types, NEWLINE_TYPE)
	for _, tk := range toks {
		assert.NotContains(t, tk.Literal, "this is a comment")
	}
}

func TestNextToken_NewlineIsASignificantToken(t *testing.T) {
	toks := Tokenize("let x = 1\nlet y = 2")
	found := false
	for _, tk := range toks {
		if tk.Type == NEWLINE_TYPE {
			found = true
		}
	}
	assert.True(t, found, "expected an explicit NEWLINE_TYPE token")
}

func TestNextToken_PositionsAreOneBased(t *testing.T) {
	toks := Tokenize("ab\ncd")
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 1, toks[0].Column)
	// NEWLINE token
	assert.Equal(t, 1, toks[1].Line)
	// 'cd' on line 2
	assert.Equal(t, 2, toks[2].Line)
	assert.Equal(t, 1, toks[2].Column)
}

func TestNextToken_Brackets(t *testing.T) {
	toks := Tokenize(`([ ]) , :`)
	want := []Type{LEFT_PAREN, LEFT_BRACKET, RIGHT_BRACKET, RIGHT_PAREN, COMMA_DELIM, COLON_DELIM, EOF_TYPE}
	for i, w := range want {
		assert.Equal(t, w, toks[i].Type, "token %d", i)
	}
}

func TestTokenize_AlwaysEndsWithEOF(t *testing.T) {
	for _, src := range []string{"", "   ", "# just a comment", "let x = 1"} {
		toks := Tokenize(src)
		assert.Equal(t, EOF_TYPE, toks[len(toks)-1].Type, "source: %q", src)
	}
}

package css

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// token is a single lexed component value.
type token struct {
	typ  css.TokenType
	data string
}

// tokenize lexes a property value. Comments are dropped; whitespace is kept
// so callers can tell separate components apart.
func tokenize(value string) ([]token, error) {
	lexer := css.NewLexer(parse.NewInput(strings.NewReader(value)))

	var toks []token
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			return toks, nil
		case css.CommentToken:
			continue
		}
		toks = append(toks, token{typ: tt, data: string(data)})
	}
}

// significant drops whitespace tokens.
func significant(toks []token) []token {
	out := make([]token, 0, len(toks))
	for _, t := range toks {
		if t.typ != css.WhitespaceToken {
			out = append(out, t)
		}
	}
	return out
}

// splitComma splits toks on commas outside of function arguments.
func splitComma(toks []token) [][]token {
	var (
		parts [][]token
		depth int
		start int
	)
	for i, t := range toks {
		switch t.typ {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		case css.CommaToken:
			if depth == 0 {
				parts = append(parts, toks[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, toks[start:])
}

// closingParen returns the index of the parenthesis closing the function
// token at toks[open], or -1.
func closingParen(toks []token, open int) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].typ {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// joinTokens renders toks back to text for error messages.
func joinTokens(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.data)
	}
	return strings.TrimSpace(b.String())
}

// number parses a number token.
func number(t token) (float64, error) {
	if t.typ != css.NumberToken {
		return 0, fmt.Errorf("expected number, got %q", t.data)
	}
	return finite(t.data)
}

// dimension splits a dimension token into its value and lower-cased unit.
func dimension(t token) (float64, string, error) {
	if t.typ != css.DimensionToken {
		return 0, "", fmt.Errorf("expected dimension, got %q", t.data)
	}
	end := len(t.data)
	for end > 0 && isLetter(t.data[end-1]) {
		end--
	}
	f, err := finite(t.data[:end])
	if err != nil {
		return 0, "", err
	}
	return f, strings.ToLower(t.data[end:]), nil
}

func finite(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// TokenStream lexes tokens on demand and holds at most one put back token.
type TokenStream struct {
	chars  *CharStream
	source string

	buffered    Token
	hasBuffered bool
}

func NewTokenStream(text string) (*TokenStream, error) {
	chars, err := NewCharStream(text)
	if err != nil {
		return nil, err
	}
	return &TokenStream{
		chars:  chars,
		source: text,
	}, nil
}

func (t *TokenStream) Get() (Token, error) {
	if t.hasBuffered {
		t.hasBuffered = false
		return t.buffered, nil
	}
	return t.lex()
}

// PutBack panics if a token is already waiting to be read.
func (t *TokenStream) PutBack(token Token) {
	if t.hasBuffered {
		panic(fmt.Errorf("put back %v: token %v not yet read", token, t.buffered))
	}
	t.buffered = token
	t.hasBuffered = true
}

func (t *TokenStream) Position() int {
	return t.chars.Position()
}

func (t *TokenStream) lex() (Token, error) {
	for {
		start := t.chars.Position()
		r, ok := t.chars.Next()
		if !ok {
			return Token{Kind: TokenEOF, Pos: start}, nil
		}

		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r):
			t.chars.Putback()
			return t.lexNumber(start)
		}

		if kind, ok := singleRuneTokens[r]; ok {
			return Token{Kind: kind, Pos: start}, nil
		}

		return Token{}, WithPos(
			fmt.Errorf("%w: %q", ErrInvalidCharacter, r),
			start,
			t.source,
		)
	}
}

func (t *TokenStream) lexNumber(start int) (Token, error) {
	var buf strings.Builder
	var prev rune
loop:
	for {
		r, ok := t.chars.Next()
		if !ok {
			break
		}
		switch {
		case isDigit(r), r == '.', r == 'e':
		case r == '-' && prev == 'e':
		default:
			t.chars.Putback()
			break loop
		}
		buf.WriteRune(r)
		prev = r
	}

	text := buf.String()
	value, err := parseNumber(text)
	if err != nil {
		return Token{}, WithPos(
			fmt.Errorf("%w: %q", ErrNumberFormat, text),
			start,
			t.source,
		)
	}
	return Token{
		Kind:  TokenNumber,
		Value: value,
		Pos:   start,
	}, nil
}

func parseNumber(text string) (float64, error) {
	if strings.HasSuffix(text, ".") {
		return 0, fmt.Errorf("trailing decimal point")
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// out of range literals saturate to infinity
		if errors.Is(err, strconv.ErrRange) {
			return value, nil
		}
		return 0, err
	}
	return value, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Tokens lexes a whole line, without the trailing TokenEOF.
func Tokens(text string) ([]Token, error) {
	stream, err := NewTokenStream(text)
	if err != nil {
		return nil, err
	}
	var ret []Token
	for {
		token, err := stream.Get()
		if err != nil {
			return nil, err
		}
		if token.Kind == TokenEOF {
			return ret, nil
		}
		ret = append(ret, token)
	}
}

package calc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput            = errors.New("empty input")
	ErrInvalidCharacter      = errors.New("invalid character")
	ErrNumberFormat          = errors.New("malformed number")
	ErrUnbalancedParenthesis = errors.New("')' expected")
	ErrPrimaryExpected       = errors.New("primary expected")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrTrailingInput         = errors.New("unexpected token after expression")
)

// ParseError locates an error at a 0-based rune offset of the source line.
type ParseError struct {
	Err    error
	Pos    int
	Source string
}

func (p *ParseError) Error() string {
	if p.Source == "" {
		return fmt.Sprintf("%s at position %d", p.Err.Error(), p.Pos)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at position %d\n", p.Err.Error(), p.Pos)
	sb.WriteString(p.Source)
	sb.WriteString("\n")
	sb.WriteString(caretPadding(p.Source, p.Pos))
	sb.WriteString("^")
	return sb.String()
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos int, source string) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return err
	}
	return &ParseError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}

// caretPadding returns the whitespace that lines a caret up under the rune at pos.
func caretPadding(source string, pos int) string {
	var sb strings.Builder
	i := 0
	for _, r := range source {
		if i >= pos {
			break
		}
		i++
		if r == '\t' {
			sb.WriteString("\t")
			continue
		}
		for range runeWidth(r) {
			sb.WriteString(" ")
		}
	}
	// positions past the end point at end of input
	for ; i < pos; i++ {
		sb.WriteString(" ")
	}
	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}

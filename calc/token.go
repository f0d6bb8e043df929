package calc

import "strconv"

type Token struct {
	Kind TokenKind
	// only for TokenNumber
	Value float64
	Pos   int
}

type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenPlus
	TokenMinus
	TokenTimes
	TokenDivide
	TokenOpenParen
	TokenCloseParen
	TokenNumber
)

var tokenKindNames = [...]string{
	TokenEOF:        "end of input",
	TokenPlus:       "+",
	TokenMinus:      "-",
	TokenTimes:      "*",
	TokenDivide:     "/",
	TokenOpenParen:  "(",
	TokenCloseParen: ")",
	TokenNumber:     "number",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

func (t Token) String() string {
	if t.Kind == TokenNumber {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return t.Kind.String()
}

var singleRuneTokens = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenTimes,
	'/': TokenDivide,
	'(': TokenOpenParen,
	')': TokenCloseParen,
}

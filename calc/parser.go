package calc

import (
	"fmt"
	"log/slog"
)

// Parser evaluates while it parses:
//
//	expression: term (("+" | "-") term)*
//	term:       primary (("*" | "/") primary)*
//	primary:    number | "(" expression ")"
type Parser struct {
	tokens *TokenStream
	logger *slog.Logger
}

// NewParser traces every step at debug level to logger; nil disables tracing.
func NewParser(tokens *TokenStream, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{
		tokens: tokens,
		logger: logger,
	}
}

func (p *Parser) next() (Token, error) {
	t, err := p.tokens.Get()
	if err != nil {
		return t, err
	}
	p.logger.Debug("token", "token", t.String(), "pos", t.Pos)
	return t, nil
}

func (p *Parser) putBack(t Token) {
	p.logger.Debug("put back", "token", t.String(), "pos", t.Pos)
	p.tokens.PutBack(t)
}

func (p *Parser) errorAt(err error, pos int) error {
	return WithPos(err, pos, p.tokens.source)
}

func (p *Parser) Expression() (float64, error) {
	left, err := p.Term()
	if err != nil {
		return 0, err
	}

	for {
		t, err := p.next()
		if err != nil {
			return 0, err
		}

		switch t.Kind {
		case TokenPlus, TokenMinus:
			right, err := p.Term()
			if err != nil {
				return 0, err
			}
			if t.Kind == TokenPlus {
				left += right
			} else {
				left -= right
			}

		case TokenEOF:
			p.logger.Debug("expression", "value", left)
			return left, nil

		default:
			p.putBack(t)
			p.logger.Debug("expression", "value", left)
			return left, nil
		}
	}
}

func (p *Parser) Term() (float64, error) {
	left, err := p.Primary()
	if err != nil {
		return 0, err
	}

	for {
		t, err := p.next()
		if err != nil {
			return 0, err
		}

		switch t.Kind {
		case TokenTimes:
			right, err := p.Primary()
			if err != nil {
				return 0, err
			}
			left *= right

		case TokenDivide:
			pos, err := p.peekPos()
			if err != nil {
				return 0, err
			}
			right, err := p.Primary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				p.logger.Debug("term", "value", left, "error", ErrDivisionByZero)
				return 0, p.errorAt(ErrDivisionByZero, pos)
			}
			left /= right

		case TokenEOF:
			p.logger.Debug("term", "value", left)
			return left, nil

		default:
			p.putBack(t)
			p.logger.Debug("term", "value", left)
			return left, nil
		}
	}
}

func (p *Parser) Primary() (float64, error) {
	t, err := p.next()
	if err != nil {
		return 0, err
	}

	switch t.Kind {
	case TokenNumber:
		p.logger.Debug("primary", "value", t.Value)
		return t.Value, nil

	case TokenOpenParen:
		value, err := p.Expression()
		if err != nil {
			return 0, err
		}
		closing, err := p.next()
		if err != nil {
			return 0, err
		}
		if closing.Kind != TokenCloseParen {
			return 0, p.errorAt(
				fmt.Errorf("%w, got %v", ErrUnbalancedParenthesis, closing.Kind),
				closing.Pos,
			)
		}
		p.logger.Debug("primary", "value", value)
		return value, nil
	}

	return 0, p.errorAt(
		fmt.Errorf("%w, got %v", ErrPrimaryExpected, t.Kind),
		t.Pos,
	)
}

// peekPos returns where the next token starts without consuming it.
func (p *Parser) peekPos() (int, error) {
	t, err := p.tokens.Get()
	if err != nil {
		return 0, err
	}
	p.tokens.PutBack(t)
	return t.Pos, nil
}

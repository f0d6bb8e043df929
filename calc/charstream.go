package calc

// CharStream yields the runes of one input line and remembers where it is.
type CharStream struct {
	input     []rune
	pos       int
	canUnread bool
}

func NewCharStream(text string) (*CharStream, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}
	return &CharStream{
		input: []rune(text),
	}, nil
}

// Next returns false at end of input; the cursor never moves past the length.
func (c *CharStream) Next() (rune, bool) {
	if c.pos >= len(c.input) {
		c.canUnread = false
		return 0, false
	}
	r := c.input[c.pos]
	c.pos++
	c.canUnread = true
	return r, true
}

// Putback is a no-op unless the previous call was a successful Next.
func (c *CharStream) Putback() {
	if !c.canUnread || c.pos == 0 {
		return
	}
	c.pos--
	c.canUnread = false
}

func (c *CharStream) Position() int {
	return c.pos
}

package calc

import (
	"errors"
	"testing"
)

func TestCharStream(t *testing.T) {
	c, err := NewCharStream("1+é")
	if err != nil {
		t.Fatal(err)
	}

	var got []rune
	for {
		r, ok := c.Next()
		if !ok {
			break
		}
		got = append(got, r)
	}
	if string(got) != "1+é" {
		t.Fatalf("got %q", string(got))
	}
	if c.Position() != 3 {
		t.Fatalf("got %d", c.Position())
	}

	// end of input does not move the cursor
	if _, ok := c.Next(); ok {
		t.Fatal()
	}
	if c.Position() != 3 {
		t.Fatalf("got %d", c.Position())
	}
}

func TestCharStreamEmpty(t *testing.T) {
	_, err := NewCharStream("")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got %v", err)
	}
}

func TestCharStreamPutback(t *testing.T) {
	c, err := NewCharStream("ab")
	if err != nil {
		t.Fatal(err)
	}

	// nothing read yet
	c.Putback()
	if c.Position() != 0 {
		t.Fatalf("got %d", c.Position())
	}

	r, _ := c.Next()
	if r != 'a' {
		t.Fatalf("got %q", r)
	}
	c.Putback()
	if c.Position() != 0 {
		t.Fatalf("got %d", c.Position())
	}
	r, _ = c.Next()
	if r != 'a' {
		t.Fatalf("got %q", r)
	}

	// second putback in a row is ignored
	c.Next()
	c.Putback()
	c.Putback()
	if c.Position() != 1 {
		t.Fatalf("got %d", c.Position())
	}

	// putback after end of input is ignored
	c.Next()
	c.Next()
	c.Putback()
	if c.Position() != 2 {
		t.Fatalf("got %d", c.Position())
	}
}

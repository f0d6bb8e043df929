package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/calcconfigs"
	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/modes"
)

type linesReader struct {
	lines []string
	err   error
}

func (l *linesReader) Readline() (string, error) {
	if len(l.lines) == 0 {
		if l.err != nil {
			return "", l.err
		}
		return "", io.EOF
	}
	line := l.lines[0]
	l.lines = l.lines[1:]
	return line, nil
}

func testScope(t *testing.T, stdout *bytes.Buffer, logBuf *bytes.Buffer) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() calcconfigs.ConfigPaths {
			return nil
		},
		func() Stdout {
			return stdout
		},
		func() logs.Writer {
			return logBuf
		},
	)
}

func TestRun(t *testing.T) {
	stdout := new(bytes.Buffer)
	testScope(t, stdout, new(bytes.Buffer)).Call(func(
		run Run,
	) {
		err := run(context.Background(), &linesReader{
			lines: []string{
				"2 + 3 * 4",
				"   ",
				"(2 + 3) * 4",
				"1 / 0",
				"2 $ 3",
				"10 / 4",
				"q",
				"1 + 1",
			},
		})
		if err != nil {
			t.Fatal(err)
		}
	})

	expected := strings.Join([]string{
		"= 14",
		"= 20",
		"division by zero at position 4",
		"1 / 0",
		"    ^",
		"invalid character: '$' at position 2",
		"2 $ 3",
		"  ^",
		"= 2.5",
		"",
	}, "\n")
	if stdout.String() != expected {
		t.Fatalf("got %q", stdout.String())
	}
}

func TestRunEOF(t *testing.T) {
	stdout := new(bytes.Buffer)
	testScope(t, stdout, new(bytes.Buffer)).Call(func(
		run Run,
	) {
		err := run(context.Background(), &linesReader{
			lines: []string{"7"},
		})
		if err != nil {
			t.Fatal(err)
		}
	})
	if stdout.String() != "= 7\n" {
		t.Fatalf("got %q", stdout.String())
	}
}

func TestRunReadError(t *testing.T) {
	bad := errors.New("bad")
	testScope(t, new(bytes.Buffer), new(bytes.Buffer)).Call(func(
		run Run,
	) {
		err := run(context.Background(), &linesReader{
			err: bad,
		})
		if !errors.Is(err, bad) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestRunCanceled(t *testing.T) {
	testScope(t, new(bytes.Buffer), new(bytes.Buffer)).Call(func(
		run Run,
	) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := run(ctx, &linesReader{
			lines: []string{"1"},
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestRunQuitWords(t *testing.T) {
	stdout := new(bytes.Buffer)
	testScope(t, stdout, new(bytes.Buffer)).Fork(
		func() calcconfigs.QuitWords {
			return calcconfigs.QuitWords{"exit"}
		},
	).Call(func(
		run Run,
	) {
		err := run(context.Background(), &linesReader{
			lines: []string{"q", "exit", "1"},
		})
		if err != nil {
			t.Fatal(err)
		}
	})
	if !strings.HasPrefix(stdout.String(), "invalid character: 'q'") {
		t.Fatalf("got %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "= 1") {
		t.Fatalf("got %q", stdout.String())
	}
}

func TestRunTrace(t *testing.T) {
	logBuf := new(bytes.Buffer)
	testScope(t, new(bytes.Buffer), logBuf).Fork(
		func() calcconfigs.Trace {
			return true
		},
	).Call(func(
		run Run,
	) {
		err := run(context.Background(), &linesReader{
			lines: []string{"1 + 2"},
		})
		if err != nil {
			t.Fatal(err)
		}
	})
	output := logBuf.String()
	if !strings.Contains(output, "component=parser") {
		t.Fatalf("got %s", output)
	}
	if !strings.Contains(output, "calc.line=1") {
		t.Fatalf("got %s", output)
	}
}

package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a", "x",
	})
	if !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a",
	})
	if !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestExecutorError(t *testing.T) {
	executor := NewExecutor()
	bad := errors.New("bad")
	executor.Define("fail", Func(func() error {
		return bad
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, bad) {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func() {}))
	func() {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("bar", Func(func() {}).Alias("foo"))
	}()
}

func TestBadFunc(t *testing.T) {
	for _, fn := range []any{
		42,
		func() int { return 1 },
		func() (error, error) { return nil, nil },
	} {
		func() {
			defer func() {
				if p := recover(); p == nil {
					t.Fatalf("should panic: %T", fn)
				}
			}()
			Func(fn)
		}()
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("eval", Func(func(string) {}).Desc("evaluate an expression"))
	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	output := buf.String()
	if !strings.Contains(output, "eval <string>") {
		t.Fatalf("got %s", output)
	}
	if !strings.Contains(output, "evaluate an expression") {
		t.Fatalf("got %s", output)
	}
	if !strings.Contains(output, "-h (help, -help, --help)") {
		t.Fatalf("got %s", output)
	}
}

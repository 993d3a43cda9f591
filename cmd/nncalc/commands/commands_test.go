package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"nncalc/internal/script"
)

// execute runs the CLI with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEval_DivideScenario(t *testing.T) {
	out, err := execute(t, "", "eval", "73", "enter", "c", "2", "/")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	want := "top:    1\nbottom: 36\nkeys:   clear swap enter + * (-) / ^ root\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestEval_IllegalOperation(t *testing.T) {
	out, err := execute(t, "", "eval", "/")
	if !errors.Is(err, script.ErrIllegalOperation) {
		t.Fatalf("err = %v, want ErrIllegalOperation", err)
	}
	if !strings.Contains(out, "bottom: 0") {
		t.Fatalf("state not rendered: %q", out)
	}
}

func TestEval_BadToken(t *testing.T) {
	if _, err := execute(t, "", "eval", "1", "plus", "2"); !errors.Is(err, script.ErrUnknownToken) {
		t.Fatalf("err = %v, want ErrUnknownToken", err)
	}
}

func TestEval_MaxDigitsFlag(t *testing.T) {
	out, err := execute(t, "", "--max-digits", "4", "eval", "2", "enter", "c", "64", "^")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	// 2**64 = 18446744073709551616
	if !strings.Contains(out, "bottom: 18…16 (20 digits, ") {
		t.Fatalf("output = %q", out)
	}
}

func TestRepl_Session(t *testing.T) {
	in := "10 enter\nswap -\nhelp\n/\nquit\n9\n"
	out, err := execute(t, in, "repl")
	if err != nil {
		t.Fatalf("repl: %v", err)
	}
	if !strings.Contains(out, "top:    10\nbottom: 10\n") {
		t.Fatalf("missing result of enter: %q", out)
	}
	if strings.Count(out, "top:    0\nbottom: 0\n") < 2 {
		t.Fatalf("missing result of 10-10: %q", out)
	}
	if !strings.Contains(out, "error: divide: operation not allowed") {
		t.Fatalf("missing refusal of divide by zero: %q", out)
	}
	if !strings.Contains(out, "tokens (space separated") {
		t.Fatalf("missing help: %q", out)
	}
	if strings.Contains(out, "bottom: 9") {
		t.Fatalf("input after quit was applied: %q", out)
	}
}

func TestRoot_DefaultsToRepl(t *testing.T) {
	out, err := execute(t, "4 enter +\n")
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if !strings.Contains(out, "bottom: 8") {
		t.Fatalf("output = %q", out)
	}
}

func TestRun_ScriptWithTranscript(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "calc.nnc")
	dst := filepath.Join(dir, "out.json")
	if err := os.WriteFile(src, []byte("# cube root of 100\n100 enter c 3 root\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	out, err := execute(t, "", "run", src, "--transcript", dst)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "bottom: 4\n") {
		t.Fatalf("output = %q", out)
	}
	tr, err := script.ReadTranscript(afero.NewOsFs(), dst)
	if err != nil {
		t.Fatalf("ReadTranscript: %v", err)
	}
	if tr.Source != src {
		t.Fatalf("source = %q", tr.Source)
	}
	final, ok := tr.Final()
	if !ok || final.Bottom != "4" || final.Top != "0" {
		t.Fatalf("final = %+v", final)
	}
}

func TestRun_MissingFile(t *testing.T) {
	_, err := execute(t, "", "run", filepath.Join(t.TempDir(), "nope.nnc"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

func TestRoot_RejectsBadLiveMode(t *testing.T) {
	if _, err := execute(t, "", "--live", "maybe", "eval", "1"); err == nil {
		t.Fatal("expected error for --live maybe")
	}
}

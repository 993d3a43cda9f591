package script_test

import (
	"errors"
	"testing"

	"nncalc/internal/domain"
	"nncalc/internal/script"
)

func TestParse_TokensAndComments(t *testing.T) {
	src := `
# build 73 and divide by 2
73 enter   # top := 73
c 2 /
SWAP = + - * x ^ √ root r e s div mul sub add pow clear
`
	steps, err := script.Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []domain.Step{
		{Op: domain.OpAppendDigit, Digit: 7},
		{Op: domain.OpAppendDigit, Digit: 3},
		{Op: domain.OpEnter},
		{Op: domain.OpClear},
		{Op: domain.OpAppendDigit, Digit: 2},
		{Op: domain.OpDivide},
		{Op: domain.OpSwap},
		{Op: domain.OpEnter},
		{Op: domain.OpAdd},
		{Op: domain.OpSubtract},
		{Op: domain.OpMultiply},
		{Op: domain.OpMultiply},
		{Op: domain.OpPower},
		{Op: domain.OpRoot},
		{Op: domain.OpRoot},
		{Op: domain.OpRoot},
		{Op: domain.OpEnter},
		{Op: domain.OpSwap},
		{Op: domain.OpDivide},
		{Op: domain.OpMultiply},
		{Op: domain.OpSubtract},
		{Op: domain.OpAdd},
		{Op: domain.OpPower},
		{Op: domain.OpClear},
	}
	if len(steps) != len(want) {
		t.Fatalf("got %d steps %v, want %d", len(steps), steps, len(want))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("step %d = %v, want %v", i, steps[i], want[i])
		}
	}
}

func TestParse_EmptyScript(t *testing.T) {
	steps, err := script.Parse("   # nothing here\n\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(steps) != 0 {
		t.Fatalf("got %v, want no steps", steps)
	}
}

func TestParse_CollectsAllBadTokens(t *testing.T) {
	_, err := script.Parse("1 foo +\n  12b ok")
	var pe *script.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if len(pe.Errors) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(pe.Errors), err)
	}
	if !errors.Is(err, script.ErrUnknownToken) {
		t.Fatal("ParseError should unwrap to ErrUnknownToken")
	}
	var te *script.TokenError
	if !errors.As(pe.Errors[1], &te) {
		t.Fatalf("second error = %v", pe.Errors[1])
	}
	if te.Line != 2 || te.Col != 3 || te.Token != "12b" {
		t.Fatalf("token error = %+v, want line 2 col 3 token 12b", te)
	}
}

func TestParseArgs(t *testing.T) {
	steps, err := script.ParseArgs([]string{"12", "enter", "+"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if len(steps) != 4 || steps[3].Op != domain.OpAdd {
		t.Fatalf("steps = %v", steps)
	}
}

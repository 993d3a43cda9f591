package script

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"nncalc/internal/domain"
)

// ErrUnknownToken marks a token that is neither an operation nor digits.
var ErrUnknownToken = errors.New("unknown token")

var keywords = map[string]domain.Operation{
	"clear": domain.OpClear, "c": domain.OpClear,
	"swap": domain.OpSwap, "s": domain.OpSwap,
	"enter": domain.OpEnter, "e": domain.OpEnter, "=": domain.OpEnter,
	"add": domain.OpAdd, "+": domain.OpAdd,
	"sub": domain.OpSubtract, "-": domain.OpSubtract,
	"mul": domain.OpMultiply, "*": domain.OpMultiply, "x": domain.OpMultiply,
	"div": domain.OpDivide, "/": domain.OpDivide,
	"pow": domain.OpPower, "^": domain.OpPower,
	"root": domain.OpRoot, "r": domain.OpRoot, "√": domain.OpRoot,
}

// TokenError locates one bad token.
type TokenError struct {
	Line  int
	Col   int
	Token string
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	return fmt.Sprintf("%d:%d: %v %q", e.Line, e.Col, ErrUnknownToken, e.Token)
}

// Unwrap returns ErrUnknownToken.
func (e *TokenError) Unwrap() error { return ErrUnknownToken }

// ParseError collects every bad token in a script.
type ParseError struct {
	Errors []error
}

// Error implements the error interface.
func (pe *ParseError) Error() string {
	if len(pe.Errors) == 1 {
		return fmt.Sprintf("parse failed: %v", pe.Errors[0])
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "parse failed with %d errors:\n", len(pe.Errors))
	for i, err := range pe.Errors {
		fmt.Fprintf(&buf, "  %d. %v\n", i+1, err)
	}
	return buf.String()
}

// Unwrap returns the underlying errors for use with errors.Is and errors.As.
func (pe *ParseError) Unwrap() []error {
	return pe.Errors
}

// Parse turns script text into steps. All bad tokens are reported together
// in a *ParseError.
func Parse(src string) ([]domain.Step, error) {
	var (
		steps []domain.Step
		errs  []error
	)
	sc := bufio.NewScanner(strings.NewReader(src))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		col := 0
		for _, field := range strings.Fields(text) {
			col = strings.Index(text[col:], field) + col
			parsed, ok := parseToken(field)
			if !ok {
				errs = append(errs, &TokenError{Line: line, Col: col + 1, Token: field})
			}
			steps = append(steps, parsed...)
			col += len(field)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan script: %w", err)
	}
	if len(errs) > 0 {
		return nil, &ParseError{Errors: errs}
	}
	return steps, nil
}

// ParseArgs parses tokens that were already split, as from a command line.
func ParseArgs(args []string) ([]domain.Step, error) {
	return Parse(strings.Join(args, " "))
}

func parseToken(tok string) ([]domain.Step, bool) {
	if op, ok := keywords[strings.ToLower(tok)]; ok {
		return []domain.Step{{Op: op}}, true
	}
	steps := make([]domain.Step, 0, len(tok))
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		steps = append(steps, domain.Step{Op: domain.OpAppendDigit, Digit: int(c - '0')})
	}
	return steps, true
}

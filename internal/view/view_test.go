package view_test

import (
	"bytes"
	"strings"
	"testing"

	"nncalc/internal/calc"
	"nncalc/internal/domain"
	"nncalc/internal/natural"
	"nncalc/internal/view"
)

func TestRecorder_TracksEngine(t *testing.T) {
	rec := view.NewRecorder()
	e := calc.New(rec)
	e.AddDigit(4)
	e.AddDigit(2)
	e.Enter()

	snap := rec.Snapshot()
	want := domain.Snapshot{
		Top:      "42",
		Bottom:   "42",
		Legality: domain.Legality{Subtract: true, Divide: true, Power: true, Root: true},
	}
	if snap != want {
		t.Fatalf("snapshot = %+v, want %+v", snap, want)
	}
	if rec.Legality() != want.Legality {
		t.Fatalf("legality = %+v", rec.Legality())
	}
}

func TestRecorder_RegistersAreCopies(t *testing.T) {
	rec := view.NewRecorder()
	rec.UpdateBottomDisplay(natural.New(7))
	_, b := rec.Registers()
	b.Add(natural.New(1))
	if got := rec.Snapshot().Bottom; got != "7" {
		t.Fatalf("bottom = %s, want 7", got)
	}
}

func TestRecorder_FlagsAreIndependent(t *testing.T) {
	rec := view.NewRecorder()
	rec.UpdateTopDisplay(natural.New(3))
	rec.UpdateSubtractAllowed(true)
	rec.UpdatePowerAllowed(true)
	want := domain.Snapshot{
		Top:      "3",
		Bottom:   "0",
		Legality: domain.Legality{Subtract: true, Power: true},
	}
	if got := rec.Snapshot(); got != want {
		t.Fatalf("snapshot = %+v, want %+v", got, want)
	}

	rec.UpdateSubtractAllowed(false)
	rec.UpdateDivideAllowed(true)
	rec.UpdateRootAllowed(true)
	want.Legality = domain.Legality{Divide: true, Power: true, Root: true}
	if got := rec.Legality(); got != want.Legality {
		t.Fatalf("legality = %+v, want %+v", got, want.Legality)
	}
}

func TestFormat_ShortValuesVerbatim(t *testing.T) {
	n := natural.MustParse("123456789")
	if got := view.Format(n, 9); got != "123456789" {
		t.Fatalf("Format = %q", got)
	}
	if got := view.Format(n, 0); got != "123456789" {
		t.Fatalf("Format with no limit = %q", got)
	}
}

func TestFormat_ElidesLongValues(t *testing.T) {
	s := strings.Repeat("1234567890", 10)
	got := view.Format(natural.MustParse(s), 10)
	if !strings.HasPrefix(got, "12345…67890 (100 digits, ") {
		t.Fatalf("Format = %q", got)
	}
	if !strings.Contains(got, view.Fingerprint(s)) {
		t.Fatalf("Format = %q lacks fingerprint", got)
	}
}

func TestFingerprint_Distinguishes(t *testing.T) {
	a, b := view.Fingerprint("1000"), view.Fingerprint("1001")
	if a == b {
		t.Fatal("different values share a fingerprint")
	}
	if len(a) != 20 {
		t.Fatalf("fingerprint length = %d, want 20", len(a))
	}
	if a != view.Fingerprint("1000") {
		t.Fatal("fingerprint is not deterministic")
	}
}

func TestTerminal_RenderMarksDisabledKeys(t *testing.T) {
	var out bytes.Buffer
	term := view.NewTerminal(&out)
	calc.New(term)
	if err := term.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := out.String()
	want := "top:    0\nbottom: 0\nkeys:   clear swap enter + * - (/) ^ (root)\n"
	if got != want {
		t.Fatalf("render = %q, want %q", got, want)
	}
}

func TestTerminal_RenderElides(t *testing.T) {
	var out bytes.Buffer
	term := view.NewTerminal(&out, view.WithMaxDigits(6))
	e := calc.New(term)
	for _, d := range "98765432109" {
		e.AddDigit(int(d - '0'))
	}
	if err := term.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.String(), "bottom: 987…109 (11 digits, ") {
		t.Fatalf("render = %q", out.String())
	}
}

func TestTerminal_LiveWritesToOut(t *testing.T) {
	var out bytes.Buffer
	term := view.NewTerminal(&out, view.WithLive(true))
	calc.New(term)
	if err := term.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.String(), "bottom: 0") {
		t.Fatalf("live render = %q", out.String())
	}
	term.Message("hello %d", 1)
	if !strings.Contains(out.String(), "hello 1") {
		t.Fatalf("message missing from %q", out.String())
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	if view.IsTTY(&bytes.Buffer{}) {
		t.Fatal("a buffer is not a terminal")
	}
}

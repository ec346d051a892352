package domain

import (
	"errors"
	"testing"
)

func TestAddLineMergesByCode(t *testing.T) {
	l := NewCartLedger()
	if _, err := l.AddLine(101, "Zapatillas", 55000, 2); err != nil {
		t.Fatalf("AddLine() error = %v", err)
	}
	if _, err := l.AddLine(201, "Remera", 22000, 1); err != nil {
		t.Fatalf("AddLine() error = %v", err)
	}
	line, err := l.AddLine(101, "Zapatillas", 55000, 3)
	if err != nil {
		t.Fatalf("AddLine() error = %v", err)
	}
	if line.Quantity != 5 {
		t.Errorf("merged quantity = %d, want 5", line.Quantity)
	}

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2 (merge, not duplicate)", len(lines))
	}
	// порядок — по первому добавлению
	if lines[0].Code != 101 || lines[1].Code != 201 {
		t.Errorf("line order = [%d %d], want [101 201]", lines[0].Code, lines[1].Code)
	}
}

func TestAddLineRejectsInvalidQuantity(t *testing.T) {
	l := NewCartLedger()
	for _, qty := range []int{0, -1} {
		if _, err := l.AddLine(101, "x", 100, qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("AddLine(qty %d) error = %v, want ErrInvalidQuantity", qty, err)
		}
	}
	if len(l.Lines()) != 0 {
		t.Errorf("invalid add left lines in ledger")
	}
}

func TestSubtotal(t *testing.T) {
	l := NewCartLedger()
	if got := l.Subtotal(); got != 0 {
		t.Errorf("empty ledger subtotal = %v, want 0", got)
	}
	l.AddLine(1, "a", 100, 2)
	l.AddLine(2, "b", 50, 1)
	if got := l.Subtotal(); got != 250 {
		t.Errorf("subtotal = %v, want 250", got)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	l := NewCartLedger()
	l.AddLine(1, "a", 100, 2)
	l.Clear()
	l.Clear()
	if len(l.Lines()) != 0 || l.Subtotal() != 0 {
		t.Errorf("ledger not empty after Clear")
	}
}

func TestReplaceValidatesAtBoundary(t *testing.T) {
	l := NewCartLedger()
	err := l.Replace([]CartLine{{Code: 1, Name: "a", UnitPrice: 100, Quantity: 0}})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("Replace(bad line) error = %v, want ErrInvalidQuantity", err)
	}
	if err := l.Replace([]CartLine{{Code: 1, Name: "a", UnitPrice: 100, Quantity: 2}}); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if got := l.Subtotal(); got != 200 {
		t.Errorf("subtotal after Replace = %v, want 200", got)
	}
}

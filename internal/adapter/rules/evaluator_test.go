package rules

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestEvaluateBuiltinPack(t *testing.T) {
	e := NewEvaluator(DefaultPack())

	tests := []struct {
		name           string
		code           string
		subtotal       float64
		wantApplicable bool
		wantDiscount   float64
		wantLabel      string
	}{
		{
			name: "zapa10 below minimum", code: "ZAPA10", subtotal: 49999,
			wantLabel: "ZAPA10 (not applicable: minimum subtotal 50000)",
		},
		{
			name: "zapa10 at minimum", code: "ZAPA10", subtotal: 50000,
			wantApplicable: true, wantDiscount: 5000, wantLabel: "ZAPA10 (-10%)",
		},
		{
			name: "mb5 always applies above zero", code: "MB5", subtotal: 1000,
			wantApplicable: true, wantDiscount: 50, wantLabel: "MB5 (-5%)",
		},
		{
			name: "mb5 zero subtotal", code: "MB5", subtotal: 0,
			wantLabel: "MB5 (not applicable)",
		},
		{
			name: "empty code", code: "", subtotal: 1000,
			wantLabel: "no coupon",
		},
		{
			name: "whitespace code", code: "   ", subtotal: 1000,
			wantLabel: "no coupon",
		},
		{
			name: "unknown code", code: "GONE", subtotal: 1000,
			wantLabel: "invalid coupon: GONE",
		},
		{
			name: "case and whitespace normalized", code: " zapa10 ", subtotal: 60000,
			wantApplicable: true, wantDiscount: 6000, wantLabel: "ZAPA10 (-10%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Evaluate(tt.code, tt.subtotal)
			if got.Applicable != tt.wantApplicable {
				t.Errorf("Applicable = %v, want %v", got.Applicable, tt.wantApplicable)
			}
			if !approx(got.Discount, tt.wantDiscount) {
				t.Errorf("Discount = %v, want %v", got.Discount, tt.wantDiscount)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestEvaluateRuleWithoutCondition(t *testing.T) {
	e := NewEvaluator(Pack{Rules: []Rule{{Code: "ALWAYS", Rate: 0.01}}})
	got := e.Evaluate("ALWAYS", 100)
	if !got.Applicable || !approx(got.Discount, 1) {
		t.Errorf("Evaluate(ALWAYS, 100) = %+v, want applicable discount 1", got)
	}
}

func TestLoadPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coupons.yaml")
	pack := `version: test-v1
rules:
  - code: PROMO20
    rate: 0.20
    condition:
      ">=":
        - var: subtotal
        - 10000
    reject_label: "PROMO20 (minimum 10000)"
`
	if err := os.WriteFile(path, []byte(pack), 0o644); err != nil {
		t.Fatalf("write pack: %v", err)
	}

	loaded, err := LoadPack(path)
	if err != nil {
		t.Fatalf("LoadPack() error = %v", err)
	}
	if loaded.Version != "test-v1" || len(loaded.Rules) != 1 {
		t.Fatalf("loaded pack = %+v", loaded)
	}

	e := NewEvaluator(loaded)
	if got := e.Evaluate("PROMO20", 20000); !got.Applicable || !approx(got.Discount, 4000) {
		t.Errorf("Evaluate(PROMO20, 20000) = %+v, want discount 4000", got)
	}
	if got := e.Evaluate("PROMO20", 9999); got.Applicable || got.Label != "PROMO20 (minimum 10000)" {
		t.Errorf("Evaluate(PROMO20, 9999) = %+v, want reject label", got)
	}
}

func TestLoadPackRejectsBadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  - code: X\n"), 0o644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	if _, err := LoadPack(path); err == nil {
		t.Error("LoadPack() accepted a rule without rate")
	}
	if _, err := LoadPack(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadPack() accepted a missing file")
	}
}

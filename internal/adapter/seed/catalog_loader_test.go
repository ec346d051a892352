package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalogDefault(t *testing.T) {
	items, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog(\"\") error = %v", err)
	}
	if len(items) != 4 || items[0].Code != 101 {
		t.Errorf("default catalog = %+v, want the four builtin items", items)
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `- code: 7
  name: Gorra Golden Crowz
  unit_price: 9000
  stock: 5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	items, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(items) != 1 || items[0].Code != 7 || items[0].UnitPrice != 9000 || items[0].Stock != 5 {
		t.Errorf("loaded catalog = %+v", items)
	}
}

func TestLoadCatalogValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "zero price", data: "- code: 1\n  name: x\n  unit_price: 0\n  stock: 1\n"},
		{name: "negative stock", data: "- code: 1\n  name: x\n  unit_price: 10\n  stock: -1\n"},
		{name: "duplicate code", data: "- code: 1\n  name: x\n  unit_price: 10\n  stock: 1\n- code: 1\n  name: y\n  unit_price: 10\n  stock: 1\n"},
		{name: "missing name", data: "- code: 1\n  unit_price: 10\n  stock: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatalf("write catalog: %v", err)
			}
			if _, err := LoadCatalog(path); err == nil {
				t.Error("LoadCatalog() accepted invalid data")
			}
		})
	}
}

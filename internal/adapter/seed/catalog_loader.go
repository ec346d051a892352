package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/sneaker-cart-service/internal/domain"
)

type itemSpec struct {
	Code      int     `yaml:"code"`
	Name      string  `yaml:"name"`
	UnitPrice float64 `yaml:"unit_price"`
	Stock     int     `yaml:"stock"`
}

// LoadCatalog читает ассортимент из YAML-файла; пустой путь — встроенный
// каталог магазина.
func LoadCatalog(path string) ([]domain.CatalogItem, error) {
	if path == "" {
		return domain.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var specs []itemSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("unmarshal catalog %s: %w", path, err)
	}
	seen := make(map[int]bool, len(specs))
	items := make([]domain.CatalogItem, 0, len(specs))
	for _, sp := range specs {
		if sp.Code <= 0 || sp.Name == "" || sp.UnitPrice <= 0 || sp.Stock < 0 {
			return nil, fmt.Errorf("catalog %s: invalid item with code %d", path, sp.Code)
		}
		if seen[sp.Code] {
			return nil, fmt.Errorf("catalog %s: duplicate code %d", path, sp.Code)
		}
		seen[sp.Code] = true
		items = append(items, domain.CatalogItem{
			Code:      sp.Code,
			Name:      sp.Name,
			UnitPrice: sp.UnitPrice,
			Stock:     sp.Stock,
		})
	}
	return items, nil
}

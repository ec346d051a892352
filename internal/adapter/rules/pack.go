package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule — купон как данные: ставка и условие применимости в виде
// JsonLogic-выражения над контекстом {"subtotal": n}.
type Rule struct {
	Code        string         `yaml:"code" json:"code"`
	Rate        float64        `yaml:"rate" json:"rate"`
	Condition   map[string]any `yaml:"condition" json:"condition"`
	RejectLabel string         `yaml:"reject_label" json:"reject_label"`
}

// Pack — набор правил купонов.
type Pack struct {
	Version string `yaml:"version" json:"version"`
	Rules   []Rule `yaml:"rules" json:"rules"`
}

// DefaultPack — встроенные купоны магазина.
func DefaultPack() Pack {
	return Pack{
		Version: "builtin",
		Rules: []Rule{
			{
				Code: "ZAPA10",
				Rate: 0.10,
				Condition: map[string]any{
					">=": []any{map[string]any{"var": "subtotal"}, 50000},
				},
				RejectLabel: "ZAPA10 (not applicable: minimum subtotal 50000)",
			},
			{
				Code: "MB5",
				Rate: 0.05,
				Condition: map[string]any{
					">": []any{map[string]any{"var": "subtotal"}, 0},
				},
			},
		},
	}
}

// LoadPack читает набор правил из YAML-файла.
func LoadPack(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("read rule pack %s: %w", path, err)
	}
	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return Pack{}, fmt.Errorf("unmarshal rule pack %s: %w", path, err)
	}
	for _, r := range pack.Rules {
		if r.Code == "" || r.Rate <= 0 {
			return Pack{}, fmt.Errorf("rule pack %s: rule %q has no code or rate", path, r.Code)
		}
	}
	return pack, nil
}

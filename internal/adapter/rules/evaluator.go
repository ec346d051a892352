package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	jsonlogic "github.com/diegoholiveira/jsonlogic/v3"

	"github.com/example/sneaker-cart-service/internal/domain"
)

// Evaluator применяет пакет правил к коду купона; чистая функция от
// (код, подытог), состояние не накапливается.
type Evaluator struct {
	pack Pack
}

func NewEvaluator(pack Pack) *Evaluator {
	return &Evaluator{pack: pack}
}

func (e *Evaluator) Evaluate(code string, subtotal float64) domain.CouponResult {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return domain.CouponResult{Label: "no coupon"}
	}
	for _, r := range e.pack.Rules {
		if r.Code != normalized {
			continue
		}
		if e.applies(r, subtotal) {
			// процент в ярлыке округляется, чтобы 0.05*100 не печатался хвостатым
			percent := math.Round(r.Rate*10000) / 100
			return domain.CouponResult{
				Applicable: true,
				Discount:   subtotal * r.Rate,
				Label:      fmt.Sprintf("%s (-%g%%)", r.Code, percent),
			}
		}
		label := r.RejectLabel
		if label == "" {
			label = fmt.Sprintf("%s (not applicable)", r.Code)
		}
		return domain.CouponResult{Label: label}
	}
	return domain.CouponResult{Label: "invalid coupon: " + normalized}
}

// applies выполняет JsonLogic-условие правила; ошибка выполнения
// трактуется как неприменимость, а не как отказ всей оценки.
func (e *Evaluator) applies(r Rule, subtotal float64) bool {
	if r.Condition == nil {
		return true
	}
	ruleJSON, err := json.Marshal(r.Condition)
	if err != nil {
		return false
	}
	dataJSON, err := json.Marshal(map[string]any{"subtotal": subtotal})
	if err != nil {
		return false
	}
	var result bytes.Buffer
	if err := jsonlogic.Apply(bytes.NewReader(ruleJSON), bytes.NewReader(dataJSON), &result); err != nil {
		return false
	}
	var ok bool
	if err := json.Unmarshal(bytes.TrimSpace(result.Bytes()), &ok); err != nil {
		return false
	}
	return ok
}

var _ domain.CouponEvaluator = (*Evaluator)(nil)

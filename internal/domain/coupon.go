package domain

import "strings"

// CouponResult — результат проверки одного купона по текущему подытогу.
type CouponResult struct {
	Applicable bool    `json:"applicable"`
	Discount   float64 `json:"discount"`
	Label      string  `json:"label"`
}

// CouponEvaluator — порт вычисления скидки по коду купона.
type CouponEvaluator interface {
	Evaluate(code string, subtotal float64) CouponResult
}

const (
	// MaxCouponsPerOrder — лишние коды молча отбрасываются.
	MaxCouponsPerOrder = 2
	// MaxDiscountRatio — суммарная скидка не превышает долю подытога.
	MaxDiscountRatio = 0.5
)

const discountCapLabel = "discount capped at 50%"

// ParseCouponCodes разбирает свободный ввод "a, b" в нормализованные коды.
func ParseCouponCodes(raw string) []string {
	var codes []string
	for _, part := range strings.Split(raw, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// DiscountSummary — итог применения купонов: сумма и ярлыки для показа.
type DiscountSummary struct {
	Discount float64  `json:"discount"`
	Labels   []string `json:"labels"`
}

// AggregateDiscounts применяет до двух купонов, собирает все ярлыки и
// ограничивает сумму скидок половиной подытога.
func AggregateDiscounts(subtotal float64, codes []string, eval CouponEvaluator) DiscountSummary {
	if len(codes) > MaxCouponsPerOrder {
		codes = codes[:MaxCouponsPerOrder]
	}
	summary := DiscountSummary{Labels: []string{}}
	for _, code := range codes {
		res := eval.Evaluate(code, subtotal)
		summary.Labels = append(summary.Labels, res.Label)
		if res.Applicable {
			summary.Discount += res.Discount
		}
	}
	if max := subtotal * MaxDiscountRatio; summary.Discount > max {
		summary.Discount = max
		summary.Labels = append(summary.Labels, discountCapLabel)
	}
	return summary
}

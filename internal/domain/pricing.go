package domain

// VATRate — ставка НДС, начисляется на налоговую базу.
const VATRate = 0.21

// DefaultStandardShippingCost — стоимость стандартной доставки по умолчанию.
const DefaultStandardShippingCost = 5000

type ShippingMethod string

const (
	ShippingPickup   ShippingMethod = "pickup"
	ShippingStandard ShippingMethod = "standard"
)

// ShippingQuote — выбранный способ доставки и его стоимость.
type ShippingQuote struct {
	Method ShippingMethod `json:"method"`
	Label  string         `json:"label"`
	Cost   float64        `json:"cost"`
}

func QuoteShipping(method ShippingMethod, standardCost float64) (ShippingQuote, error) {
	switch method {
	case ShippingPickup:
		return ShippingQuote{Method: method, Label: "store pickup (free)", Cost: 0}, nil
	case ShippingStandard:
		return ShippingQuote{Method: method, Label: "standard delivery", Cost: standardCost}, nil
	default:
		return ShippingQuote{}, ErrUnknownShipping
	}
}

// PricingResult — разбивка стоимости заказа. Суммы не округляются,
// округление — забота слоя отображения.
type PricingResult struct {
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	TaxableBase  float64 `json:"taxable_base"`
	Tax          float64 `json:"tax"`
	ShippingCost float64 `json:"shipping_cost"`
	Total        float64 `json:"total"`
}

// Price считает налоговую базу, НДС и итог. Отрицательная база не
// обрезается: вызывающий должен видеть её как есть.
func Price(subtotal, discount, shippingCost float64) PricingResult {
	base := subtotal - discount
	tax := base * VATRate
	return PricingResult{
		Subtotal:     subtotal,
		Discount:     discount,
		TaxableBase:  base,
		Tax:          tax,
		ShippingCost: shippingCost,
		Total:        base + tax + shippingCost,
	}
}

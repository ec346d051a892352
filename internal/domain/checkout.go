package domain

import "time"

// CheckoutPhase — фаза диалога добавления товара.
type CheckoutPhase string

const (
	PhaseAwaitingCode     CheckoutPhase = "awaiting_code"
	PhaseAwaitingQuantity CheckoutPhase = "awaiting_quantity"
	PhaseConfirmed        CheckoutPhase = "confirmed"
	PhaseCancelled        CheckoutPhase = "cancelled"
)

// AddItemFlow — конечный автомат ввода: код → количество → подтверждение.
// Невалидный ввод возвращает ошибку и оставляет автомат в текущей фазе,
// так что вызывающий может повторить запрос без потери состояния.
type AddItemFlow struct {
	phase    CheckoutPhase
	item     CatalogItem
	quantity int
}

func NewAddItemFlow() *AddItemFlow {
	return &AddItemFlow{phase: PhaseAwaitingCode}
}

func (f *AddItemFlow) Phase() CheckoutPhase { return f.phase }

func (f *AddItemFlow) SubmitCode(catalog *CatalogStore, code int) error {
	if f.phase != PhaseAwaitingCode {
		return ErrWrongPhase
	}
	item, ok := catalog.FindByCode(code)
	if !ok {
		return ErrItemNotFound
	}
	f.item = item
	f.phase = PhaseAwaitingQuantity
	return nil
}

func (f *AddItemFlow) SubmitQuantity(quantity int) error {
	if f.phase != PhaseAwaitingQuantity {
		return ErrWrongPhase
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if quantity > f.item.Stock {
		return ErrInsufficientStock
	}
	f.quantity = quantity
	f.phase = PhaseConfirmed
	return nil
}

// Cancel переводит автомат в терминальную фазу; из терминальной — ничего.
func (f *AddItemFlow) Cancel() {
	if f.phase == PhaseConfirmed || f.phase == PhaseCancelled {
		return
	}
	f.phase = PhaseCancelled
}

// Result — подтверждённые позиция и количество.
func (f *AddItemFlow) Result() (CatalogItem, int, bool) {
	if f.phase != PhaseConfirmed {
		return CatalogItem{}, 0, false
	}
	return f.item, f.quantity, true
}

// Receipt — итог подтверждённой покупки, публикуется во внешний поток.
type Receipt struct {
	ReceiptID    string        `json:"receipt_id"`
	Lines        []CartLine    `json:"lines"`
	CouponLabels []string      `json:"coupon_labels"`
	Shipping     ShippingQuote `json:"shipping"`
	Pricing      PricingResult `json:"pricing"`
	CreatedAt    time.Time     `json:"created_at"`
}

package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/example/sneaker-cart-service/internal/domain"
)

// CheckoutSummary — расчёт заказа для показа перед подтверждением.
type CheckoutSummary struct {
	Lines    []domain.CartLine      `json:"lines"`
	Coupons  domain.DiscountSummary `json:"coupons"`
	Shipping domain.ShippingQuote   `json:"shipping"`
	Pricing  domain.PricingResult   `json:"pricing"`
}

// PreviewCheckout — посчитать заказ: подытог → купоны → доставка → итог.
type PreviewCheckout struct {
	Cart                 *domain.CartLedger
	Coupons              domain.CouponEvaluator
	StandardShippingCost float64
}

func (uc PreviewCheckout) Execute(couponsRaw string, method domain.ShippingMethod) (CheckoutSummary, error) {
	lines := uc.Cart.Lines()
	if len(lines) == 0 {
		return CheckoutSummary{}, domain.ErrEmptyCart
	}
	quote, err := domain.QuoteShipping(method, uc.standardCost())
	if err != nil {
		return CheckoutSummary{}, err
	}
	subtotal := uc.Cart.Subtotal()
	codes := domain.ParseCouponCodes(couponsRaw)
	coupons := domain.AggregateDiscounts(subtotal, codes, uc.Coupons)
	return CheckoutSummary{
		Lines:    lines,
		Coupons:  coupons,
		Shipping: quote,
		Pricing:  domain.Price(subtotal, coupons.Discount, quote.Cost),
	}, nil
}

func (uc PreviewCheckout) standardCost() float64 {
	if uc.StandardShippingCost > 0 {
		return uc.StandardShippingCost
	}
	return domain.DefaultStandardShippingCost
}

// ConfirmCheckout — подтвердить покупку: чек публикуется fire-and-forget,
// корзина и слот снимка очищаются. Проданный резерв на склад не
// возвращается.
type ConfirmCheckout struct {
	Preview   PreviewCheckout
	Cart      *domain.CartLedger
	Snapshots domain.SnapshotRepository
	Receipts  domain.ReceiptPublisher // nil — публикация выключена
}

func (uc ConfirmCheckout) Execute(ctx context.Context, couponsRaw string, method domain.ShippingMethod) (domain.Receipt, error) {
	summary, err := uc.Preview.Execute(couponsRaw, method)
	if err != nil {
		return domain.Receipt{}, err
	}
	receipt := domain.Receipt{
		ReceiptID:    uuid.NewString(),
		Lines:        summary.Lines,
		CouponLabels: summary.Coupons.Labels,
		Shipping:     summary.Shipping,
		Pricing:      summary.Pricing,
		CreatedAt:    time.Now().UTC(),
	}
	if uc.Receipts != nil {
		if err := uc.Receipts.Publish(ctx, receipt); err != nil {
			log.Printf("receipt publish: %v", err)
		}
	}
	uc.Cart.Clear()
	if err := uc.Snapshots.Clear(ctx); err != nil {
		log.Printf("snapshot clear: %v", err)
	}
	return receipt, nil
}

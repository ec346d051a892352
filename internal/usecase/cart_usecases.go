package usecase

import (
	"context"
	"log"

	"github.com/example/sneaker-cart-service/internal/domain"
)

// AddToCart — добавить позицию: код → количество → резерв склада →
// строка корзины → снимок. Снимок пишется fire-and-forget (§ последняя
// запись побеждает), его ошибка не отменяет добавление.
type AddToCart struct {
	Catalog   *domain.CatalogStore
	Cart      *domain.CartLedger
	Snapshots domain.SnapshotRepository
}

func (uc AddToCart) Execute(ctx context.Context, code, quantity int) (domain.CartLine, error) {
	flow := domain.NewAddItemFlow()
	if err := flow.SubmitCode(uc.Catalog, code); err != nil {
		return domain.CartLine{}, err
	}
	if err := flow.SubmitQuantity(quantity); err != nil {
		return domain.CartLine{}, err
	}
	item, qty, _ := flow.Result()

	if _, err := uc.Catalog.Reserve(item.Code, qty); err != nil {
		return domain.CartLine{}, err
	}
	line, err := uc.Cart.AddLine(item.Code, item.Name, item.UnitPrice, qty)
	if err != nil {
		// строка не попала в корзину — резерв возвращается
		_ = uc.Catalog.Release(item.Code, qty)
		return domain.CartLine{}, err
	}
	if err := uc.Snapshots.Save(ctx, uc.Cart.Lines()); err != nil {
		log.Printf("snapshot save: %v", err)
	}
	return line, nil
}

// RestoreCart — восстановить корзину из снимка при старте. Каждая строка
// заново резервирует остаток; невосстановимые строки пропускаются, не
// прерывая загрузку.
type RestoreCart struct {
	Catalog   *domain.CatalogStore
	Cart      *domain.CartLedger
	Snapshots domain.SnapshotRepository
}

func (uc RestoreCart) Execute(ctx context.Context) error {
	lines, err := uc.Snapshots.Load(ctx)
	if err != nil {
		return err
	}
	restored := make([]domain.CartLine, 0, len(lines))
	for _, ln := range lines {
		if ln.Code <= 0 || ln.Quantity < 1 {
			continue
		}
		if _, err := uc.Catalog.Reserve(ln.Code, ln.Quantity); err != nil {
			log.Printf("restore line %d: %v", ln.Code, err)
			continue
		}
		restored = append(restored, ln)
	}
	return uc.Cart.Replace(restored)
}

// CancelCheckout — отмена покупки: резерв возвращается на склад,
// корзина и слот снимка очищаются. Идемпотентна для пустой корзины.
type CancelCheckout struct {
	Catalog   *domain.CatalogStore
	Cart      *domain.CartLedger
	Snapshots domain.SnapshotRepository
}

func (uc CancelCheckout) Execute(ctx context.Context) error {
	for _, ln := range uc.Cart.Lines() {
		if err := uc.Catalog.Release(ln.Code, ln.Quantity); err != nil {
			log.Printf("stock release %d: %v", ln.Code, err)
		}
	}
	uc.Cart.Clear()
	return uc.Snapshots.Clear(ctx)
}

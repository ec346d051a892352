package domain

import "context"

// SnapshotRepository — порт персистентности снимка корзины: один
// именованный слот, последняя запись побеждает.
type SnapshotRepository interface {
	Save(ctx context.Context, lines []CartLine) error
	// Load возвращает пустой набор при отсутствии или нечитаемости
	// снимка; битые данные не считаются ошибкой.
	Load(ctx context.Context) ([]CartLine, error)
	Clear(ctx context.Context) error
}

// ReceiptPublisher — порт публикации чека подтверждённой покупки.
type ReceiptPublisher interface {
	Publish(ctx context.Context, r Receipt) error
}

// Общие доменные ошибки
var (
	ErrItemNotFound      = notFoundError("item not found")
	ErrInsufficientStock = validationError("insufficient stock")
	ErrInvalidQuantity   = validationError("invalid quantity")
	ErrEmptyCart         = validationError("cart is empty")
	ErrUnknownShipping   = validationError("unknown shipping method")
	ErrWrongPhase        = validationError("unexpected checkout phase")
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

type validationError string

func (e validationError) Error() string { return string(e) }

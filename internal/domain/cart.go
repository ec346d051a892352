package domain

import "sync"

// CartLine — строка корзины; имя и цена фиксируются в момент добавления.
type CartLine struct {
	Code      int     `json:"code"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// CartLedger — упорядоченный список строк корзины. Повторное добавление
// кода увеличивает количество существующей строки, порядок строк —
// порядок первого добавления.
type CartLedger struct {
	mu    sync.RWMutex
	lines []CartLine
}

func NewCartLedger() *CartLedger {
	return &CartLedger{}
}

// AddLine добавляет или объединяет строку и возвращает её итоговое состояние.
func (l *CartLedger) AddLine(code int, name string, unitPrice float64, quantity int) (CartLine, error) {
	if quantity < 1 {
		return CartLine{}, ErrInvalidQuantity
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.lines {
		if l.lines[i].Code == code {
			l.lines[i].Quantity += quantity
			return l.lines[i], nil
		}
	}
	line := CartLine{Code: code, Name: name, UnitPrice: unitPrice, Quantity: quantity}
	l.lines = append(l.lines, line)
	return line, nil
}

func (l *CartLedger) Subtotal() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var sum float64
	for _, ln := range l.lines {
		sum += ln.UnitPrice * float64(ln.Quantity)
	}
	return sum
}

// Lines — копия строк в порядке добавления.
func (l *CartLedger) Lines() []CartLine {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *CartLedger) Clear() {
	l.mu.Lock()
	l.lines = nil
	l.mu.Unlock()
}

// Replace заменяет содержимое корзины восстановленными строками.
// Строки проверяются на границе: битая строка отклоняет весь набор.
func (l *CartLedger) Replace(lines []CartLine) error {
	for _, ln := range lines {
		if ln.Code <= 0 || ln.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = make([]CartLine, len(lines))
	copy(l.lines, lines)
	return nil
}

package domain

import "sync"

// CatalogItem — позиция каталога с текущим остатком на складе.
type CatalogItem struct {
	Code      int     `json:"code"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Stock     int     `json:"stock"`
}

// CatalogStore — каталог в памяти; единственный владелец остатков.
// Остаток товара плюс его количество в корзине неизменны в течение сессии:
// Reserve и Release всегда ходят парой, кроме подтверждённой продажи.
type CatalogStore struct {
	mu    sync.RWMutex
	items []*CatalogItem
}

func NewCatalogStore(items []CatalogItem) *CatalogStore {
	s := &CatalogStore{items: make([]*CatalogItem, 0, len(items))}
	for i := range items {
		it := items[i]
		s.items = append(s.items, &it)
	}
	return s
}

// DefaultCatalog — стартовый ассортимент магазина.
func DefaultCatalog() []CatalogItem {
	return []CatalogItem{
		{Code: 101, Name: "Zapatillas Nike Air Force", UnitPrice: 55000, Stock: 10},
		{Code: 102, Name: "Zapatillas Adidas Yeezy", UnitPrice: 48000, Stock: 10},
		{Code: 201, Name: "Remera Levis D2 Dry-Fit", UnitPrice: 22000, Stock: 10},
		{Code: 301, Name: "Perfume Bross London GOLD", UnitPrice: 35000, Stock: 10},
	}
}

func (s *CatalogStore) FindByCode(code int) (CatalogItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if it := s.find(code); it != nil {
		return *it, true
	}
	return CatalogItem{}, false
}

// Items — копия каталога в исходном порядке, для отображения.
func (s *CatalogStore) Items() []CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CatalogItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, *it)
	}
	return out
}

// Reserve списывает quantity со склада и возвращает снимок позиции
// до списания. При нехватке остатка состояние не меняется.
func (s *CatalogStore) Reserve(code, quantity int) (CatalogItem, error) {
	if quantity < 1 {
		return CatalogItem{}, ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	it := s.find(code)
	if it == nil {
		return CatalogItem{}, ErrItemNotFound
	}
	if quantity > it.Stock {
		return CatalogItem{}, ErrInsufficientStock
	}
	snapshot := *it
	it.Stock -= quantity
	return snapshot, nil
}

// Release возвращает ранее зарезервированное количество на склад.
func (s *CatalogStore) Release(code, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	it := s.find(code)
	if it == nil {
		return ErrItemNotFound
	}
	it.Stock += quantity
	return nil
}

func (s *CatalogStore) find(code int) *CatalogItem {
	for _, it := range s.items {
		if it.Code == code {
			return it
		}
	}
	return nil
}

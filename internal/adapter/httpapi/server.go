package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/sneaker-cart-service/internal/domain"
	"github.com/example/sneaker-cart-service/internal/usecase"
)

// Server — HTTP-поверхность магазина: каталог, корзина, оформление.
type Server struct {
	Router *mux.Router

	Catalog *domain.CatalogStore
	Cart    *domain.CartLedger

	UCAdd     usecase.AddToCart
	UCCancel  usecase.CancelCheckout
	UCPreview usecase.PreviewCheckout
	UCConfirm usecase.ConfirmCheckout
}

func NewServer(catalog *domain.CatalogStore, cart *domain.CartLedger,
	add usecase.AddToCart, cancel usecase.CancelCheckout,
	preview usecase.PreviewCheckout, confirm usecase.ConfirmCheckout) *Server {

	s := &Server{
		Router:    mux.NewRouter(),
		Catalog:   catalog,
		Cart:      cart,
		UCAdd:     add,
		UCCancel:  cancel,
		UCPreview: preview,
		UCConfirm: confirm,
	}
	s.Router.HandleFunc("/api/catalog", s.handleCatalog).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/cart", s.handleCart).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/cart/items", s.handleAddItem).Methods(http.MethodPost)
	s.Router.HandleFunc("/api/cart/clear", s.handleClear).Methods(http.MethodPost)
	s.Router.HandleFunc("/api/checkout/preview", s.handlePreview).Methods(http.MethodPost)
	s.Router.HandleFunc("/api/checkout/confirm", s.handleConfirm).Methods(http.MethodPost)
	s.Router.PathPrefix("/").Handler(http.FileServer(http.Dir("web")))
	return s
}

type cartView struct {
	Lines    []domain.CartLine `json:"lines"`
	Subtotal float64           `json:"subtotal"`
}

type addItemRequest struct {
	Code     int `json:"code"`
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	Coupons  string `json:"coupons"`
	Shipping string `json:"shipping"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Catalog.Items())
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, cartView{Lines: s.Cart.Lines(), Subtotal: s.Cart.Subtotal()})
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if _, err := s.UCAdd.Execute(r.Context(), req.Code, req.Quantity); err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}
	writeJSON(w, cartView{Lines: s.Cart.Lines(), Subtotal: s.Cart.Subtotal()})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.UCCancel.Execute(r.Context()); err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}
	writeJSON(w, cartView{Lines: []domain.CartLine{}, Subtotal: 0})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	summary, err := s.UCPreview.Execute(req.Coupons, domain.ShippingMethod(req.Shipping))
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}
	writeJSON(w, summary)
}

func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	receipt, err := s.UCConfirm.Execute(r.Context(), req.Coupons, domain.ShippingMethod(req.Shipping))
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}
	writeJSON(w, receipt)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// errStatus — доменные ошибки наружу уходят простым текстом и статусом.
func errStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrEmptyCart):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrUnknownShipping):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

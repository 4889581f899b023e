package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/andresuchdata/printfloor/internal/lookup"
	"github.com/andresuchdata/printfloor/internal/repository"
	"github.com/rs/zerolog/log"
)

// OrderInput carries the editable fields of an order.
type OrderInput struct {
	Customer     string `json:"customer"`
	Buyer        string `json:"buyer"`
	Style        string `json:"style"`
	Color        string `json:"color"`
	PONo         string `json:"po_no"`
	Qty          int    `json:"qty"`
	DeliveryDate string `json:"delivery_date"`
	PSD          string `json:"psd"`
}

func (in OrderInput) validate() error {
	verr := &domain.ValidationError{}
	if blank(in.Customer) {
		verr.Add("customer", "Customer is required")
	}
	if blank(in.Style) {
		verr.Add("style", "Style is required")
	}
	if in.Qty <= 0 {
		verr.Add("qty", "Quantity must be greater than zero")
	}
	checkDate(verr, "deliveryDate", in.DeliveryDate)
	checkDate(verr, "psd", in.PSD)
	return verr.OrNil()
}

func (in OrderInput) apply(o domain.Order) domain.Order {
	o.Customer = strings.TrimSpace(in.Customer)
	o.Buyer = strings.TrimSpace(in.Buyer)
	o.Style = strings.TrimSpace(in.Style)
	o.Color = strings.TrimSpace(in.Color)
	o.PONo = strings.TrimSpace(in.PONo)
	o.Qty = in.Qty
	o.DeliveryDate = strings.TrimSpace(in.DeliveryDate)
	o.PSD = strings.TrimSpace(in.PSD)
	return o
}

type OrderService struct {
	store repository.Store
	opts  options
}

func NewOrderService(store repository.Store, opts ...Option) *OrderService {
	return &OrderService{store: store, opts: newOptions(opts)}
}

func (s *OrderService) CreateOrder(ctx context.Context, in OrderInput) (domain.Order, error) {
	if err := in.validate(); err != nil {
		return domain.Order{}, err
	}

	order := in.apply(domain.Order{ID: s.opts.newID()})
	if err := s.store.WithTx(ctx, func(tx repository.Tx) error {
		tx.PrependOrder(order)
		return nil
	}); err != nil {
		return domain.Order{}, err
	}

	log.Debug().Str("order_id", order.ID).Str("style", order.Style).Msg("orders: order created")
	return order, nil
}

// UpdateOrder replaces the editable fields of an order. Plans created from
// the order keep the values they captured.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, in OrderInput) (domain.Order, error) {
	if err := in.validate(); err != nil {
		return domain.Order{}, err
	}

	var order domain.Order
	err := s.store.WithTx(ctx, func(tx repository.Tx) error {
		current, ok := tx.FindOrder(id)
		if !ok {
			return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
		}
		order = in.apply(current)
		tx.ReplaceOrder(order)
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// DeleteOrder removes an order. Plans referencing it are left in place.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	return s.store.WithTx(ctx, func(tx repository.Tx) error {
		if !tx.DeleteOrder(id) {
			return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := s.store.View(ctx, func(tx repository.Tx) error {
		orders = tx.Orders()
		return nil
	})
	return orders, err
}

// SearchOrders returns the orders matching customer and style exactly.
func (s *OrderService) SearchOrders(ctx context.Context, customer, style string) ([]domain.Order, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	found := lookup.Find(orders, lookup.OrderKey, lookup.Key{Customer: customer, Style: style})
	if found == nil {
		found = []domain.Order{}
	}
	return found, nil
}

func (s *OrderService) Customers(ctx context.Context) ([]string, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return lookup.Customers(orders, lookup.OrderKey), nil
}

func (s *OrderService) Styles(ctx context.Context, customer string) ([]string, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return lookup.Styles(orders, lookup.OrderKey, customer), nil
}

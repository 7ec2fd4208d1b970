package domain

import (
	"context"
	"errors"
)

type OrderCustomer struct {
	Name  string
	Email string
}

// CreateOrderRequest carries the raw order payload. Customer and Quantity are
// pointers so an absent payload section can be told apart from an empty one.
type CreateOrderRequest struct {
	Customer *OrderCustomer
	ItemID   string
	Quantity *int
}

type Service interface {
	List(context.Context) ([]OrderView, error)
	Create(ctx context.Context, req CreateOrderRequest) (OrderView, error)
	Get(ctx context.Context, id string) (OrderView, error)
}

var ErrNotFound = errors.New("order not found")

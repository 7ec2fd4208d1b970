package domain

import (
	"context"
	"errors"
)

type CreateItemRequest struct {
	Name        string
	Description string
}

// UpdateItemRequest uses pointer fields so a partial update can tell a
// field that was omitted apart from one set to its zero value.
type UpdateItemRequest struct {
	Name        *string
	Description *string
}

type Service interface {
	List(context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (Item, error)
	Create(ctx context.Context, req CreateItemRequest) (Item, error)
	Update(ctx context.Context, id string, req UpdateItemRequest, partial bool) (Item, error)
	Delete(ctx context.Context, id string) error
}

var ErrNotFound = errors.New("item not found")

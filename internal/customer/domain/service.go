package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(context.Context) ([]Customer, error)
	Get(ctx context.Context, id string) (Customer, error)
	// GetOrCreateByEmail reuses an existing customer with the given email,
	// ignoring a name mismatch, and creates one otherwise.
	GetOrCreateByEmail(ctx context.Context, name, email string) (Customer, error)
}

var ErrNotFound = errors.New("customer not found")

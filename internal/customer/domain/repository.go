package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	FindAll(ctx context.Context) ([]Customer, error)
}

package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	Insert(ctx context.Context, item *Item) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Item, error)
	FindAll(ctx context.Context) ([]Item, error)
	Replace(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

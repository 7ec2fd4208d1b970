package domain

import "context"

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	// FindByID accepts either a primitive.ObjectID or a raw string id, so a
	// token subject that does not parse as an ObjectID can still be looked up
	// as the store's native string identifier.
	FindByID(ctx context.Context, id any) (*User, error)
}

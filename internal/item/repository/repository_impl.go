package repository

import (
	"context"
	"errors"

	"github.com/storelane/storelane/internal/item/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type repo struct {
	coll *mongo.Collection
}

func Provide(db *mongo.Database) domain.Repository {
	return &repo{coll: db.Collection("items")}
}

func (r *repo) Insert(ctx context.Context, item *domain.Item) error {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *repo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Item, error) {
	var item domain.Item
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repo) FindAll(ctx context.Context) ([]domain.Item, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := make([]domain.Item, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Replace(ctx context.Context, item *domain.Item) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	return err
}

func (r *repo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

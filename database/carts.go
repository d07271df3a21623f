package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/api/models"
	"bistro/api/store"
)

type CartCollection struct {
	coll *mongo.Collection
}

func (s *CartCollection) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cur, err := s.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CartCollection) Insert(ctx context.Context, item models.CartItem) (*store.InsertResult, error) {
	res, err := s.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return &store.InsertResult{InsertedID: res.InsertedID}, nil
}

func (s *CartCollection) Delete(ctx context.Context, id string) (*store.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	return &store.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

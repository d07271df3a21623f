package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/api/models"
	"bistro/api/store"
)

type UserCollection struct {
	coll *mongo.Collection
}

func (s *UserCollection) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserCollection) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserCollection) Insert(ctx context.Context, u models.User) (*store.InsertResult, error) {
	res, err := s.coll.InsertOne(ctx, u)
	if err != nil {
		return nil, err
	}
	return &store.InsertResult{InsertedID: res.InsertedID}, nil
}

func (s *UserCollection) PromoteAdmin(ctx context.Context, id string) (*store.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"role": models.RoleAdmin}})
	if err != nil {
		return nil, err
	}
	return &store.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *UserCollection) Delete(ctx context.Context, id string) (*store.DeleteResult, error) {
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

func (s *UserCollection) EstimatedCount(ctx context.Context) (int64, error) {
	return s.coll.EstimatedDocumentCount(ctx)
}

package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/api/models"
	"bistro/api/store"
)

type MenuCollection struct {
	coll *mongo.Collection
}

func (s *MenuCollection) List(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MenuCollection) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var item models.MenuItem
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuCollection) Insert(ctx context.Context, item models.MenuItem) (*store.InsertResult, error) {
	res, err := s.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return &store.InsertResult{InsertedID: res.InsertedID}, nil
}

// Update merge-sets only the recognized menu fields; anything else on the
// document stays as it was.
func (s *MenuCollection) Update(ctx context.Context, id string, upd models.MenuItemUpdate) (*store.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Recipe != nil {
		set["recipe"] = *upd.Recipe
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if len(set) == 0 {
		return &store.UpdateResult{}, nil
	}

	res, err := s.coll.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &store.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *MenuCollection) Delete(ctx context.Context, id string) (*store.DeleteResult, error) {
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

func (s *MenuCollection) EstimatedCount(ctx context.Context) (int64, error) {
	return s.coll.EstimatedDocumentCount(ctx)
}

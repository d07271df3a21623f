package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/api/models"
	"bistro/api/store"
)

type PaymentCollection struct {
	coll  *mongo.Collection
	carts *mongo.Collection
}

func (s *PaymentCollection) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := s.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Record inserts the payment and purges the cart entries it references.
// Insert and purge are two store writes, not one transaction, so the whole
// operation is made idempotent on transactionId instead: a retry finds the
// existing record, skips the insert, and re-runs the purge. DeleteMany by id
// list is a no-op for ids already gone, so retries converge on exactly one
// payment record and no leftover cart entries.
func (s *PaymentCollection) Record(ctx context.Context, p models.Payment) (*store.InsertResult, *store.DeleteResult, error) {
	var insertedID interface{}

	if p.TransactionID != "" {
		var existing models.Payment
		err := s.coll.FindOne(ctx, bson.M{"transactionId": p.TransactionID}).Decode(&existing)
		switch {
		case err == nil:
			insertedID = existing.ID
		case errors.Is(err, mongo.ErrNoDocuments):
		default:
			return nil, nil, err
		}
	}

	if insertedID == nil {
		res, err := s.coll.InsertOne(ctx, p)
		if err != nil {
			return nil, nil, err
		}
		insertedID = res.InsertedID
	}

	oids := make([]primitive.ObjectID, 0, len(p.CartIDs))
	for _, id := range p.CartIDs {
		oid, err := objectID(id)
		if err != nil {
			return nil, nil, err
		}
		oids = append(oids, oid)
	}

	del, err := s.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, nil, err
	}

	return &store.InsertResult{InsertedID: insertedID},
		&store.DeleteResult{DeletedCount: del.DeletedCount}, nil
}

func (s *PaymentCollection) EstimatedCount(ctx context.Context) (int64, error) {
	return s.coll.EstimatedDocumentCount(ctx)
}

// TotalRevenue sums price over every payment record with a $group stage.
func (s *PaymentCollection) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var out []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].TotalRevenue, nil
}

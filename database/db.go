package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bistro/api/store"
)

// DB holds the shared Mongo client and the typed collection wrappers.
// It is created once at startup and injected into the handlers.
type DB struct {
	client *mongo.Client

	Users    *UserCollection
	Menu     *MenuCollection
	Reviews  *ReviewCollection
	Carts    *CartCollection
	Payments *PaymentCollection
}

func Connect(ctx context.Context, uri, dbName string) (*DB, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	db := client.Database(dbName)
	users := db.Collection("users")
	carts := db.Collection("cart")

	// Unique index on email so concurrent account creation cannot slip two
	// documents past the existence check.
	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("users email index: %w", err)
	}

	return &DB{
		client:   client,
		Users:    &UserCollection{coll: users},
		Menu:     &MenuCollection{coll: db.Collection("menu")},
		Reviews:  &ReviewCollection{coll: db.Collection("reviews")},
		Carts:    &CartCollection{coll: carts},
		Payments: &PaymentCollection{coll: db.Collection("payment"), carts: carts},
	}, nil
}

func (d *DB) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.ErrInvalidID
	}
	return oid, nil
}

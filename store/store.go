// Package store defines the seam between HTTP handlers and the document
// store. Handlers depend on these interfaces; database implements them on
// MongoDB, tests implement them in memory.
package store

import (
	"context"
	"errors"

	"bistro/api/models"
)

// ErrNotFound is returned by get-by-id lookups that match nothing.
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned when an id path parameter is not a valid
// document id.
var ErrInvalidID = errors.New("invalid id")

// Result types mirror the store acknowledgements the API echoes to clients.

type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, u models.User) (*InsertResult, error)
	PromoteAdmin(ctx context.Context, id string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type MenuStore interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id string) (*models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) (*InsertResult, error)
	Update(ctx context.Context, id string, upd models.MenuItemUpdate) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
}

type CartStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Insert(ctx context.Context, item models.CartItem) (*InsertResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}

type PaymentStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
	// Record inserts the payment and purges the cart entries it references.
	// The operation is idempotent on the payment's transactionId: a retry
	// after a partial failure re-runs the purge without inserting a second
	// record.
	Record(ctx context.Context, p models.Payment) (*InsertResult, *DeleteResult, error)
	EstimatedCount(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

// Package storetest provides in-memory store implementations for handler
// and middleware tests.
package storetest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro/api/models"
	"bistro/api/store"
)

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.ErrInvalidID
	}
	return oid, nil
}

type Users struct {
	mu   sync.Mutex
	Docs []models.User
}

func (f *Users) List(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.User{}, f.Docs...), nil
}

func (f *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Docs {
		if f.Docs[i].Email == email {
			u := f.Docs[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *Users) Insert(ctx context.Context, u models.User) (*store.InsertResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.Docs = append(f.Docs, u)
	return &store.InsertResult{InsertedID: u.ID}, nil
}

func (f *Users) PromoteAdmin(ctx context.Context, id string) (*store.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Docs {
		if f.Docs[i].ID == oid {
			modified := int64(0)
			if f.Docs[i].Role != models.RoleAdmin {
				f.Docs[i].Role = models.RoleAdmin
				modified = 1
			}
			return &store.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &store.UpdateResult{}, nil
}

func (f *Users) Delete(ctx context.Context, id string) (*store.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Docs {
		if f.Docs[i].ID == oid {
			f.Docs = append(f.Docs[:i], f.Docs[i+1:]...)
			return &store.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &store.DeleteResult{}, nil
}

func (f *Users) EstimatedCount(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.Docs)), nil
}

type Menu struct {
	mu   sync.Mutex
	Docs []models.MenuItem
}

func (f *Menu) List(ctx context.Context) ([]models.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.MenuItem{}, f.Docs...), nil
}

func (f *Menu) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Docs {
		if f.Docs[i].ID == oid {
			item := f.Docs[i]
			return &item, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *Menu) Insert(ctx context.Context, item models.MenuItem) (*store.InsertResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	f.Docs = append(f.Docs, item)
	return &store.InsertResult{InsertedID: item.ID}, nil
}

func (f *Menu) Update(ctx context.Context, id string, upd models.MenuItemUpdate) (*store.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Docs {
		if f.Docs[i].ID != oid {
			continue
		}
		modified := int64(0)
		if upd.Name != nil && f.Docs[i].Name != *upd.Name {
			f.Docs[i].Name = *upd.Name
			modified = 1
		}
		if upd.Category != nil && f.Docs[i].Category != *upd.Category {
			f.Docs[i].Category = *upd.Category
			modified = 1
		}
		if upd.Price != nil && f.Docs[i].Price != *upd.Price {
			f.Docs[i].Price = *upd.Price
			modified = 1
		}
		if upd.Recipe != nil && f.Docs[i].Recipe != *upd.Recipe {
			f.Docs[i].Recipe = *upd.Recipe
			modified = 1
		}
		if upd.Image != nil && f.Docs[i].Image != *upd.Image {
			f.Docs[i].Image = *upd.Image
			modified = 1
		}
		return &store.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
	}
	return &store.UpdateResult{}, nil
}

func (f *Menu) Delete(ctx context.Context, id string) (*store.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Docs {
		if f.Docs[i].ID == oid {
			f.Docs = append(f.Docs[:i], f.Docs[i+1:]...)
			return &store.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &store.DeleteResult{}, nil
}

func (f *Menu) EstimatedCount(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.Docs)), nil
}

type Reviews struct {
	mu   sync.Mutex
	Docs []models.Review
}

func (f *Reviews) List(ctx context.Context) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Review{}, f.Docs...), nil
}

type Carts struct {
	mu   sync.Mutex
	Docs []models.CartItem
}

func (f *Carts) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := []models.CartItem{}
	for _, item := range f.Docs {
		if item.Email == email {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *Carts) Insert(ctx context.Context, item models.CartItem) (*store.InsertResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	f.Docs = append(f.Docs, item)
	return &store.InsertResult{InsertedID: item.ID}, nil
}

func (f *Carts) Delete(ctx context.Context, id string) (*store.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Docs {
		if f.Docs[i].ID == oid {
			f.Docs = append(f.Docs[:i], f.Docs[i+1:]...)
			return &store.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &store.DeleteResult{}, nil
}

func (f *Carts) deleteMany(ids []primitive.ObjectID) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	deleted := int64(0)
	kept := f.Docs[:0]
	for _, item := range f.Docs {
		drop := false
		for _, oid := range ids {
			if item.ID == oid {
				drop = true
				break
			}
		}
		if drop {
			deleted++
		} else {
			kept = append(kept, item)
		}
	}
	f.Docs = kept
	return deleted
}

type Payments struct {
	mu    sync.Mutex
	Docs  []models.Payment
	Carts *Carts
}

func (f *Payments) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payments := []models.Payment{}
	for _, p := range f.Docs {
		if p.Email == email {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (f *Payments) Record(ctx context.Context, p models.Payment) (*store.InsertResult, *store.DeleteResult, error) {
	oids := make([]primitive.ObjectID, 0, len(p.CartIDs))
	for _, id := range p.CartIDs {
		oid, err := parseID(id)
		if err != nil {
			return nil, nil, err
		}
		oids = append(oids, oid)
	}

	f.mu.Lock()
	var insertedID interface{}
	if p.TransactionID != "" {
		for _, existing := range f.Docs {
			if existing.TransactionID == p.TransactionID {
				insertedID = existing.ID
				break
			}
		}
	}
	if insertedID == nil {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		f.Docs = append(f.Docs, p)
		insertedID = p.ID
	}
	f.mu.Unlock()

	deleted := f.Carts.deleteMany(oids)
	return &store.InsertResult{InsertedID: insertedID},
		&store.DeleteResult{DeletedCount: deleted}, nil
}

func (f *Payments) EstimatedCount(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.Docs)), nil
}

func (f *Payments) TotalRevenue(ctx context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0.0
	for _, p := range f.Docs {
		total += p.Price
	}
	return total, nil
}

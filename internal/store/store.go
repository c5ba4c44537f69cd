// Package store owns the canonical account and product collections. All
// persistence goes through an injected whole-document KV collaborator; other
// packages read the collections through Store and mutate them only via the
// account and catalog services.
package store

import (
	"context"
	"encoding/json"

	"vitrina.org/internal/obs"
)

// Document keys in the backing collection.
const (
	usersKey    = "vitrina_users"
	productsKey = "vitrina_products"
	sessionKey  = "vitrina_current_user"
)

// Store loads and saves the canonical collections against a KV collaborator.
type Store struct {
	kv KV
}

// New constructs a Store over the given collaborator.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// LoadUsers returns the persisted accounts. On first run, or when the
// persisted document cannot be decoded, the fixed bootstrap set is returned.
func (s *Store) LoadUsers(ctx context.Context) ([]Account, error) {
	data, ok, err := s.kv.Get(ctx, usersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return seedAccounts(), nil
	}
	var users []Account
	if err := json.Unmarshal(data, &users); err != nil {
		obs.Warn("user document malformed, using seed data", map[string]any{"key": usersKey, "error": err.Error()})
		return seedAccounts(), nil
	}
	return users, nil
}

// SaveUsers replaces the persisted account collection wholesale.
func (s *Store) SaveUsers(ctx context.Context, users []Account) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, usersKey, data)
}

// LoadProducts returns the persisted catalog, or the seed catalog when no
// usable document exists.
func (s *Store) LoadProducts(ctx context.Context) ([]Product, error) {
	data, ok, err := s.kv.Get(ctx, productsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return seedProducts(), nil
	}
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		obs.Warn("product document malformed, using seed data", map[string]any{"key": productsKey, "error": err.Error()})
		return seedProducts(), nil
	}
	return products, nil
}

// SaveProducts replaces the persisted catalog wholesale.
func (s *Store) SaveProducts(ctx context.Context, products []Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, productsKey, data)
}

// LoadSession returns the account mirrored into the session slot, or nil when
// no session is established. A malformed slot is treated as no session.
func (s *Store) LoadSession(ctx context.Context) (*Account, error) {
	data, ok, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var acc Account
	if err := json.Unmarshal(data, &acc); err != nil {
		obs.Warn("session document malformed, clearing", map[string]any{"key": sessionKey, "error": err.Error()})
		return nil, s.kv.Delete(ctx, sessionKey)
	}
	return &acc, nil
}

// SetSession mirrors the given account into the session slot.
func (s *Store) SetSession(ctx context.Context, acc Account) error {
	data, err := json.Marshal(acc)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, sessionKey, data)
}

// ClearSession erases the session slot.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.kv.Delete(ctx, sessionKey)
}

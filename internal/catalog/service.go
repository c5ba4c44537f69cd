// Package catalog validates and applies product mutations. Validation
// failures are reported as per-field error sets, never as hard failures;
// only referencing an id that does not exist is an error.
package catalog

import (
	"context"
	"strconv"
	"strings"

	"vitrina.org/internal/ids"
	"vitrina.org/internal/store"
)

// Service applies create/update/delete operations to the product collection.
type Service struct {
	store *store.Store
}

// NewService constructs a Service over the document store.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Validate checks a draft and returns one message per invalid field.
func (d Draft) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Product name is required"
	}
	if strings.TrimSpace(d.Category) == "" {
		errs["category"] = "Category is required"
	}
	if price, err := strconv.ParseFloat(d.Price, 64); err != nil || price <= 0 {
		errs["price"] = "Valid price is required"
	}
	if stock, err := strconv.Atoi(d.Stock); err != nil || stock < 0 {
		errs["stock"] = "Valid stock quantity is required"
	}
	return errs
}

// coerce converts a validated draft into a product record. Rating and review
// counts that are absent or unparseable fall back to the catalog defaults;
// id and sales are supplied by the caller.
func coerce(d Draft, id string, sales int) store.Product {
	price, _ := strconv.ParseFloat(d.Price, 64)
	stock, _ := strconv.Atoi(d.Stock)

	rating, err := strconv.ParseFloat(d.Rating, 64)
	if err != nil || rating <= 0 {
		rating = store.DefaultRating
	}
	reviews, err2 := strconv.Atoi(d.Reviews)
	if err2 != nil || reviews <= 0 {
		reviews = store.DefaultReviews
	}

	return store.Product{
		ID:       id,
		Name:     d.Name,
		Category: d.Category,
		Price:    price,
		Stock:    stock,
		Rating:   rating,
		Reviews:  reviews,
		Sales:    sales,
		Image:    d.Image,
	}
}

// List returns the full catalog snapshot.
func (s *Service) List(ctx context.Context) ([]store.Product, error) {
	return s.store.LoadProducts(ctx)
}

// Get returns the product with the given id.
func (s *Service) Get(ctx context.Context, id string) (store.Product, error) {
	products, err := s.store.LoadProducts(ctx)
	if err != nil {
		return store.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return store.Product{}, ErrNotFound
}

// Create validates the draft and appends a new product with a fresh id and
// zero sales. A non-empty FieldErrors means the catalog was not touched.
func (s *Service) Create(ctx context.Context, d Draft) (store.Product, FieldErrors, error) {
	if errs := d.Validate(); len(errs) > 0 {
		return store.Product{}, errs, nil
	}
	products, err := s.store.LoadProducts(ctx)
	if err != nil {
		return store.Product{}, nil, err
	}
	p := coerce(d, ids.New(), 0)
	products = append(products, p)
	if err := s.store.SaveProducts(ctx, products); err != nil {
		return store.Product{}, nil, err
	}
	return p, nil, nil
}

// Update validates the draft and replaces the product in place, preserving
// its id and sales count. Updating an id that does not exist is a hard
// failure: the presentation layer only references ids from the current
// snapshot.
func (s *Service) Update(ctx context.Context, id string, d Draft) (store.Product, FieldErrors, error) {
	if errs := d.Validate(); len(errs) > 0 {
		return store.Product{}, errs, nil
	}
	products, err := s.store.LoadProducts(ctx)
	if err != nil {
		return store.Product{}, nil, err
	}
	for i, existing := range products {
		if existing.ID == id {
			p := coerce(d, existing.ID, existing.Sales)
			products[i] = p
			if err := s.store.SaveProducts(ctx, products); err != nil {
				return store.Product{}, nil, err
			}
			return p, nil, nil
		}
	}
	return store.Product{}, nil, ErrNotFound
}

// Delete removes the product with the given id. The operation is destructive
// and unconditional; any confirmation step belongs to the caller.
func (s *Service) Delete(ctx context.Context, id string) error {
	products, err := s.store.LoadProducts(ctx)
	if err != nil {
		return err
	}
	for i, p := range products {
		if p.ID == id {
			products = append(products[:i], products[i+1:]...)
			return s.store.SaveProducts(ctx, products)
		}
	}
	return ErrNotFound
}

package cart

import (
	"bookstore/internal/localstore"
)

// storageKey matches the key the web storefront used, so a cart survives
// the storefront being rebuilt.
const storageKey = "cartItems"

// Store persists the cart as a single JSON array under a fixed key. Every
// save rewrites the whole list; there is no partial update.
type Store struct {
	kv *localstore.Store
}

func NewStore(kv *localstore.Store) *Store {
	return &Store{kv: kv}
}

// Init writes an empty cart if none has ever been saved.
func (s *Store) Init() error {
	if s.kv.Has(storageKey) {
		return nil
	}
	return s.kv.Set(storageKey, []LineItem{})
}

// Items reads the saved cart, returning an empty list when nothing has
// been saved yet.
func (s *Store) Items() ([]LineItem, error) {
	var items []LineItem
	ok, err := s.kv.Get(storageKey, &items)
	if err != nil {
		return nil, err
	}
	if !ok || items == nil {
		return []LineItem{}, nil
	}
	return items, nil
}

// Save overwrites the saved cart with items.
func (s *Store) Save(items []LineItem) error {
	return s.kv.Set(storageKey, items)
}

// UpdateQuantity reads the cart, applies one delta and saves the result.
// The returned list is the post-mutation cart even when the save fails.
func (s *Store) UpdateQuantity(bookID int64, delta int, books Lookup) ([]LineItem, error) {
	items, err := s.Items()
	if err != nil {
		return nil, err
	}
	items = Update(items, bookID, delta, books)
	return items, s.Save(items)
}

// Clear removes every line item.
func (s *Store) Clear() error {
	return s.kv.Set(storageKey, []LineItem{})
}

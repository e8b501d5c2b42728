package ops

import "github.com/jacksmith/kicks/internal/model"

// Store defines the persistence interface required by the inventory manager.
// The concrete implementation is storage.Storage, but this interface allows
// alternative backends (in-memory, failing) for testing.
type Store interface {
	// Load returns the full persisted collection, in order.
	Load() ([]model.Shoe, error)
	// Save replaces the persisted collection with shoes.
	Save(shoes []model.Shoe) error
}

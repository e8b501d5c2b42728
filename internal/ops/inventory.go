// Package ops implements inventory operations on top of a Store.
package ops

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jacksmith/kicks/internal/model"
	"go.uber.org/zap"
)

// ErrNotLoaded is returned by mutating operations on a Manager whose
// collection has not been loaded from its store yet.
var ErrNotLoaded = errors.New("inventory not loaded")

// Manager owns the in-memory collection and keeps it in sync with a Store.
//
// A new Manager is unloaded. Reads on an unloaded manager see an empty
// collection; mutations fail with ErrNotLoaded so that the store is never
// overwritten with a collection that was not read from it.
//
// Every mutation builds the next collection, saves it, and only then
// replaces the in-memory one. A failed save leaves memory unchanged.
type Manager struct {
	store  Store
	shoes  []model.Shoe
	loaded bool
	log    *zap.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for mutation and persistence events.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// NewManager returns an unloaded Manager backed by store.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open returns a Manager backed by store with its collection loaded.
func Open(store Store, opts ...Option) (*Manager, error) {
	m := NewManager(store, opts...)
	if err := m.Load(); err != nil {
		return nil, err
	}
	return m, nil
}

// Loaded reports whether the collection has been loaded.
func (m *Manager) Loaded() bool {
	return m.loaded
}

// Load replaces the in-memory collection with the store's content.
// On error the previous collection is kept.
func (m *Manager) Load() error {
	shoes, err := m.store.Load()
	if err != nil {
		return err
	}
	m.shoes = shoes
	m.loaded = true
	m.log.Debug("inventory loaded", zap.Int("count", len(shoes)))
	return nil
}

// ListAll returns a copy of the collection in insertion order.
func (m *Manager) ListAll() []model.Shoe {
	return append([]model.Shoe{}, m.shoes...)
}

// Len returns the number of records in the collection.
func (m *Manager) Len() int {
	return len(m.shoes)
}

// AddShoe validates s, appends it to the collection and saves.
// Text fields are stored trimmed.
func (m *Manager) AddShoe(s model.Shoe) error {
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return err
	}
	if !m.loaded {
		return ErrNotLoaded
	}

	next := append(m.ListAll(), s)
	if err := m.commit("add", next); err != nil {
		return err
	}
	m.log.Debug("shoe added", shoeFields(s)...)
	return nil
}

// RemoveShoe removes the first record equal to s, by insertion order, and
// saves. It returns false, without saving, when no record matches.
func (m *Manager) RemoveShoe(s model.Shoe) (bool, error) {
	if !m.loaded {
		return false, ErrNotLoaded
	}
	s = s.Normalize()

	idx := slices.Index(m.shoes, s)
	if idx < 0 {
		return false, nil
	}

	next := slices.Delete(m.ListAll(), idx, idx+1)
	if err := m.commit("remove", next); err != nil {
		return false, err
	}
	m.log.Debug("shoe removed", shoeFields(s)...)
	return true, nil
}

// ClearInventory empties the collection and saves, even when it is
// already empty.
func (m *Manager) ClearInventory() error {
	if !m.loaded {
		return ErrNotLoaded
	}
	if err := m.commit("clear", []model.Shoe{}); err != nil {
		return err
	}
	m.log.Debug("inventory cleared")
	return nil
}

// Replace validates every record, then replaces the whole collection and
// saves. Nothing changes if any record is invalid.
func (m *Manager) Replace(shoes []model.Shoe) error {
	if !m.loaded {
		return ErrNotLoaded
	}

	next := make([]model.Shoe, 0, len(shoes))
	for i, s := range shoes {
		s = s.Normalize()
		if err := s.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		next = append(next, s)
	}
	return m.commit("replace", next)
}

// Search returns, in insertion order, every record matching f.
func (m *Manager) Search(f Filter) []model.Shoe {
	results := []model.Shoe{}
	for _, i := range m.SearchPositions(f) {
		results = append(results, m.shoes[i])
	}
	return results
}

// SearchPositions returns the 0-based positions in the collection of every
// record matching f, in ascending order.
func (m *Manager) SearchPositions(f Filter) []int {
	positions := []int{}
	for i, s := range m.shoes {
		if f.Match(s) {
			positions = append(positions, i)
		}
	}
	return positions
}

// commit saves next and, only if that succeeds, makes it the collection.
func (m *Manager) commit(op string, next []model.Shoe) error {
	if err := m.store.Save(next); err != nil {
		m.log.Warn("save failed, inventory unchanged",
			zap.String("op", op),
			zap.Int("count", len(m.shoes)),
			zap.Error(err))
		return err
	}
	m.shoes = next
	m.log.Debug("inventory saved", zap.String("op", op), zap.Int("count", len(next)))
	return nil
}

func shoeFields(s model.Shoe) []zap.Field {
	return []zap.Field{
		zap.String("brand", s.Brand),
		zap.String("model", s.Model),
		zap.Float64("size", s.Size),
		zap.String("color", s.Color),
	}
}

package item

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/modhaven/itemforge/internal/metrics"
)

// Sentinel errors for item registration
var (
	ErrDuplicateItem   = errors.New("item already registered")
	ErrEmptyName       = errors.New("empty internal name")
	ErrNilSettings     = errors.New("nil settings")
	ErrInvalidSettings = errors.New("invalid settings")
)

// Registry owns the construction pipeline. Register consumes a Settings
// builder, produces an immutable Item, and builds every custom setting
// present in the builder onto it before the item becomes visible to readers.
type Registry struct {
	mu    sync.RWMutex
	items map[string]*Item
}

// NewRegistry creates an empty item registry.
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]*Item),
	}
}

// Register builds an item from the settings and stores it under internalName.
// The settings builder must not be reused after a successful Register call.
func (r *Registry) Register(internalName string, s *Settings) (*Item, error) {
	if internalName == "" {
		metrics.RegistrationFailures.WithLabelValues(ReasonEmptyName).Inc()
		return nil, ErrEmptyName
	}
	if s == nil {
		metrics.RegistrationFailures.WithLabelValues(ReasonNilSettings).Inc()
		return nil, fmt.Errorf("%w: item '%s'", ErrNilSettings, internalName)
	}
	if s.maxStack < 0 {
		metrics.RegistrationFailures.WithLabelValues(ReasonInvalidSettings).Inc()
		return nil, fmt.Errorf(ErrFmtNegativeMaxStack, ErrInvalidSettings, internalName)
	}
	if s.baseValue < 0 {
		metrics.RegistrationFailures.WithLabelValues(ReasonInvalidSettings).Inc()
		return nil, fmt.Errorf(ErrFmtNegativeBaseValue, ErrInvalidSettings, internalName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[internalName]; exists {
		metrics.RegistrationFailures.WithLabelValues(ReasonDuplicate).Inc()
		return nil, fmt.Errorf("%w: '%s'", ErrDuplicateItem, internalName)
	}

	displayName := s.displayName
	if displayName == "" {
		displayName = internalName
	}

	it := &Item{
		id:           uuid.NewString(),
		internalName: internalName,
		displayName:  displayName,
		description:  s.description,
		maxStack:     s.maxStack,
		baseValue:    s.baseValue,
		rarity:       s.rarity,
		handler:      s.handler,
		custom:       make(map[customKey]any, len(s.custom)),
	}

	// Item construction pipeline: build each live custom setting onto the
	// item exactly once, before the item is exposed to any reader.
	s.buildCustom(it)

	r.items[internalName] = it
	metrics.ItemsRegistered.Inc()

	return it, nil
}

// Get returns the item registered under internalName.
func (r *Registry) Get(internalName string) (*Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[internalName]
	return it, ok
}

// All returns every registered item sorted by internal name.
func (r *Registry) All() []*Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*Item, 0, len(r.items))
	for _, it := range r.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].internalName < items[j].internalName
	})
	return items
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

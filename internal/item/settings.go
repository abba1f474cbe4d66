package item

import (
	"github.com/modhaven/itemforge/internal/domain"
)

// customKey is the identity under which a custom setting stores its pending
// value in a builder. Implemented only by customSetting.
type customKey interface {
	transfer(s *Settings, it *Item)
}

// Settings is the mutable builder passed to item construction. It is owned by
// a single caller, populated during construction of one item, and discarded
// once that item is built. It is not safe for concurrent use.
type Settings struct {
	displayName string
	description string
	maxStack    int
	baseValue   int
	rarity      domain.Rarity
	handler     string

	custom map[customKey]any
}

// NewSettings returns a builder with standard defaults applied.
func NewSettings() *Settings {
	return &Settings{
		maxStack: DefaultMaxStack,
		rarity:   domain.RarityCommon,
	}
}

// DisplayName sets the user-facing display name.
func (s *Settings) DisplayName(name string) *Settings {
	s.displayName = name
	return s
}

// Description sets the item description shown in tooltips.
func (s *Settings) Description(description string) *Settings {
	s.description = description
	return s
}

// MaxStack sets the maximum stack size.
func (s *Settings) MaxStack(n int) *Settings {
	s.maxStack = n
	return s
}

// BaseValue sets the base currency value.
func (s *Settings) BaseValue(v int) *Settings {
	s.baseValue = v
	return s
}

// Rarity sets the rarity tier.
func (s *Settings) Rarity(r domain.Rarity) *Settings {
	s.rarity = r
	return s
}

// Handler sets the name of the behavior handler for the item.
func (s *Settings) Handler(name string) *Settings {
	s.handler = name
	return s
}

// setCustom stores a pending custom setting value keyed by setting identity.
// Lazily allocates so a zero-value Settings still works as a builder.
func (s *Settings) setCustom(key customKey, value any) {
	if s.custom == nil {
		s.custom = make(map[customKey]any)
	}
	s.custom[key] = value
}

// buildCustom runs the construction pipeline for custom settings: every key
// with a pending value in this builder is built onto the item exactly once.
// Keys that were never set need no build call; their reads fall back to the
// default supplier.
func (s *Settings) buildCustom(it *Item) {
	for key := range s.custom {
		key.transfer(s, it)
	}
}

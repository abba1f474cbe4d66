package item

import (
	"github.com/modhaven/itemforge/internal/domain"
)

// Item is a built, immutable item. All fields including the custom setting
// table are populated exactly once during registration and never mutated
// afterwards, so items are safe to share between readers without locking.
type Item struct {
	id           string
	internalName string
	displayName  string
	description  string
	maxStack     int
	baseValue    int
	rarity       domain.Rarity
	handler      string

	custom map[customKey]any
}

// ID returns the unique runtime identifier assigned at registration.
func (it *Item) ID() string { return it.id }

// InternalName returns the stable code identifier (e.g. "weapon_blaster").
func (it *Item) InternalName() string { return it.internalName }

// DisplayName returns the user-facing name.
func (it *Item) DisplayName() string { return it.displayName }

// Description returns the item description.
func (it *Item) Description() string { return it.description }

// MaxStack returns the maximum stack size.
func (it *Item) MaxStack() int { return it.maxStack }

// BaseValue returns the base currency value.
func (it *Item) BaseValue() int { return it.baseValue }

// Rarity returns the rarity tier.
func (it *Item) Rarity() domain.Rarity { return it.rarity }

// Handler returns the behavior handler name, empty if the item has none.
func (it *Item) Handler() string { return it.handler }

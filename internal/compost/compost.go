// Package compost is an in-tree extension that marks items as compostable
// through a CustomSetting holding the chance that one item raises the
// composter fill level.
package compost

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/modhaven/itemforge/internal/item"
)

// Sentinel errors for composter operations
var (
	ErrNotCompostable = errors.New("item is not compostable")
	ErrComposterFull  = errors.New("composter is full")
)

// MaxLevel is the fill level at which a composter must be harvested.
const MaxLevel = 7

// CompostChance is the setting key holding the probability, in [0, 1], that
// composting one item raises the fill level. The zero default means the item
// is not compostable at all.
var CompostChance = item.NewCustomSetting(func() float64 { return 0 })

// Applier wires pack definitions to the CompostChance setting during item
// construction.
func Applier(def item.Def, s *item.Settings) {
	if def.CompostChance > 0 {
		CompostChance.Set(s, def.CompostChance)
	}
}

// Compostable reports whether the item can be composted at all.
func Compostable(it *item.Item) bool {
	return CompostChance.Value(it) > 0
}

// Composter accumulates fill level from composted items. Not safe for
// concurrent use; each owner holds its own composter.
type Composter struct {
	level int
	roll  func() float64
}

// NewComposter creates an empty composter.
func NewComposter() *Composter {
	return &Composter{roll: rand.Float64}
}

// Add composts one item. It returns true when the fill level rose, false on
// an unlucky roll. Adding a non-compostable item or adding to a full
// composter is an error.
func (c *Composter) Add(it *item.Item) (bool, error) {
	if c.level >= MaxLevel {
		return false, ErrComposterFull
	}

	chance := CompostChance.Value(it)
	if chance <= 0 {
		return false, fmt.Errorf("%w: '%s'", ErrNotCompostable, it.InternalName())
	}

	if c.roll() < chance {
		c.level++
		return true, nil
	}
	return false, nil
}

// Level returns the current fill level.
func (c *Composter) Level() int {
	return c.level
}

// Full reports whether the composter is ready to harvest.
func (c *Composter) Full() bool {
	return c.level >= MaxLevel
}

// Harvest empties a full composter. It returns false when the composter is
// not yet full.
func (c *Composter) Harvest() bool {
	if !c.Full() {
		return false
	}
	c.level = 0
	return true
}

package item

import (
	"github.com/modhaven/itemforge/internal/metrics"
)

// CustomSetting is a typed key for attaching non-standard metadata to items.
// Independent extensions can annotate the same item without colliding as long
// as each holds its own key: keys are distinguished by identity, not by value,
// so two keys created with the same default never share storage.
//
// A key is typically exposed as a long-lived package-level variable:
//
//	var CustomTooltip = item.NewCustomSetting(func() string { return "" })
//
// Extensions call Set during builder customization and Value on the built
// item. Build is invoked by the registry's construction pipeline and should
// not be called by ordinary callers.
type CustomSetting[T any] interface {
	// Value returns the value stored for this key on the item, or the
	// result of the default supplier if the key was never set. The
	// supplier result is not cached on the item: a non-constant supplier
	// is re-invoked on every missed read.
	Value(it *Item) T

	// Set stores value under this key in the builder, overwriting any
	// prior value for the same key. Passing a nil builder is a
	// programmer error and panics.
	Set(s *Settings, value T)

	// Build transfers this key's value, if present, from the builder into
	// the item's post-build storage. An absent value is not baked in:
	// reads fall through to the default supplier instead.
	Build(s *Settings, it *Item)
}

// NewCustomSetting creates a new custom setting key with the given default
// supplier. The supplier must be non-nil; it is invoked lazily, on reads of
// items that never had the setting applied.
func NewCustomSetting[T any](defaultValue func() T) CustomSetting[T] {
	if defaultValue == nil {
		panic(PanicMsgNilDefaultSupplier)
	}
	metrics.CustomSettingsCreated.Inc()
	return &customSetting[T]{defaultValue: defaultValue}
}

// customSetting is the canonical CustomSetting implementation. Its pointer
// identity is the key under which values live in builder and item storage.
type customSetting[T any] struct {
	defaultValue func() T
}

func (c *customSetting[T]) Value(it *Item) T {
	if v, ok := it.custom[c]; ok {
		return v.(T)
	}
	metrics.SettingDefaultReads.Inc()
	return c.defaultValue()
}

func (c *customSetting[T]) Set(s *Settings, value T) {
	if s == nil {
		panic(PanicMsgNilSettings)
	}
	s.setCustom(c, value)
	metrics.SettingWrites.Inc()
}

func (c *customSetting[T]) Build(s *Settings, it *Item) {
	if s == nil {
		panic(PanicMsgNilSettings)
	}
	if v, ok := s.custom[c]; ok {
		it.custom[c] = v
	}
}

// transfer lets the builder walk its live keys without knowing their value
// types. Each key is built exactly once per item.
func (c *customSetting[T]) transfer(s *Settings, it *Item) {
	c.Build(s, it)
}

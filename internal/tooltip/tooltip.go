// Package tooltip is an in-tree extension that attaches a custom tooltip
// line to items through a CustomSetting, mirroring how independent
// extensions annotate items they do not own.
package tooltip

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/modhaven/itemforge/internal/item"
	"github.com/modhaven/itemforge/internal/metrics"
	"github.com/modhaven/itemforge/internal/naming"
)

// CustomTooltip is the setting key under which an extra tooltip line is
// attached to an item. The empty-string default means "no custom tooltip".
var CustomTooltip = item.NewCustomSetting(func() string { return "" })

// Applier wires pack definitions to the CustomTooltip setting during item
// construction.
func Applier(def item.Def, s *item.Settings) {
	if def.Tooltip != "" {
		CustomTooltip.Set(s, def.Tooltip)
	}
}

// CacheSchemaVersion is the current version of the render cache schema.
// Increment this when the rendered line format changes to auto-invalidate
// old entries.
const CacheSchemaVersion = "1.0"

// cachedRender wraps rendered lines with version metadata for cache invalidation
type cachedRender struct {
	Version string
	Lines   []string
}

// Renderer produces the tooltip lines for an item, with an in-memory LRU
// cache keyed by item ID. Items are immutable after build, so a cached
// render only goes stale when the line format itself changes.
type Renderer struct {
	lru *expirable.LRU[string, *cachedRender]
}

// NewRenderer creates a renderer with the specified cache size and TTL.
func NewRenderer(size int, ttl time.Duration) *Renderer {
	return &Renderer{
		lru: expirable.NewLRU[string, *cachedRender](size, nil, ttl),
	}
}

// Render returns the tooltip lines for the item: formatted display name,
// the custom tooltip line when present, the description, and the base value.
func (r *Renderer) Render(it *item.Item) []string {
	if entry, found := r.lru.Get(it.ID()); found && entry.Version == CacheSchemaVersion {
		metrics.TooltipCacheHits.Inc()
		return entry.Lines
	}
	metrics.TooltipCacheMisses.Inc()

	lines := r.renderLines(it)
	r.lru.Add(it.ID(), &cachedRender{Version: CacheSchemaVersion, Lines: lines})
	return lines
}

func (r *Renderer) renderLines(it *item.Item) []string {
	lines := make([]string, 0, 4)
	lines = append(lines, naming.FormatDisplayName(it.Rarity(), it.DisplayName()))

	if custom := CustomTooltip.Value(it); custom != "" {
		lines = append(lines, custom)
	}

	if it.Description() != "" {
		lines = append(lines, it.Description())
	}

	lines = append(lines, fmt.Sprintf("Value: %d", it.BaseValue()))
	return lines
}

package naming

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/modhaven/itemforge/internal/domain"
)

// FormatDisplayName returns the user-facing name for an item, prefixed with
// its rarity tier when the tier is above common.
func FormatDisplayName(rarity domain.Rarity, name string) string {
	display := TitleCase(name)
	if string(rarity) == RarityCommonTier || rarity == "" {
		return display
	}
	return fmt.Sprintf(RarityFormatTemplate, rarity, display)
}

// TitleCase converts a raw name into title case for display.
// A fresh caser per call: cases.Caser is stateful and not goroutine-safe.
func TitleCase(name string) string {
	return cases.Title(language.English).String(name)
}

// InternalName derives a stable code identifier from a display name:
// lowercased, with word separators collapsed to underscores.
func InternalName(displayName string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(displayName)))
	return strings.Join(fields, InternalNameSeparator)
}

package naming

// ============================================================================
// Display Formatting Constants
// ============================================================================

// RarityCommonTier is the rarity tier that does not display a prefix in the
// formatted display name. Common items show only their name.
const RarityCommonTier = "COMMON"

// RarityFormatTemplate is the format string for displaying items with
// non-common rarity tiers. Format: "<RARITY> <item_name>"
const RarityFormatTemplate = "%s %s"

// ============================================================================
// Internal Name Constants
// ============================================================================

// InternalNameSeparator joins words in a stable code identifier
const InternalNameSeparator = "_"

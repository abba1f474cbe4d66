package domain

// Rarity represents the visual rarity tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// ValueMultiplier returns the base-value multiplier for the rarity tier.
// Distance from common * 0.5 added to 1.0
func (r Rarity) ValueMultiplier() float64 {
	rarityModifier := map[Rarity]float64{
		RarityCommon:    1.0,
		RarityUncommon:  1.5,
		RarityRare:      2.0,
		RarityEpic:      2.5,
		RarityLegendary: 3.0,
	}

	if modifier, ok := rarityModifier[r]; ok {
		return modifier
	}
	return 1.0
}

// Valid reports whether the rarity is one of the known tiers.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// ParseRarity converts a raw string into a Rarity, defaulting to common
// for empty or unknown input.
func ParseRarity(s string) Rarity {
	r := Rarity(s)
	if r.Valid() {
		return r
	}
	return RarityCommon
}

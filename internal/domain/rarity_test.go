package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRarity_ValueMultiplier(t *testing.T) {
	tests := []struct {
		rarity   Rarity
		expected float64
	}{
		{RarityCommon, 1.0},
		{RarityUncommon, 1.5},
		{RarityRare, 2.0},
		{RarityEpic, 2.5},
		{RarityLegendary, 3.0},
		{Rarity("UNKNOWN"), 1.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.rarity), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rarity.ValueMultiplier())
		})
	}
}

func TestParseRarity(t *testing.T) {
	assert.Equal(t, RarityRare, ParseRarity("RARE"))
	assert.Equal(t, RarityCommon, ParseRarity(""))
	assert.Equal(t, RarityCommon, ParseRarity("MYTHIC"))
}

func TestRarity_Valid(t *testing.T) {
	assert.True(t, RarityLegendary.Valid())
	assert.False(t, Rarity("rare").Valid(), "rarity tiers are uppercase")
}

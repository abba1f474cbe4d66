package compost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modhaven/itemforge/internal/item"
)

func registerWithChance(t *testing.T, reg *item.Registry, name string, chance float64) *item.Item {
	t.Helper()
	s := item.NewSettings().DisplayName(name)
	if chance > 0 {
		CompostChance.Set(s, chance)
	}
	it, err := reg.Register(name, s)
	require.NoError(t, err)
	return it
}

func TestCompostable(t *testing.T) {
	reg := item.NewRegistry()

	apple := registerWithChance(t, reg, "apple", 0.65)
	stone := registerWithChance(t, reg, "stone", 0)

	assert.True(t, Compostable(apple))
	assert.False(t, Compostable(stone), "default chance of zero means not compostable")
}

func TestApplier(t *testing.T) {
	reg := item.NewRegistry()

	s := item.NewSettings().DisplayName("Melon Slice")
	Applier(item.Def{InternalName: "melon_slice", CompostChance: 0.5}, s)

	it, err := reg.Register("melon_slice", s)
	require.NoError(t, err)
	assert.Equal(t, 0.5, CompostChance.Value(it))
}

func TestComposter_Add(t *testing.T) {
	reg := item.NewRegistry()

	certain := registerWithChance(t, reg, "golden_apple", 1.0)
	stone := registerWithChance(t, reg, "stone", 0)

	t.Run("guaranteed chance always fills", func(t *testing.T) {
		c := NewComposter()

		rose, err := c.Add(certain)
		require.NoError(t, err)
		assert.True(t, rose)
		assert.Equal(t, 1, c.Level())
	})

	t.Run("non-compostable item rejected", func(t *testing.T) {
		c := NewComposter()

		_, err := c.Add(stone)
		assert.ErrorIs(t, err, ErrNotCompostable)
		assert.Equal(t, 0, c.Level())
	})

	t.Run("full composter rejects adds", func(t *testing.T) {
		c := NewComposter()
		for i := 0; i < MaxLevel; i++ {
			rose, err := c.Add(certain)
			require.NoError(t, err)
			require.True(t, rose)
		}
		require.True(t, c.Full())

		_, err := c.Add(certain)
		assert.ErrorIs(t, err, ErrComposterFull)
	})

	t.Run("unlucky roll does not fill", func(t *testing.T) {
		c := NewComposter()
		c.roll = func() float64 { return 0.99 }

		low := registerWithChance(t, reg, "wheat_seeds", 0.3)

		rose, err := c.Add(low)
		require.NoError(t, err)
		assert.False(t, rose)
		assert.Equal(t, 0, c.Level())
	})
}

func TestComposter_Harvest(t *testing.T) {
	reg := item.NewRegistry()
	certain := registerWithChance(t, reg, "golden_carrot", 1.0)

	c := NewComposter()

	assert.False(t, c.Harvest(), "harvesting an empty composter yields nothing")

	for i := 0; i < MaxLevel; i++ {
		_, err := c.Add(certain)
		require.NoError(t, err)
	}

	assert.True(t, c.Harvest())
	assert.Equal(t, 0, c.Level())
	assert.False(t, c.Full())
}

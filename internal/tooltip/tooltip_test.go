package tooltip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modhaven/itemforge/internal/domain"
	"github.com/modhaven/itemforge/internal/item"
)

func newRenderer() *Renderer {
	return NewRenderer(16, time.Minute)
}

func TestRender_WithCustomTooltip(t *testing.T) {
	reg := item.NewRegistry()

	s := item.NewSettings().
		DisplayName("ray gun").
		Description("Pew pew.").
		BaseValue(250).
		Rarity(domain.RarityRare)
	CustomTooltip.Set(s, "Favors the bold")

	it, err := reg.Register("weapon_blaster", s)
	require.NoError(t, err)

	lines := newRenderer().Render(it)
	assert.Equal(t, []string{
		"RARE Ray Gun",
		"Favors the bold",
		"Pew pew.",
		"Value: 250",
	}, lines)
}

func TestRender_WithoutCustomTooltip(t *testing.T) {
	reg := item.NewRegistry()

	it, err := reg.Register("stone", item.NewSettings().
		DisplayName("stone").
		BaseValue(1))
	require.NoError(t, err)

	lines := newRenderer().Render(it)
	assert.Equal(t, []string{
		"Stone",
		"Value: 1",
	}, lines)
}

func TestRender_CachesByItemID(t *testing.T) {
	reg := item.NewRegistry()

	it, err := reg.Register("apple", item.NewSettings().DisplayName("apple").BaseValue(5))
	require.NoError(t, err)

	r := newRenderer()
	first := r.Render(it)
	second := r.Render(it)

	// Same backing slice proves the second read came from cache.
	require.Len(t, second, len(first))
	assert.Same(t, &first[0], &second[0])
}

func TestApplier(t *testing.T) {
	reg := item.NewRegistry()

	t.Run("definition with tooltip", func(t *testing.T) {
		s := item.NewSettings().DisplayName("Apple")
		Applier(item.Def{InternalName: "apple", Tooltip: "Crunchy"}, s)

		it, err := reg.Register("apple", s)
		require.NoError(t, err)
		assert.Equal(t, "Crunchy", CustomTooltip.Value(it))
	})

	t.Run("definition without tooltip leaves default", func(t *testing.T) {
		s := item.NewSettings().DisplayName("Stone")
		Applier(item.Def{InternalName: "stone"}, s)

		it, err := reg.Register("stone", s)
		require.NoError(t, err)
		assert.Equal(t, "", CustomTooltip.Value(it))
	})
}

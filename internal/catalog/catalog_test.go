package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddonByID(t *testing.T) {
	addon, ok := AddonByID("ecommerce")
	assert.True(t, ok)
	assert.Equal(t, int64(3000), addon.Price)

	_, ok = AddonByID("hologram")
	assert.False(t, ok)
}

func TestTemplateByID(t *testing.T) {
	tpl, ok := TemplateByID("1")
	assert.True(t, ok)
	assert.Equal(t, int64(0), tpl.Price, "the first template is free")

	tpl, ok = TemplateByID("9")
	assert.True(t, ok)
	assert.Equal(t, int64(1200), tpl.Price)

	_, ok = TemplateByID("16")
	assert.False(t, ok)
}

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, Addons(), 12)
	assert.Len(t, Templates(), 15)
}

func TestAddonsReturnsCopy(t *testing.T) {
	first := Addons()
	first[0].Price = 999999

	again := Addons()
	assert.NotEqual(t, int64(999999), again[0].Price)
}

func TestValidAddonIDs(t *testing.T) {
	bad, ok := ValidAddonIDs([]string{"blog", "seo"})
	assert.True(t, ok)
	assert.Empty(t, bad)

	bad, ok = ValidAddonIDs([]string{"blog", "timetravel", "seo"})
	assert.False(t, ok)
	assert.Equal(t, "timetravel", bad)
}

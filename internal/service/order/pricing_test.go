package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zentproje-backend/internal/domain"
)

func testPackage(price int64, included ...string) *domain.ServicePackage {
	return &domain.ServicePackage{
		Price:                 price,
		IncludedExtraFeatures: included,
	}
}

func TestQuoteBasePackageOnly(t *testing.T) {
	total, err := Quote(testPackage(5000), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), total)
}

func TestQuoteAddsChosenAddons(t *testing.T) {
	// blog 1500 + seo 1200
	total, err := Quote(testPackage(5000), []string{"blog", "seo"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7700), total)
}

func TestQuoteIncludedAddonIsFree(t *testing.T) {
	// blog is bundled with the package, only seo is charged.
	total, err := Quote(testPackage(5000, "blog"), []string{"blog", "seo"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6200), total)
}

func TestQuoteIncludedAddonOutsideCatalogIsFree(t *testing.T) {
	// Legacy packages bundle "ssl", which the catalog no longer sells.
	// Choosing it stays free; only blog (1500) is charged.
	total, err := Quote(testPackage(2500, "ssl"), []string{"ssl", "blog"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), total)
}

func TestQuoteDuplicateAddonCountedOnce(t *testing.T) {
	total, err := Quote(testPackage(5000), []string{"seo", "seo", "seo"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6200), total)
}

func TestQuoteAddsTemplatePrice(t *testing.T) {
	tpl := "3" // E-Commerce Pro, 1000
	total, err := Quote(testPackage(5000), nil, &tpl)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), total)
}

func TestQuoteFreeTemplate(t *testing.T) {
	tpl := "1"
	total, err := Quote(testPackage(5000), nil, &tpl)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), total)
}

func TestQuoteFullConfiguration(t *testing.T) {
	// package 3000 + ecommerce 3000 + chat 1000 (blog included) + template 9 (1200)
	tpl := "9"
	total, err := Quote(testPackage(3000, "blog"), []string{"blog", "ecommerce", "chat"}, &tpl)
	require.NoError(t, err)
	assert.Equal(t, int64(8200), total)
}

func TestQuoteUnknownAddon(t *testing.T) {
	_, err := Quote(testPackage(5000), []string{"blog", "jetpack"}, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownAddon)
	assert.Contains(t, err.Error(), "jetpack")
}

func TestQuoteUnknownTemplate(t *testing.T) {
	tpl := "42"
	_, err := Quote(testPackage(5000), nil, &tpl)
	assert.ErrorIs(t, err, domain.ErrUnknownTemplate)
}

func TestQuoteEmptyTemplateIDIgnored(t *testing.T) {
	tpl := ""
	total, err := Quote(testPackage(5000), nil, &tpl)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), total)
}

package order

import (
	"fmt"

	"zentproje-backend/internal/catalog"
	"zentproje-backend/internal/domain"
)

// Quote computes the authoritative price of an order configuration: the
// package price, plus each chosen add-on that the package does not already
// include, plus the design template price. Duplicate add-on ids are counted
// once.
func Quote(pkg *domain.ServicePackage, addonIDs []string, templateID *string) (int64, error) {
	total := pkg.Price

	included := make(map[string]bool, len(pkg.IncludedExtraFeatures))
	for _, id := range pkg.IncludedExtraFeatures {
		included[id] = true
	}

	seen := make(map[string]bool, len(addonIDs))
	for _, id := range addonIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		// Included add-ons are free without a catalog lookup: packages may
		// carry included ids the catalog no longer sells.
		if included[id] {
			continue
		}

		addon, ok := catalog.AddonByID(id)
		if !ok {
			return 0, fmt.Errorf("%w: %s", domain.ErrUnknownAddon, id)
		}
		total += addon.Price
	}

	if templateID != nil && *templateID != "" {
		tpl, ok := catalog.TemplateByID(*templateID)
		if !ok {
			return 0, fmt.Errorf("%w: %s", domain.ErrUnknownTemplate, *templateID)
		}
		total += tpl.Price
	}

	return total, nil
}

package catalog

import (
	"strings"

	"github.com/aluiziolira/go-catalog-widget/models"
)

// Query returns the order-preserving subset of catalog matching text.
//
// The query is trimmed and lowercased; when that leaves nothing, the catalog
// is returned as-is. A product matches when its lowercased name, description
// or category contains the normalized text as a substring. Empty fields
// never match.
func Query(catalog []models.Product, text string) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return catalog
	}

	matches := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			matches = append(matches, p)
		}
	}
	return matches
}

package catalog

import "github.com/aluiziolira/go-catalog-widget/models"

// Page is one window over a product list.
type Page struct {
	Items      []models.Product
	TotalPages int
}

// Paginate computes the slice for the requested 1-based page.
//
// TotalPages is ceil(len(list)/pageSize), 0 for an empty list. A page beyond
// the last one yields an empty Items slice, never an error.
func Paginate(list []models.Product, page, pageSize int) Page {
	if pageSize <= 0 || page <= 0 {
		return Page{Items: []models.Product{}, TotalPages: totalPages(len(list), pageSize)}
	}

	result := Page{TotalPages: totalPages(len(list), pageSize)}
	start := (page - 1) * pageSize
	if start >= len(list) {
		result.Items = []models.Product{}
		return result
	}
	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}
	result.Items = list[start:end]
	return result
}

// HasPrev reports whether a "previous" control should be offered for page.
func (p Page) HasPrev(page int) bool {
	return p.TotalPages > 1 && page > 1
}

// HasNext reports whether a "next" control should be offered for page.
func (p Page) HasNext(page int) bool {
	return p.TotalPages > 1 && page < p.TotalPages
}

func totalPages(length, pageSize int) int {
	if length == 0 || pageSize <= 0 {
		return 0
	}
	return (length + pageSize - 1) / pageSize
}

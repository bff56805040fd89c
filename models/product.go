// Package models defines data structures for the catalog widget.
package models

// Product is the canonical in-memory representation of one catalog entry.
// Name is the only field guaranteed non-empty after sanitization; consumers
// must treat every other field as possibly-empty text and apply their own
// defaulting.
type Product struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Category    string `json:"category"`
}

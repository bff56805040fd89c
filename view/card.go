// Package view turns products into display units. A Card is a structured
// description of what to show; it carries literal text only and knows
// nothing about HTML or any other presentation technology.
package view

import (
	"strings"

	"github.com/aluiziolira/go-catalog-widget/catalog"
	"github.com/aluiziolira/go-catalog-widget/models"
)

// DescriptionPreviewRunes is how much of a description is shown collapsed.
const DescriptionPreviewRunes = 80

const (
	truncationMarker = "…"

	toggleExpandLabel   = "read more"
	toggleCollapseLabel = "read less"

	linkLabel = "View on Amazon"

	// rel attributes for outbound links: the new context must not gain a
	// handle back to us, and the link is a paid placement.
	linkRel = "sponsored noopener noreferrer"
)

// Card is the display unit for one product.
type Card struct {
	Title string

	ImageURL         string
	ImageFallbackURL string

	HasPrice  bool
	PriceText string

	HasDescription  bool
	DescriptionText string
	CanToggle       bool
	Expanded        bool
	ToggleLabel     string

	LinkURL   string
	LinkLabel string
	LinkRel   string
}

// CardOptions carries the render-time defaults.
type CardOptions struct {
	PlaceholderImage string
	CurrencySuffix   string
}

// RenderCard builds the display unit for one product. It is a pure function
// of the product and the expanded flag; expand state lives with the caller,
// never inside the product.
func RenderCard(p models.Product, resolver *catalog.LinkResolver, opts CardOptions, expanded bool) Card {
	card := Card{
		Title:            p.Name,
		ImageFallbackURL: opts.PlaceholderImage,
		LinkURL:          resolver.Resolve(p),
		LinkLabel:        linkLabel,
		LinkRel:          linkRel,
	}

	card.ImageURL = strings.TrimSpace(p.Image)
	if card.ImageURL == "" {
		card.ImageURL = opts.PlaceholderImage
	}

	if strings.TrimSpace(p.Price) != "" {
		card.HasPrice = true
		card.PriceText = p.Price + opts.CurrencySuffix
	}

	if p.Description != "" {
		card.HasDescription = true
		card.DescriptionText, card.CanToggle = describeAt(p.Description, expanded)
		if card.CanToggle {
			card.Expanded = expanded
			card.ToggleLabel = toggleExpandLabel
			if expanded {
				card.ToggleLabel = toggleCollapseLabel
			}
		}
	}

	return card
}

// describeAt returns the description text for the requested expand state and
// whether a toggle is warranted at all. Descriptions at or under the preview
// length never truncate and never get a toggle.
func describeAt(description string, expanded bool) (text string, canToggle bool) {
	runes := []rune(description)
	if len(runes) <= DescriptionPreviewRunes {
		return description, false
	}
	if expanded {
		return description, true
	}
	return string(runes[:DescriptionPreviewRunes]) + truncationMarker, true
}

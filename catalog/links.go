package catalog

import (
	"fmt"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aluiziolira/go-catalog-widget/models"
)

// Marketplace search URL parameters, matching the usual
// https://www.amazon.com/s?k=<term>&tag=<tag> shape.
const (
	searchQueryParam = "k"
	affiliateParam   = "tag"

	resolvedLinkCacheSize = 512
)

// LinkResolver produces the outbound purchase URL for a product: either the
// product's own link, or a marketplace search URL for its name carrying the
// configured affiliate tag.
type LinkResolver struct {
	endpoint *url.URL
	tag      string
	cache    *lru.Cache[string, string]
}

// NewLinkResolver builds a resolver for the given search endpoint and tag.
func NewLinkResolver(endpoint, tag string) (*LinkResolver, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse search endpoint: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("search endpoint must include a host")
	}
	cache, err := lru.New[string, string](resolvedLinkCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create link cache: %w", err)
	}
	return &LinkResolver{endpoint: parsed, tag: tag, cache: cache}, nil
}

// Resolve never fails: it always returns a syntactically valid URL.
func (r *LinkResolver) Resolve(p models.Product) string {
	if link := strings.TrimSpace(p.Link); link != "" {
		return link
	}
	if cached, ok := r.cache.Get(p.Name); ok {
		return cached
	}

	u := *r.endpoint
	q := url.Values{}
	q.Set(searchQueryParam, p.Name)
	q.Set(affiliateParam, r.tag)
	u.RawQuery = q.Encode()

	resolved := u.String()
	r.cache.Add(p.Name, resolved)
	return resolved
}

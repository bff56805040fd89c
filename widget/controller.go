package widget

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aluiziolira/go-catalog-widget/catalog"
	"github.com/aluiziolira/go-catalog-widget/config"
	"github.com/aluiziolira/go-catalog-widget/models"
	"github.com/aluiziolira/go-catalog-widget/view"
)

// Toast and empty-state copy.
const (
	toastLoading = "Loading products…"
	toastLoaded  = "Products loaded."

	emptyStateNoData    = "No products to display."
	emptyStateNoMatches = "No products match your search."
)

// FeedFetcher is the transport the controller loads through. It is opaque
// here: it either returns the raw feed bytes or fails.
type FeedFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Controller orchestrates load → sanitize → query → paginate → render and
// owns the view state: the catalog, the active query, the current page, and
// which visible cards are expanded.
//
// State access is mutex-guarded, but fetches run outside the lock and
// overlapping loads are not serialized: the catalog reflects whichever
// response is processed last. Disabling the refresh control during a load
// only prevents overlapping user-initiated loads.
type Controller struct {
	Metrics *Metrics

	cfg      *config.Config
	fetcher  FeedFetcher
	resolver *catalog.LinkResolver
	surface  Surface
	notifier *Notifier

	mu           sync.Mutex
	catalogItems []models.Product
	queried      []models.Product
	currentQuery string
	currentPage  int
	expanded     map[int]bool
}

// New builds a controller over surface. A surface without a card grid is a
// configuration error: initialization does not proceed.
func New(cfg *config.Config, fetcher FeedFetcher, surface Surface) (*Controller, error) {
	if surface.CardGrid == nil {
		return nil, fmt.Errorf("surface is missing its card grid region")
	}
	resolver, err := catalog.NewLinkResolver(cfg.SearchEndpoint, cfg.AffiliateTag)
	if err != nil {
		return nil, fmt.Errorf("build link resolver: %w", err)
	}

	return &Controller{
		Metrics:     NewMetrics(),
		cfg:         cfg,
		fetcher:     fetcher,
		resolver:    resolver,
		surface:     surface,
		notifier:    NewNotifier(surface.Toast, cfg.ToastDuration),
		currentPage: 1,
		expanded:    make(map[int]bool),
	}, nil
}

// Load fetches the feed and replaces the catalog wholesale. On any failure
// the catalog becomes empty and the grid shows its empty state; the refresh
// control is re-enabled either way.
func (c *Controller) Load(ctx context.Context) {
	c.setRefreshEnabled(false)
	defer c.setRefreshEnabled(true)

	start := time.Now()
	defer func() {
		c.Metrics.ObserveLoadDuration(time.Since(start))
	}()

	c.notifier.Notify(toastLoading)

	body, err := c.fetcher.Fetch(ctx)
	if err != nil {
		slog.Error("feed load failed", slog.String("url", c.cfg.FeedURL), slog.Any("error", err))
		c.failLoad(err)
		return
	}

	products, stats, err := catalog.Sanitize(body)
	if err != nil {
		slog.Error("feed decode failed", slog.String("url", c.cfg.FeedURL), slog.Any("error", err))
		c.failLoad(err)
		return
	}
	c.Metrics.IncLoad("success")
	c.Metrics.AddSanitized(stats.Kept, stats.Reasons)
	slog.Info("feed loaded",
		slog.Int("raw", stats.Raw),
		slog.Int("kept", stats.Kept),
		slog.Int("dropped", stats.Dropped),
	)

	c.replaceCatalog(products)
	c.render()
	c.notifier.Notify(toastLoaded)
}

// failLoad empties the catalog and surfaces err as an error notification.
func (c *Controller) failLoad(err error) {
	c.Metrics.IncLoad("error")
	c.replaceCatalog(nil)
	c.render()
	c.notifier.Notify(fmt.Sprintf("Error: %s", err))
}

// OnRefresh is the command handler behind the refresh control.
func (c *Controller) OnRefresh(ctx context.Context) {
	c.Load(ctx)
}

// OnSearchInput sets the active query, resets to page 1, and re-renders
// against the re-queried subset.
func (c *Controller) OnSearchInput(text string) {
	c.mu.Lock()
	c.currentQuery = text
	c.currentPage = 1
	c.expanded = make(map[int]bool)
	c.queried = catalog.Query(c.catalogItems, text)
	c.mu.Unlock()

	c.Metrics.IncSearch()
	c.render()
}

// OnPageChange moves the current page by delta, only when the target stays
// within the active list's bounds, and re-renders without re-querying.
func (c *Controller) OnPageChange(delta int) {
	c.mu.Lock()
	target := c.currentPage + delta
	total := catalog.Paginate(c.queried, 1, c.cfg.PageSize).TotalPages
	if target < 1 || target > total {
		c.mu.Unlock()
		return
	}
	c.currentPage = target
	c.mu.Unlock()

	c.render()
}

// OnToggleDescription flips the expand state of the i-th visible card and
// re-renders. Toggle state is kept beside the products, never inside them.
// i must address a card inside the current page's window; anything else is
// a stale or forged command to ignore.
func (c *Controller) OnToggleDescription(i int) {
	c.mu.Lock()
	index := (c.currentPage-1)*c.cfg.PageSize + i
	if i < 0 || i >= c.cfg.PageSize || index >= len(c.queried) {
		c.mu.Unlock()
		return
	}
	c.expanded[index] = !c.expanded[index]
	c.mu.Unlock()

	c.render()
}

// CurrentQuery returns the active search text.
func (c *Controller) CurrentQuery() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentQuery
}

// CurrentPage returns the active 1-based page number.
func (c *Controller) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPage
}

// Close cancels any pending toast hide.
func (c *Controller) Close() {
	c.notifier.Stop()
}

func (c *Controller) replaceCatalog(products []models.Product) {
	c.mu.Lock()
	c.catalogItems = products
	c.queried = products
	c.currentQuery = ""
	c.currentPage = 1
	c.expanded = make(map[int]bool)
	c.mu.Unlock()
}

// render drives the surface from a snapshot of the current state. Surface
// calls happen outside the state lock.
func (c *Controller) render() {
	c.mu.Lock()
	list := c.queried
	query := c.currentQuery
	page := c.currentPage
	expanded := make(map[int]bool, len(c.expanded))
	for k, v := range c.expanded {
		expanded[k] = v
	}
	c.mu.Unlock()

	if c.surface.Count != nil {
		c.surface.Count.SetCount(len(list))
	}

	if len(list) == 0 {
		message := emptyStateNoData
		if query != "" {
			message = emptyStateNoMatches
		}
		c.surface.CardGrid.ShowEmpty(message)
		if c.surface.Pagination != nil {
			c.surface.Pagination.Clear()
		}
		return
	}

	window := catalog.Paginate(list, page, c.cfg.PageSize)
	opts := view.CardOptions{
		PlaceholderImage: c.cfg.PlaceholderImage,
		CurrencySuffix:   c.cfg.CurrencySuffix,
	}
	cards := make([]view.Card, 0, len(window.Items))
	for i, p := range window.Items {
		index := (page-1)*c.cfg.PageSize + i
		cards = append(cards, view.RenderCard(p, c.resolver, opts, expanded[index]))
	}
	c.surface.CardGrid.SetCards(cards)

	if c.surface.Pagination != nil {
		if window.TotalPages <= 1 {
			c.surface.Pagination.Clear()
		} else {
			c.surface.Pagination.SetControls(window.HasPrev(page), window.HasNext(page), page, window.TotalPages)
		}
	}
}

func (c *Controller) setRefreshEnabled(enabled bool) {
	if c.surface.Refresh != nil {
		c.surface.Refresh.SetEnabled(enabled)
	}
}

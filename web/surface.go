// Package web serves the widget as a server-rendered page. It is an adapter:
// HTTP requests are translated into controller commands, and the page is
// rendered from the latest state the controller pushed to its surface.
package web

import (
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/aluiziolira/go-catalog-widget/view"
	"github.com/aluiziolira/go-catalog-widget/widget"
)

// cardView is a view.Card plus its description as a pre-sanitized fragment.
// Product text is untrusted; bluemonday strips any markup before the
// fragment is marked trusted for the template.
type cardView struct {
	view.Card
	DescriptionHTML template.HTML
}

type paginationState struct {
	Visible bool
	Prev    bool
	Next    bool
	Page    int
	Total   int
}

type snapshot struct {
	Cards          []cardView
	EmptyShown     bool
	EmptyMessage   string
	Count          int
	Toast          string
	ToastVisible   bool
	RefreshEnabled bool
	Pagination     paginationState
}

// htmlSurface implements the widget's display regions by retaining the
// latest render, to be read when a page is served.
type htmlSurface struct {
	policy *bluemonday.Policy

	mu    sync.Mutex
	state snapshot
}

func newHTMLSurface() *htmlSurface {
	return &htmlSurface{
		policy: bluemonday.StrictPolicy(),
		state:  snapshot{RefreshEnabled: true},
	}
}

// Surface exposes this as the widget's region set. Every region is backed by
// the same snapshot.
func (s *htmlSurface) Surface() widget.Surface {
	return widget.Surface{
		CardGrid:   s,
		Count:      s,
		Refresh:    s,
		Toast:      s,
		Pagination: s,
	}
}

func (s *htmlSurface) SetCards(cards []view.Card) {
	views := make([]cardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, cardView{
			Card:            card,
			DescriptionHTML: template.HTML(s.policy.Sanitize(card.DescriptionText)),
		})
	}

	s.mu.Lock()
	s.state.Cards = views
	s.state.EmptyShown = false
	s.state.EmptyMessage = ""
	s.mu.Unlock()
}

func (s *htmlSurface) ShowEmpty(message string) {
	s.mu.Lock()
	s.state.Cards = nil
	s.state.EmptyShown = true
	s.state.EmptyMessage = message
	s.mu.Unlock()
}

func (s *htmlSurface) SetCount(n int) {
	s.mu.Lock()
	s.state.Count = n
	s.mu.Unlock()
}

func (s *htmlSurface) SetEnabled(enabled bool) {
	s.mu.Lock()
	s.state.RefreshEnabled = enabled
	s.mu.Unlock()
}

func (s *htmlSurface) Show(message string) {
	s.mu.Lock()
	s.state.Toast = message
	s.state.ToastVisible = true
	s.mu.Unlock()
}

func (s *htmlSurface) Hide() {
	s.mu.Lock()
	s.state.Toast = ""
	s.state.ToastVisible = false
	s.mu.Unlock()
}

func (s *htmlSurface) SetControls(prev, next bool, page, totalPages int) {
	s.mu.Lock()
	s.state.Pagination = paginationState{Visible: true, Prev: prev, Next: next, Page: page, Total: totalPages}
	s.mu.Unlock()
}

func (s *htmlSurface) Clear() {
	s.mu.Lock()
	s.state.Pagination = paginationState{}
	s.mu.Unlock()
}

func (s *htmlSurface) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.state
	out.Cards = make([]cardView, len(s.state.Cards))
	copy(out.Cards, s.state.Cards)
	return out
}

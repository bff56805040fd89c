package web

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aluiziolira/go-catalog-widget/config"
	"github.com/aluiziolira/go-catalog-widget/widget"
)

const pageTitle = "Product Catalog"

// Server translates HTTP interactions into controller commands and renders
// the resulting widget state.
type Server struct {
	cfg        *config.Config
	controller *widget.Controller
	surface    *htmlSurface
	tmpl       *template.Template
	router     chi.Router
}

// NewServer wires a controller over an HTML surface and builds the routes.
func NewServer(cfg *config.Config, fetcher widget.FeedFetcher) (*Server, error) {
	tmpl, err := template.New("widget").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	surface := newHTMLSurface()
	controller, err := widget.New(cfg, fetcher, surface.Surface())
	if err != nil {
		return nil, fmt.Errorf("build controller: %w", err)
	}

	s := &Server{
		cfg:        cfg,
		controller: controller,
		surface:    surface,
		tmpl:       tmpl,
	}
	s.router = s.routes()
	return s, nil
}

// Controller exposes the underlying controller, for the initial load and
// shutdown.
func (s *Server) Controller() *widget.Controller {
	return s.controller
}

// Handler returns the page router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", s.getIndex)
	r.Get("/search", s.getSearch)
	r.Post("/refresh", s.postRefresh)
	r.Post("/page/next", s.postPage(1))
	r.Post("/page/prev", s.postPage(-1))
	r.Post("/toggle/{index}", s.postToggle)

	return r
}

type pageData struct {
	snapshot
	Title string
	Query string
}

func (s *Server) getIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		snapshot: s.surface.snapshot(),
		Title:    pageTitle,
		Query:    s.controller.CurrentQuery(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		slog.Error("render page", slog.Any("error", err))
	}
}

func (s *Server) getSearch(w http.ResponseWriter, r *http.Request) {
	s.controller.OnSearchInput(r.URL.Query().Get("q"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) postRefresh(w http.ResponseWriter, r *http.Request) {
	s.controller.OnRefresh(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) postPage(delta int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.controller.OnPageChange(delta)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *Server) postToggle(w http.ResponseWriter, r *http.Request) {
	// A garbled index is ignored, not an error: the page just re-renders.
	if index, err := strconv.Atoi(chi.URLParam(r, "index")); err == nil {
		s.controller.OnToggleDescription(index)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

package site

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/evaszabo/folio/internal/content"
	"github.com/evaszabo/folio/internal/metrics"
	"github.com/evaszabo/folio/internal/route"
	"github.com/evaszabo/folio/internal/view"
)

// Handler serves the portfolio pages, the static files and the read-only
// project API.
type Handler struct {
	mu  sync.RWMutex
	lib *content.Library

	renderer *Renderer
	opts     view.Options

	// AssetsDir, when set, is served under /assets/.
	AssetsDir string
	// LiveReload, when set, is mounted at /livereload.
	LiveReload http.Handler
	Metrics    *metrics.Metrics
}

// NewHandler creates a Handler over lib.
func NewHandler(lib *content.Library, renderer *Renderer, opts view.Options) *Handler {
	return &Handler{lib: lib, renderer: renderer, opts: opts}
}

// Library returns the library currently being served.
func (h *Handler) Library() *content.Library {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lib
}

// SetLibrary swaps the served library. Requests already in flight keep the
// library they started with.
func (h *Handler) SetLibrary(lib *content.Library) {
	h.mu.Lock()
	h.lib = lib
	h.mu.Unlock()
}

// RegisterRoutes mounts the site on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handlePage)
	r.Get("/project/{id}", h.handlePage)
	r.Get("/about", h.handlePage)
	r.NotFound(h.handlePage)

	r.Get("/static/style.css", serveStatic("text/css; charset=utf-8", cssContent))
	r.Get("/static/script.js", serveStatic("application/javascript; charset=utf-8", jsContent))

	if h.AssetsDir != "" {
		if info, err := os.Stat(h.AssetsDir); err == nil && info.IsDir() {
			r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(h.AssetsDir))))
		} else {
			log.Printf("site: assets dir %s not found, /assets/ disabled", h.AssetsDir)
		}
	}

	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", h.handleProjects)
		r.Get("/{id}", h.handleProject)
	})

	if h.LiveReload != nil {
		r.Handle("/livereload", h.LiveReload)
	}
}

// handlePage resolves the request path through a fresh session so every
// request starts from an unmounted, closed state.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	start := time.Now()

	sess := view.NewSession(h.Library(), h.opts)
	defer sess.Close()

	v := sess.Navigate(r.URL.Path)
	if d, ok := v.(*view.ProjectDetail); ok {
		if q := r.URL.Query().Get("image"); q != "" {
			if k, err := strconv.Atoi(q); err == nil && sess.SelectImage(k) == nil {
				h.Metrics.LightboxOpen(d.Project.ID)
			}
		}
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, v); err != nil {
		log.Printf("site: rendering %s: %v", r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if v.Kind() == route.KindNotFound {
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())

	h.Metrics.PageView(v.Kind().String(), time.Since(start))
}

func serveStatic(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.Write([]byte(body))
	}
}

// projectSummary is one entry of the /api/projects listing.
type projectSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Place   string `json:"place"`
	Year    string `json:"year"`
	Logline string `json:"logline"`
	Cover   string `json:"cover"`
	Images  int    `json:"images"`
	Path    string `json:"path"`
}

// projectResponse is the JSON response for /api/projects/{id}.
type projectResponse struct {
	Project     content.Project `json:"project"`
	Index       int             `json:"index"`
	Path        string          `json:"path"`
	RequestedID string          `json:"requested_id"`
	Fallback    bool            `json:"fallback"`
	Previous    string          `json:"previous,omitempty"`
	Next        string          `json:"next,omitempty"`
}

func (h *Handler) handleProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.Library().Projects()
	out := make([]projectSummary, len(projects))
	for i, p := range projects {
		out[i] = projectSummary{
			ID:      p.ID,
			Title:   p.Title,
			Place:   p.Place,
			Year:    p.Year,
			Logline: p.Logline,
			Cover:   p.Cover().Src,
			Images:  len(p.Images),
			Path:    route.ProjectPath(p.ID),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleProject(w http.ResponseWriter, r *http.Request) {
	lib := h.Library()
	m := route.ForProject(lib.Catalog, chi.URLParam(r, "id"))
	d := view.Build(lib, m, h.opts).(*view.ProjectDetail)

	resp := projectResponse{
		Project:     m.Project,
		Index:       m.Index,
		Path:        d.Path(),
		RequestedID: m.RequestedID,
		Fallback:    m.Fallback,
	}
	resp.Previous, _ = d.PreviousPath()
	resp.Next, _ = d.NextPath()
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

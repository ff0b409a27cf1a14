// Package view builds the portfolio's views from resolved routes and
// scopes their listeners to the mounted lifetime.
package view

import (
	"github.com/google/uuid"

	"github.com/evaszabo/folio/internal/content"
	"github.com/evaszabo/folio/internal/event"
	"github.com/evaszabo/folio/internal/gallery"
	"github.com/evaszabo/folio/internal/nav"
	"github.com/evaszabo/folio/internal/parallax"
	"github.com/evaszabo/folio/internal/reveal"
	"github.com/evaszabo/folio/internal/route"
)

// View is one screen of the site. Mount acquires the view's listeners on
// the document; Unmount releases all of them.
type View interface {
	Kind() route.Kind
	Path() string
	Mount(doc *event.Target)
	Unmount()
}

// Options tune the cosmetic controllers.
type Options struct {
	RevealMargin     float64
	ParallaxStrength float64
	ShowreelRegion   parallax.Rect
}

// DefaultOptions mirrors the site's stock presentation.
func DefaultOptions() Options {
	return Options{
		RevealMargin:     80,
		ParallaxStrength: parallax.DefaultStrength,
		ShowreelRegion:   parallax.Rect{Width: 1440, Height: 810},
	}
}

// Reveal ids for the home page's non-chapter sections.
const (
	RevealProjectsHeading = "projects-heading"
	RevealBook            = "book"
)

// Build creates the view for m. The view is not mounted.
func Build(lib *content.Library, m route.Match, opts Options) View {
	switch m.Kind {
	case route.KindHome:
		return newHome(lib, opts)
	case route.KindProject:
		return newProjectDetail(lib, m)
	case route.KindAbout:
		return &About{Brand: lib.Brand, Content: lib.About}
	default:
		return &NotFound{Brand: lib.Brand, RequestPath: m.Path}
	}
}

// Chapter is a home page card linking into a project.
type Chapter struct {
	Project  content.Project
	Index    int
	Path     string
	RevealID string
}

// Home is the chaptered scroll view with the showreel.
type Home struct {
	Brand    content.Brand
	Book     content.Book
	Chapters []Chapter
	Frames   []content.Image

	// Reveal is the headless model of the page script's IntersectionObserver:
	// it holds the same ids (the data-reveal attributes) and margin, and is
	// driven by Notify wherever viewport entries are simulated. The served
	// page reveals in the browser.
	Reveal   *reveal.Controller
	Showreel *parallax.Tracker
}

func newHome(lib *content.Library, opts Options) *Home {
	h := &Home{
		Brand:    lib.Brand,
		Book:     lib.Book,
		Reveal:   reveal.NewController(opts.RevealMargin),
		Showreel: parallax.NewTracker(opts.ShowreelRegion, opts.ParallaxStrength),
	}
	h.Reveal.Observe(RevealProjectsHeading)
	for i, p := range lib.Projects() {
		ch := Chapter{
			Project:  p,
			Index:    i,
			Path:     route.ProjectPath(p.ID),
			RevealID: "chapter-" + p.ID,
		}
		h.Chapters = append(h.Chapters, ch)
		h.Reveal.Observe(ch.RevealID)

		n := len(p.Images)
		if n > 2 {
			n = 2
		}
		h.Frames = append(h.Frames, p.Images[:n]...)
	}
	h.Reveal.Observe(RevealBook)
	return h
}

func (h *Home) Kind() route.Kind { return route.KindHome }
func (h *Home) Path() string { return "/" }

func (h *Home) Mount(doc *event.Target) { h.Showreel.Attach(doc) }
func (h *Home) Unmount() { h.Showreel.Detach() }

// ProjectDetail shows one project's images and owns its lightbox.
type ProjectDetail struct {
	InstanceID  string
	Brand       content.Brand
	Project     content.Project
	Index       int
	RequestedID string
	Fallback    bool
	Nav         nav.Navigator

	// Lightbox exists only while the view is mounted.
	Lightbox *gallery.Lightbox

	prevPath, nextPath string
}

func newProjectDetail(lib *content.Library, m route.Match) *ProjectDetail {
	d := &ProjectDetail{
		InstanceID:  uuid.NewString(),
		Brand:       lib.Brand,
		Project:     m.Project,
		Index:       m.Index,
		RequestedID: m.RequestedID,
		Fallback:    m.Fallback,
		Nav:         nav.New(m.Index, lib.Len()),
	}
	if i, ok := d.Nav.Previous(); ok {
		p, _ := lib.At(i)
		d.prevPath = route.ProjectPath(p.ID)
	}
	if i, ok := d.Nav.Next(); ok {
		p, _ := lib.At(i)
		d.nextPath = route.ProjectPath(p.ID)
	}
	return d
}

func (d *ProjectDetail) Kind() route.Kind { return route.KindProject }
func (d *ProjectDetail) Path() string { return route.ProjectPath(d.Project.ID) }

// Mount creates a closed lightbox bound to doc.
func (d *ProjectDetail) Mount(doc *event.Target) {
	if d.Lightbox != nil {
		d.Lightbox.Unmount()
	}
	d.Lightbox = gallery.New(doc, d.Project.Images)
}

// Unmount tears down the lightbox and its key listener.
func (d *ProjectDetail) Unmount() {
	if d.Lightbox != nil {
		d.Lightbox.Unmount()
		d.Lightbox = nil
	}
}

// PreviousPath returns the previous project's path, if there is one.
func (d *ProjectDetail) PreviousPath() (string, bool) { return d.prevPath, d.prevPath != "" }

// NextPath returns the next project's path, if there is one.
func (d *ProjectDetail) NextPath() (string, bool) { return d.nextPath, d.nextPath != "" }

// About is the static about page.
type About struct {
	Brand   content.Brand
	Content content.About
}

func (a *About) Kind() route.Kind { return route.KindAbout }
func (a *About) Path() string { return "/about" }
func (a *About) Mount(*event.Target) {}
func (a *About) Unmount() {}

// NotFound is shown for paths outside the site's routes.
type NotFound struct {
	Brand       content.Brand
	RequestPath string
}

func (n *NotFound) Kind() route.Kind { return route.KindNotFound }
func (n *NotFound) Path() string { return n.RequestPath }
func (n *NotFound) Mount(*event.Target) {}
func (n *NotFound) Unmount() {}

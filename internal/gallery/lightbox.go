// Package gallery implements the project image lightbox: a modal that shows
// one image full-screen and is dismissed by clicking outside the figure,
// pressing the close control, or pressing Escape.
package gallery

import (
	"errors"
	"fmt"

	"github.com/evaszabo/folio/internal/content"
	"github.com/evaszabo/folio/internal/event"
)

// ErrNoSuchImage is returned when selecting an image outside the project.
var ErrNoSuchImage = errors.New("no such image")

// State is the lightbox's modal state.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Region is a clickable part of the open lightbox.
type Region int

const (
	RegionOverlay Region = iota
	RegionFigure
	RegionImage
	RegionCaption
	RegionCloseButton
)

// parent describes how clicks bubble: each region passes the click to its
// parent unless propagation is stopped.
var parent = map[Region]Region{
	RegionImage:       RegionFigure,
	RegionCaption:     RegionFigure,
	RegionCloseButton: RegionFigure,
	RegionFigure:      RegionOverlay,
}

// Lightbox is the modal viewer for one project's images. It is owned by a
// single project detail view and must be unmounted with it.
type Lightbox struct {
	doc       *event.Target
	images    []content.Image
	active    int
	removeKey func()
}

// New returns a closed lightbox over images. Key listeners are registered on
// doc only while the lightbox is open.
func New(doc *event.Target, images []content.Image) *Lightbox {
	return &Lightbox{
		doc:    doc,
		images: images,
		active: -1,
	}
}

// State returns the current modal state.
func (l *Lightbox) State() State {
	if l.active >= 0 {
		return Open
	}
	return Closed
}

// IsOpen reports whether an image is displayed.
func (l *Lightbox) IsOpen() bool { return l.active >= 0 }

// Active returns the displayed image and its index. ok is false when closed.
func (l *Lightbox) Active() (img content.Image, index int, ok bool) {
	if l.active < 0 {
		return content.Image{}, -1, false
	}
	return l.images[l.active], l.active, true
}

// Select opens the lightbox on image k, replacing any image already shown.
func (l *Lightbox) Select(k int) error {
	if k < 0 || k >= len(l.images) {
		return fmt.Errorf("selecting image %d of %d: %w", k, len(l.images), ErrNoSuchImage)
	}
	l.active = k
	if l.removeKey == nil && l.doc != nil {
		l.removeKey = l.doc.Listen(event.KeyDown, l.onKey)
	}
	return nil
}

// Dismiss closes the lightbox and releases its key listener. It is a no-op
// when already closed.
func (l *Lightbox) Dismiss() {
	l.active = -1
	if l.removeKey != nil {
		l.removeKey()
		l.removeKey = nil
	}
}

// Unmount releases everything the lightbox holds. The owning view calls it
// when it is torn down, whatever state the lightbox is in.
func (l *Lightbox) Unmount() { l.Dismiss() }

// Click delivers a click on region, bubbling towards the overlay. The figure
// stops propagation so clicks on the image or caption never dismiss; the
// overlay and the close button dismiss.
func (l *Lightbox) Click(region Region) {
	if !l.IsOpen() {
		return
	}
	r := region
	for {
		switch r {
		case RegionCloseButton, RegionOverlay:
			l.Dismiss()
		case RegionFigure:
			return
		}
		next, ok := parent[r]
		if !ok || !l.IsOpen() {
			return
		}
		r = next
	}
}

func (l *Lightbox) onKey(e event.Event) {
	if e.Key == event.KeyEscape {
		l.Dismiss()
	}
}

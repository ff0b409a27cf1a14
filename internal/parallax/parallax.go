// Package parallax computes the pointer-relative offset of the showreel's
// decorative background layer.
package parallax

import "github.com/evaszabo/folio/internal/event"

// DefaultStrength is the offset in pixels at the region's edge.
const DefaultStrength = 10

// Point is a position in viewport pixels.
type Point struct{ X, Y float64 }

// Vec is a 2D offset in pixels.
type Vec struct{ X, Y float64 }

// Rect is a region in viewport pixels.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Offset moves the layer against the pointer: the offset is the pointer's
// displacement from the region's center, normalized by the region's size
// and scaled by strength. A degenerate region yields no offset.
func Offset(region Rect, pointer Point, strength float64) Vec {
	if region.Width <= 0 || region.Height <= 0 {
		return Vec{}
	}
	c := region.Center()
	dx := (pointer.X - c.X) / region.Width
	dy := (pointer.Y - c.Y) / region.Height
	return Vec{X: -dx * strength, Y: -dy * strength}
}

// Tracker follows pointer events over one region and keeps the last offset.
// When the pointer leaves, the offset stops updating.
type Tracker struct {
	Region   Rect
	Strength float64

	offset  Vec
	inside  bool
	removes []func()
}

// NewTracker returns a tracker for region.
func NewTracker(region Rect, strength float64) *Tracker {
	return &Tracker{Region: region, Strength: strength}
}

// Attach starts listening for pointer events on target. Calling Attach
// again first releases the previous listeners.
func (t *Tracker) Attach(target *event.Target) {
	t.Detach()
	t.removes = []func(){
		target.Listen(event.PointerMove, t.onMove),
		target.Listen(event.PointerLeave, t.onLeave),
	}
}

// Detach releases the tracker's listeners.
func (t *Tracker) Detach() {
	for _, remove := range t.removes {
		remove()
	}
	t.removes = nil
	t.inside = false
}

// Offset returns the most recently computed offset.
func (t *Tracker) Offset() Vec { return t.offset }

// Active reports whether the pointer is currently over the region.
func (t *Tracker) Active() bool { return t.inside }

func (t *Tracker) onMove(e event.Event) {
	t.inside = true
	t.offset = Offset(t.Region, Point{X: e.X, Y: e.Y}, t.Strength)
}

func (t *Tracker) onLeave(event.Event) {
	t.inside = false
}

// Package reveal tracks one-shot "appear" transitions for elements entering
// the viewport.
package reveal

// Entry is a visibility sample for one observed element, in viewport pixels.
type Entry struct {
	ID             string
	Top, Bottom    float64
	ViewportHeight float64
}

// Controller reveals each observed element the first time it intersects the
// viewport shrunk by Margin pixels on both edges. A revealed element never
// goes back to hidden.
type Controller struct {
	Margin float64

	observed map[string]bool // id -> shown
	order    []string
}

// NewController returns a controller with the given margin.
func NewController(margin float64) *Controller {
	return &Controller{Margin: margin, observed: make(map[string]bool)}
}

// Observe subscribes an element. Observing an id twice keeps its state.
func (c *Controller) Observe(id string) {
	if _, ok := c.observed[id]; ok {
		return
	}
	c.observed[id] = false
	c.order = append(c.order, id)
}

// Notify applies a visibility sample and reports whether it revealed the
// element just now. Samples for unobserved or already shown ids are ignored.
func (c *Controller) Notify(e Entry) bool {
	shown, ok := c.observed[e.ID]
	if !ok || shown {
		return false
	}
	if e.Top < e.ViewportHeight-c.Margin && e.Bottom > c.Margin {
		c.observed[e.ID] = true
		return true
	}
	return false
}

// Shown reports whether id has been revealed.
func (c *Controller) Shown(id string) bool { return c.observed[id] }

// Pending returns the observed ids still hidden, in observation order.
func (c *Controller) Pending() []string {
	var out []string
	for _, id := range c.order {
		if !c.observed[id] {
			out = append(out, id)
		}
	}
	return out
}

package view

import (
	"errors"

	"github.com/evaszabo/folio/internal/content"
	"github.com/evaszabo/folio/internal/event"
	"github.com/evaszabo/folio/internal/route"
)

// ErrNotProjectView is returned for lightbox operations outside a project
// detail view.
var ErrNotProjectView = errors.New("current view is not a project")

// Session is one visitor's navigation: a history of paths and the single
// mounted view. It is not safe for concurrent use.
type Session struct {
	lib     *content.Library
	opts    Options
	doc     *event.Target
	history []string
	current View
}

// NewSession returns a session with nothing mounted.
func NewSession(lib *content.Library, opts Options) *Session {
	return &Session{lib: lib, opts: opts, doc: event.NewTarget()}
}

// Document returns the event target views listen on.
func (s *Session) Document() *event.Target { return s.doc }

// Current returns the mounted view, or nil before the first navigation.
func (s *Session) Current() View { return s.current }

// History returns the visited paths, oldest first.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

// Navigate unmounts the current view, mounts the view for path and pushes
// path onto the history.
func (s *Session) Navigate(path string) View {
	v := s.show(path)
	s.history = append(s.history, path)
	return v
}

// Back returns to the previous history entry. It reports false when there
// is nothing to go back to.
func (s *Session) Back() bool {
	if len(s.history) < 2 {
		return false
	}
	s.history = s.history[:len(s.history)-1]
	s.show(s.history[len(s.history)-1])
	return true
}

// Previous navigates to the previous project from a detail view. It is a
// no-op at the first project or outside a detail view.
func (s *Session) Previous() bool {
	d, ok := s.current.(*ProjectDetail)
	if !ok {
		return false
	}
	path, ok := d.PreviousPath()
	if !ok {
		return false
	}
	s.Navigate(path)
	return true
}

// Next navigates to the next project from a detail view. It is a no-op at
// the last project or outside a detail view.
func (s *Session) Next() bool {
	d, ok := s.current.(*ProjectDetail)
	if !ok {
		return false
	}
	path, ok := d.NextPath()
	if !ok {
		return false
	}
	s.Navigate(path)
	return true
}

// SelectImage opens the current project's lightbox on image k.
func (s *Session) SelectImage(k int) error {
	d, ok := s.current.(*ProjectDetail)
	if !ok || d.Lightbox == nil {
		return ErrNotProjectView
	}
	return d.Lightbox.Select(k)
}

// PressKey dispatches a key press to the document.
func (s *Session) PressKey(key string) {
	s.doc.Dispatch(event.Event{Type: event.KeyDown, Key: key})
}

// Close unmounts the current view.
func (s *Session) Close() {
	if s.current != nil {
		s.current.Unmount()
		s.current = nil
	}
}

func (s *Session) show(path string) View {
	if s.current != nil {
		s.current.Unmount()
	}
	v := Build(s.lib, route.Resolve(s.lib.Catalog, path), s.opts)
	v.Mount(s.doc)
	s.current = v
	return v
}

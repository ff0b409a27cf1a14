package view

import (
	"errors"
	"reflect"
	"testing"

	"github.com/evaszabo/folio/internal/content"
	"github.com/evaszabo/folio/internal/event"
	"github.com/evaszabo/folio/internal/gallery"
	"github.com/evaszabo/folio/internal/route"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(content.Builtin(), DefaultOptions())
	t.Cleanup(s.Close)
	return s
}

func currentDetail(t *testing.T, s *Session) *ProjectDetail {
	t.Helper()
	d, ok := s.Current().(*ProjectDetail)
	if !ok {
		t.Fatalf("current view = %T, want *ProjectDetail", s.Current())
	}
	return d
}

func TestProjectDetailShowsOwnProject(t *testing.T) {
	lib := content.Builtin()
	s := newTestSession(t)

	for _, want := range lib.Projects() {
		s.Navigate(route.ProjectPath(want.ID))
		d := currentDetail(t, s)
		if !reflect.DeepEqual(d.Project, want) {
			t.Errorf("detail for %q shows %+v", want.ID, d.Project)
		}
		if d.Fallback {
			t.Errorf("detail for known id %q flagged as fallback", want.ID)
		}
	}
}

func TestUnknownProjectFallsBackToFirst(t *testing.T) {
	s := newTestSession(t)
	s.Navigate("/project/missing")
	d := currentDetail(t, s)
	if d.Project.ID != "ukraine" || !d.Fallback || d.RequestedID != "missing" {
		t.Errorf("fallback detail = %q fallback=%v requested=%q", d.Project.ID, d.Fallback, d.RequestedID)
	}
}

func TestNavigatorBoundariesThroughSession(t *testing.T) {
	s := newTestSession(t)
	s.Navigate("/project/ukraine")

	if s.Previous() {
		t.Error("Previous at first project should be a no-op")
	}
	if currentDetail(t, s).Project.ID != "ukraine" {
		t.Fatal("no-op Previous changed the view")
	}

	if !s.Next() || currentDetail(t, s).Project.ID != "swallow-song" {
		t.Fatal("Next from first project should reach swallow-song")
	}
	if !s.Next() || currentDetail(t, s).Project.ID != "jordan" {
		t.Fatal("Next from interior project should reach jordan")
	}
	if s.Next() {
		t.Error("Next at last project should be a no-op")
	}
	d := currentDetail(t, s)
	if d.Nav.CanNext() || !d.Nav.CanPrevious() {
		t.Errorf("last project controls: next=%v prev=%v", d.Nav.CanNext(), d.Nav.CanPrevious())
	}
	if !s.Previous() || currentDetail(t, s).Project.ID != "swallow-song" {
		t.Error("Previous from last project should reach swallow-song")
	}
}

func TestLightboxThroughSession(t *testing.T) {
	s := newTestSession(t)
	s.Navigate("/project/jordan")
	doc := s.Document()

	s.PressKey(event.KeyEscape)
	if currentDetail(t, s).Lightbox.IsOpen() {
		t.Fatal("Escape while closed opened the lightbox")
	}

	if err := s.SelectImage(2); err != nil {
		t.Fatalf("SelectImage: %v", err)
	}
	lb := currentDetail(t, s).Lightbox
	if img, k, ok := lb.Active(); !ok || k != 2 || img.Caption != "Community clinic" {
		t.Fatalf("Active = %+v %d %v", img, k, ok)
	}

	lb.Click(gallery.RegionImage)
	if !lb.IsOpen() {
		t.Fatal("click inside the figure dismissed the lightbox")
	}

	s.PressKey(event.KeyEscape)
	if lb.IsOpen() {
		t.Fatal("Escape did not dismiss the lightbox")
	}
	if doc.ListenerCount(event.KeyDown) != 0 {
		t.Errorf("residual key listeners: %d", doc.ListenerCount(event.KeyDown))
	}
}

func TestNavigatingAwayReleasesLightboxListener(t *testing.T) {
	s := newTestSession(t)
	s.Navigate("/project/ukraine")
	if err := s.SelectImage(0); err != nil {
		t.Fatal(err)
	}
	if s.Document().ListenerCount(event.KeyDown) != 1 {
		t.Fatal("open lightbox should hold one key listener")
	}

	s.Next()
	if c := s.Document().ListenerCount(event.KeyDown); c != 0 {
		t.Errorf("key listeners after navigating away = %d, want 0", c)
	}
	if currentDetail(t, s).Lightbox.IsOpen() {
		t.Error("new detail view mounted with an open lightbox")
	}

	if err := s.SelectImage(1); err != nil {
		t.Fatal(err)
	}
	s.Close()
	if c := s.Document().ListenerCount(event.KeyDown); c != 0 {
		t.Errorf("key listeners after Close = %d, want 0", c)
	}
}

func TestSelectImageOutsideProject(t *testing.T) {
	s := newTestSession(t)
	s.Navigate("/about")
	if err := s.SelectImage(0); !errors.Is(err, ErrNotProjectView) {
		t.Errorf("SelectImage on about = %v, want ErrNotProjectView", err)
	}
	if s.Next() || s.Previous() {
		t.Error("Next/Previous outside a detail view should be no-ops")
	}
}

func TestBackReturnsToEquivalentHome(t *testing.T) {
	s := newTestSession(t)
	before := s.Navigate("/").(*Home)
	chapters := before.Chapters
	frames := before.Frames

	s.Navigate("/project/swallow-song")
	if err := s.SelectImage(1); err != nil {
		t.Fatal(err)
	}
	if !s.Back() {
		t.Fatal("Back reported nothing to go back to")
	}

	after, ok := s.Current().(*Home)
	if !ok {
		t.Fatalf("after Back current = %T, want *Home", s.Current())
	}
	if !reflect.DeepEqual(after.Chapters, chapters) || !reflect.DeepEqual(after.Frames, frames) {
		t.Error("home view after Back differs from the initial one")
	}
	if s.Document().ListenerCount(event.KeyDown) != 0 {
		t.Error("lightbox listener survived Back")
	}
	if got := s.History(); len(got) != 1 || got[0] != "/" {
		t.Errorf("history = %v, want [/]", got)
	}
	if s.Back() {
		t.Error("Back at the first entry should report false")
	}
}

func TestHomeMountsShowreel(t *testing.T) {
	s := newTestSession(t)
	h := s.Navigate("/").(*Home)

	if len(h.Chapters) != 3 || h.Chapters[1].Path != "/project/swallow-song" {
		t.Errorf("chapters = %+v", h.Chapters)
	}
	if len(h.Frames) != 6 {
		t.Errorf("frames = %d, want 6 (two per project)", len(h.Frames))
	}
	if len(h.Reveal.Pending()) != 5 {
		t.Errorf("pending reveals = %v", h.Reveal.Pending())
	}

	s.Document().Dispatch(event.Event{Type: event.PointerMove, X: 1440, Y: 405})
	if off := h.Showreel.Offset(); off.X != -5 {
		t.Errorf("showreel offset = %+v, want X=-5", off)
	}

	s.Navigate("/about")
	if s.Document().ListenerCount(event.PointerMove) != 0 {
		t.Error("showreel listeners survived leaving home")
	}
}

func TestNotFoundView(t *testing.T) {
	s := newTestSession(t)
	v := s.Navigate("/contact")
	if v.Kind() != route.KindNotFound || v.Path() != "/contact" {
		t.Errorf("view = %v %q", v.Kind(), v.Path())
	}
}

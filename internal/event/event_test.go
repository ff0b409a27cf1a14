package event

import "testing"

func TestListenAndDispatch(t *testing.T) {
	target := NewTarget()
	var got []string
	remove := target.Listen(KeyDown, func(e Event) { got = append(got, e.Key) })

	if n := target.Dispatch(Event{Type: KeyDown, Key: "a"}); n != 1 {
		t.Fatalf("Dispatch invoked %d handlers, want 1", n)
	}
	if n := target.Dispatch(Event{Type: PointerMove}); n != 0 {
		t.Errorf("Dispatch of unrelated type invoked %d handlers, want 0", n)
	}

	remove()
	target.Dispatch(Event{Type: KeyDown, Key: "b"})

	if len(got) != 1 || got[0] != "a" {
		t.Errorf("received keys = %v, want [a]", got)
	}
	if c := target.ListenerCount(KeyDown); c != 0 {
		t.Errorf("ListenerCount after remove = %d, want 0", c)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	target := NewTarget()
	removeA := target.Listen(KeyDown, func(Event) {})
	target.Listen(KeyDown, func(Event) {})

	removeA()
	removeA()

	if c := target.ListenerCount(KeyDown); c != 1 {
		t.Errorf("ListenerCount = %d, want 1", c)
	}
}

func TestHandlerRemovesItselfDuringDispatch(t *testing.T) {
	target := NewTarget()
	calls := 0
	var remove func()
	remove = target.Listen(KeyDown, func(Event) {
		calls++
		remove()
	})

	target.Dispatch(Event{Type: KeyDown, Key: KeyEscape})
	target.Dispatch(Event{Type: KeyDown, Key: KeyEscape})

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

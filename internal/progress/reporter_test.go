package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := &CIReporter{Out: &buf, now: func() time.Time { return clock }}

	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "about/index.html")
	clock = clock.Add(1500 * time.Millisecond)
	r.Finish()

	want := []string{
		"Exporting 2 pages",
		"[1/2] index.html",
		"[2/2] about/index.html",
		"Export complete in 1.5s",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTerminalReporterWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{Out: &buf}
	r.Start(3)
	r.Update(1, "index.html")
	r.Update(3, "404.html")
	r.Finish()

	if buf.Len() == 0 {
		t.Error("expected bar output on Out")
	}
	// Updates after Finish are ignored.
	r.Update(2, "late")
}

func TestNewReporter(t *testing.T) {
	for _, name := range []string{"CI", "GITHUB_ACTIONS", "BUILDKITE", "GITLAB_CI"} {
		t.Setenv(name, "")
	}
	if _, ok := NewReporter().(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}

	t.Setenv("GITLAB_CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when GITLAB_CI is set")
	}
}

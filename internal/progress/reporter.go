// Package progress reports static export progress, as a bar on terminals
// and as plain lines in CI logs.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Update per exported page.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// inCI reports whether output goes to a CI log rather than a terminal.
func inCI() bool {
	for _, name := range []string{"CI", "GITHUB_ACTIONS", "BUILDKITE", "GITLAB_CI"} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// NewReporter picks a Reporter for the current environment. Both write to
// stderr so stdout stays clean.
func NewReporter() Reporter {
	if inCI() {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{Out: os.Stderr}
}

// TerminalReporter draws a bar labelled with the page being written.
type TerminalReporter struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	out := r.Out
	if out == nil {
		out = os.Stderr
	}
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Exporting pages"),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionSetWidth(32),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(fmt.Sprintf("%-28s", message))
	_ = r.bar.Set(current)
}

func (r *TerminalReporter) Finish() {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
	r.bar = nil
}

// CIReporter writes one line per page and a closing line with the elapsed
// time.
type CIReporter struct {
	Out io.Writer

	total   int
	started time.Time
	now     func() time.Time
}

func (r *CIReporter) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *CIReporter) Start(total int) {
	r.total = total
	r.started = r.clock()
	fmt.Fprintf(r.Out, "Exporting %d pages\n", total)
}

func (r *CIReporter) Update(current int, message string) {
	fmt.Fprintf(r.Out, "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.Out, "Export complete in %s\n", r.clock().Sub(r.started).Round(time.Millisecond))
}

// Discard reports nothing.
type Discard struct{}

func (Discard) Start(int) {}

func (Discard) Update(int, string) {}

func (Discard) Finish() {}

package progress

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/k0kubun/go-ansi"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"dirtree/internal/walker"
)

// Spinner reports how many entries a walk has listed so far. The total is
// not known up front, so it runs the bar in spinner mode.
type Spinner struct {
	bar     *progressbar.ProgressBar
	enabled bool
}

// New returns a spinner on stderr. It stays silent unless enabled is set
// and stderr is a terminal, since stdout usually carries the listing.
func New(enabled bool) *Spinner {
	if !enabled || !isTerminal() {
		return &Spinner{}
	}
	return NewWithWriter(ansi.NewAnsiStderr())
}

func NewWithWriter(w io.Writer) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription("[cyan]Listing[reset]"),
	)
	return &Spinner{bar: bar, enabled: true}
}

func isTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Observe counts a visited directory and its files.
func (s *Spinner) Observe(node walker.Node) {
	if !s.enabled {
		return
	}
	s.bar.Describe(fmt.Sprintf("[cyan]Listing[reset] %s", filepath.Base(node.Dir)))
	_ = s.bar.Add(1 + len(node.Files))
}

func (s *Spinner) Finish() {
	if !s.enabled {
		return
	}
	_ = s.bar.Finish()
}

package printer

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"dirtree/internal/walker"
)

const DefaultIndent = 4

// Stats counts what a Print call wrote. The root directory is included in
// Dirs, so the number of non-root lines is Dirs-1+Files.
type Stats struct {
	Dirs  int
	Files int
}

type Printer struct {
	w        io.Writer
	indent   int
	header   bool
	observer func(walker.Node)
}

type Option func(*Printer)

// WithIndent sets the number of spaces per depth level. Values below 1 are
// ignored, since the listing could not be parsed back.
func WithIndent(n int) Option {
	return func(p *Printer) {
		if n > 0 {
			p.indent = n
		}
	}
}

// WithHeader prints a banner naming the root before the tree.
func WithHeader(enabled bool) Option {
	return func(p *Printer) {
		p.header = enabled
	}
}

// WithObserver registers a function called once per visited directory,
// after its lines have been written.
func WithObserver(fn func(walker.Node)) Option {
	return func(p *Printer) {
		p.observer = fn
	}
}

func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w:      w,
		indent: DefaultIndent,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PrintTree writes the indented listing of rootPath to w.
func PrintTree(rootPath string, w io.Writer) error {
	_, err := New(w).Print(rootPath)
	return err
}

// Print walks rootPath and writes one line per directory followed by one
// line per file it contains. Lines already written when the walk fails are
// flushed, not discarded.
func (p *Printer) Print(rootPath string) (Stats, error) {
	var stats Stats
	root := filepath.Clean(rootPath)
	bw := bufio.NewWriter(p.w)

	headerDone := !p.header
	err := walker.Walk(root, func(node walker.Node) error {
		if !headerDone {
			if _, err := fmt.Fprintf(bw, "\n📁 Folder structure inside: %s\n\n", rootPath); err != nil {
				return err
			}
			headerDone = true
		}

		depth := walker.Depth(root, node.Dir)
		indent := strings.Repeat(" ", p.indent*depth)
		if _, err := fmt.Fprintf(bw, "%s%s/\n", indent, dirName(node.Dir)); err != nil {
			return err
		}
		stats.Dirs++

		subindent := strings.Repeat(" ", p.indent*(depth+1))
		for _, f := range node.Files {
			if _, err := fmt.Fprintf(bw, "%s%s\n", subindent, f); err != nil {
				return err
			}
			stats.Files++
		}

		if p.observer != nil {
			p.observer(node)
		}
		return nil
	})

	if flushErr := bw.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("failed to write listing: %w", flushErr)
	}
	return stats, err
}

// dirName is the last element of dir, or empty for a filesystem root so
// that "/" prints as "/" rather than "//".
func dirName(dir string) string {
	name := filepath.Base(dir)
	if name == string(filepath.Separator) {
		return ""
	}
	return name
}

package printer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a listing produced by Print with the given indent and returns
// the paths it describes, relative to the root line and slash-separated.
// Directory paths end in "/". A header banner, if present, is skipped.
//
// Only level*indent leading spaces are treated as indentation, so names that
// start with spaces survive. Files always follow their directory's line, so
// a file line sits exactly one level below the last directory line. A
// directory line takes the deepest level its indentation allows.
func Parse(r io.Reader, indent int) ([]string, error) {
	if indent <= 0 {
		return nil, fmt.Errorf("cannot parse listing with indent %d", indent)
	}

	var (
		paths     []string
		stack     []string
		sawRoot   bool
		fileLevel int
		lineNo    int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if !sawRoot {
			if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "📁 ") {
				continue
			}
			if !strings.HasSuffix(line, "/") {
				return nil, fmt.Errorf("line %d: listing must start with the root directory", lineNo)
			}
			sawRoot = true
			stack = []string{strings.TrimSuffix(line, "/")}
			fileLevel = 1
			continue
		}
		if line == "" {
			continue
		}

		spaces := len(line) - len(strings.TrimLeft(line, " "))
		isDir := strings.HasSuffix(line, "/")

		var level int
		if isDir {
			level = min(spaces/indent, len(stack))
		} else {
			level = fileLevel
		}
		if level == 0 || spaces < level*indent {
			return nil, fmt.Errorf("line %d: indentation %d does not match depth %d", lineNo, spaces, level)
		}

		name := line[level*indent:]
		if name == "" || name == "/" {
			return nil, fmt.Errorf("line %d: missing entry name", lineNo)
		}

		parent := strings.Join(stack[1:level], "/")
		path := name
		if parent != "" {
			path = parent + "/" + name
		}
		paths = append(paths, path)

		if isDir {
			stack = append(stack[:level], strings.TrimSuffix(name, "/"))
			fileLevel = level + 1
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}
	if !sawRoot {
		return nil, fmt.Errorf("listing is empty")
	}

	return paths, nil
}

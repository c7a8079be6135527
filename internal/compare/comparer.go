package compare

import (
	"fmt"
	"sort"
	"strings"
)

type ChangeType string

const (
	Added   ChangeType = "ADDED"
	Deleted ChangeType = "DELETED"
)

type Change struct {
	Type ChangeType
	Path string
}

type CompareResult struct {
	Added   []Change
	Deleted []Change
}

func (r *CompareResult) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Deleted) > 0
}

// Compare diffs two sets of listing paths as returned by printer.Parse.
func Compare(oldPaths, newPaths []string) *CompareResult {
	result := &CompareResult{
		Added:   make([]Change, 0),
		Deleted: make([]Change, 0),
	}

	oldSet := make(map[string]bool, len(oldPaths))
	for _, p := range oldPaths {
		oldSet[p] = true
	}
	newSet := make(map[string]bool, len(newPaths))
	for _, p := range newPaths {
		newSet[p] = true
	}

	for path := range newSet {
		if !oldSet[path] {
			result.Added = append(result.Added, Change{Type: Added, Path: path})
		}
	}
	for path := range oldSet {
		if !newSet[path] {
			result.Deleted = append(result.Deleted, Change{Type: Deleted, Path: path})
		}
	}

	// Sort for deterministic output
	sort.Slice(result.Added, func(i, j int) bool {
		return result.Added[i].Path < result.Added[j].Path
	})
	sort.Slice(result.Deleted, func(i, j int) bool {
		return result.Deleted[i].Path < result.Deleted[j].Path
	})

	return result
}

func FormatReport(result *CompareResult) string {
	if !result.HasChanges() {
		return "No changes detected."
	}

	var sb strings.Builder
	sb.WriteString("Changes detected:\n\n")

	if len(result.Added) > 0 {
		fmt.Fprintf(&sb, "ADDED (%d entries):\n", len(result.Added))
		for _, change := range result.Added {
			fmt.Fprintf(&sb, "  + %s\n", change.Path)
		}
		sb.WriteString("\n")
	}

	if len(result.Deleted) > 0 {
		fmt.Fprintf(&sb, "DELETED (%d entries):\n", len(result.Deleted))
		for _, change := range result.Deleted {
			fmt.Fprintf(&sb, "  - %s\n", change.Path)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Summary: %d added, %d deleted\n", len(result.Added), len(result.Deleted))

	return sb.String()
}

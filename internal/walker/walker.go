package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
)

var (
	// ErrPathNotFound is returned when the root or a nested directory does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrPermission is returned when a directory cannot be read.
	ErrPermission = errors.New("permission denied")
	// ErrNotDirectory is returned when the root is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// SkipDir can be returned by a WalkFunc to keep Walk from descending into
// the subdirectories of the node it was called with.
var SkipDir = errors.New("skip this directory")

// Node is one directory visited by Walk along with its direct children.
// Dir is the directory path joined onto the cleaned root. The slices are
// only valid until the WalkFunc returns.
type Node struct {
	Dir     string
	Subdirs []string
	Files   []string
}

// WalkFunc is called once per directory. Returning SkipDir skips its
// subdirectories; any other error stops the walk.
type WalkFunc func(node Node) error

// Walk visits rootPath and every directory below it, top-down. Entries are
// sorted by name; anything that is not a directory, including symlinks, is
// reported as a file. The first read error aborts the walk.
func Walk(rootPath string, fn WalkFunc) error {
	root := filepath.Clean(rootPath)

	info, err := os.Stat(root)
	if err != nil {
		return classify(err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	return walkDir(root, fn)
}

func walkDir(dir string, fn WalkFunc) error {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return classify(&fs.PathError{Op: "readdirent", Path: dir, Err: unwrapPathError(err)})
	}
	sort.Sort(dirents)

	node := Node{
		Dir:     dir,
		Subdirs: make([]string, 0),
		Files:   make([]string, 0, len(dirents)),
	}
	for _, de := range dirents {
		if de.IsDir() {
			node.Subdirs = append(node.Subdirs, de.Name())
		} else {
			node.Files = append(node.Files, de.Name())
		}
	}

	if err := fn(node); err != nil {
		if err == SkipDir {
			return nil
		}
		return err
	}

	// fn may not retain node, so copy the names before recursing.
	subdirs := append([]string(nil), node.Subdirs...)
	for _, name := range subdirs {
		if err := walkDir(filepath.Join(dir, name), fn); err != nil {
			return err
		}
	}

	return nil
}

// Depth is the number of directory levels between rootPath and dir. It is
// zero for the root itself and for paths outside of it.
func Depth(rootPath, dir string) int {
	rel, err := filepath.Rel(filepath.Clean(rootPath), filepath.Clean(dir))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrPathNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermission, err)
	default:
		return fmt.Errorf("failed to read directory: %w", err)
	}
}

func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

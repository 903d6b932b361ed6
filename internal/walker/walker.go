// Package walker implements the depth-first directory traversal spec.md §1
// calls out as an external collaborator: "the generic filesystem-walk
// driver" that consumes MatchesDirectory/MatchesFile/DirectoryFinished and
// performs the actual recursion. It exists here only so the CLI and the
// walker-equivalence test property (spec.md §8 property 8) have something
// concrete to run against; the core (globspec) never imports this package.
package walker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/globkit/fileglob/internal/filesystem"
)

// DirMatcher is the three-operation contract spec.md §4.5/§4.6 define
// between a walker-facing matcher and its walker.
type DirMatcher interface {
	MatchesDirectory(currentDirectory, name string) bool
	MatchesFile(currentDirectory, name string) bool
	DirectoryFinished()
}

// Walker performs a depth-first traversal of rootDirectory, consulting
// matcher at every directory and file boundary.
//
// Grounded on IgorBayerl-ReportGenerator's internal/glob/glob.go
// (getRecursiveDirectoriesAndFiles, which drives filepath.WalkDir): the
// traversal here is hand-rolled rather than calling filepath.WalkDir
// because MatchesDirectory must gate descent into a subdirectory before
// it is ever read, and filepath.WalkDir only offers an after-the-fact
// fs.SkipDir from inside its callback.
type Walker struct {
	fs            filesystem.Filesystem
	matcher       DirMatcher
	rootDirectory string
	sep           byte
}

// New builds a Walker rooted at rootDirectory, using matcher to decide
// descent and hits, and sep as the path separator for both the directory
// strings passed to matcher and the relative paths Walk returns.
func New(fsys filesystem.Filesystem, matcher DirMatcher, rootDirectory string, sep byte) *Walker {
	return &Walker{
		fs:            fsys,
		matcher:       matcher,
		rootDirectory: strings.TrimRight(rootDirectory, string(sep)),
		sep:           sep,
	}
}

// Walk returns every matched file as a path relative to rootDirectory, in
// the order entries are visited (lexical per directory, depth-first).
func (w *Walker) Walk() ([]string, error) {
	var out []string
	if err := w.walkDir(w.rootDirectory, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (w *Walker) walkDir(currentDirectory, relDir string, out *[]string) error {
	entries, err := w.fs.ReadDir(currentDirectory)
	if err != nil {
		return fmt.Errorf("walker: reading directory %s: %w", currentDirectory, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if !w.matcher.MatchesDirectory(currentDirectory, name) {
				continue
			}
			childDir := joinSep(currentDirectory, name, w.sep)
			childRel := joinSep(relDir, name, w.sep)
			if err := w.walkDir(childDir, childRel, out); err != nil {
				return err
			}
			continue
		}
		if w.matcher.MatchesFile(currentDirectory, name) {
			*out = append(*out, joinSep(relDir, name, w.sep))
		}
	}

	w.matcher.DirectoryFinished()
	return nil
}

func joinSep(dir, name string, sep byte) string {
	if dir == "" {
		return name
	}
	return dir + string(sep) + name
}

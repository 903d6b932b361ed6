package walker

import (
	"io/fs"
	"testing"
	"time"

	"github.com/globkit/fileglob/internal/globspec"
	"github.com/globkit/fileglob/internal/wildcard"
)

// mockFileInfo and mockDirEntry are a lean stand-in for os.FileInfo/os.DirEntry,
// adapted from IgorBayerl-ReportGenerator's internal/glob/glob_test.go
// MockFileInfo/MockDirEntry (trimmed to the fields walker actually needs).
type mockFileInfo struct {
	name  string
	isDir bool
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return m.isDir }
func (m mockFileInfo) Sys() any           { return nil }

type mockDirEntry struct{ info mockFileInfo }

func (m mockDirEntry) Name() string               { return m.info.name }
func (m mockDirEntry) IsDir() bool                { return m.info.isDir }
func (m mockDirEntry) Type() fs.FileMode          { return m.info.Mode() }
func (m mockDirEntry) Info() (fs.FileInfo, error) { return m.info, nil }

// mockFilesystem is an in-memory tree, adapted from glob_test.go's
// MockFilesystem, keyed by "/"-joined paths and used only by walker's own
// tests (globspec and pathops have their own separately grounded tests).
type mockFilesystem struct {
	dirs map[string][]mockDirEntry
}

func newMockFilesystem() *mockFilesystem {
	return &mockFilesystem{dirs: map[string][]mockDirEntry{}}
}

func (m *mockFilesystem) ensure(path string) {
	if _, ok := m.dirs[path]; !ok {
		m.dirs[path] = nil
	}
}

// addFile registers name inside parent, creating parent (and, if isDir,
// the child directory itself) as needed.
func (m *mockFilesystem) addFile(parent, name string, isDir bool) {
	m.ensure(parent)
	m.dirs[parent] = append(m.dirs[parent], mockDirEntry{info: mockFileInfo{name: name, isDir: isDir}})
	if isDir {
		child := parent + "/" + name
		if parent == "" {
			child = name
		}
		m.ensure(child)
	}
}

func (m *mockFilesystem) Stat(name string) (fs.FileInfo, error) { return nil, fs.ErrNotExist }

func (m *mockFilesystem) ReadFile(name string) ([]byte, error) { return nil, fs.ErrNotExist }

func (m *mockFilesystem) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, ok := m.dirs[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	out := make([]fs.DirEntry, len(entries))
	for i, e := range entries {
		out[i] = e
	}
	return out, nil
}

func (m *mockFilesystem) Getwd() (string, error)            { return "/root", nil }
func (m *mockFilesystem) Abs(path string) (string, error)   { return path, nil }
func (m *mockFilesystem) Platform() string                  { return "linux" }

func newSpecMatcher(t *testing.T, raw, root string, mode globspec.Mode) *globspec.SpecMatcher {
	t.Helper()
	spec := globspec.Parse(raw, '/', false)
	return globspec.NewSpecMatcher(spec, root, mode, wildcard.Simple, wildcard.CaseSensitive, false)
}

func TestWalkRecursiveCSharpFiles(t *testing.T) {
	mfs := newMockFilesystem()
	mfs.addFile("root", "a.cs", false)
	mfs.addFile("root", "readme.md", false)
	mfs.addFile("root", "sub", true)
	mfs.addFile("root/sub", "b.cs", false)
	mfs.addFile("root/sub", "deeper", true)
	mfs.addFile("root/sub/deeper", "c.cs", false)

	include := newSpecMatcher(t, "**/*.cs", "root", globspec.Include)
	set, err := globspec.NewMatcherSet(include)
	if err != nil {
		t.Fatalf("NewMatcherSet error: %v", err)
	}

	w := New(mfs, set, "root", '/')
	got, err := w.Walk()
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}

	want := map[string]bool{"a.cs": true, "sub/b.cs": true, "sub/deeper/c.cs": true}
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want files matching %v", got, want)
	}
	for _, g := range got {
		if !want[g] {
			t.Errorf("unexpected match %q", g)
		}
	}
}

func TestWalkPrunesExcludedSubtree(t *testing.T) {
	mfs := newMockFilesystem()
	mfs.addFile("root", "a.cs", false)
	mfs.addFile("root", "bin", true)
	mfs.addFile("root/bin", "b.cs", false)

	include := newSpecMatcher(t, "**/*.cs", "root", globspec.Include)
	exclude := newSpecMatcher(t, "bin/**", "root", globspec.Exclude)
	set, err := globspec.NewMatcherSet(include)
	if err != nil {
		t.Fatalf("NewMatcherSet error: %v", err)
	}
	if err := set.AddExclude(exclude); err != nil {
		t.Fatalf("AddExclude error: %v", err)
	}

	w := New(mfs, set, "root", '/')
	got, err := w.Walk()
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}
	if len(got) != 1 || got[0] != "a.cs" {
		t.Errorf("Walk() = %v, want only [a.cs] (bin subtree pruned)", got)
	}
}

func TestWalkEmptyDirectoryYieldsNoMatches(t *testing.T) {
	mfs := newMockFilesystem()
	mfs.ensure("root")

	include := newSpecMatcher(t, "root/*.cs", "root", globspec.Include)
	set, err := globspec.NewMatcherSet(include)
	if err != nil {
		t.Fatalf("NewMatcherSet error: %v", err)
	}

	w := New(mfs, set, "root", '/')
	got, err := w.Walk()
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Walk() = %v, want no matches", got)
	}
}

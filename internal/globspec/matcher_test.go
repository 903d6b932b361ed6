package globspec

import (
	"testing"

	"github.com/globkit/fileglob/internal/wildcard"
)

func newMatcher(t *testing.T, raw, root string, mode Mode) *SpecMatcher {
	t.Helper()
	spec := Parse(raw, '/', false)
	return NewSpecMatcher(spec, root, mode, wildcard.Simple, wildcard.CaseSensitive, false)
}

func TestAlwaysRecurseAndEndsInAnyDirectory(t *testing.T) {
	m := newMatcher(t, "**/*.cs", "/root", Include)
	if !m.AlwaysRecurse() {
		t.Error("expected AlwaysRecurse for leading **")
	}
	if !m.EndsInAnyDirectory() {
		t.Error("expected EndsInAnyDirectory for WildPath == **")
	}

	m2 := newMatcher(t, "src/*.cs", "/root", Include)
	if m2.AlwaysRecurse() {
		t.Error("did not expect AlwaysRecurse without leading **")
	}
}

// S1: root.cs, sub/a.cs, sub/b.txt, sub/sub2/c.cs ; include **/*.cs
func TestScenarioS1(t *testing.T) {
	m := newMatcher(t, "**/*.cs", "/root", Include)

	if !m.MatchesDirectory("/root", "sub", false) {
		t.Error("expected descent into /root/sub")
	}
	if !m.MatchesFile("/root", "root.cs") {
		t.Error("expected /root/root.cs to match")
	}
	m.DirectoryFinished()

	if !m.MatchesDirectory("/root/sub", "sub2", false) {
		t.Error("expected descent into /root/sub/sub2")
	}
	if !m.MatchesFile("/root/sub", "a.cs") {
		t.Error("expected /root/sub/a.cs to match")
	}
	if m.MatchesFile("/root/sub", "b.txt") {
		t.Error("did not expect /root/sub/b.txt to match")
	}
	m.DirectoryFinished()

	if !m.MatchesFile("/root/sub/sub2", "c.cs") {
		t.Error("expected /root/sub/sub2/c.cs to match")
	}
	m.DirectoryFinished()
}

// S2: **/bin/*.exe must not match a plain bin.exe at the root.
func TestScenarioS2(t *testing.T) {
	m := newMatcher(t, "**/bin/*.exe", "/root", Include)

	if m.MatchesFile("/root", "bin.exe") {
		t.Error("bin.exe at root must not match **/bin/*.exe")
	}
	if !m.MatchesDirectory("/root", "src", false) {
		t.Error("expected descent into /root/src")
	}
	m.DirectoryFinished()

	if !m.MatchesDirectory("/root/src", "bin", false) {
		t.Error("expected descent into /root/src/bin")
	}
	if !m.MatchesFile("/root/src/bin", "app.exe") {
		t.Error("expected /root/src/bin/app.exe to match")
	}
	m.DirectoryFinished()
	m.DirectoryFinished()

	if !m.MatchesDirectory("/root", "project", false) {
		t.Error("expected descent into /root/project")
	}
	if !m.MatchesDirectory("/root/project", "nested", false) {
		t.Error("expected descent into /root/project/nested")
	}
	if !m.MatchesDirectory("/root/project/nested", "bin", false) {
		t.Error("expected descent into /root/project/nested/bin")
	}
	if !m.MatchesFile("/root/project/nested/bin", "nested.exe") {
		t.Error("expected /root/project/nested/bin/nested.exe to match")
	}
}

// S3: ???/v1/**/?*.cs
func TestScenarioS3(t *testing.T) {
	m := newMatcher(t, "???/v1/**/?*.cs", "/root", Include)

	if !m.MatchesDirectory("/root", "src", false) {
		t.Error("expected descent into /root/src (3-letter name)")
	}
	if !m.MatchesDirectory("/root/src", "v1", false) {
		t.Error("expected descent into /root/src/v1")
	}
	if !m.MatchesFile("/root/src/v1", "a.cs") {
		t.Error("expected src/v1/a.cs to match")
	}
	if !m.MatchesFile("/root/src/v1", "b.cs") {
		t.Error("expected src/v1/b.cs to match")
	}
	m.DirectoryFinished()
	m.DirectoryFinished()

	if !m.MatchesDirectory("/root", "lib", false) {
		t.Error("expected descent into /root/lib")
	}
	if !m.MatchesDirectory("/root/lib", "v1", false) {
		t.Error("expected descent into /root/lib/v1")
	}
	if !m.MatchesFile("/root/lib/v1", "a.cs") {
		t.Error("expected lib/v1/a.cs to match")
	}
	m.DirectoryFinished()
	m.DirectoryFinished()

	if m.MatchesDirectory("/root", "test", false) {
		t.Error("did not expect descent into /root/test (4-letter name fails ???)")
	}
}

// S6: include **/*.cs, exclude bin/**
func TestScenarioS6ExcludeSubtree(t *testing.T) {
	set, err := NewMatcherSet(newMatcher(t, "**/*.cs", "/root", Include))
	if err != nil {
		t.Fatal(err)
	}
	exclude := newMatcher(t, "bin/**", "/root", Exclude)
	if err := set.AddExclude(exclude); err != nil {
		t.Fatal(err)
	}

	if !set.MatchesDirectory("/root", "src") {
		t.Error("expected descent into /root/src")
	}
	if set.MatchesDirectory("/root", "bin") {
		t.Error("expected bin subtree to be pruned")
	}
	if !set.MatchesFile("/root/src", "main.cs") {
		t.Error("expected src/main.cs to match")
	}
	if set.MatchesFile("/root/bin/Debug", "stale.cs") {
		t.Error("expected bin/Debug/stale.cs to be excluded")
	}
}

// S4: a/b/c/d/deep.txt, root.txt, a/intermediate.txt ; include **/deep.txt
func TestScenarioS4(t *testing.T) {
	m := newMatcher(t, "**/deep.txt", "/root", Include)

	if m.MatchesFile("/root", "root.txt") {
		t.Error("did not expect root.txt to match **/deep.txt")
	}
	if !m.MatchesDirectory("/root", "a", false) {
		t.Error("expected descent into /root/a")
	}
	if m.MatchesFile("/root/a", "intermediate.txt") {
		t.Error("did not expect a/intermediate.txt to match **/deep.txt")
	}
	if !m.MatchesDirectory("/root/a", "b", false) {
		t.Error("expected descent into /root/a/b")
	}
	if !m.MatchesDirectory("/root/a/b", "c", false) {
		t.Error("expected descent into /root/a/b/c")
	}
	if !m.MatchesDirectory("/root/a/b/c", "d", false) {
		t.Error("expected descent into /root/a/b/c/d")
	}
	if !m.MatchesFile("/root/a/b/c/d", "deep.txt") {
		t.Error("expected a/b/c/d/deep.txt to match")
	}
}

// S5: target.cs, level1/target.cs, level1/level2/target.cs, level1/level2/other.txt ; include **/target.cs
func TestScenarioS5(t *testing.T) {
	m := newMatcher(t, "**/target.cs", "/root", Include)

	if !m.MatchesFile("/root", "target.cs") {
		t.Error("expected root target.cs to match (** eats zero directories)")
	}
	if !m.MatchesDirectory("/root", "level1", false) {
		t.Error("expected descent into /root/level1")
	}
	if !m.MatchesFile("/root/level1", "target.cs") {
		t.Error("expected level1/target.cs to match")
	}
	if !m.MatchesDirectory("/root/level1", "level2", false) {
		t.Error("expected descent into /root/level1/level2")
	}
	if !m.MatchesFile("/root/level1/level2", "target.cs") {
		t.Error("expected level1/level2/target.cs to match")
	}
	if m.MatchesFile("/root/level1/level2", "other.txt") {
		t.Error("did not expect level1/level2/other.txt to match **/target.cs")
	}
}

func TestEmptyWildPathRequiresExactDirectory(t *testing.T) {
	m := newMatcher(t, "src/main.cs", "/root", Include)
	if !m.MatchesFile("/root/src", "main.cs") {
		t.Error("expected exact FixedPath match to succeed")
	}
	if m.MatchesFile("/root/src/sub", "main.cs") {
		t.Error("did not expect a match below the fixed path with empty WildPath")
	}
}

func TestCacheInvalidationDoesNotChangeVerdict(t *testing.T) {
	m := newMatcher(t, "**/*.cs", "/root", Include)
	first := m.MatchesFile("/root/a/b", "x.cs")
	m.DirectoryFinished()
	m.DirectoryFinished()
	second := m.MatchesFile("/root/a/b", "x.cs")
	if first != second {
		t.Error("verdict must be independent of extra cache invalidation")
	}
	if !first {
		t.Error("expected a/b/x.cs to match **/*.cs")
	}
}

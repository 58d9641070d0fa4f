package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/thiagokokada/gitporcelain/internal/git"
)

var sampleEntries = []git.StatusEntry{
	{IndexState: '?', WorktreeState: '?', Path: "a.txt"},
	{IndexState: 'R', WorktreeState: ' ', Path: "old.txt", RenamedFrom: "new.txt"},
	{IndexState: ' ', WorktreeState: 'M', Path: "dir/b.go"},
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{"": FormatText, "text": FormatText, " JSON ": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected error for xml")
	}
}

func TestStatusText(t *testing.T) {
	t.Parallel()

	want := "?? a.txt\nR  old.txt -> new.txt\n M dir/b.go\n"
	if got := StatusText(sampleEntries); got != want {
		t.Fatalf("StatusText() = %q, want %q", got, want)
	}
	if got := StatusText(nil); got != "" {
		t.Fatalf("StatusText(nil) = %q", got)
	}
}

func TestStatusJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Status(&buf, sampleEntries, Options{Format: FormatJSON}); err != nil {
		t.Fatalf("Status: %v", err)
	}
	var docs []statusDoc
	if err := json.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(docs) != 3 || docs[1].RenamedFrom != "new.txt" || docs[1].Index != "R" || docs[2].Worktree != "M" {
		t.Fatalf("unexpected docs: %+v", docs)
	}
	if strings.Count(buf.String(), "renamed_from") != 1 {
		t.Fatalf("renamed_from should only be set on renames:\n%s", buf.String())
	}
}

func TestSubmodulesYAML(t *testing.T) {
	t.Parallel()

	modules := []git.Submodule{{Name: "lib", Path: "third_party/lib", URL: "https://example.com/lib.git"}}
	var buf bytes.Buffer
	if err := Submodules(&buf, modules, Options{Format: FormatYAML}); err != nil {
		t.Fatalf("Submodules: %v", err)
	}
	var docs []submoduleDoc
	if err := yaml.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(docs) != 1 || docs[0] != submoduleDoc(modules[0]) {
		t.Fatalf("unexpected docs: %+v", docs)
	}
}

func TestSubmodulesText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	modules := []git.Submodule{{Name: "a", Path: "p", URL: "u"}}
	if err := Submodules(&buf, modules, Options{}); err != nil {
		t.Fatalf("Submodules: %v", err)
	}
	if buf.String() != "a\tp\tu\n" {
		t.Fatalf("unexpected text: %q", buf.String())
	}
}

func TestCommit(t *testing.T) {
	t.Parallel()

	c := git.Commit{Hash: "abc", ParentHashes: []string{"p1", "p2"}, Message: "Subject\n\nBody"}
	var buf bytes.Buffer
	if err := Commit(&buf, c, Options{Format: FormatText}); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	want := "commit abc\nparents p1 p2\n\n    Subject\n    \n    Body\n"
	if buf.String() != want {
		t.Fatalf("Commit text = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	root := git.Commit{Hash: "abc", Message: "m"}
	if err := Commit(&buf, root, Options{Format: FormatJSON}); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if !strings.Contains(buf.String(), `"previous_hashes": []`) {
		t.Fatalf("root commit should encode an empty parent list:\n%s", buf.String())
	}
}

func TestHighlightedOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Status(&buf, sampleEntries, Options{Format: FormatJSON, Style: darkStyle}); err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes in highlighted output: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "old.txt") {
		t.Fatalf("highlighted output lost content: %q", buf.String())
	}
}

func TestStyleFor(t *testing.T) {
	oldDetect, oldTerm := detectDarkMode, isTerminal
	t.Cleanup(func() { detectDarkMode, isTerminal = oldDetect, oldTerm })

	isTerminal = func(*os.File) bool { return false }
	detectDarkMode = func() (bool, error) { return true, nil }

	if got := StyleFor("auto", "auto", os.Stdout); got != "" {
		t.Fatalf("auto color on a non-terminal = %q, want none", got)
	}
	if got := StyleFor("never", "dark", os.Stdout); got != "" {
		t.Fatalf("never = %q", got)
	}
	if got := StyleFor("always", "light", os.Stdout); got != lightStyle {
		t.Fatalf("always/light = %q", got)
	}
	if got := StyleFor("always", "auto", os.Stdout); got != darkStyle {
		t.Fatalf("always/auto with dark desktop = %q", got)
	}

	isTerminal = func(*os.File) bool { return true }
	detectDarkMode = func() (bool, error) { return false, errors.New("unsupported") }
	if got := StyleFor("auto", "auto", os.Stdout); got != lightStyle {
		t.Fatalf("auto on a terminal with failed detection = %q", got)
	}
}

func TestUnifiedDiff(t *testing.T) {
	t.Parallel()

	same, err := UnifiedDiff("a", "b", "x\n", "x\n")
	if err != nil || same != "" {
		t.Fatalf("identical inputs: %q, %v", same, err)
	}
	got, err := UnifiedDiff("cli", "native", "?? a\n M b\n", "?? a\nM  b\n")
	if err != nil {
		t.Fatalf("UnifiedDiff: %v", err)
	}
	for _, want := range []string{"--- cli", "+++ native", "- M b", "+M  b"} {
		if !strings.Contains(got, want) {
			t.Fatalf("diff missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   git.LocalChanges
		want string
	}{
		{in: git.LocalChanges{}, want: "clean\n"},
		{in: git.LocalChanges{Untracked: 2}, want: "2 untracked\n"},
		{
			in:   git.LocalChanges{HasStaged: true, HasWorktree: true, Renamed: 1, Conflicted: 1},
			want: "staged changes, unstaged changes, 1 renamed, 1 conflicted\n",
		},
	}
	for _, tt := range tests {
		if got := SummaryText(tt.in); got != tt.want {
			t.Fatalf("SummaryText(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thiagokokada/gitporcelain/internal/git"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q", raw)
	}
}

type Options struct {
	Format Format
	// Style is a chroma style name; empty disables highlighting.
	Style string
}

type statusDoc struct {
	Index       string `json:"index" yaml:"index"`
	Worktree    string `json:"worktree" yaml:"worktree"`
	Path        string `json:"path" yaml:"path"`
	// first path of a rename record; for git output this is the new name
	RenamedFrom string `json:"renamed_from,omitempty" yaml:"renamed_from,omitempty"`
}

type submoduleDoc struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
	URL  string `json:"url" yaml:"url"`
}

type commitDoc struct {
	Hash           string   `json:"hash" yaml:"hash"`
	PreviousHashes []string `json:"previous_hashes" yaml:"previous_hashes"`
	Message        string   `json:"message" yaml:"message"`
}

func Status(w io.Writer, entries []git.StatusEntry, opts Options) error {
	if opts.Format == FormatText || opts.Format == "" {
		_, err := io.WriteString(w, StatusText(entries))
		return err
	}
	docs := make([]statusDoc, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, statusDoc{
			Index:       string(e.IndexState),
			Worktree:    string(e.WorktreeState),
			Path:        e.Path,
			RenamedFrom: e.RenamedFrom,
		})
	}
	return encode(w, docs, opts)
}

// StatusText renders entries the way `git status --porcelain` prints them
// without -z, so a rename shows as "R  <Path> -> <RenamedFrom>".
func StatusText(entries []git.StatusEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.Code())
		sb.WriteByte(' ')
		sb.WriteString(e.Path)
		if e.IsRename() && e.RenamedFrom != "" {
			sb.WriteString(" -> ")
			sb.WriteString(e.RenamedFrom)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func Submodules(w io.Writer, modules []git.Submodule, opts Options) error {
	if opts.Format == FormatText || opts.Format == "" {
		for _, m := range modules {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, m.Path, m.URL); err != nil {
				return err
			}
		}
		return nil
	}
	docs := make([]submoduleDoc, 0, len(modules))
	for _, m := range modules {
		docs = append(docs, submoduleDoc(m))
	}
	return encode(w, docs, opts)
}

func Commit(w io.Writer, c git.Commit, opts Options) error {
	if opts.Format == FormatText || opts.Format == "" {
		var sb strings.Builder
		fmt.Fprintf(&sb, "commit %s\n", c.Hash)
		if len(c.ParentHashes) > 0 {
			fmt.Fprintf(&sb, "parents %s\n", strings.Join(c.ParentHashes, " "))
		}
		sb.WriteByte('\n')
		for _, line := range strings.Split(c.Message, "\n") {
			sb.WriteString("    ")
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		_, err := io.WriteString(w, sb.String())
		return err
	}
	parents := c.ParentHashes
	if parents == nil {
		parents = []string{}
	}
	return encode(w, commitDoc{Hash: c.Hash, PreviousHashes: parents, Message: c.Message}, opts)
}

func encode(w io.Writer, v any, opts Options) error {
	var buf bytes.Buffer
	var lexer string
	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		lexer = "json"
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		lexer = "yaml"
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
	if opts.Style == "" {
		_, err := w.Write(buf.Bytes())
		return err
	}
	return highlight(w, buf.String(), lexer, opts.Style)
}

// SummaryText is a one-line digest of a status listing for
// `status --summary`.
func SummaryText(c git.LocalChanges) string {
	if c.Clean() && c.Conflicted == 0 {
		return "clean\n"
	}
	var parts []string
	if c.HasStaged {
		parts = append(parts, "staged changes")
	}
	if c.HasWorktree {
		parts = append(parts, "unstaged changes")
	}
	if c.Renamed > 0 {
		parts = append(parts, fmt.Sprintf("%d renamed", c.Renamed))
	}
	if c.Untracked > 0 {
		parts = append(parts, fmt.Sprintf("%d untracked", c.Untracked))
	}
	if c.Conflicted > 0 {
		parts = append(parts, fmt.Sprintf("%d conflicted", c.Conflicted))
	}
	return strings.Join(parts, ", ") + "\n"
}

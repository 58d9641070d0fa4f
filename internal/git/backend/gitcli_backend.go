package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// statusChunkSize bounds each read from the git status pipe.
const statusChunkSize = 32 * 1024

var statusArgs = []string{"status", "--porcelain", "-z", "--untracked-files=all"}

func (g *gitCLI) Status(ctx context.Context) ([]StatusEntry, error) {
	if g == nil || g.path == "" {
		return nil, ErrRepoNotSet
	}
	cmd := g.command(ctx, statusArgs...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("git status stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		_ = stdout.Close()
		return nil, commandError("git status start", err, &stderr)
	}

	parser := NewStatusParser()
	readErr := feedChunks(parser, stdout, statusChunkSize)
	// Wait closes the pipe, so every chunk must be read before it.
	if err := cmd.Wait(); err != nil {
		return nil, commandError("git status", err, &stderr)
	}
	if readErr != nil {
		return nil, fmt.Errorf("read git status: %w", readErr)
	}
	if err := parser.Close(); err != nil {
		return nil, fmt.Errorf("parse git status: %w", err)
	}
	return parser.Entries(), nil
}

// feedChunks copies r into p one read at a time, preserving arrival order.
func feedChunks(p *StatusParser, r io.Reader, size int) error {
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			p.Feed(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (g *gitCLI) Submodules(ctx context.Context) ([]Submodule, error) {
	if g == nil || g.path == "" {
		return nil, ErrRepoNotSet
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(g.path, ".gitmodules"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Submodule{}, nil
		}
		return nil, fmt.Errorf("read .gitmodules: %w", err)
	}
	return ParseGitmodules(string(data)), nil
}

func (g *gitCLI) Commit(ctx context.Context, ref string) (Commit, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Commit{}, fmt.Errorf("commit not specified")
	}
	if strings.HasPrefix(ref, "-") {
		return Commit{}, fmt.Errorf("invalid revision %q", ref)
	}
	// format: has no terminator, so the message ends where the body ends
	out, err := g.runGitCommand(ctx, []string{"show", "-s", "--no-color", "--pretty=format:" + CommitFormat, ref, "--"}, "git show")
	if err != nil {
		return Commit{}, err
	}
	commit, err := ParseCommit(out)
	if err != nil {
		return Commit{}, fmt.Errorf("parse git show: %w", err)
	}
	return commit, nil
}

package backend

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

type gitCLI struct {
	path string
}

func OpenCLI(repoPath string) (Backend, error) {
	if err := ensureMinGitVersion(); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	tmp := &gitCLI{path: abs}
	root, err := tmp.runGitCommand(context.Background(), []string{"rev-parse", "--show-toplevel"}, "git rev-parse")
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, fmt.Errorf("open repository: git rev-parse returned empty root")
	}
	return &gitCLI{path: root}, nil
}

func (g *gitCLI) RepoPath() string {
	if g == nil {
		return ""
	}
	return g.path
}

func (g *gitCLI) command(ctx context.Context, args ...string) *exec.Cmd {
	cmdArgs := append([]string{"--no-pager", "-C", g.path}, args...)
	cmd := exec.CommandContext(ctx, "git", cmdArgs...)
	// keep paths raw and messages untranslated
	cmd.Env = append(cmd.Environ(), "LC_ALL=C", "GIT_OPTIONAL_LOCKS=0")
	return cmd
}

func (g *gitCLI) runGitCommand(ctx context.Context, args []string, label string) (string, error) {
	if g == nil || g.path == "" {
		return "", ErrRepoNotSet
	}
	cmd := g.command(ctx, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", commandError(label, err, &stderr)
	}
	return stdout.String(), nil
}

func commandError(label string, err error, stderr *bytes.Buffer) error {
	if stderr != nil && stderr.Len() > 0 {
		return fmt.Errorf("%s: %v: %s", label, err, strings.TrimSpace(stderr.String()))
	}
	return fmt.Errorf("%s: %w", label, err)
}

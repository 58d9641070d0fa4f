package backend

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

type native struct {
	repo *gitlib.Repository
	path string
}

func OpenNative(repoPath string) (Backend, error) {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	repo, err := gitlib.PlainOpenWithOptions(abs, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	root := abs
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}
	return &native{repo: repo, path: root}, nil
}

func (n *native) RepoPath() string {
	if n == nil {
		return ""
	}
	return n.path
}

func (n *native) Status(ctx context.Context) ([]StatusEntry, error) {
	if n == nil || n.repo == nil {
		return nil, ErrRepoNotSet
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wt, err := n.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("worktree status: %w", err)
	}
	entries := make([]StatusEntry, 0, len(status))
	for path, st := range status {
		if st.Staging == gitlib.Unmodified && st.Worktree == gitlib.Unmodified {
			continue
		}
		entry := StatusEntry{
			IndexState:    byte(st.Staging),
			WorktreeState: byte(st.Worktree),
			Path:          path,
		}
		if st.Staging == gitlib.Renamed && st.Extra != "" {
			// same field order as a porcelain rename record
			entry.RenamedFrom = path
			entry.Path = st.Extra
		}
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b StatusEntry) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return entries, nil
}

func (n *native) Submodules(ctx context.Context) ([]Submodule, error) {
	if n == nil || n.repo == nil {
		return nil, ErrRepoNotSet
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wt, err := n.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}
	f, err := wt.Filesystem.Open(".gitmodules")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Submodule{}, nil
		}
		return nil, fmt.Errorf("open .gitmodules: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read .gitmodules: %w", err)
	}
	return ParseGitmodules(string(data)), nil
}

func (n *native) Commit(ctx context.Context, ref string) (Commit, error) {
	if n == nil || n.repo == nil {
		return Commit{}, ErrRepoNotSet
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Commit{}, fmt.Errorf("commit not specified")
	}
	if err := ctx.Err(); err != nil {
		return Commit{}, err
	}
	hash, err := n.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return Commit{}, fmt.Errorf("resolve %s: %w", ref, err)
	}
	obj, err := n.repo.CommitObject(*hash)
	if err != nil {
		return Commit{}, fmt.Errorf("read commit %s: %w", hash, err)
	}
	parents := make([]string, 0, len(obj.ParentHashes))
	for _, p := range obj.ParentHashes {
		parents = append(parents, p.String())
	}
	return Commit{
		Hash:         obj.Hash.String(),
		ParentHashes: parents,
		Message:      strings.TrimSuffix(obj.Message, "\n"),
	}, nil
}

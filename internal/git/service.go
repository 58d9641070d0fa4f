package git

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	gitbackend "github.com/thiagokokada/gitporcelain/internal/git/backend"
)

const DefaultRef = "HEAD"

type Service struct {
	// mu serializes backend calls; a status stream and its parser belong to one caller at a time.
	mu sync.Mutex

	backend Backend
}

func Open(repoPath string, kind BackendKind) (*Service, error) {
	b, err := gitbackend.Open(repoPath, kind)
	if err != nil {
		return nil, err
	}
	slog.Debug("repository opened",
		slog.String("path", b.RepoPath()),
		slog.String("backend", kind.String()),
	)
	return NewWithBackend(b), nil
}

func NewWithBackend(b Backend) *Service {
	return &Service{backend: b}
}

func (s *Service) RepoPath() string {
	if s.backend == nil {
		return ""
	}
	return s.backend.RepoPath()
}

func (s *Service) Status(ctx context.Context) ([]StatusEntry, error) {
	if s.backend == nil {
		return nil, gitbackend.ErrRepoNotSet
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	entries, err := s.backend.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	slog.Debug("Status done",
		slog.Int("entries", len(entries)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return entries, nil
}

func (s *Service) LocalChanges(ctx context.Context) (LocalChanges, error) {
	entries, err := s.Status(ctx)
	if err != nil {
		return LocalChanges{}, err
	}
	return Summarize(entries), nil
}

func (s *Service) Submodules(ctx context.Context) ([]Submodule, error) {
	if s.backend == nil {
		return nil, gitbackend.ErrRepoNotSet
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	modules, err := s.backend.Submodules(ctx)
	if err != nil {
		return nil, fmt.Errorf("submodules: %w", err)
	}
	slog.Debug("Submodules done", slog.Int("count", len(modules)))
	return modules, nil
}

func (s *Service) Commit(ctx context.Context, ref string) (Commit, error) {
	if s.backend == nil {
		return Commit{}, gitbackend.ErrRepoNotSet
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		ref = DefaultRef
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	commit, err := s.backend.Commit(ctx, ref)
	if err != nil {
		return Commit{}, fmt.Errorf("commit %s: %w", ref, err)
	}
	slog.Debug("Commit done",
		slog.String("ref", ref),
		slog.String("hash", commit.Hash),
		slog.Int("parents", len(commit.ParentHashes)),
	)
	return commit, nil
}

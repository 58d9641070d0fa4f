package git

import (
	"context"
	"errors"
)

type fakeBackend struct {
	repoPath string

	statusFunc     func(ctx context.Context) ([]StatusEntry, error)
	submodulesFunc func(ctx context.Context) ([]Submodule, error)
	commitFunc     func(ctx context.Context, ref string) (Commit, error)

	lastRef string
}

func (f *fakeBackend) RepoPath() string { return f.repoPath }

func (f *fakeBackend) Status(ctx context.Context) ([]StatusEntry, error) {
	if f.statusFunc != nil {
		return f.statusFunc(ctx)
	}
	return nil, errors.New("unexpected Status call")
}

func (f *fakeBackend) Submodules(ctx context.Context) ([]Submodule, error) {
	if f.submodulesFunc != nil {
		return f.submodulesFunc(ctx)
	}
	return nil, errors.New("unexpected Submodules call")
}

func (f *fakeBackend) Commit(ctx context.Context, ref string) (Commit, error) {
	f.lastRef = ref
	if f.commitFunc != nil {
		return f.commitFunc(ctx, ref)
	}
	return Commit{}, errors.New("unexpected Commit call")
}

package backend

import "context"

// Backend abstracts access to repository data.
//
// The git CLI implementation streams subprocess output through the parsers in
// this package; the native implementation reads the repository with go-git.
type Backend interface {
	RepoPath() string

	Status(ctx context.Context) ([]StatusEntry, error)
	Submodules(ctx context.Context) ([]Submodule, error)
	Commit(ctx context.Context, ref string) (Commit, error)
}

// Open returns the backend implementation selected by kind.
func Open(repoPath string, kind Kind) (Backend, error) {
	switch kind {
	case KindNative:
		return OpenNative(repoPath)
	default:
		return OpenCLI(repoPath)
	}
}

package git

import gitbackend "github.com/thiagokokada/gitporcelain/internal/git/backend"

type (
	StatusEntry = gitbackend.StatusEntry
	Submodule   = gitbackend.Submodule
	Commit      = gitbackend.Commit
	Backend     = gitbackend.Backend
	BackendKind = gitbackend.Kind
)

const (
	BackendCLI    = gitbackend.KindCLI
	BackendNative = gitbackend.KindNative
)

var (
	ErrMalformedRecord = gitbackend.ErrMalformedRecord
	ErrTruncatedStatus = gitbackend.ErrTruncatedStatus
)

// LocalChanges summarizes a status listing.
type LocalChanges struct {
	HasWorktree bool
	HasStaged   bool
	Untracked   int
	Renamed     int
	Conflicted  int
}

func (c LocalChanges) Clean() bool {
	return !c.HasWorktree && !c.HasStaged && c.Untracked == 0
}

func BackendKindFromString(raw string) (BackendKind, bool) {
	return gitbackend.KindFromString(raw)
}

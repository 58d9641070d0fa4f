package backend

// StatusEntry is one changed or untracked path reported by git status.
type StatusEntry struct {
	IndexState    byte
	WorktreeState byte
	Path          string
	// RenamedFrom is the first path field of a rename record and Path is the
	// second. git writes the new name first, so for a real `git mv old new`
	// RenamedFrom holds "new" (the destination) and Path holds "old".
	// Empty unless IndexState is 'R'.
	RenamedFrom string
}

func (e StatusEntry) IsRename() bool {
	return e.IndexState == 'R'
}

func (e StatusEntry) IsUntracked() bool {
	return e.IndexState == '?' && e.WorktreeState == '?'
}

// Code returns the two-letter status code, e.g. "??" or "R ".
func (e StatusEntry) Code() string {
	return string([]byte{e.IndexState, e.WorktreeState})
}

type Submodule struct {
	Name string
	Path string
	URL  string
}

type Commit struct {
	Hash         string
	ParentHashes []string
	Message      string
}

func (c Commit) IsRoot() bool {
	return len(c.ParentHashes) == 0
}

func (c Commit) IsMerge() bool {
	return len(c.ParentHashes) > 1
}

type Kind uint8

const (
	KindCLI Kind = iota
	KindNative
)

func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	default:
		return "cli"
	}
}

// KindFromString maps a user supplied backend name. Unknown names fall back
// to the git CLI backend with ok set to false.
func KindFromString(raw string) (Kind, bool) {
	switch raw {
	case "cli", "gitcli", "":
		return KindCLI, true
	case "native", "go-git":
		return KindNative, true
	default:
		return KindCLI, false
	}
}

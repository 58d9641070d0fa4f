package backend

import (
	"strings"
)

// CommitFormat is the --format argument whose output ParseCommit understands.
const CommitFormat = "%H%n%P%n%B"

// ParseCommit decodes the output of `git show -s --format=%H%n%P%n%B`. The
// message keeps its interior newlines; only one trailing newline is removed.
func ParseCommit(text string) (Commit, error) {
	hashLine, rest, ok := strings.Cut(text, "\n")
	if !ok {
		return Commit{}, &MalformedRecordError{Reason: "missing parents line", Input: text}
	}
	parentLine, message, ok := strings.Cut(rest, "\n")
	if !ok {
		return Commit{}, &MalformedRecordError{Reason: "missing message separator", Input: text}
	}
	hash := strings.TrimSpace(hashLine)
	if hash == "" {
		return Commit{}, &MalformedRecordError{Reason: "missing commit hash", Input: text}
	}
	parents := []string{}
	for _, field := range strings.Split(strings.TrimRight(parentLine, "\r"), " ") {
		if field != "" {
			parents = append(parents, field)
		}
	}
	return Commit{
		Hash:         hash,
		ParentHashes: parents,
		Message:      strings.TrimSuffix(message, "\n"),
	}, nil
}

package backend

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Minimum git accepted by the CLI backend. Keep this aligned with the flags
// used by Status and Commit (e.g. "git -C" and "status --porcelain -z").
var minGitVersion = gitVersion{major: 2, minor: 11, patch: 0}

var gitVersionRe = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

type gitVersion struct {
	major int
	minor int
	patch int
}

func MinGitVersion() string {
	return minGitVersion.String()
}

func (v gitVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

func (v gitVersion) compare(other gitVersion) int {
	for _, d := range [...]int{v.major - other.major, v.minor - other.minor, v.patch - other.patch} {
		if d != 0 {
			return d
		}
	}
	return 0
}

// parseGitVersionOutput accepts "git version 2.44.0", vendor suffixes such as
// "2.39.3 (Apple Git-146)" or "2.39.3.windows.1", and bare "2.42".
func parseGitVersionOutput(out string) (gitVersion, bool) {
	s := strings.TrimSpace(out)
	s = strings.TrimSpace(strings.TrimPrefix(s, "git version"))
	m := gitVersionRe.FindStringSubmatch(s)
	if m == nil {
		return gitVersion{}, false
	}
	var v gitVersion
	var err error
	if v.major, err = strconv.Atoi(m[1]); err != nil {
		return gitVersion{}, false
	}
	if v.minor, err = strconv.Atoi(m[2]); err != nil {
		return gitVersion{}, false
	}
	if m[3] != "" {
		v.patch, _ = strconv.Atoi(m[3])
	}
	return v, true
}

func validateGitVersionOutput(out string) error {
	got, ok := parseGitVersionOutput(out)
	if !ok {
		return fmt.Errorf("unable to parse git version output: %q", strings.TrimSpace(out))
	}
	if got.compare(minGitVersion) < 0 {
		return fmt.Errorf("git %s is too old; gitporcelain requires git >= %s", got, minGitVersion)
	}
	return nil
}

var (
	gitVersionOnce sync.Once
	gitVersionOut  string
	gitVersionErr  error
)

// GitVersion returns the trimmed `git --version` output, computed once.
func GitVersion() (string, error) {
	gitVersionOnce.Do(func() {
		outBytes, err := exec.Command("git", "--version").CombinedOutput()
		gitVersionOut = strings.TrimSpace(string(outBytes))
		if err != nil {
			if gitVersionOut != "" {
				gitVersionErr = fmt.Errorf("git --version: %v: %s", err, gitVersionOut)
				return
			}
			gitVersionErr = fmt.Errorf("git --version: %w", err)
		}
	})
	return gitVersionOut, gitVersionErr
}

var (
	minGitVersionOnce sync.Once
	minGitVersionErr  error
)

func ensureMinGitVersion() error {
	minGitVersionOnce.Do(func() {
		out, err := GitVersion()
		if err != nil {
			minGitVersionErr = err
			return
		}
		minGitVersionErr = validateGitVersionOutput(out)
	})
	return minGitVersionErr
}

package buildinfo

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var readBuildInfo = debug.ReadBuildInfo

// Version returns the module version or "dev" when unset.
func Version() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return "dev"
	}
	version := info.Main.Version
	if version == "" || version == "(devel)" {
		return "dev"
	}
	return version
}

// Revision returns the short VCS revision stamped by the go tool, with a
// "-dirty" suffix for modified trees.
func Revision() string {
	rev := setting("vcs.revision")
	if rev == "" {
		return ""
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if setting("vcs.modified") == "true" {
		rev += "-dirty"
	}
	return rev
}

// Tags returns the GOFLAGS build tags recorded at compile time.
func Tags() string {
	return setting("-tags")
}

// String combines version, revision and tags for the version command.
func String() string {
	var sb strings.Builder
	sb.WriteString(Version())
	if rev := Revision(); rev != "" {
		fmt.Fprintf(&sb, " (%s)", rev)
	}
	if tags := Tags(); tags != "" {
		fmt.Fprintf(&sb, " (tags: %s)", tags)
	}
	return sb.String()
}

func setting(key string) string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

package backend

import (
	"bufio"
	"regexp"
	"strings"
)

var (
	submoduleHeaderRe = regexp.MustCompile(`^\s*\[submodule\s+"([^"]*)"\s*\]\s*(?:[#;].*)?$`)
	sectionHeaderRe   = regexp.MustCompile(`^\s*\[[^\]]*\]\s*(?:[#;].*)?$`)
	keyValueRe        = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9-]*)\s*=\s*(.*)$`)
)

type pendingSubmodule struct {
	name    string
	path    string
	url     string
	hasPath bool
	hasURL  bool
}

func (p *pendingSubmodule) complete() bool {
	return p != nil && p.hasPath && p.hasURL
}

// ParseGitmodules extracts submodule declarations from the contents of a
// .gitmodules file. Sections without both a path and a url are skipped.
func ParseGitmodules(text string) []Submodule {
	result := []Submodule{}
	var pending *pendingSubmodule
	flush := func() {
		if pending.complete() {
			result = append(result, Submodule{Name: pending.name, Path: pending.path, URL: pending.url})
		}
		pending = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	// A line can never exceed the whole text, so Scan cannot stop with
	// bufio.ErrTooLong; keep this bound if the buffer setup changes.
	scanner.Buffer(make([]byte, 0, 4096), len(text)+1)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if m := submoduleHeaderRe.FindStringSubmatch(line); m != nil {
			flush()
			pending = &pendingSubmodule{name: m[1]}
			continue
		}
		if sectionHeaderRe.MatchString(line) {
			// any other section ends the submodule body
			flush()
			continue
		}
		if pending == nil {
			continue
		}
		m := keyValueRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value := strings.TrimSpace(m[2])
		switch strings.ToLower(m[1]) {
		case "path":
			pending.path = value
			pending.hasPath = true
		case "url":
			pending.url = value
			pending.hasURL = true
		}
	}
	flush()
	return result
}

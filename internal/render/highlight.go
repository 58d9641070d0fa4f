package render

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-isatty"
	darkmode "github.com/thiagokokada/dark-mode-go"
)

const (
	lightStyle = "github"
	darkStyle  = "github-dark"
)

var (
	detectDarkMode = darkmode.IsDarkMode
	isTerminal     = func(f *os.File) bool {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
)

// StyleFor resolves the color and theme preferences to a chroma style name.
// An empty result means output should not be highlighted.
func StyleFor(color, theme string, out *os.File) string {
	switch strings.ToLower(color) {
	case "never":
		return ""
	case "always":
	default:
		if out == nil || !isTerminal(out) {
			return ""
		}
	}
	switch strings.ToLower(theme) {
	case "dark":
		return darkStyle
	case "light":
		return lightStyle
	}
	if detectDarkMode != nil {
		dark, err := detectDarkMode()
		if err == nil {
			if dark {
				return darkStyle
			}
			return lightStyle
		}
		slog.Debug("detect dark-mode", slog.Any("error", err))
	}
	return lightStyle
}

func highlight(w io.Writer, source, lexer, style string) error {
	if styles.Get(style) == styles.Fallback && style != styles.Fallback.Name {
		slog.Debug("unknown chroma style, using fallback", slog.String("style", style))
	}
	return quick.Highlight(w, source, lexer, "terminal256", style)
}

package render

import (
	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff returns a unified diff between two renderings, or an empty
// string when they are identical.
func UnifiedDiff(fromName, toName, from, to string) (string, error) {
	if from == to {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(from),
		B:        difflib.SplitLines(to),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	})
}

package cmd

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/thiagokokada/gitporcelain/internal/git"
	"github.com/thiagokokada/gitporcelain/internal/render"
)

var errBackendsDiffer = errors.New("backends disagree on status")

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Diff the status reported by the cli and native backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			texts := make(map[string]string, 2)
			for _, name := range []string{"cli", "native"} {
				svc, err := a.serviceFor(name)
				if err != nil {
					return err
				}
				entries, err := svc.Status(ctx)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				sorted := slices.Clone(entries)
				slices.SortStableFunc(sorted, func(x, y git.StatusEntry) int {
					return cmp.Compare(x.Path, y.Path)
				})
				texts[name] = render.StatusText(sorted)
			}

			diff, err := render.UnifiedDiff("cli", "native", texts["cli"], texts["native"])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if diff == "" {
				_, err := io.WriteString(out, "backends agree\n")
				return err
			}
			if _, err := io.WriteString(out, diff); err != nil {
				return err
			}
			return errBackendsDiffer
		},
	}
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/thiagokokada/gitporcelain/internal/git"
	"github.com/thiagokokada/gitporcelain/internal/render"
	"github.com/thiagokokada/gitporcelain/internal/watch"
)

var watchRun = watch.Run

func newStatusCmd(a *app) *cobra.Command {
	var (
		watchMode bool
		summary   bool
	)
	cmd := &cobra.Command{
		Use:   "status",
		Short: "List working tree status entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			opts, err := a.renderOptions(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			emit := func(ctx context.Context) error {
				entries, err := svc.Status(ctx)
				if err != nil {
					return err
				}
				if summary {
					_, err := io.WriteString(out, render.SummaryText(git.Summarize(entries)))
					return err
				}
				return render.Status(out, entries, opts)
			}
			if !watchMode {
				return emit(cmd.Context())
			}
			first := true
			return watchRun(cmd.Context(), svc.RepoPath(), a.cfg.WatchDelay, func(ctx context.Context) error {
				if !first && opts.Format == render.FormatText {
					fmt.Fprintf(out, "\n# %s\n", time.Now().Format(time.TimeOnly))
				}
				first = false
				return emit(ctx)
			})
		},
	}
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "print again whenever the repository changes")
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "print a one-line summary instead of entries")
	return cmd
}

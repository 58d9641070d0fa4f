package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thiagokokada/gitporcelain/internal/git"
	"github.com/thiagokokada/gitporcelain/internal/render"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [REF]",
		Short: "Show the hash, parents and message of a commit (default " + git.DefaultRef + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			opts, err := a.renderOptions(cmd)
			if err != nil {
				return err
			}
			ref := git.DefaultRef
			if len(args) == 1 {
				ref = args[0]
			}
			commit, err := svc.Commit(cmd.Context(), ref)
			if err != nil {
				return err
			}
			return render.Commit(cmd.OutOrStdout(), commit, opts)
		},
	}
}

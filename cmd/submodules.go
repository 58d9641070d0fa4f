package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thiagokokada/gitporcelain/internal/render"
)

func newSubmodulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "submodules",
		Short: "List submodules declared in .gitmodules",
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
			modules, err := svc.Submodules(cmd.Context())
			if err != nil {
				return err
			}
			return render.Submodules(cmd.OutOrStdout(), modules, opts)
		},
	}
}

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thiagokokada/gitporcelain/internal/buildinfo"
	gitbackend "github.com/thiagokokada/gitporcelain/internal/git/backend"
)

var gitVersion = gitbackend.GitVersion

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "gitporcelain %s\n", buildinfo.String()); err != nil {
				return err
			}
			v, err := gitVersion()
			if err != nil {
				slog.Debug("git version", slog.Any("error", err))
				v = "git not found"
			}
			_, err = fmt.Fprintf(out, "%s (minimum %s)\n", v, gitbackend.MinGitVersion())
			return err
		},
	}
}

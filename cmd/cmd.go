package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/thiagokokada/gitporcelain/internal/config"
	"github.com/thiagokokada/gitporcelain/internal/git"
	"github.com/thiagokokada/gitporcelain/internal/render"
)

type openFunc func(repoPath string, kind git.BackendKind) (*git.Service, error)

type app struct {
	open openFunc

	repo       string
	backend    string
	format     string
	color      string
	theme      string
	configPath string
	verbose    bool

	cfg config.Config
}

func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, os.Args[1:])
}

func run(ctx context.Context, args []string) error {
	root := newRootCmd(git.Open)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd(open openFunc) *cobra.Command {
	a := &app{open: open}
	root := &cobra.Command{
		Use:           "gitporcelain",
		Short:         "Inspect git status, submodules and commits through the porcelain formats",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.repo, "repo", "C", ".", "path inside the repository")
	flags.StringVar(&a.backend, "backend", "", "git backend: cli or native")
	flags.StringVar(&a.format, "format", "", "output format: text, json, or yaml")
	flags.StringVar(&a.color, "color", "", "highlight output: auto, always, or never")
	flags.StringVar(&a.theme, "theme", "", "highlight theme: auto, light, or dark")
	flags.StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/gitporcelain/config.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(
		newStatusCmd(a),
		newSubmodulesCmd(a),
		newShowCmd(a),
		newCompareCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg, path, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if path != "" {
		slog.Debug("config loaded", slog.String("path", path))
	}
	flags := cmd.Flags()
	override := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	override("backend", &cfg.Backend, a.backend)
	override("format", &cfg.Format, a.format)
	override("color", &cfg.Color, a.color)
	override("theme", &cfg.Theme, a.theme)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	a.cfg = cfg
	return nil
}

func (a *app) service() (*git.Service, error) {
	return a.serviceFor(a.cfg.Backend)
}

func (a *app) serviceFor(name string) (*git.Service, error) {
	kind, ok := git.BackendKindFromString(name)
	if !ok {
		return nil, fmt.Errorf("unknown backend %q", name)
	}
	svc, err := a.open(a.repo, kind)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", a.repo, err)
	}
	return svc, nil
}

func (a *app) renderOptions(cmd *cobra.Command) (render.Options, error) {
	format, err := render.ParseFormat(a.cfg.Format)
	if err != nil {
		return render.Options{}, err
	}
	opts := render.Options{Format: format}
	if format == render.FormatText {
		return opts, nil
	}
	out, _ := cmd.OutOrStdout().(*os.File)
	opts.Style = render.StyleFor(a.cfg.Color, a.cfg.Theme, out)
	return opts, nil
}

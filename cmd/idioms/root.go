package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/idioms/config"
	"github.com/sghaida/idioms/demo"
)

// app carries what the subcommands share: settings, the logger and the
// demo catalog.
type app struct {
	cfg     config.Config
	verbose bool
	all     bool
	runID   string

	logger  *zap.Logger
	catalog *demo.Registry
}

func newApp(cfg config.Config) *app {
	return &app{cfg: cfg, logger: zap.NewNop()}
}

// run executes the CLI with args and flushes the logger whether or not the
// command failed.
func run(cfg config.Config, args []string, stdout, stderr io.Writer) error {
	a := newApp(cfg)
	root := a.rootCmd()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	_ = a.logger.Sync()
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "idioms",
		Short:         "Run small demos of Go language features",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = a.cfg.Normalize()
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.runID = uuid.NewString()
			a.logger = logger.With(zap.String("run_id", a.runID))
			a.catalog = demo.Catalog().WithLogger(a.logger)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "Log level (debug, info, warn, error)")

	root.AddCommand(a.listCmd(), a.describeCmd(), a.runCmd())
	return root
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(out)
			heading := r.NewStyle().Bold(true)
			cell := r.NewStyle().Padding(0, 1)

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(r.NewStyle()).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return cell.Bold(true)
					}
					return cell
				}).
				Headers("NAME", "FEATURE", "DETERMINISTIC")
			for _, info := range a.catalog.Infos() {
				t.Row(info.Name, info.Feature, strconv.FormatBool(info.Deterministic))
			}

			_, err := fmt.Fprintf(out, "%s\n%s\n", heading.Render("Demos"), t.Render())
			return err
		},
	}
}

func (a *app) describeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <demo>",
		Short: "Show what a demo demonstrates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := a.catalog.Get(args[0])
			if !ok {
				return demo.UnknownDemoError{Name: args[0]}
			}
			return writeInfo(cmd.OutOrStdout(), d.Info, a.cfg.Output)
		},
	}
	cmd.Flags().StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "Output format (text, yaml)")
	return cmd
}

func writeInfo(w io.Writer, info demo.Info, format string) error {
	if format == config.OutputYAML {
		b, err := yaml.Marshal(info)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n  feature: %s\n  %s\n  deterministic: %t\n",
		info.Name, info.Feature, info.Summary, info.Deterministic)
	return err
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run one or more demos",
		Long: `Runs the named demos in order, writing their output to stdout.
With more than one demo, each output block starts with a "== name ==" banner.

Use --seed to make demos that pick at random reproducible.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if a.all {
				if len(args) > 0 {
					return fmt.Errorf("--all does not take demo names")
				}
				names = a.catalog.Names()
			}
			if len(names) == 0 {
				return fmt.Errorf("no demo given; try 'idioms list' or --all")
			}

			a.logger.Debug("running demos", zap.Strings("demos", names), zap.Int64("seed", a.cfg.Seed))
			env := demo.SeededEnv(cmd.OutOrStdout(), a.cfg.Seed)
			if err := a.catalog.RunMany(env, names...); err != nil {
				a.logger.Error("run failed", zap.Error(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&a.all, "all", false, "Run every demo")
	cmd.Flags().Int64Var(&a.cfg.Seed, "seed", a.cfg.Seed, "Seed for the random source (0 = from clock)")
	return cmd
}

// newLogger builds a JSON logger writing to w. verbose forces debug level.
func newLogger(w io.Writer, level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core), nil
}

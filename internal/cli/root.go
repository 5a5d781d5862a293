package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/chalicecompass/internal/buildinfo"
	"github.com/dmitrijs2005/chalicecompass/internal/config"
	"github.com/dmitrijs2005/chalicecompass/internal/logging"
	"github.com/dmitrijs2005/chalicecompass/internal/paths"
	"github.com/dmitrijs2005/chalicecompass/internal/seed"
	"github.com/dmitrijs2005/chalicecompass/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runner holds what the commands share: the loaded config and the hooks tests
// replace.
type runner struct {
	cfg        *config.Config
	isTerminal func() bool
	runTUI     func(a *App, logger logging.Logger) error
}

// NewRootCmd builds the compass command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&runner{isTerminal: stdioIsTerminal, runTUI: runTUI})
}

func newRootCmd(r *runner) *cobra.Command {
	root := &cobra.Command{
		Use:          "compass",
		Short:        "Browse Chalice Compass dungeons, equipment and notes",
		Version:      buildinfo.Version(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			r.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.isTerminal() {
				return r.tui(cmd)
			}
			return r.repl(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Start the terminal UI",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return r.tui(cmd) },
		},
		&cobra.Command{
			Use:   "repl",
			Short: "Start the line-oriented shell",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return r.repl(cmd) },
		},
		&cobra.Command{
			Use:   "search [TERM]",
			Short: "List dungeons whose notes contain TERM",
			Args:  cobra.MaximumNArgs(1),
			RunE: r.withApp(func(ctx context.Context, a *App, args []string) error {
				term := ""
				if len(args) > 0 {
					term = args[0]
				}
				return a.Search(ctx, term)
			}),
		},
		newEquipmentCmd(r),
		&cobra.Command{
			Use:   "show GLYPH",
			Short: "Print one dungeon with formatted notes",
			Args:  cobra.ExactArgs(1),
			RunE: r.withApp(func(ctx context.Context, a *App, args []string) error {
				return a.ShowGlyph(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "toggle GLYPH",
			Short: "Flip the status of one dungeon",
			Args:  cobra.ExactArgs(1),
			RunE: r.withApp(func(ctx context.Context, a *App, args []string) error {
				return a.ToggleGlyph(ctx, args[0])
			}),
		},
		newInitCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
			},
		},
	)
	return root
}

func newEquipmentCmd(r *runner) *cobra.Command {
	var like bool
	cmd := &cobra.Command{
		Use:   "equipment NAME",
		Short: "List dungeons that use a piece of equipment",
		Args:  cobra.ExactArgs(1),
		RunE: r.withApp(func(ctx context.Context, a *App, args []string) error {
			if like {
				return a.Like(ctx, args[0])
			}
			return a.Equip(ctx, args[0])
		}),
	}
	cmd.Flags().BoolVar(&like, "like", false, "match equipment names containing NAME")
	return cmd
}

func newInitCmd() *cobra.Command {
	var seedFile string
	cmd := &cobra.Command{
		Use:   "init PATH",
		Short: "Create a database file with the compass schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fixture *seed.Fixture
			if seedFile != "" {
				f, err := seed.DecodeFile(seedFile)
				if err != nil {
					return err
				}
				fixture = f
			}
			if err := seed.CreateDatabase(cmd.Context(), args[0], fixture); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&seedFile, "seed", "", "YAML fixture to load into the new database")
	return cmd
}

// withApp opens the database for a one-shot command and closes it after.
func (r *runner) withApp(fn func(ctx context.Context, a *App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger, closeLog, err := r.newLogger(cmd.ErrOrStderr(), false)
		if err != nil {
			return err
		}
		defer closeLog()

		ctx := cmd.Context()
		a, err := NewApp(ctx, r.cfg, logger, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer a.Close()

		return fn(ctx, a, args)
	}
}

func (r *runner) repl(cmd *cobra.Command) error {
	return r.withApp(func(ctx context.Context, a *App, _ []string) error {
		printlnFn("Welcome to Chalice Compass (type 'help' for commands)")
		if err := a.List(ctx); err != nil {
			return err
		}
		runREPL(ctx, a, a.getStatus, bufio.NewScanner(cmd.InOrStdin()))
		return nil
	})(cmd, nil)
}

func (r *runner) tui(cmd *cobra.Command) error {
	logger, closeLog, err := r.newLogger(nil, true)
	if err != nil {
		return err
	}
	defer closeLog()

	a, err := NewApp(cmd.Context(), r.cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.Close()

	return r.runTUI(a, logger)
}

func runTUI(a *App, logger logging.Logger) error {
	return tui.New(a.browser, a.svc, logger).Run()
}

// newLogger builds the process logger. The terminal UI owns the screen, so
// in that mode logs go to the configured file or the default one under the
// user cache dir.
func (r *runner) newLogger(w io.Writer, screen bool) (logging.Logger, func(), error) {
	closeFn := func() {}

	file := r.cfg.LogFile
	if screen && file == "" {
		def, err := paths.DefaultLogFile()
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		file = def
	}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	l, err := logging.New(logging.Options{Level: r.cfg.LogLevel, Format: r.cfg.LogFormat, Output: w})
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return l, closeFn, nil
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Package cli is the library command line: the interactive view by default,
// plus subcommands that act on the stored collection directly.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/library/internal/config"
	"github.com/idilsaglam/library/internal/tui"
	"github.com/idilsaglam/library/internal/ui"
)

// RootOptions holds global flags for all commands plus the state
// PersistentPreRunE derives from them.
type RootOptions struct {
	ConfigPath string
	Backend    string
	Dir        string
	Theme      string
	LogFile    string
	NoColor    bool
	Verbose    bool

	cfg     config.Config
	logger  *slog.Logger
	closers []io.Closer
}

// Run executes the command line and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	for _, c := range opts.closers {
		_ = c.Close()
	}
	if err != nil {
		ui.Fail(stderr, err.Error())
		var ue *usageError
		if errors.As(err, &ue) && ue.hint != "" {
			ui.Hint(stderr, ue.hint)
		}
	}
	return ExitCode(err)
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "A small book catalog",
		Long: `Keep track of the books you own and whether you have read them.

Without a subcommand the interactive view opens. Every change is saved as
soon as it is made.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.library/config.yaml)")
	pf.StringVar(&opts.Backend, "backend", "", "storage backend (json|sqlite|memory)")
	pf.StringVar(&opts.Dir, "dir", "", "data directory (default: working directory)")
	pf.StringVar(&opts.Theme, "theme", "", "color theme (classic|neon|mono)")
	pf.StringVar(&opts.LogFile, "log-file", "", "append logs to this file")
	pf.BoolVar(&opts.NoColor, "no-color", false, "disable colors")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newAddCommand(opts))
	cmd.AddCommand(newReadCommand(opts))
	cmd.AddCommand(newRemoveCommand(opts))
	cmd.AddCommand(newResetCommand(opts))
	return cmd
}

// setup merges config file, environment and flags (flags win), then applies
// theme, colors and logging.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	path := o.ConfigPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if o.Backend != "" {
		cfg.Backend = strings.ToLower(o.Backend)
	}
	if o.Dir != "" {
		cfg.Dir = o.Dir
	}
	if o.Theme != "" {
		cfg.Theme = o.Theme
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{err: err}
	}
	o.cfg = cfg

	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(false, o.NoColor)

	// The interactive view owns the terminal, so its logs go to a file or nowhere.
	var w io.Writer = cmd.ErrOrStderr()
	if cmd.Parent() == nil {
		w = io.Discard
	}
	if o.LogFile != "" {
		f, err := os.OpenFile(o.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, config.FilePermissions)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		o.closers = append(o.closers, f)
		w = f
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return &usageError{err: err}
	}
	o.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return nil
}

func runTUI(opts *RootOptions) error {
	lib, err := opts.openLibrary()
	if err != nil {
		return err
	}
	return tui.Run(lib, tui.Options{Logger: opts.logger})
}

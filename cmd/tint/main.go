// tint renders inline color and format markup as ANSI escape sequences.
//
// Usage:
//
//	tint render '[b|#F08](hello) world'
//	echo '[red]error[_]: oops' | tint render
//	tint print -c '#95B5FF' '[l](lighter)' '[dd](darker)'
//	name=$(tint prompt '[b](name)? ')
//	tint strip < colored.txt
//	tint codes | tint palette | tint preview
//
// Settings are resolved from flags, TINT_* environment variables and a
// .tint.yaml file, in that order.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/tint/internal/config"
	"github.com/dkoosis/tint/internal/logging"
	"github.com/dkoosis/tint/internal/version"
	"github.com/dkoosis/tint/pkg/markup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// usageError marks errors caused by bad invocation; they exit with status 2.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// app carries the streams and the settings resolved for one invocation.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	defaultColor   string
	brightnessStep int
	noColor        bool
	configPath     string
	verbose        bool
	debug          bool
	sep, end       string

	cfg      *config.ResolvedConfig
	log      logging.Logger
	renderer *markup.Renderer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, log: logging.Logger{Out: stderr}}
	root := a.newRootCmd()
	// cobra falls back to os.Args for a nil slice
	root.SetArgs(append([]string{}, args...))

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	a.log.Errorf("%v", err)
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.CommandPath())
		return 2
	}
	return 1
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tint",
		Short: "Render inline color and format markup for terminals",
		Long: `tint turns bracketed markup into ANSI escape sequences.

Markup examples:
  [bold]text[_]              bold until everything is reset
  [b|red](text)              bold red for "text" only
  [cyan]/(a [b]b) c          cyan stays active after the span
  [#F08|BG:rgb(0,0,0)]x      true color foreground and background
  [l](lighter) [dd](darker)  relative to --default-color

Settings come from flags, then TINT_* environment variables, then .tint.yaml.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		Args:              noArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.defaultColor, "default-color", "c", "", "base color for default-relative keys (hex, rgb(...), or palette name)")
	pf.IntVarP(&a.brightnessStep, "brightness-step", "s", config.DefaultBrightnessStep, "lightness change in percent per l/d modifier")
	pf.BoolVar(&a.noColor, "no-color", false, "drop all escape sequences")
	pf.StringVar(&a.configPath, "config", "", "path to a config file (default: discover .tint.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&a.debug, "debug", "d", false, "enable debug output")

	root.AddCommand(
		a.newRenderCmd(),
		a.newPrintCmd(),
		a.newPromptCmd(),
		a.newStripCmd(),
		a.newCodesCmd(),
		a.newPaletteCmd(),
		a.newPreviewCmd(),
		a.newVersionCmd(),
	)
	return root
}

// setup resolves configuration and builds the renderer shared by all
// subcommands.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	cli := config.CliFlags{
		DefaultColor:      a.defaultColor,
		DefaultColorSet:   flags.Changed("default-color"),
		BrightnessStep:    a.brightnessStep,
		BrightnessStepSet: flags.Changed("brightness-step"),
		NoColor:           a.noColor,
		NoColorSet:        flags.Changed("no-color"),
		Debug:             a.debug,
		DebugSet:          flags.Changed("debug"),
		Separator:         a.sep,
		SeparatorSet:      flags.Changed("sep"),
		End:               a.end,
		EndSet:            flags.Changed("end"),
	}

	cfg, err := config.ResolveConfig(cli, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.Logger{Verbose: a.verbose, Debug: cfg.Debug, NoColor: cfg.NoColor, Out: a.stderr}
	for _, w := range cfg.Warnings {
		a.log.Warnf("%s", w)
	}
	if cfg.Path != "" {
		a.log.Infof("using config file %s", cfg.Path)
	}
	a.log.Debugf("default color %q (%s), brightness step %d (%s), no color %t (%s)",
		cfg.DefaultColor, cfg.DefaultColorSource,
		cfg.BrightnessStep, cfg.BrightnessStepSource,
		cfg.NoColor, cfg.NoColorSource)

	a.renderer, err = markup.New(cfg.MarkupOptions()...)
	return err
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError{fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
	}
	return nil
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return usageError{fmt.Errorf("%s accepts at most %d arg(s), received %d", cmd.CommandPath(), n, len(args))}
		}
		return nil
	}
}

// isTerminal reports whether v is a terminal file.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

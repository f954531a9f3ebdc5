package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkoosis/tint/internal/config"
	"github.com/dkoosis/tint/internal/preview"
	"github.com/dkoosis/tint/pkg/console"
	"github.com/dkoosis/tint/pkg/markup"
)

// inputText joins args with spaces, or reads all of stdin when there are none.
func (a *app) inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func (a *app) newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [text...]",
		Short: "Render markup from the arguments or stdin",
		Long: `Render markup and write the result as is, without adding a newline.

The arguments are joined with single spaces. Without arguments the text is
read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputText(args)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), a.renderer.Render(text))
			return err
		},
	}
}

func (a *app) newStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [text...]",
		Short: "Remove markup, keeping only the text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputText(args)
			if err != nil {
				return err
			}
			plain, err := markup.New(append(a.cfg.MarkupOptions(), markup.WithPlain(true))...)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), plain.Render(text))
			return err
		},
	}
}

func (a *app) newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [values...]",
		Short: "Print values with markup, like a print statement",
		Long: `Join the values with the separator, append the end string, render the
markup and write it to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.console(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			values := make([]any, len(args))
			for i, v := range args {
				values[i] = v
			}
			return c.Print(values...)
		},
	}
	cmd.Flags().StringVar(&a.sep, "sep", config.DefaultSeparator, "string placed between values")
	cmd.Flags().StringVar(&a.end, "end", config.DefaultEnd, "string written after the last value")
	return cmd
}

func (a *app) newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt [text]",
		Short: "Show a rendered prompt and echo the line typed",
		Long: `Render the prompt to stderr, read one line from stdin and write it to
stdout, so the answer can be captured:

  name=$(tint prompt '[b](name)? ')`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.console(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			text := ""
			if len(args) == 1 {
				text = args[0]
			}
			line, err := c.Prompt(text)
			if errors.Is(err, io.EOF) {
				return errors.New("no input")
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
}

func (a *app) console(out io.Writer) (*console.Console, error) {
	return console.New(
		console.WithOutput(out),
		console.WithInput(a.stdin),
		console.WithSeparator(a.cfg.Separator),
		console.WithEnd(a.cfg.End),
		console.WithMarkup(a.cfg.MarkupOptions()...),
		console.WithLogger(a.log),
	)
}

func (a *app) newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [text]",
		Short: "Edit markup interactively with a live preview",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(a.stdin) || !isTerminal(a.stdout) {
				return errors.New("preview needs an interactive terminal")
			}
			initial := ""
			if len(args) == 1 {
				initial = args[0]
			}
			r, err := markup.New(append(a.cfg.MarkupOptions(), markup.WithPlain(false))...)
			if err != nil {
				return err
			}
			return preview.Run(cmd.Context(), r, initial)
		},
	}
}

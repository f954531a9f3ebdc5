package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/dkoosis/tint/pkg/ansi"
	"github.com/dkoosis/tint/pkg/color"
)

// styleRenderer returns a lipgloss renderer for w. Color is dropped when
// disabled; otherwise a terminal gets its detected profile and anything else
// gets true color, matching what the markup renderer emits.
func (a *app) styleRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch {
	case a.cfg.NoColor:
		r.SetColorProfile(termenv.Ascii)
	case isTerminal(w):
		r.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())
	default:
		r.SetColorProfile(termenv.TrueColor)
	}
	return r
}

func (a *app) newCodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the static markup keys and their SGR codes",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			header := a.styleRenderer(out).NewStyle().Bold(true)
			_, err := io.WriteString(out, a.codesTable(header))
			return err
		},
	}
}

func (a *app) codesTable(header lipgloss.Style) string {
	entries := ansi.Entries()
	keyWidth := runewidth.StringWidth("keys")
	for _, e := range entries {
		keyWidth = max(keyWidth, runewidth.StringWidth(strings.Join(e.Keys, ", ")))
	}

	var sb strings.Builder
	sb.WriteString(header.Render(runewidth.FillRight("code", 6) + runewidth.FillRight("keys", keyWidth+2) + "sample"))
	sb.WriteByte('\n')
	for _, e := range entries {
		sample := "sample"
		if !a.cfg.NoColor {
			sample = ansi.Seq(e.Code) + sample + ansi.Reset
		}
		sb.WriteString(runewidth.FillRight(strconv.Itoa(e.Code), 6))
		sb.WriteString(runewidth.FillRight(strings.Join(e.Keys, ", "), keyWidth+2))
		sb.WriteString(sample)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (a *app) newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the named colors accepted by --default-color",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			r := a.styleRenderer(out)
			nameWidth := 0
			for _, name := range color.PaletteNames() {
				nameWidth = max(nameWidth, runewidth.StringWidth(name))
			}
			for _, name := range color.PaletteNames() {
				c, _ := color.Lookup(name)
				swatch := r.NewStyle().Background(lipgloss.Color(c.String())).Render("      ")
				if _, err := fmt.Fprintf(out, "%s %s %s\n", runewidth.FillRight(name, nameWidth), c, swatch); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

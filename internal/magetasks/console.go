package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dkoosis/tint/pkg/console"
	"github.com/dkoosis/tint/pkg/markup"
)

// Output receives all task messages.
var Output io.Writer = os.Stdout

// say renders one line of markup to Output. NO_COLOR turns the markup into
// plain text.
func say(text string) {
	c, err := console.New(
		console.WithOutput(Output),
		console.WithMarkup(markup.WithPlain(os.Getenv("NO_COLOR") != "")),
	)
	if err != nil {
		fmt.Fprintln(Output, markup.Strip(text))
		return
	}
	_ = c.Print(text)
}

// PrintH1Header prints a top-level header with decoration.
func PrintH1Header(title string) {
	width := 80
	rule := strings.Repeat("=", width)
	padding := max((width-len(title))/2, 0)
	say("")
	say("[bright:cyan]" + rule + "[_]")
	say(strings.Repeat(" ", padding) + "[b]" + title + "[_]")
	say("[bright:cyan]" + rule + "[_]")
	say("")
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	say("")
	say("[b|cyan]=== " + title + " ===[_]")
	say("")
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	say("[green]✓[_] " + msg)
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	say("[yellow]![_] " + msg)
}

// PrintError prints an error message.
func PrintError(msg string) {
	say("[b|red]✗[_] " + msg)
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	say("[dim]i[_] " + msg)
}

// Package console prints and prompts with tint markup.
//
// A Console renders markup with its own markup.Renderer and writes to an
// io.Writer. Before the first write it makes sure the terminal interprets
// escape sequences (see EnableANSI).
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dkoosis/tint/pkg/markup"
)

// Logger receives non-fatal problems, such as a terminal that refused to
// enable escape sequence processing.
type Logger interface {
	Warnf(msg string, args ...any)
}

// Console renders markup and writes it to an output stream. Calls are
// serialized, so one Console may be shared between goroutines.
type Console struct {
	mu       sync.Mutex
	out      io.Writer
	in       *bufio.Reader
	sep      string
	end      string
	renderer *markup.Renderer
	log      Logger
	warnOnce sync.Once
}

type settings struct {
	out        io.Writer
	in         io.Reader
	sep        string
	end        string
	markupOpts []markup.Option
	log        Logger
}

// Option configures a Console.
type Option func(*settings)

// WithOutput sets the stream written by Print and Prompt. Default os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithInput sets the stream Prompt reads from. Default os.Stdin.
func WithInput(r io.Reader) Option {
	return func(s *settings) { s.in = r }
}

// WithSeparator sets the string Print places between values. Default " ".
func WithSeparator(sep string) Option {
	return func(s *settings) { s.sep = sep }
}

// WithEnd sets the string Print appends after the last value. Default "\n".
func WithEnd(end string) Option {
	return func(s *settings) { s.end = end }
}

// WithMarkup passes options to the console's markup renderer.
func WithMarkup(opts ...markup.Option) Option {
	return func(s *settings) { s.markupOpts = append(s.markupOpts, opts...) }
}

// WithLogger sets where warnings go. By default they are dropped.
func WithLogger(l Logger) Option {
	return func(s *settings) { s.log = l }
}

// New creates a Console. It fails only when the markup options are invalid.
func New(opts ...Option) (*Console, error) {
	s := settings{out: os.Stdout, in: os.Stdin, sep: " ", end: "\n"}
	for _, opt := range opts {
		opt(&s)
	}
	r, err := markup.New(s.markupOpts...)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	return &Console{
		out:      s.out,
		in:       bufio.NewReader(s.in),
		sep:      s.sep,
		end:      s.end,
		renderer: r,
		log:      s.log,
	}, nil
}

// Renderer returns the markup renderer used by the console.
func (c *Console) Renderer() *markup.Renderer {
	return c.renderer
}

// Print formats each value with fmt.Sprint, joins them with the separator,
// appends the end string, renders the markup and writes the result.
func (c *Console) Print(values ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureANSI()

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	text := strings.Join(parts, c.sep) + c.end
	if _, err := io.WriteString(c.out, c.renderer.Render(text)); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return flush(c.out)
}

// Prompt renders and writes prompt, then reads one line of input. The line is
// returned without its line terminator. Input that ends without a newline is
// returned as is; io.EOF is returned only when nothing was read.
func (c *Console) Prompt(prompt any) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureANSI()

	if _, err := io.WriteString(c.out, c.renderer.Render(fmt.Sprint(prompt))); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	if err := flush(c.out); err != nil {
		return "", err
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnd(line), nil
		}
		return "", err
	}
	return trimLineEnd(line), nil
}

func (c *Console) ensureANSI() {
	if err := enableANSI(); err != nil && c.log != nil {
		c.warnOnce.Do(func() {
			c.log.Warnf("cannot enable ANSI escape sequences: %v", err)
		})
	}
}

func trimLineEnd(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

type flusher interface {
	Flush() error
}

// flush pushes output held in a user-space buffer such as bufio.Writer.
// Unbuffered writers like *os.File need nothing.
func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
	return nil
}

var std = sync.OnceValues(func() (*Console, error) { return New() })

// Print writes values to stdout with the default Console.
func Print(values ...any) error {
	c, err := std()
	if err != nil {
		return err
	}
	return c.Print(values...)
}

// Prompt shows prompt on stdout and reads a line from stdin with the default
// Console.
func Prompt(prompt any) (string, error) {
	c, err := std()
	if err != nil {
		return "", err
	}
	return c.Prompt(prompt)
}

// Package markup compiles tint's inline markup into terminal escape
// sequences.
//
// Markup is written in brackets inside ordinary text:
//
//	[bold]bold text[_] and [#F08|BG:black]pink on black[_]
//
// Several keys can share one group separated by "|". A group directly
// followed by a parenthesized span applies its formats to the span only:
//
//	normal [b](bold) normal again
//
// Putting "\" or "/" between the group and the span keeps the formats active
// after it and renders markup inside the span:
//
//	[cyan]/(cyan and [b]bold) still cyan and bold
//
// Keys are format names (bold, dim, italic, underline, inverse, hidden,
// strikethrough, double-underline and their short forms), the eight standard
// colors with optional "bright:"/"br:" and "BG:" modifiers, HEX colors
// ("#F08", "#FF0088", "0xFF0088") and RGB colors ("rgb(255, 0, 136)").
// Resets are written with a leading underscore ("_bold", "_color", "_bg") and
// "[_]" resets everything.
//
// A renderer with a default color additionally understands "default",
// "BG:default", lighter and darker variants ("l", "ll", "+", "d", "--", ...)
// and the "*" / "*color" resets that fall back to the default color.
//
// Groups containing any key that cannot be resolved are left in the output
// untouched. Markup never spans more than one line.
package markup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dkoosis/tint/pkg/ansi"
	"github.com/dkoosis/tint/pkg/color"
)

// DefaultBrightnessStep is the lightness change, in percent, applied per
// lighten or darken modifier character.
const DefaultBrightnessStep = 20

// ErrInvalidBrightnessStep is returned by New for a negative brightness step.
var ErrInvalidBrightnessStep = errors.New("invalid brightness step")

// Renderer compiles markup. It is immutable and safe for concurrent use.
type Renderer struct {
	ctx   *defaultContext
	plain bool
}

type settings struct {
	defaultColor *color.RGB
	colorErr     error
	step         int
	plain        bool
}

// Option configures a Renderer.
type Option func(*settings)

// WithDefaultColor enables the default-color keys with c as the base color.
func WithDefaultColor(c color.RGB) Option {
	return func(s *settings) {
		s.defaultColor = &c
		s.colorErr = nil
	}
}

// WithDefaultColorString parses v with color.ParseValue and uses it as the
// default color. An empty string leaves the default color unset. A value that
// does not parse makes New fail.
func WithDefaultColorString(v string) Option {
	return func(s *settings) {
		if strings.TrimSpace(v) == "" {
			s.defaultColor, s.colorErr = nil, nil
			return
		}
		c, err := color.ParseValue(v)
		if err != nil {
			s.defaultColor, s.colorErr = nil, fmt.Errorf("default color: %w", err)
			return
		}
		s.defaultColor, s.colorErr = &c, nil
	}
}

// WithBrightnessStep sets the lightness change per modifier character in percent.
func WithBrightnessStep(step int) Option {
	return func(s *settings) { s.step = step }
}

// WithPlain makes the renderer drop every escape sequence, leaving only the
// text the markup would have formatted.
func WithPlain(plain bool) Option {
	return func(s *settings) { s.plain = plain }
}

// New builds a Renderer from opts.
func New(opts ...Option) (*Renderer, error) {
	s := settings{step: DefaultBrightnessStep}
	for _, opt := range opts {
		opt(&s)
	}
	if s.colorErr != nil {
		return nil, s.colorErr
	}
	if s.step < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBrightnessStep, s.step)
	}
	r := &Renderer{plain: s.plain}
	if s.defaultColor != nil {
		r.ctx = &defaultContext{base: *s.defaultColor, step: s.step}
	}
	return r, nil
}

var (
	basicRenderer = &Renderer{}
	plainRenderer = &Renderer{plain: true}
)

// Render compiles text without a default color.
func Render(text string) string {
	return basicRenderer.Render(text)
}

// Strip removes all resolvable markup from text without emitting any escape
// sequences. Unresolvable groups stay as they are.
func Strip(text string) string {
	return plainRenderer.Render(text)
}

// Render compiles text. With a default color configured the result starts
// with the default foreground color.
func (r *Renderer) Render(text string) string {
	if r.ctx == nil {
		return r.renderLines(text)
	}
	out := r.renderLines(expandShorthands(text))
	if r.plain {
		return out
	}
	b := r.ctx.base
	return ansi.FgRGB(b.R, b.G, b.B) + out
}

// Resolve resolves a single key the way it would be resolved inside a group.
func (r *Renderer) Resolve(key string) ResolvedKey {
	return resolveKey(key, r.ctx)
}

// DefaultColor returns the configured default color.
func (r *Renderer) DefaultColor() (color.RGB, bool) {
	if r.ctx == nil {
		return color.RGB{}, false
	}
	return r.ctx.base, true
}

// renderLines compiles each line of text on its own.
func (r *Renderer) renderLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = r.renderLine(line)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderLine(line string) string {
	if !strings.Contains(line, "[") {
		return line
	}
	var sb strings.Builder
	sb.Grow(len(line))
	for seg := range Tokenize(line) {
		if seg.Kind == GroupSegment {
			sb.WriteString(r.substitute(seg.Group))
			continue
		}
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

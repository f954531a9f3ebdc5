package markup

import (
	"strings"
	"testing"

	"github.com/dkoosis/tint/pkg/ansi"
	"github.com/dkoosis/tint/pkg/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	bold      = "\x1b[1m"
	boldOff   = "\x1b[22m"
	red       = "\x1b[31m"
	colorOff  = "\x1b[39m"
	bgOff     = "\x1b[49m"
	resetAll  = "\x1b[0m"
	italic    = "\x1b[3m"
	italicOff = "\x1b[23m"
)

var gray = color.RGB{R: 100, G: 100, B: 100}

func fg(c color.RGB) string { return ansi.FgRGB(c.R, c.G, c.B) }
func bg(c color.RGB) string { return ansi.BgRGB(c.R, c.G, c.B) }

func newDefaultRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(append([]Option{WithDefaultColor(gray)}, opts...)...)
	require.NoError(t, err)
	return r
}

func TestRender_TextWithoutBracketsIsUnchanged(t *testing.T) {
	for _, s := range []string{"", "plain", "a (b) c", "multi\nline\n", "ünïcödé ✓", "] closing only"} {
		assert.Equal(t, s, Render(s))
	}
}

func TestRender_BoldThenResetAll(t *testing.T) {
	assert.Equal(t, bold+"x"+resetAll, Render("[bold]x[_]"))
	assert.Equal(t, bold+"x"+resetAll, Render("[BOLD]x[_]"))
}

func TestRender_GroupedKeysMatchSeparateGroups(t *testing.T) {
	assert.Equal(t, Render("[bold][red]x[_]"), Render("[bold|red]x[_]"))
	assert.Equal(t, bold+red+"x"+resetAll, Render("[bold|red]x[_]"))
	assert.Equal(t, bold+red+"x", Render("[ bold | | red ]x"))
}

func TestRender_UnresolvableGroupStaysLiteral(t *testing.T) {
	assert.Equal(t, "[notarealkey]x", Render("[notarealkey]x"))
	assert.Equal(t, "[bold|nope]x", Render("[bold|nope]x"), "groups apply all keys or none")
	assert.Equal(t, "[nope](x [b]y)", Render("[nope](x [b]y)"))
}

func TestRender_EmptyGroupStaysLiteral(t *testing.T) {
	for _, s := range []string{"[]", "[ ]", "[ | ]", "[](x)", "a [ ] b"} {
		assert.Equal(t, s, Render(s))
	}
}

func TestRender_AutoResetScope(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"format", "[bold](y)z", bold + "y" + boldOff + "z"},
		{"several formats", "[b|i](y)", bold + italic + "y" + boldOff + italicOff},
		{"named color", "[red](y)", red + "y" + colorOff},
		{"background color", "[BG:red](y)", "\x1b[41m" + "y" + bgOff},
		{"bright color", "[br:red](y)", "\x1b[91m" + "y" + bgOff},
		{"hex color", "[#F08](y)", ansi.FgRGB(255, 0, 136) + "y" + colorOff},
		{"rgb color", "[rgb(1,2,3)](y)", ansi.FgRGB(1, 2, 3) + "y" + colorOff},
		{"background hex", "[bg:#F08](y)", ansi.BgRGB(255, 0, 136) + "y" + bgOff},
		{"format without reset", "[_](y)", resetAll + "y"},
		{"span text verbatim", "[b]( x )", bold + " x " + boldOff},
		{"span not reprocessed", "[b](x [red]y)", bold + "x [red]y" + boldOff},
		{"empty span is dropped", "[b]()z", bold + "z"},
		{"escaped empty span is dropped", "[b]/()z", bold + "z"},
		{"blank span is kept", "[b]( )z", bold + " " + boldOff + "z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.in))
		})
	}
}

func TestRender_EscapedSpanKeepsFormatsAndRendersInside(t *testing.T) {
	assert.Equal(t, bold+"(y "+red+"q)", Render("[bold]/(y [red]q)"))
	assert.Equal(t, bold+"(x)", Render(`[bold]\(x)`))
	assert.Equal(t, bold+"(x)z", Render("[bold] / (x)z"))
}

func TestRender_EscapeWithoutSpanIsLiteral(t *testing.T) {
	assert.Equal(t, bold+"/x", Render("[b]/x"))
}

func TestRender_MalformedNestingIsLiteral(t *testing.T) {
	assert.Equal(t, "[b", Render("[b"))
	assert.Equal(t, "x [b [red]y", Render("x [b [red]y"))
	assert.Equal(t, bold+"(x [red]y", Render("[b](x [red]y"))
}

func TestRender_QuotedParenInSpan(t *testing.T) {
	assert.Equal(t, bold+`say ")" ok`+boldOff+"z", Render(`[b](say ")" ok)z`))
	assert.Equal(t, bold+"don't"+boldOff, Render("[b](don't)"))
}

func TestRender_LinesAreIndependent(t *testing.T) {
	assert.Equal(t, bold+"(x\ny", Render("[b](x\ny)"))
	assert.Equal(t, bold+"x\n"+resetAll, Render("[b]x\n[_]"))
	assert.Equal(t, "[b\n"+red+"]", Render("[b\n[red]]"))
}

func TestRender_TrueColorLiterals(t *testing.T) {
	pink := ansi.FgRGB(255, 0, 136)
	assert.Equal(t, pink+"x", Render("[#F08]x"))
	assert.Equal(t, pink+"x", Render("[#ff0088]x"))
	assert.Equal(t, pink+"x", Render("[F08]x"))
	assert.Equal(t, ansi.BgRGB(255, 0, 136)+"x", Render("[BG:0xFF0088]x"))
	assert.Equal(t, pink+"x", Render("[ rgb( 255 , 0 , 136 ) ]x"))
	assert.Equal(t, ansi.BgRGB(1, 2, 3)+"x", Render("[BG:rgba(1,2,3)]x"))
	assert.Equal(t, "[#12345]x", Render("[#12345]x"))
	assert.Equal(t, "[rgb(256,0,0)]x", Render("[rgb(256,0,0)]x"))
	assert.Equal(t, "[bright:#F08]x", Render("[bright:#F08]x"))
}

func TestResolve_NormalizationIsOrderInsensitive(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	for _, key := range []string{"BG:bright:red", "bright:BG:red", "br:bg:red", " Bg : BR : Red "} {
		rk := r.Resolve(key)
		assert.Equal(t, StaticCode, rk.Kind, key)
		assert.Equal(t, 101, rk.Code, key)
		assert.Equal(t, key, rk.Raw)
	}
}

func TestResolve_UnresolvedKeepsRawText(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	got := r.Resolve("Not A Key")
	assert.Equal(t, Unresolved, got.Kind)
	assert.Equal(t, "Not A Key", got.Raw)
	assert.Empty(t, got.Sequence())
	assert.Equal(t, "unresolved", got.Kind.String())
}

func TestResolve_DefaultModifiers(t *testing.T) {
	r := newDefaultRenderer(t)

	l := r.Resolve("l")
	ll := r.Resolve("ll")
	d := r.Resolve("d")
	dd := r.Resolve("dd")
	for _, rk := range []ResolvedKey{l, ll, d, dd} {
		require.Equal(t, DefaultRelative, rk.Kind, rk.Raw)
		assert.False(t, rk.Background)
	}

	assert.Greater(t, l.Color.R, gray.R, "l lightens")
	assert.Greater(t, ll.Color.R, l.Color.R, "ll lightens further")
	assert.Less(t, d.Color.R, gray.R, "d darkens")
	assert.Less(t, dd.Color.R, d.Color.R, "dd darkens further")

	assert.Equal(t, l.Color, r.Resolve("+").Color)
	assert.Equal(t, dd.Color, r.Resolve("--").Color)
	assert.Equal(t, color.AdjustLightness(gray, 0.4), ll.Color)

	bgl := r.Resolve("BG:l")
	assert.True(t, bgl.Background)
	assert.Equal(t, l.Color, bgl.Color)
	assert.Equal(t, bg(l.Color), bgl.Sequence())
}

func TestResolve_BrightnessStepScalesModifiers(t *testing.T) {
	r := newDefaultRenderer(t, WithBrightnessStep(5))
	assert.Equal(t, color.AdjustLightness(gray, 0.2), r.Resolve("llll").Color)
	assert.Equal(t, gray, newDefaultRenderer(t, WithBrightnessStep(0)).Resolve("ll").Color)
}

func TestResolve_MixedModifierFallsThrough(t *testing.T) {
	r := newDefaultRenderer(t)
	assert.Equal(t, Unresolved, r.Resolve("ld").Kind)
	assert.Equal(t, Unresolved, r.Resolve("+-").Kind)
}

func TestResolve_ModifierKeysNeedDefaultColor(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Equal(t, StaticCode, r.Resolve("d").Kind, "without a default color d is dim")
	assert.Equal(t, 2, r.Resolve("d").Code)
	assert.Equal(t, Unresolved, r.Resolve("ll").Kind)
	assert.Equal(t, Unresolved, r.Resolve("default").Kind)
}

func TestResolve_DefaultKeys(t *testing.T) {
	r := newDefaultRenderer(t)
	assert.Equal(t, fg(gray), r.Resolve("default").Sequence())
	assert.Equal(t, bg(gray), r.Resolve("BG: Default").Sequence())
	assert.Equal(t, StaticCode, r.Resolve("dim").Kind)
}

func TestRenderer_DefaultColorPrefix(t *testing.T) {
	r := newDefaultRenderer(t)
	assert.Equal(t, fg(gray)+bold+"x", r.Render("[b]x"))
	assert.Equal(t, fg(gray)+"plain", r.Render("plain"))

	lighter := color.AdjustLightness(gray, 0.2)
	assert.Equal(t, fg(gray)+bold+"(x "+fg(lighter)+"y)", r.Render("[b]/(x [l]y)"),
		"nested spans share the default color without repeating the prefix")
}

func TestRenderer_ResetShorthands(t *testing.T) {
	r := newDefaultRenderer(t)
	assert.Equal(t, fg(gray)+resetAll+fg(gray)+"x", r.Render("[*]x"))
	assert.Equal(t, fg(gray)+colorOff+fg(gray)+"x", r.Render("[*color]x"))
	assert.Equal(t, fg(gray)+resetAll+bg(gray)+"x", r.Render("[BG:*]x"))
	assert.Equal(t, fg(gray)+bgOff+bg(gray)+"x", r.Render("[bg:*color]x"))
	assert.Equal(t, fg(gray)+bold+resetAll+fg(gray)+"x", r.Render("[b|*]x"))

	assert.Equal(t, "[*]x", Render("[*]x"), "shorthands need a default color")
}

func TestRenderer_ShorthandRewriteShowsInLiteralText(t *testing.T) {
	r := newDefaultRenderer(t)
	assert.Equal(t, fg(gray)+"[_|default|nope]x", r.Render("[*|nope]x"), "unresolved group keeps the rewritten keys")
	assert.Equal(t, fg(gray)+bold+"use [_|default] here"+boldOff, r.Render("[b](use [*] here)"))
}

func TestRenderer_DefaultKeysInAutoResetSpan(t *testing.T) {
	r := newDefaultRenderer(t)
	lighter := color.AdjustLightness(gray, 0.2)
	assert.Equal(t, fg(gray)+fg(lighter)+"x", r.Render("[l](x)"), "default-relative keys have no reset")
}

func TestStrip_DropsEscapes(t *testing.T) {
	assert.Equal(t, "x yz [nope]", Strip("[bold]x[_] [red](y)z [nope]"))
	assert.Equal(t, "(a b)", Strip("[b]/(a [red]b)"))
	assert.NotContains(t, Strip("[b|#F08|BG:rgb(1,2,3)]x"), "\x1b")
}

func TestPlainRendererWithDefaultColor(t *testing.T) {
	r := newDefaultRenderer(t, WithPlain(true))
	out := r.Render("[*][l]x[default](y)")
	assert.Equal(t, "xy", out)
	assert.False(t, strings.Contains(out, "\x1b"))
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	_, err := New(WithBrightnessStep(-1))
	assert.ErrorIs(t, err, ErrInvalidBrightnessStep)

	_, err = New(WithDefaultColorString("not-a-color"))
	assert.ErrorIs(t, err, color.ErrInvalidColor)

	r, err := New(WithDefaultColorString(""))
	require.NoError(t, err)
	_, ok := r.DefaultColor()
	assert.False(t, ok)

	r, err = New(WithDefaultColorString("#646464"))
	require.NoError(t, err)
	c, ok := r.DefaultColor()
	require.True(t, ok)
	assert.Equal(t, gray, c)
}

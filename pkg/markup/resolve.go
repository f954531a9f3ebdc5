package markup

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dkoosis/tint/internal/textutil"
	"github.com/dkoosis/tint/pkg/ansi"
	"github.com/dkoosis/tint/pkg/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeyKind tags the outcome of resolving one directive key.
type KeyKind int

const (
	// Unresolved keys leave their whole group untouched.
	Unresolved KeyKind = iota
	// StaticCode keys map to an entry of the static code table.
	StaticCode
	// TrueColor keys are RGB or HEX literals.
	TrueColor
	// DefaultRelative keys derive from the renderer's default color.
	DefaultRelative
)

func (k KeyKind) String() string {
	switch k {
	case StaticCode:
		return "static"
	case TrueColor:
		return "truecolor"
	case DefaultRelative:
		return "default"
	default:
		return "unresolved"
	}
}

// ResolvedKey is the result of resolving one raw key.
type ResolvedKey struct {
	Kind       KeyKind
	Code       int
	Color      color.RGB
	Background bool
	// Raw is the key exactly as written in the markup.
	Raw string
}

// Resolved reports whether the key produced an escape sequence.
func (k ResolvedKey) Resolved() bool {
	return k.Kind != Unresolved
}

// Sequence returns the escape sequence for the key, or "" when unresolved.
func (k ResolvedKey) Sequence() string {
	switch k.Kind {
	case StaticCode:
		return ansi.Seq(k.Code)
	case TrueColor, DefaultRelative:
		if k.Background {
			return ansi.BgRGB(k.Color.R, k.Color.G, k.Color.B)
		}
		return ansi.FgRGB(k.Color.R, k.Color.G, k.Color.B)
	default:
		return ""
	}
}

// defaultContext is the caller's default color and lighten/darken step,
// fixed for the duration of one Render call.
type defaultContext struct {
	base color.RGB
	step int
}

const (
	bgToken     = "bg"
	brightToken = "bright"
)

var (
	rgbLiteral = regexp.MustCompile(`^(bg:)?(?:rgba?)?\(?(\d{1,3}),(\d{1,3}),(\d{1,3})\)?$`)
	hexLiteral = regexp.MustCompile(`^(bg:)?((?:#|0x)?(?:[0-9a-f]{6}|[0-9a-f]{3}))$`)
	modifier   = regexp.MustCompile(`^(bg:)?([+\-ld]+)$`)
)

const (
	lightenChars = "+l"
	darkenChars  = "-d"
)

// compact drops all whitespace and lowercases s.
func compact(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return cases.Lower(language.Und).String(s)
}

// normalizeKey compacts a key and reorders its ":" tokens so that "bg" comes
// first and "bright" (or its alias "br") second.
func normalizeKey(raw string) string {
	parts := strings.Split(compact(raw), ":")
	var bg, bright bool
	var rest []string
	for _, p := range parts {
		switch p {
		case bgToken:
			bg = true
		case brightToken, "br":
			bright = true
		default:
			rest = append(rest, p)
		}
	}
	var sb strings.Builder
	if bg {
		sb.WriteString(bgToken + ":")
	}
	if bright {
		sb.WriteString(brightToken + ":")
	}
	sb.WriteString(strings.Join(rest, ":"))
	return sb.String()
}

// keyMatcher tries to resolve a normalized key. ctx is nil when no default
// color is configured.
type keyMatcher func(key string, ctx *defaultContext) (ResolvedKey, bool)

// matchers run in order; the first success wins.
var matchers = []keyMatcher{
	matchDefault,
	matchModifier,
	matchStatic,
	matchRGB,
	matchHex,
}

func resolveKey(raw string, ctx *defaultContext) ResolvedKey {
	key := normalizeKey(raw)
	for _, m := range matchers {
		if rk, ok := m(key, ctx); ok {
			rk.Raw = raw
			return rk
		}
	}
	return ResolvedKey{Kind: Unresolved, Raw: raw}
}

func matchDefault(key string, ctx *defaultContext) (ResolvedKey, bool) {
	if ctx == nil {
		return ResolvedKey{}, false
	}
	switch key {
	case "default":
		return ResolvedKey{Kind: DefaultRelative, Color: ctx.base}, true
	case bgToken + ":default":
		return ResolvedKey{Kind: DefaultRelative, Color: ctx.base, Background: true}, true
	}
	return ResolvedKey{}, false
}

// matchModifier handles "l", "ll", "+", "--", "bg:dd" and friends. The
// modifier block has to repeat a single character; mixed blocks such as "ld"
// fall through to the other matchers.
func matchModifier(key string, ctx *defaultContext) (ResolvedKey, bool) {
	if ctx == nil {
		return ResolvedKey{}, false
	}
	m := modifier.FindStringSubmatch(key)
	if m == nil {
		return ResolvedKey{}, false
	}
	bg, block := m[1] != "", m[2]
	step := float64(ctx.step) / 100

	for _, ch := range lightenChars {
		if n := textutil.SingleCharRepeats(block, ch); n > 0 {
			c := color.AdjustLightness(ctx.base, step*float64(n))
			return ResolvedKey{Kind: DefaultRelative, Color: c, Background: bg}, true
		}
	}
	for _, ch := range darkenChars {
		if n := textutil.SingleCharRepeats(block, ch); n > 0 {
			c := color.AdjustLightness(ctx.base, -step*float64(n))
			return ResolvedKey{Kind: DefaultRelative, Color: c, Background: bg}, true
		}
	}
	return ResolvedKey{}, false
}

func matchStatic(key string, _ *defaultContext) (ResolvedKey, bool) {
	code, ok := ansi.Lookup(key)
	if !ok {
		return ResolvedKey{}, false
	}
	return ResolvedKey{Kind: StaticCode, Code: code}, true
}

func matchRGB(key string, _ *defaultContext) (ResolvedKey, bool) {
	c, bg, ok := parseRGBLiteral(key)
	if !ok {
		return ResolvedKey{}, false
	}
	return ResolvedKey{Kind: TrueColor, Color: c, Background: bg}, true
}

func matchHex(key string, _ *defaultContext) (ResolvedKey, bool) {
	c, bg, ok := parseHexLiteral(key)
	if !ok {
		return ResolvedKey{}, false
	}
	return ResolvedKey{Kind: TrueColor, Color: c, Background: bg}, true
}

func parseRGBLiteral(key string) (c color.RGB, bg bool, ok bool) {
	m := rgbLiteral.FindStringSubmatch(key)
	if m == nil {
		return color.RGB{}, false, false
	}
	var ch [3]int
	for i := range ch {
		ch[i], _ = strconv.Atoi(m[i+2])
	}
	if !color.IsValidRGB(ch[0], ch[1], ch[2]) {
		return color.RGB{}, false, false
	}
	return color.RGB{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2])}, m[1] != "", true
}

func parseHexLiteral(key string) (c color.RGB, bg bool, ok bool) {
	m := hexLiteral.FindStringSubmatch(key)
	if m == nil {
		return color.RGB{}, false, false
	}
	c, err := color.HexToRGB(m[2])
	if err != nil {
		return color.RGB{}, false, false
	}
	return c, m[1] != "", true
}

// isColorLiteral reports whether s is a foreground color: one of the eight
// standard names, an RGB literal or a HEX literal.
func isColorLiteral(s string) bool {
	k := compact(s)
	if ansi.IsColorName(k) || color.IsValidHex(k) {
		return true
	}
	_, bg, ok := parseRGBLiteral(k)
	return ok && !bg
}

package markup

import (
	"regexp"
	"strings"
)

// substitute replaces one directive group with its escape sequences. A group
// with no keys, or with any key that does not resolve, is returned verbatim.
func (r *Renderer) substitute(g DirectiveGroup) string {
	keys := g.Keys()
	if len(keys) == 0 {
		return g.Source
	}

	var formats strings.Builder
	for _, k := range keys {
		rk := resolveKey(k, r.ctx)
		if !rk.Resolved() {
			return g.Source
		}
		formats.WriteString(r.emit(rk))
	}

	switch {
	case g.HasSpan && g.Span == "":
		// "()" is consumed along with any escape and resets nothing.
		return formats.String()
	case g.HasSpan && g.Escaped:
		return formats.String() + "(" + r.renderLines(g.Span) + ")"
	case g.HasSpan:
		return formats.String() + g.Span + r.resets(keys)
	default:
		return formats.String()
	}
}

// resets builds the sequences that undo keys after an auto-reset span.
// Formats without a matching reset are skipped.
func (r *Renderer) resets(keys []string) string {
	var sb strings.Builder
	for _, k := range keys {
		rk := resolveKey(resetKeyFor(k), r.ctx)
		if rk.Resolved() {
			sb.WriteString(r.emit(rk))
		}
	}
	return sb.String()
}

// resetKeyFor picks the reset key matching an applied key: "_color" for
// foreground colors, "_bg" for background or bright colors, and "_<key>" for
// everything else.
func resetKeyFor(key string) string {
	if isColorLiteral(key) {
		return "_color"
	}
	tokens := strings.Split(compact(key), ":")
	if len(tokens) <= 3 && hasBackgroundToken(tokens) {
		for i := range key {
			if isColorLiteral(key[i:]) {
				return "_bg"
			}
		}
	}
	return "_" + key
}

func hasBackgroundToken(tokens []string) bool {
	for _, t := range tokens {
		switch t {
		case bgToken, brightToken, "br":
			return true
		}
	}
	return false
}

func (r *Renderer) emit(rk ResolvedKey) string {
	if r.plain {
		return ""
	}
	return rk.Sequence()
}

// shorthandGroup matches single-level groups for the "*" and "*color"
// rewrites.
var shorthandGroup = regexp.MustCompile(`\[([^\[\]\n]*)\]`)

// expandShorthands rewrites the default-color shorthands inside every group:
// "*" becomes "_|default" and "*color" becomes "_color|default", with "bg:"
// variants resetting and recoloring the background instead.
func expandShorthands(text string) string {
	return shorthandGroup.ReplaceAllStringFunc(text, func(group string) string {
		body := group[1 : len(group)-1]
		keys := strings.Split(body, "|")
		changed := false
		for i, k := range keys {
			if repl, ok := shorthand(k); ok {
				keys[i] = repl
				changed = true
			}
		}
		if !changed {
			return group
		}
		return "[" + strings.Join(keys, "|") + "]"
	})
}

func shorthand(key string) (string, bool) {
	switch normalizeKey(key) {
	case "*":
		return "_|default", true
	case bgToken + ":*":
		return "_|bg:default", true
	case "*color":
		return "_color|default", true
	case bgToken + ":*color":
		return "_bg|bg:default", true
	}
	return "", false
}

package markup

import (
	"iter"
	"strings"
)

// SegmentKind distinguishes literal text from directive groups.
type SegmentKind int

const (
	// TextSegment is literal text copied to the output as is.
	TextSegment SegmentKind = iota
	// GroupSegment is a bracketed directive group.
	GroupSegment
)

// DirectiveGroup is one bracketed markup unit such as "[bold|red]" together
// with the auto-reset span that may follow it.
type DirectiveGroup struct {
	// Source is the exact text the group was scanned from, span included.
	Source string
	// Body is the text between the brackets.
	Body string
	// Escaped is set when "\" or "/" sits between the group and its span.
	Escaped bool
	// HasSpan is set when a parenthesized span follows the group.
	HasSpan bool
	// Span is the text between the span's parentheses.
	Span string
}

// Keys splits the body on "|" and returns the trimmed, non-empty keys.
func (g DirectiveGroup) Keys() []string {
	var keys []string
	for _, k := range strings.Split(g.Body, "|") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Segment is one token of a scanned line.
type Segment struct {
	Kind  SegmentKind
	Text  string
	Group DirectiveGroup
}

// Tokenize scans a single line into literal text and directive groups.
// An unmatched "[" turns the rest of the line into literal text. A group
// followed by an unmatched "(" is emitted without a span and the rest of the
// line is literal text.
func Tokenize(line string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		pending := 0
		i := 0
		for i < len(line) {
			if line[i] != '[' {
				i++
				continue
			}
			closing := matchClosing(line, i, '[', ']')
			if closing < 0 {
				break
			}

			g := DirectiveGroup{Body: line[i+1 : closing]}
			end := closing + 1
			restLiteral := false

			k := skipSpace(line, end)
			escaped := false
			if k < len(line) && (line[k] == '\\' || line[k] == '/') {
				escaped = true
				k = skipSpace(line, k+1)
			}
			if k < len(line) && line[k] == '(' {
				if pc := matchClosing(line, k, '(', ')'); pc >= 0 {
					g.HasSpan = true
					g.Escaped = escaped
					g.Span = line[k+1 : pc]
					end = pc + 1
				} else {
					restLiteral = true
				}
			}
			g.Source = line[i:end]

			if pending < i {
				if !yield(Segment{Kind: TextSegment, Text: line[pending:i]}) {
					return
				}
			}
			if !yield(Segment{Kind: GroupSegment, Text: g.Source, Group: g}) {
				return
			}
			pending, i = end, end
			if restLiteral {
				break
			}
		}
		if pending < len(line) {
			yield(Segment{Kind: TextSegment, Text: line[pending:]})
		}
	}
}

// matchClosing returns the index of the bracket closing the one at open, or
// -1. Nested pairs of the same kind are counted and anything inside a quoted
// substring is skipped.
func matchClosing(s string, open int, o, c byte) int {
	depth := 0
	for j := open; j < len(s); j++ {
		switch s[j] {
		case '"', '\'':
			if q := closingQuote(s, j); q >= 0 {
				j = q
			}
		case o:
			depth++
		case c:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// closingQuote returns the index of the quote closing the one at start, or -1
// when the quote is never closed. A backslash escapes the next byte.
func closingQuote(s string, start int) int {
	q := s[start]
	for k := start + 1; k < len(s); k++ {
		switch s[k] {
		case '\\':
			k++
		case q:
			return k
		}
	}
	return -1
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\r' || s[i] == '\f' || s[i] == '\v') {
		i++
	}
	return i
}

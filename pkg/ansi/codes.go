package ansi

import "sort"

// Entry is one row of the static code table: a set of equivalent key
// spellings and the SGR code they map to.
type Entry struct {
	Keys []string
	Code int
}

// Reset codes referenced by the markup compiler's auto-reset logic.
const (
	CodeResetAll        = 0
	CodeResetColor      = 39
	CodeResetBackground = 49
)

// ColorNames are the eight standard terminal color names.
var ColorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// entries is the ordered table. Keys are stored in normalized form:
// lowercase, "bg" first, "bright" second.
var entries = []Entry{
	// resets
	{Keys: []string{"_"}, Code: CodeResetAll},
	{Keys: []string{"_bold", "_b"}, Code: 22},
	{Keys: []string{"_dim", "_d"}, Code: 22},
	{Keys: []string{"_italic", "_i"}, Code: 23},
	{Keys: []string{"_underline", "_u"}, Code: 24},
	{Keys: []string{"_double-underline", "_du"}, Code: 24},
	{Keys: []string{"_inverse", "_invert", "_in"}, Code: 27},
	{Keys: []string{"_hidden", "_hide", "_h"}, Code: 28},
	{Keys: []string{"_strikethrough", "_s"}, Code: 29},
	{Keys: []string{"_color", "_c"}, Code: CodeResetColor},
	{Keys: []string{"_background", "_bg"}, Code: CodeResetBackground},

	// text formats
	{Keys: []string{"bold", "b"}, Code: 1},
	{Keys: []string{"dim", "d"}, Code: 2},
	{Keys: []string{"italic", "i"}, Code: 3},
	{Keys: []string{"underline", "u"}, Code: 4},
	{Keys: []string{"inverse", "invert", "in"}, Code: 7},
	{Keys: []string{"hidden", "hide", "h"}, Code: 8},
	{Keys: []string{"strikethrough", "s"}, Code: 9},
	{Keys: []string{"double-underline", "du"}, Code: 21},
}

// table maps every normalized key spelling to its code. Built once in init
// and never written afterwards.
var table map[string]int

func init() {
	for i, name := range ColorNames {
		entries = append(entries,
			Entry{Keys: []string{name}, Code: 30 + i},
			Entry{Keys: []string{"bright:" + name}, Code: 90 + i},
			Entry{Keys: []string{"bg:" + name}, Code: 40 + i},
			Entry{Keys: []string{"bg:bright:" + name}, Code: 100 + i},
		)
	}
	table = make(map[string]int, len(entries)*2)
	for _, e := range entries {
		for _, k := range e.Keys {
			table[k] = e.Code
		}
	}
}

// Lookup returns the code for a normalized key.
func Lookup(key string) (int, bool) {
	code, ok := table[key]
	return code, ok
}

// IsColorName reports whether name is one of the eight standard color names.
func IsColorName(name string) bool {
	for _, n := range ColorNames {
		if n == name {
			return true
		}
	}
	return false
}

// Entries returns a copy of the table rows sorted by code, then first key.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{Keys: append([]string(nil), e.Keys...), Code: e.Code}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].Keys[0] < out[j].Keys[0]
	})
	return out
}

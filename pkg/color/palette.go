package color

import (
	"sort"
	"strings"
)

// TextColor is the palette's suggested default text color.
const TextColor = "#95B5FF"

var palette = map[string]string{
	"text":      TextColor,
	"white":     "#F1F2FF",
	"lightgray": "#B6B7C0",
	"gray":      "#7B7C8D",
	"darkgray":  "#67686C",
	"black":     "#202125",
	"red":       "#FF606A",
	"coral":     "#FF7069",
	"orange":    "#FF876A",
	"tangerine": "#FF9962",
	"gold":      "#FFAF60",
	"yellow":    "#FFD260",
	"green":     "#7EE787",
	"teal":      "#50EAAF",
	"cyan":      "#3EE6DE",
	"ice":       "#77EFEF",
	"lightblue": "#60AAFF",
	"blue":      "#8085FF",
	"lavender":  "#9B7DFF",
	"purple":    "#AD68FF",
	"magenta":   "#C860FF",
	"pink":      "#EE60BB",
	"rose":      "#FF6090",
}

// Lookup returns the palette color registered under name (case-insensitive).
func Lookup(name string) (RGB, bool) {
	hex, ok := palette[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RGB{}, false
	}
	c, err := HexToRGB(hex)
	return c, err == nil
}

// PaletteNames lists the palette in alphabetical order.
func PaletteNames() []string {
	names := make([]string, 0, len(palette))
	for n := range palette {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

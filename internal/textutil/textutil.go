// Package textutil holds small string helpers shared by the markup compiler.
package textutil

// SingleCharRepeats returns how many times ch repeats in s when s consists of
// nothing but ch. It returns 0 when s is empty or contains any other rune.
func SingleCharRepeats(s string, ch rune) int {
	if s == "" {
		return 0
	}
	n := 0
	for _, r := range s {
		if r != ch {
			return 0
		}
		n++
	}
	return n
}

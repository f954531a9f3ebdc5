package console

import "sync"

var ansiOnce = sync.OnceValue(enableVirtualTerminal)

// enableANSI is swapped in tests.
var enableANSI = EnableANSI

// EnableANSI asks the terminal attached to stdout to interpret ANSI escape
// sequences. Only Windows consoles need this; elsewhere it does nothing. The
// work runs once per process and later calls return the first result.
func EnableANSI() error {
	return ansiOnce()
}

//go:build !windows

package console

func enableVirtualTerminal() error {
	return nil
}

package libs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return terminal.IsTerminal(int(f.Fd()))
}

// Confirm asks a yes/no question on out and reads the answer from in.
// Anything but "y" or "yes" is a refusal.
func Confirm(prompt string, in io.Reader, out io.Writer) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

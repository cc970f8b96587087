package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints a destructive-action prompt and reads a y/N answer.
// Anything other than "y"/"yes" declines.
func Confirm(out io.Writer, in io.Reader, prompt string) bool {
	fmt.Fprintf(out, "%s (y/N): ", prompt)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal. Prompts are only printed when
// stdin is a terminal, so piped scripts produce clean output.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

// readLine reads one line and trims it. If EOF occurs after some input was
// read, the partial line is returned.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

// Confirm asks a yes/no question. Only "y" or "yes" (any case) confirm; EOF
// and anything else decline.
func Confirm(reader *bufio.Reader, question string, w io.Writer) bool {
	if _, err := fmt.Fprint(w, question+" [y/N] "); err != nil {
		return false
	}
	answer, err := readLine(reader)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

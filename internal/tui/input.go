package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// MultilineTerminator ends multiline text capture when typed on its own line.
const MultilineTerminator = "done!!!"

// ReadMultiline collects lines from r until the terminator or EOF and
// returns the joined, trimmed text.
func ReadMultiline(r io.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprintln(w, prompt)
	fmt.Fprintf(w, "Enter line by line. Type '%s' on a new line when you are finished:\n", MultilineTerminator)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(line), MultilineTerminator) {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// ReadLine reads a single trimmed line from r.
func ReadLine(r io.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// Confirm asks a yes/no question. An empty answer takes the default.
func Confirm(r io.Reader, w io.Writer, prompt string, defaultYes bool) (bool, error) {
	hint := "(y/n) [n]"
	if defaultYes {
		hint = "(y/n) [y]"
	}
	answer, err := ReadLine(r, w, fmt.Sprintf("%s %s: ", prompt, hint))
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	if answer == "" {
		return defaultYes, nil
	}
	return answer == "y" || answer == "yes", nil
}

// ReadSecret reads a line from the terminal without echoing it. Used for
// interactive API key entry.
func ReadSecret(w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// Package prompt reads interactive answers from the user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	projectNameQuestion = "Enter your project name: "
	emptyNameMessage    = "Project name cannot be empty."
)

// ErrNoInput is returned when input ends before a valid answer was given.
var ErrNoInput = errors.New("no project name provided")

// ProjectName asks for a project name until a non-blank line is entered.
// The returned name is trimmed of surrounding whitespace.
func ProjectName(r io.Reader, w io.Writer) (string, error) {
	reader := bufio.NewReader(r)

	for {
		fmt.Fprint(w, projectNameQuestion)

		line, err := reader.ReadString('\n')
		name := strings.TrimSpace(line)
		if name != "" {
			return name, nil
		}
		if err == io.EOF {
			fmt.Fprintln(w)
			return "", ErrNoInput
		}
		if err != nil {
			return "", fmt.Errorf("reading project name: %w", err)
		}

		fmt.Fprintln(w, emptyNameMessage)
	}
}

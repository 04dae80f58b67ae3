package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Prompter interface {
	ReadLine(label string) (string, error)
	YesNo(msg string, defaultYes bool) (bool, error)
}

type cliPrompter struct {
	in             *bufio.Reader
	out            io.Writer
	nonInteractive bool
}

func NewCLIPrompter(in io.Reader, out io.Writer, nonInteractive bool) Prompter {
	return &cliPrompter{bufio.NewReader(in), out, nonInteractive}
}

// ReadLine prints "label: " and returns the next line of input, trimmed.
// In non-interactive mode it returns "" and lets the caller decide whether
// an empty answer is acceptable.
func (p *cliPrompter) ReadLine(label string) (string, error) {
	if p.nonInteractive {
		return "", nil
	}

	fmt.Fprintf(p.out, "%s: ", label)
	input, err := p.in.ReadString('\n')
	if err != nil && input == "" {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (p *cliPrompter) YesNo(msg string, defaultYes bool) (bool, error) {
	if p.nonInteractive {
		return defaultYes, nil
	}

	fmt.Fprintf(p.out, "%s [y/n]: ", msg)
	input, _ := p.in.ReadString('\n')
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(input)), "y"), nil
}

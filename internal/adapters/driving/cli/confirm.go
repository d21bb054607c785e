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

// ErrNotInteractive is returned when a prompt is needed but stdin is not a terminal.
var ErrNotInteractive = errors.New("confirmation requires a terminal; pass --yes to skip")

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// StdinConfirmer prompts on Out and reads the answer from In.
// Only "y" and "yes" (any case) count as yes.
type StdinConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// NewStdinConfirmer creates a confirmer bound to the process terminal.
func NewStdinConfirmer() *StdinConfirmer {
	return &StdinConfirmer{In: os.Stdin, Out: os.Stderr}
}

// Confirm implements Confirmer.
func (c *StdinConfirmer) Confirm(prompt string) (bool, error) {
	if f, ok := c.In.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return false, ErrNotInteractive
	}

	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// yesConfirmer accepts everything. Used for --yes.
type yesConfirmer struct{}

func (yesConfirmer) Confirm(string) (bool, error) { return true, nil }

// activeConfirmer honours --yes over the configured confirmer.
func activeConfirmer() Confirmer {
	if yesFlag {
		return yesConfirmer{}
	}
	return confirmer
}

// SetConfirmer replaces the prompt used for destructive commands.
func SetConfirmer(c Confirmer) {
	if c == nil {
		c = NewStdinConfirmer()
	}
	confirmer = c
}

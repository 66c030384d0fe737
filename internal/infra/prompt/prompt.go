// Package prompt implements the yes/no confirmation dialog for the
// command line. The prompt blocks until the user answers, so the calling
// operation is never left partially applied.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mhnuk2007/todoAppTutorial/internal/domain"
)

// Terminal asks yes/no questions on a terminal. Only an explicit "y" or
// "yes" (any casing) confirms; everything else, including EOF, declines.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Terminal reading answers from in and writing questions
// to out.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prints the message and reads one line.
func (t *Terminal) Confirm(message string) bool {
	_, _ = fmt.Fprintf(t.out, "%s [y/N]: ", message)

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// AlwaysYes confirms everything without asking. Used for --yes flags and
// for surfaces that run their own confirmation dialog before calling the
// store.
type AlwaysYes struct{}

// Confirm returns true unconditionally.
func (AlwaysYes) Confirm(string) bool {
	return true
}

// Ensure both implement Confirmer.
var (
	_ domain.Confirmer = (*Terminal)(nil)
	_ domain.Confirmer = AlwaysYes{}
)

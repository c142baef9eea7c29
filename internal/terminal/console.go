package terminal

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

var ErrAborted = errors.New("aborted by user")

// Console is the UI layer. Both quiz and onboarding flows read from the same
// input so they share one scanner.
type Console struct {
	in       *bufio.Scanner
	renderer Renderer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:       bufio.NewScanner(in),
		renderer: NewRenderer(out),
	}
}

func (c *Console) Say(msg string) {
	c.renderer.RenderMessage(msg)
}

// readLine returns the next trimmed input line. It fails with ErrAborted on
// end of input and with the context error once ctx is done.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", ErrAborted
	}
	return strings.TrimSpace(c.in.Text()), nil
}

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Console is a line-oriented console text field. Each line read from the
// input is submitted; text set by the controller is written to the output.
// It implements controller.ConsoleInput.
type Console struct {
	in  io.Reader
	out io.Writer

	mu     sync.Mutex
	submit func(text string)
	local  map[string]func()
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out, local: make(map[string]func())}
}

// OnSubmit registers the callback that receives submitted lines.
func (c *Console) OnSubmit(fn func(text string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submit = fn
}

// HandleLocal registers a console-only command that is handled here instead
// of being submitted.
func (c *Console) HandleLocal(name string, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.local[name] = fn
}

// SetText displays text in the console.
func (c *Console) SetText(text string) {
	c.Printf("%s\n", text)
}

// Printf writes formatted text to the console output.
func (c *Console) Printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, args...) //nolint:errcheck // console output is best-effort
}

// Run reads lines until the input is exhausted or the context is cancelled.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)
		r := bufio.NewReader(c.in)
		for {
			line, err := r.ReadString('\n')
			if line != "" || err == nil {
				select {
				case lines <- strings.TrimRight(line, "\r\n"):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					errs <- err
				}
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errs:
					return fmt.Errorf("read console: %w", err)
				default:
					return nil
				}
			}
			c.dispatch(line)
		}
	}
}

func (c *Console) dispatch(line string) {
	c.mu.Lock()
	local, isLocal := c.local[strings.TrimSpace(line)]
	submit := c.submit
	c.mu.Unlock()

	switch {
	case isLocal:
		local()
	case submit != nil:
		submit(line)
	}
}

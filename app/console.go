package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/kilianp07/chargeslot/core/model"
	"github.com/kilianp07/chargeslot/core/station"
)

var _ station.Prompter = (*Console)(nil)

// Console is a line oriented Prompter reading answers from in and writing
// prompts to out. Input is scanned by a single reader goroutine so a blocked
// read can be abandoned when the context is cancelled.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	once  sync.Once
	lines chan inputLine
}

type inputLine struct {
	text string
	err  error
}

// NewConsole returns a Console over the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, lines: make(chan inputLine)}
}

// scan feeds lines until the input ends. It stays blocked on the input
// after a cancelled read; the process exit reclaims it.
func (c *Console) scan() {
	defer close(c.lines)
	for c.in.Scan() {
		c.lines <- inputLine{text: c.in.Text()}
	}
	if err := c.in.Err(); err != nil {
		c.lines <- inputLine{err: fmt.Errorf("read input: %w", err)}
	}
}

// Printf writes a formatted message to the console output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// ReadLine returns the next input line without its trailing newline.
// End of input before a line is read is reported as io.ErrUnexpectedEOF and
// a cancelled ctx returns ctx.Err() without waiting for input.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.once.Do(func() { go c.scan() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.ErrUnexpectedEOF
		}
		return l.text, l.err
	}
}

// ReadInt reads a line and parses it as a base 10 integer.
func (c *Console) ReadInt(ctx context.Context) (int, error) {
	line, err := c.ReadLine(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", line)
	}
	return n, nil
}

func (c *Console) Confirm(ctx context.Context, _ model.Timeslot) (string, error) {
	c.Printf("Do you want to confirm this booking? (yes/no)\n")
	return c.ReadLine(ctx)
}

func (c *Console) SelectEnergy(ctx context.Context, sources []model.EnergySource) (int, error) {
	c.Printf("Available energy sources:\n")
	for i, src := range sources {
		c.Printf("%d. %s\n", i+1, src)
	}
	return c.ReadInt(ctx)
}

package setup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

var errPrompt = errors.New("read answer")

type answer struct {
	line string
	err  error
}

// prompter reads y/n answers. Lines are read by a single background goroutine
// so that a blocked read can be abandoned when the context is cancelled.
type prompter struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool

	once    sync.Once
	answers chan answer
	done    *answer // set once the reader hit an error; later prompts reuse it
}

func newPrompter(in io.Reader, out io.Writer, assumeYes bool) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

func (p *prompter) readLines() {
	for {
		line, err := p.in.ReadString('\n')
		p.answers <- answer{line: line, err: err}
		if err != nil {
			return
		}
	}
}

func (p *prompter) next(ctx context.Context) (answer, error) {
	if p.done != nil {
		return *p.done, nil
	}
	p.once.Do(func() {
		p.answers = make(chan answer, 1)
		go p.readLines()
	})
	select {
	case <-ctx.Done():
		return answer{}, ctx.Err()
	case a := <-p.answers:
		if a.err != nil {
			p.done = &answer{err: a.err}
		}
		return a, nil
	}
}

// Confirm asks a y/n question. Only "y" or "yes" (any case) count as yes;
// end of input counts as no. A cancelled ctx aborts a pending read.
func (p *prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(p.out, "%s (y/n): ", question)
	if p.assumeYes {
		fmt.Fprintln(p.out, "y")
		return true, nil
	}
	a, err := p.next(ctx)
	if err != nil {
		fmt.Fprintln(p.out)
		return false, err
	}
	if a.err != nil {
		if !errors.Is(a.err, io.EOF) {
			return false, fmt.Errorf("%w: %w", errPrompt, a.err)
		}
		if a.line == "" {
			fmt.Fprintln(p.out)
			return false, nil
		}
	}
	ans := strings.ToLower(strings.TrimSpace(a.line))
	return ans == "y" || ans == "yes", nil
}

// Package console is the terminal front end: it renders rules and feedback
// and turns typed lines into guesses and yes/no answers.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"example.com/mastermind/internal/game"
)

// ErrInputClosed is returned once the input stream has ended or the console
// has been closed.
var ErrInputClosed = errors.New("input closed")

// errLineTooLong marks an input line longer than maxLineLen. The rest of the
// line is discarded and reading continues with the next one.
var errLineTooLong = errors.New("input line too long")

const maxLineLen = 1024

type input struct {
	text string
	err  error
}

type Console struct {
	out   io.Writer
	lines chan input

	done      chan struct{}
	closeOnce sync.Once
	stopped   chan struct{} // closed when the reader goroutine returns
}

// New starts reading in on a separate goroutine so that every prompt can be
// abandoned through its context. Close releases the goroutine.
func New(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out:     out,
		lines:   make(chan input),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go c.readLoop(in)
	return c
}

// Close makes pending and future prompts return ErrInputClosed. A read
// already blocked on in ends when in does.
func (c *Console) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *Console) readLoop(in io.Reader) {
	defer close(c.stopped)
	defer close(c.lines)

	r := bufio.NewReaderSize(in, maxLineLen)
	for {
		line, err := readBounded(r)
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil && !errors.Is(err, errLineTooLong) {
			err = fmt.Errorf("read input: %w", err)
		}
		select {
		case c.lines <- input{text: line, err: err}:
		case <-c.done:
			return
		}
		if err != nil && !errors.Is(err, errLineTooLong) {
			return
		}
	}
}

// readBounded returns the next line without its terminator. Lines over
// maxLineLen are consumed whole and reported as errLineTooLong. A final line
// without a newline is still returned.
func readBounded(r *bufio.Reader) (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > maxLineLen+1 {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && (!errors.Is(err, io.EOF) || (len(buf) == 0 && !tooLong)) {
			return "", err
		}
		if tooLong {
			return "", errLineTooLong
		}
		return strings.TrimRight(string(buf), "\r\n"), nil
	}
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.done:
		return "", ErrInputClosed
	case in, ok := <-c.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return in.text, in.err
	}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) PrintRules(r game.Rules) {
	c.printf("Welcome to Mastermind!\n")
	c.printf("The goal of the game is to guess the secret code consisting of %d colors.\n", r.CodeLength)
	c.printf("Each color can be used only once in the code.\n")
	c.printf("After each guess, you will receive feedback consisting of two numbers:\n")
	c.printf("- The number of correct colors in the correct position.\n")
	c.printf("- The number of correct colors in the wrong position.\n")
	c.printf("You have %d guesses to guess the code.\n", r.MaxGuesses)
	c.printf("The possible colors are:\n")
	for _, col := range game.Colors(r.NumColors) {
		c.printf("%c - %s\n", col.Symbol(), col)
	}
	c.printf("Good luck!\n")
}

// ReadGuess prompts for attempt n. Text that does not parse comes back as an
// error wrapping game.ErrInvalidGuess; anything else is an input failure.
func (c *Console) ReadGuess(ctx context.Context, n int, r game.Rules) (game.Code, error) {
	c.printf("Guess %d: enter %d capital letters (e.g. RBOW): ", n, r.CodeLength)
	line, err := c.readLine(ctx)
	if errors.Is(err, errLineTooLong) {
		return nil, fmt.Errorf("%w: %w", game.ErrInvalidGuess, err)
	}
	if err != nil {
		return nil, err
	}
	code, err := game.ParseCode(line, r.CodeLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", game.ErrInvalidGuess, err)
	}
	return code, nil
}

func (c *Console) InvalidGuess() {
	c.printf("Invalid guess! Please try again.\n")
}

func (c *Console) Feedback(f game.Feedback) {
	c.printf("Number of correct colors in the correct position: %d\n", f.Exact)
	c.printf("Number of correct colors in the wrong position: %d\n", f.Misplaced)
}

func (c *Console) Won(secret game.Code) {
	c.printf("Congratulations! You guessed the code.\n")
	c.printf("The code is: %s\n", secret)
}

func (c *Console) Lost(secret game.Code) {
	c.printf("Sorry, you ran out of guesses.\n")
	c.printf("The code is: %s\n", secret)
}

func (c *Console) AskPlayAgain(ctx context.Context) (bool, error) {
	return c.ask(ctx, "Do you want to play again? (y/n)\n")
}

func (c *Console) AskResume(ctx context.Context, attempt int) (bool, error) {
	return c.ask(ctx, fmt.Sprintf("You have an unfinished game waiting on guess %d. Resume it? (y/n)\n", attempt))
}

// ask treats an answer starting with y or Y as yes, and an overlong line
// as no.
func (c *Console) ask(ctx context.Context, prompt string) (bool, error) {
	c.printf("%s", prompt)
	line, err := c.readLine(ctx)
	if errors.Is(err, errLineTooLong) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	line = strings.TrimSpace(line)
	return line != "" && (line[0] == 'y' || line[0] == 'Y'), nil
}

// Farewell prints the run's totals and, when known, the lifetime totals.
func (c *Console) Farewell(run game.Summary, lifetime *game.Summary) {
	c.printf("\nThanks for playing!\n")
	c.printf("You won %d out of %d games.\n", run.Won, run.Played)
	if lifetime != nil {
		c.printf("All time: %d won out of %d games.\n", lifetime.Won, lifetime.Played)
	}
}

// Package prompt asks line-oriented questions on a terminal and re-asks
// until the answer can be used.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrInputClosed is returned when the input ends before a usable answer was read
var ErrInputClosed = errors.New("input closed before an answer was given")

// Prompter reads answers from an input stream and writes questions and
// corrective messages to an output stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	warn *color.Color
}

// New creates a Prompter. in and out are usually os.Stdin and os.Stdout.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:   bufio.NewReader(in),
		out:  out,
		warn: color.New(color.FgRed),
	}
}

// Printf writes plain output
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Warn writes a corrective message
func (p *Prompter) Warn(msg string) {
	p.warn.Fprintln(p.out, msg)
}

// Ask prints the question and returns the trimmed answer
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil {
		// A final line without newline still counts as an answer
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// AskPositiveInt asks for a whole number greater than zero
func (p *Prompter) AskPositiveInt(question string) (int, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		if err != nil {
			p.Warn("Please enter a valid whole number.")
			continue
		}
		if n <= 0 {
			p.Warn("Please enter a positive number.")
			continue
		}
		return n, nil
	}
}

// AskPositiveFloat asks for a number greater than zero
func (p *Prompter) AskPositiveFloat(question string) (float64, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return 0, err
		}

		v, err := strconv.ParseFloat(answer, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			p.Warn("Please enter a valid number.")
			continue
		}
		if v <= 0 {
			p.Warn("Please enter a positive number.")
			continue
		}
		return v, nil
	}
}

// Confirm asks a yes/no question where yes or y means true and any other
// answer means false.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return isYes(answer), nil
}

// AskYesNo asks a yes/no question and re-asks until the answer is yes, y, no or n
func (p *Prompter) AskYesNo(question string) (bool, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		p.Warn("Please enter 'yes' or 'no'")
	}
}

// AskChoice re-asks until parse accepts the answer. invalid is printed after
// each rejected answer.
func AskChoice[T any](p *Prompter, question, invalid string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		p.Warn(invalid)
	}
}

func isYes(answer string) bool {
	switch strings.ToLower(answer) {
	case "yes", "y":
		return true
	}
	return false
}

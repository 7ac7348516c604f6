package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestAsk_TrimsAnswer(t *testing.T) {
	p, out := newTestPrompter("  SO-1234  \n")

	got, err := p.Ask("Sales order: ")
	require.NoError(t, err)
	assert.Equal(t, "SO-1234", got)
	assert.Equal(t, "Sales order: ", out.String())
}

func TestAsk_LastLineWithoutNewline(t *testing.T) {
	p, _ := newTestPrompter("Acme")

	got, err := p.Ask("Customer: ")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got)
}

func TestAsk_InputClosed(t *testing.T) {
	p, _ := newTestPrompter("")

	_, err := p.Ask("Customer: ")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestAskPositiveInt_RejectsNegative(t *testing.T) {
	p, out := newTestPrompter("-3\n5\n")

	n, err := p.AskPositiveInt("How many sections? ")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 1, strings.Count(out.String(), "Please enter a positive number."))
	assert.Equal(t, 2, strings.Count(out.String(), "How many sections? "))
}

func TestAskPositiveInt_RejectsNonNumeric(t *testing.T) {
	p, out := newTestPrompter("three\n2.5\n0\n3\n")

	n, err := p.AskPositiveInt("How many sections? ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a valid whole number."))
	assert.Equal(t, 1, strings.Count(out.String(), "Please enter a positive number."))
}

func TestAskPositiveInt_InputClosedWhileRetrying(t *testing.T) {
	p, _ := newTestPrompter("abc\n")

	_, err := p.AskPositiveInt("How many sections? ")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestAskPositiveFloat(t *testing.T) {
	p, out := newTestPrompter("wide\n-2\n24.5\n")

	v, err := p.AskPositiveFloat("Width: ")
	require.NoError(t, err)
	assert.Equal(t, 24.5, v)
	assert.Contains(t, out.String(), "Please enter a valid number.")
	assert.Contains(t, out.String(), "Please enter a positive number.")
}

func TestAskPositiveFloat_RejectsNonFinite(t *testing.T) {
	tests := []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "infinity"}

	for _, answer := range tests {
		t.Run(answer, func(t *testing.T) {
			p, out := newTestPrompter(answer + "\n36\n")

			v, err := p.AskPositiveFloat("Depth: ")
			require.NoError(t, err)
			assert.Equal(t, 36.0, v)
			assert.Equal(t, 1, strings.Count(out.String(), "Please enter a valid number."))
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"Y\n", true},
		{" YES \n", true},
		{"no\n", false},
		{"maybe\n", false},
		{"\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p, out := newTestPrompter(tt.input)
			got, err := p.Confirm("Same dimensions? ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, out.String(), "Please enter")
		})
	}
}

func TestAskYesNo_Reprompts(t *testing.T) {
	p, out := newTestPrompter("maybe\n\nN\n")

	got, err := p.AskYesNo("Another? ")
	require.NoError(t, err)
	assert.False(t, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter 'yes' or 'no'"))
}

func TestAskChoice(t *testing.T) {
	p, out := newTestPrompter("x\nb\n")

	parse := func(s string) (string, error) {
		if s == "a" || s == "b" {
			return s, nil
		}
		return "", fmt.Errorf("bad choice %q", s)
	}

	got, err := AskChoice(p, "Pick: ", "Please pick a or b", parse)
	require.NoError(t, err)
	assert.Equal(t, "b", got)
	assert.Equal(t, 1, strings.Count(out.String(), "Please pick a or b"))
}

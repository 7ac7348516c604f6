package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/swbparts/internal/config"
	"github.com/alexiusacademia/swbparts/internal/prompt"
	"github.com/alexiusacademia/swbparts/internal/version"
)

func TestRun_WritesReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	input := strings.Join([]string{
		"SO-1", "Acme", "12 Main St", "MSB-1", "1", "10", "20", "30",
		"yes",
		"SO-2", "Acme", "12 Main St", "MSB-2", "1", "10", "20", "30",
		"no",
		"Job 42",
	}, "\n") + "\n"

	var out bytes.Buffer
	err := run(strings.NewReader(input), &out, config.Config{OutputDir: dir, Chart: false})
	require.NoError(t, err)

	path := filepath.Join(dir, "Job 42 - Parts Report.pdf")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	text := out.String()
	assert.Contains(t, text, version.Copyright())
	assert.Contains(t, text, "SWITCHBOARD PARTS SUMMARY")
	assert.Contains(t, text, "TOTAL PIECES = 24")
	assert.Contains(t, text, "Report generated: "+path)
}

func TestRun_InputClosed(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")

	var out bytes.Buffer
	err := run(strings.NewReader("SO-1\n"), &out, config.Config{OutputDir: dir, Chart: true})
	assert.ErrorIs(t, err, prompt.ErrInputClosed)
	assert.NoDirExists(t, dir)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "swbparts v")
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	rootCmd.SetArgs([]string{"extra"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Error(t, rootCmd.Execute())
}

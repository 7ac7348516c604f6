package intake

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/swbparts/internal/prompt"
)

// ReportSuffix is appended to the report name to build the file name
const ReportSuffix = " - Parts Report.pdf"

// ReportTarget is the chosen report name and the file it will be written to
type ReportTarget struct {
	Name string
	Path string
}

// ReportPath returns the file path for a report name inside dir
func ReportPath(dir, name string) string {
	return filepath.Join(dir, name+ReportSuffix)
}

// ChooseReportPath creates dir if needed, then asks for a report name until
// it maps to a new file or the user agrees to overwrite an existing one.
func ChooseReportPath(p *prompt.Prompter, dir string) (ReportTarget, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ReportTarget{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	for {
		name, err := p.Ask("\nEnter a name for the report (without .pdf): ")
		if err != nil {
			return ReportTarget{}, err
		}
		if name == "" {
			p.Warn("Report name cannot be empty. Please try again.")
			continue
		}

		path := ReportPath(dir, name)
		exists, err := fileExists(path)
		if err != nil {
			return ReportTarget{}, err
		}
		if !exists {
			return ReportTarget{Name: name, Path: path}, nil
		}

		overwrite, err := p.AskYesNo(fmt.Sprintf("File '%s' already exists. Overwrite? (yes/no): ", path))
		if err != nil {
			return ReportTarget{}, err
		}
		if overwrite {
			return ReportTarget{Name: name, Path: path}, nil
		}
	}
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check %s: %w", path, err)
}

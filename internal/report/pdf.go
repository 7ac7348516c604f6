// Package report renders the switchboard parts report as a PDF.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/alexiusacademia/swbparts/internal/parts"
	"github.com/alexiusacademia/swbparts/internal/switchboard"
	"github.com/alexiusacademia/swbparts/internal/version"
)

// Page layout, in points
const (
	margin       = 50.0
	cellPadding  = 6.0
	headerHeight = 22.0
	rowHeight    = 18.0
	fontFamily   = "Helvetica"
)

// Options controls optional parts of the report
type Options struct {
	Chart bool      // add the piece totals chart page
	Now   time.Time // generation time shown in the footer; zero means time.Now()
	ID    string    // report ID shown in the footer; empty means a new UUID
}

// Report is a parts report for a set of switchboards
type Report struct {
	Name   string
	Boards []switchboard.Switchboard
	Totals *parts.Totals

	opts Options
}

// New validates the switchboards and aggregates their dimension totals
func New(name string, boards []switchboard.Switchboard, opts Options) (*Report, error) {
	if name == "" {
		return nil, fmt.Errorf("report name is empty")
	}
	if err := switchboard.ValidateAll(boards); err != nil {
		return nil, err
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	return &Report{
		Name:   name,
		Boards: boards,
		Totals: parts.Aggregate(boards),
		opts:   opts,
	}, nil
}

// Title is the heading printed on the first page and on the totals page
func (r *Report) Title() string {
	return r.Name + " - Parts Report"
}

// ID returns the report ID printed in the footer
func (r *Report) ID() string {
	return r.opts.ID
}

// Write renders the PDF to w
func (r *Report) Write(w io.Writer) error {
	pdf, err := r.build()
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// WriteFile renders the PDF and writes it to path, replacing any existing file
func (r *Report) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := r.Write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// writer wraps fpdf with the report's text styles
type writer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (r *Report) build() (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AliasNbPages("")

	pdf.SetTitle(r.Title(), true)
	pdf.SetSubject("Switchboard sheet-metal parts", true)
	pdf.SetCreator("swbparts v"+version.Version, true)
	pdf.SetAuthor(version.Author, true)
	pdf.SetKeywords("report "+r.opts.ID, true)
	pdf.SetCreationDate(r.opts.Now)

	w := &writer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() { w.footer(r.opts.Now, r.opts.ID) })

	// Switchboard pages
	pdf.AddPage()
	w.title(r.Title())
	for _, sb := range r.Boards {
		w.heading("Switchboard: "+sb.Name, 14)
		w.text("Sales Order: " + sb.SalesOrder)
		w.text("Customer: " + sb.Customer)
		w.text("Job Info: " + sb.JobInfo)
		w.space(12)
		w.table(sectionTable(sb))
		w.space(20)
	}

	// Dimension totals
	pdf.AddPage()
	w.title(r.Title())
	w.heading("Dimension Totals", 14)
	for i, d := range parts.Dimensions {
		w.heading(d.String()+" Pieces", 12)
		w.table(totalsTable(r.Totals, d))
		if i < len(parts.Dimensions)-1 {
			w.space(12)
		}
	}

	if r.opts.Chart {
		if err := w.charts(r.Totals); err != nil {
			return nil, err
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to build PDF: %w", err)
	}
	return pdf, nil
}

func (w *writer) title(s string) {
	w.pdf.SetFont(fontFamily, "B", 14)
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.CellFormat(0, 18, w.tr(s), "", 1, "L", false, 0, "")
	w.space(32)
}

func (w *writer) heading(s string, size float64) {
	w.pdf.SetFont(fontFamily, "B", size)
	w.pdf.SetTextColor(0, 0, 0)
	w.space(size * 0.5)
	w.pdf.CellFormat(0, size*1.2, w.tr(s), "", 1, "L", false, 0, "")
	w.space(size * 0.4)
}

func (w *writer) text(s string) {
	w.pdf.SetFont(fontFamily, "", 10)
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.CellFormat(0, 12, w.tr(s), "", 1, "L", false, 0, "")
}

func (w *writer) space(h float64) {
	w.pdf.Ln(h)
}

// table draws a centered grid with a grey header row. The header is drawn
// again at the top of each new page the table runs onto.
func (w *writer) table(t table) {
	widths := w.columnWidths(t)
	var total float64
	for _, cw := range widths {
		total += cw
	}

	pageW, pageH := w.pdf.GetPageSize()
	left, _, right, bottom := w.pdf.GetMargins()
	x := left + (pageW-left-right-total)/2

	w.pdf.SetDrawColor(0, 0, 0)
	w.pdf.SetLineWidth(1)

	fits := func(h float64) bool {
		return w.pdf.GetY()+h <= pageH-bottom
	}

	if !fits(headerHeight + rowHeight) {
		w.pdf.AddPage()
	}
	w.headerRow(t.header, widths, x)

	w.pdf.SetFont(fontFamily, "", 10)
	w.pdf.SetTextColor(0, 0, 0)
	for _, row := range t.rows {
		if !fits(rowHeight) {
			w.pdf.AddPage()
			w.headerRow(t.header, widths, x)
			w.pdf.SetFont(fontFamily, "", 10)
			w.pdf.SetTextColor(0, 0, 0)
		}
		w.pdf.SetX(x)
		for i, cell := range row {
			w.pdf.CellFormat(widths[i], rowHeight, w.tr(cell), "1", 0, "CM", false, 0, "")
		}
		w.pdf.Ln(rowHeight)
	}
}

func (w *writer) headerRow(header []string, widths []float64, x float64) {
	w.pdf.SetFont(fontFamily, "B", 10)
	w.pdf.SetFillColor(128, 128, 128)
	w.pdf.SetTextColor(245, 245, 245)
	w.pdf.SetX(x)
	for i, cell := range header {
		w.pdf.CellFormat(widths[i], headerHeight, w.tr(cell), "1", 0, "CM", true, 0, "")
	}
	w.pdf.Ln(headerHeight)
}

// columnWidths sizes each column to its widest cell plus padding
func (w *writer) columnWidths(t table) []float64 {
	widths := make([]float64, len(t.header))

	w.pdf.SetFont(fontFamily, "B", 10)
	for i, cell := range t.header {
		widths[i] = w.pdf.GetStringWidth(w.tr(cell))
	}

	w.pdf.SetFont(fontFamily, "", 10)
	for _, row := range t.rows {
		for i, cell := range row {
			if cw := w.pdf.GetStringWidth(w.tr(cell)); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for i := range widths {
		widths[i] += 2 * cellPadding
	}
	return widths
}

// charts adds a page with one bar chart per dimension
func (w *writer) charts(totals *parts.Totals) error {
	w.pdf.AddPage()
	w.heading("Piece Totals by Dimension", 14)

	pageW, _ := w.pdf.GetPageSize()
	left, _, right, _ := w.pdf.GetMargins()
	imgW := pageW - left - right

	for _, d := range parts.Dimensions {
		png, err := totalsChart(totals, d)
		if err != nil {
			return err
		}

		name := "chart-" + d.String()
		opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		w.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
		w.pdf.ImageOptions(name, left, w.pdf.GetY(), imgW, 0, true, opts, 0, "")
		w.space(8)
	}
	return nil
}

func (w *writer) footer(now time.Time, id string) {
	left, _, _, _ := w.pdf.GetMargins()

	w.pdf.SetY(-margin + 14)
	w.pdf.SetFont(fontFamily, "I", 8)
	w.pdf.SetTextColor(128, 128, 128)
	w.pdf.CellFormat(0, 10, fmt.Sprintf("Generated %s  |  Report %s", now.Format("2006-01-02 15:04"), id),
		"", 0, "L", false, 0, "")
	w.pdf.SetX(left)
	w.pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", w.pdf.PageNo()), "", 0, "R", false, 0, "")
}

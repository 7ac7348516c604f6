package report

import (
	"fmt"
	"strconv"

	"github.com/alexiusacademia/swbparts/internal/parts"
	"github.com/alexiusacademia/swbparts/internal/switchboard"
)

// table is a header row plus body rows, all cells already formatted
type table struct {
	header []string
	rows   [][]string
}

var sectionHeader = []string{"Section", "Type", "Width (qty)", "Height (qty)", "Depth (qty)", "Corner"}

// sectionTable lists every section of a switchboard with its piece counts
func sectionTable(sb switchboard.Switchboard) table {
	t := table{header: sectionHeader}
	for i, s := range sb.Sections {
		c := parts.Calculate(s)
		corner := "No"
		if s.Type.IsCorner() {
			corner = "Yes"
		}
		t.rows = append(t.rows, []string{
			fmt.Sprintf("Section %d", i+1),
			string(s.Type),
			dimensionCell(s.Width, c.Width),
			dimensionCell(s.Height, c.Height),
			dimensionCell(s.Depth, c.Depth),
			corner,
		})
	}
	return t
}

// dimensionCell renders a dimension with its piece count, e.g. `24.5" (4)`
func dimensionCell(v float64, pieces int) string {
	return fmt.Sprintf("%s (%d)", switchboard.DimensionKey(v), pieces)
}

// totalsTable lists every distinct value of one dimension with its piece totals
func totalsTable(totals *parts.Totals, d parts.Dimension) table {
	t := table{header: []string{d.String(), "Standard Pieces", "Corner Pieces"}}
	for _, row := range totals.Rows(d) {
		t.rows = append(t.rows, []string{
			row.Key,
			strconv.Itoa(row.Standard),
			strconv.Itoa(row.Corner),
		})
	}
	return t
}

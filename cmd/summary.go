package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/swbparts/internal/parts"
	"github.com/alexiusacademia/swbparts/internal/switchboard"
)

// printSummary prints the collected switchboards and the piece totals
// before the report name is asked for.
func printSummary(out io.Writer, boards []switchboard.Switchboard, totals *parts.Totals) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          SWITCHBOARD PARTS SUMMARY")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	var grand parts.Count
	for _, sb := range boards {
		fmt.Fprintf(out, "SWITCHBOARD %s (SO %s):\n", sb.Name, sb.SalesOrder)
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tType\tW x H x D\tPieces\n")
		fmt.Fprintf(w, "  ─\t────\t─────────\t──────\n")
		for i, s := range sb.Sections {
			c := parts.Calculate(s)
			fmt.Fprintf(w, "  %d\t%s\t%s x %s x %s\t%d\n", i+1, s.Type.Label(),
				switchboard.DimensionKey(s.Width), switchboard.DimensionKey(s.Height),
				switchboard.DimensionKey(s.Depth), c.Total)
		}
		w.Flush()

		c := parts.ForSwitchboard(sb)
		fmt.Fprintf(out, "  Total pieces: %d (corner: %d)\n", c.Total, c.Corner)
		fmt.Fprintln(out)

		grand.Total += c.Total
		grand.Corner += c.Corner
	}

	fmt.Fprintln(out, "DIMENSION TOTALS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Dimension\tValues\tStandard\tCorner\n")
	for _, d := range parts.Dimensions {
		sum := totals.Sum(d)
		fmt.Fprintf(w, "  %s\t%d\t%d\t%d\n", d, len(totals.Rows(d)), sum.Standard, sum.Corner)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  ╔═══════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  TOTAL PIECES = %-18d║\n", grand.Total)
	fmt.Fprintf(out, "  ╚═══════════════════════════════════╝\n")
}

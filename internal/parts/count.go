package parts

import "github.com/alexiusacademia/swbparts/internal/switchboard"

// Pieces per dimension for every section. The fabrication rule does not
// depend on the size of the section.
const (
	PiecesPerDimension = 4
	PiecesPerCorner    = 4
)

// Count holds the sheet-metal pieces needed to fabricate one section
type Count struct {
	Width  int // pieces cut to the section width
	Height int // pieces cut to the section height
	Depth  int // pieces cut to the section depth
	Corner int // extra pieces for an L section, 0 otherwise
	Total  int
}

// Calculate returns the piece count for a section
func Calculate(s switchboard.Section) Count {
	c := Count{
		Width:  PiecesPerDimension,
		Height: PiecesPerDimension,
		Depth:  PiecesPerDimension,
	}
	if s.Type.IsCorner() {
		c.Corner = PiecesPerCorner
	}
	c.Total = c.Width + c.Height + c.Depth + c.Corner
	return c
}

// ForSwitchboard sums the piece counts of every section in a switchboard
func ForSwitchboard(sb switchboard.Switchboard) Count {
	var total Count
	for _, s := range sb.Sections {
		c := Calculate(s)
		total.Width += c.Width
		total.Height += c.Height
		total.Depth += c.Depth
		total.Corner += c.Corner
		total.Total += c.Total
	}
	return total
}

package parts

import (
	"sort"

	"github.com/alexiusacademia/swbparts/internal/switchboard"
)

// Dimension names one of the three measured directions of a section
type Dimension int

const (
	Width Dimension = iota
	Height
	Depth
)

// Dimensions lists the dimension kinds in report order
var Dimensions = []Dimension{Width, Height, Depth}

// String returns the column title for the dimension
func (d Dimension) String() string {
	switch d {
	case Width:
		return "Width"
	case Height:
		return "Height"
	case Depth:
		return "Depth"
	default:
		return "Unknown"
	}
}

// Tally is the pieces credited to one dimension value, split by the type of
// section that used it.
type Tally struct {
	Standard int
	Corner   int
}

// Row is one line of a dimension totals table
type Row struct {
	Key string // formatted dimension, e.g. `24.5"`
	Tally
}

// Totals accumulates pieces per distinct dimension value across all switchboards
type Totals struct {
	byDim map[Dimension]map[string]*Tally
}

// NewTotals creates an empty aggregate
func NewTotals() *Totals {
	t := &Totals{byDim: make(map[Dimension]map[string]*Tally, len(Dimensions))}
	for _, d := range Dimensions {
		t.byDim[d] = make(map[string]*Tally)
	}
	return t
}

// Aggregate walks every section of every switchboard in order and returns the totals
func Aggregate(boards []switchboard.Switchboard) *Totals {
	t := NewTotals()
	for _, sb := range boards {
		for _, s := range sb.Sections {
			t.AddSection(s)
		}
	}
	return t
}

// AddSection credits the section's per-dimension pieces to the column matching
// its type. Corner pieces are not part of the dimension tables.
func (t *Totals) AddSection(s switchboard.Section) {
	c := Calculate(s)
	t.add(Width, switchboard.DimensionKey(s.Width), s.Type, c.Width)
	t.add(Height, switchboard.DimensionKey(s.Height), s.Type, c.Height)
	t.add(Depth, switchboard.DimensionKey(s.Depth), s.Type, c.Depth)
}

func (t *Totals) add(d Dimension, key string, typ switchboard.SectionType, pieces int) {
	tally, ok := t.byDim[d][key]
	if !ok {
		tally = &Tally{}
		t.byDim[d][key] = tally
	}
	if typ.IsCorner() {
		tally.Corner += pieces
	} else {
		tally.Standard += pieces
	}
}

// Get returns the tally for a dimension key; the zero Tally if never seen
func (t *Totals) Get(d Dimension, key string) Tally {
	if tally, ok := t.byDim[d][key]; ok {
		return *tally
	}
	return Tally{}
}

// Rows returns the totals for a dimension sorted by key string.
// The order is lexicographic, so `100"` sorts before `24"`.
func (t *Totals) Rows(d Dimension) []Row {
	keys := make([]string, 0, len(t.byDim[d]))
	for k := range t.byDim[d] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]Row, len(keys))
	for i, k := range keys {
		rows[i] = Row{Key: k, Tally: *t.byDim[d][k]}
	}
	return rows
}

// Sum returns the column totals for a dimension
func (t *Totals) Sum(d Dimension) Tally {
	var sum Tally
	for _, tally := range t.byDim[d] {
		sum.Standard += tally.Standard
		sum.Corner += tally.Corner
	}
	return sum
}

// Package intake runs the interactive question flow that builds the list of
// switchboards for a parts report.
package intake

import (
	"fmt"

	"github.com/alexiusacademia/swbparts/internal/prompt"
	"github.com/alexiusacademia/swbparts/internal/switchboard"
)

// Collector asks for switchboard data one question at a time
type Collector struct {
	p *prompt.Prompter
}

// NewCollector creates a Collector that asks its questions through p
func NewCollector(p *prompt.Prompter) *Collector {
	return &Collector{p: p}
}

// CollectAll asks for switchboards until the user says there are no more
func (c *Collector) CollectAll() ([]switchboard.Switchboard, error) {
	var boards []switchboard.Switchboard
	for {
		sb, err := c.CollectSwitchboard()
		if err != nil {
			return nil, err
		}
		boards = append(boards, sb)

		another, err := c.p.AskYesNo("\nIs there another switchboard? (yes/no): ")
		if err != nil {
			return nil, err
		}
		if !another {
			return boards, nil
		}
	}
}

// sharedDimensions holds the height and depth applied to every section when
// the user says all sections match.
type sharedDimensions struct {
	enabled bool
	height  float64
	depth   float64
}

// CollectSwitchboard asks for the identifying fields and sections of one switchboard
func (c *Collector) CollectSwitchboard() (switchboard.Switchboard, error) {
	var sb switchboard.Switchboard

	fields := []struct {
		question string
		dst      *string
	}{
		{"Please enter the Sales Order Number: ", &sb.SalesOrder},
		{"Please enter the Customer name: ", &sb.Customer},
		{"Please enter the Job Name or Address: ", &sb.JobInfo},
		{"Please enter the switchboard name: ", &sb.Name},
	}
	for _, f := range fields {
		answer, err := c.p.Ask(f.question)
		if err != nil {
			return sb, err
		}
		*f.dst = answer
	}

	count, err := c.p.AskPositiveInt("How many sections? (Enter a whole number): ")
	if err != nil {
		return sb, err
	}

	// Shared dimensions only make sense with more than one section
	var shared sharedDimensions
	if count > 1 {
		shared, err = c.askSharedDimensions()
		if err != nil {
			return sb, err
		}
	}

	// L sections are only offered for switchboards with more than two sections
	hasCorners := false
	if count > 2 {
		hasCorners, err = c.p.Confirm("Does this switchboard have any L sections? (yes/no): ")
		if err != nil {
			return sb, err
		}
	}

	for i := 1; i <= count; i++ {
		s, err := c.collectSection(i, shared, hasCorners)
		if err != nil {
			return sb, err
		}
		sb.Sections = append(sb.Sections, s)
	}

	if err := sb.Validate(); err != nil {
		return sb, fmt.Errorf("invalid switchboard %q: %w", sb.Name, err)
	}
	return sb, nil
}

func (c *Collector) askSharedDimensions() (sharedDimensions, error) {
	same, err := c.p.Confirm("Do all sections have the same height and depth? (yes/no): ")
	if err != nil || !same {
		return sharedDimensions{}, err
	}

	height, err := c.p.AskPositiveFloat("Enter the common Height: ")
	if err != nil {
		return sharedDimensions{}, err
	}
	depth, err := c.p.AskPositiveFloat("Enter the common Depth: ")
	if err != nil {
		return sharedDimensions{}, err
	}
	return sharedDimensions{enabled: true, height: height, depth: depth}, nil
}

func (c *Collector) collectSection(num int, shared sharedDimensions, hasCorners bool) (switchboard.Section, error) {
	c.p.Printf("\nSection %d:\n", num)

	s := switchboard.Section{Type: switchboard.Standard}

	if hasCorners {
		typ, err := prompt.AskChoice(c.p, "Enter type (S or L): ",
			"Please enter either S or L for type", switchboard.ParseSectionType)
		if err != nil {
			return s, err
		}
		s.Type = typ
	}

	label := ""
	if s.Type.IsCorner() {
		label = "Corner "
	}

	var err error
	s.Width, err = c.p.AskPositiveFloat(fmt.Sprintf("Enter %sWidth for Section %d: ", label, num))
	if err != nil {
		return s, err
	}

	if shared.enabled {
		s.Height = shared.height
		s.Depth = shared.depth
		return s, nil
	}

	s.Height, err = c.p.AskPositiveFloat(fmt.Sprintf("Enter Height for Section %d: ", num))
	if err != nil {
		return s, err
	}
	s.Depth, err = c.p.AskPositiveFloat(fmt.Sprintf("Enter %sDepth for Section %d: ", label, num))
	if err != nil {
		return s, err
	}
	return s, nil
}

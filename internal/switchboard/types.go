package switchboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SectionType identifies the footprint of a switchboard section
type SectionType string

const (
	// Standard is a rectangular section
	Standard SectionType = "S"
	// Corner is an L-shaped section that needs extra corner pieces
	Corner SectionType = "L"
)

// ParseSectionType converts a user entry (S or L, any case) to a SectionType
func ParseSectionType(s string) (SectionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Standard):
		return Standard, nil
	case string(Corner):
		return Corner, nil
	default:
		return "", fmt.Errorf("unknown section type %q", s)
	}
}

// IsCorner reports whether the section type is an L section
func (t SectionType) IsCorner() bool {
	return t == Corner
}

// Label returns the long name used in console output
func (t SectionType) Label() string {
	if t.IsCorner() {
		return "Corner"
	}
	return "Standard"
}

// Section is one cabinet unit of a switchboard.
// Dimensions are in inches.
type Section struct {
	Width  float64     `validate:"gt=0"`
	Height float64     `validate:"gt=0"`
	Depth  float64     `validate:"gt=0"`
	Type   SectionType `validate:"oneof=S L"`
}

// Switchboard is an electrical distribution enclosure made of one or more sections
type Switchboard struct {
	SalesOrder string
	Customer   string
	JobInfo    string // Job name or address
	Name       string

	// Sections in the order they were entered
	Sections []Section `validate:"required,min=1,dive"`
}

var validate = validator.New()

// Validate checks the section dimensions and type
func (s Section) Validate() error {
	return wrapValidation(validate.Struct(s))
}

// Validate checks that the switchboard has at least one valid section
func (sb Switchboard) Validate() error {
	return wrapValidation(validate.Struct(sb))
}

// ValidateAll validates every switchboard, reporting the first failure
func ValidateAll(boards []Switchboard) error {
	if len(boards) == 0 {
		return &ValidationError{msg: "no switchboards to report"}
	}
	for i, sb := range boards {
		if err := sb.Validate(); err != nil {
			return fmt.Errorf("switchboard %d (%s): %w", i+1, sb.Name, err)
		}
	}
	return nil
}

// ValidationError represents an invalid switchboard or section
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{msg: err.Error()}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be positive", strings.ToLower(fe.Field())))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be S or L", strings.ToLower(fe.Field())))
		case "required", "min":
			msgs = append(msgs, "switchboard must have at least one section")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return &ValidationError{msg: strings.Join(msgs, "; ")}
}

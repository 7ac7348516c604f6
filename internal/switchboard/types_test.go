package switchboard

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectionType(t *testing.T) {
	tests := []struct {
		input   string
		want    SectionType
		wantErr bool
	}{
		{"S", Standard, false},
		{"s", Standard, false},
		{"L", Corner, false},
		{" l ", Corner, false},
		{"", "", true},
		{"X", "", true},
		{"SL", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSectionType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSectionType_Label(t *testing.T) {
	assert.Equal(t, "Standard", Standard.Label())
	assert.Equal(t, "Corner", Corner.Label())
	assert.True(t, Corner.IsCorner())
	assert.False(t, Standard.IsCorner())
}

func TestSection_Validate(t *testing.T) {
	tests := []struct {
		name    string
		section Section
		wantMsg string
	}{
		{
			name:    "valid standard",
			section: Section{Width: 24, Height: 90, Depth: 36, Type: Standard},
		},
		{
			name:    "valid corner",
			section: Section{Width: 30, Height: 90, Depth: 30, Type: Corner},
		},
		{
			name:    "zero width",
			section: Section{Width: 0, Height: 90, Depth: 36, Type: Standard},
			wantMsg: "width must be positive",
		},
		{
			name:    "negative depth",
			section: Section{Width: 24, Height: 90, Depth: -1, Type: Standard},
			wantMsg: "depth must be positive",
		},
		{
			name:    "missing type",
			section: Section{Width: 24, Height: 90, Depth: 36},
			wantMsg: "type must be S or L",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.section.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSwitchboard_Validate(t *testing.T) {
	sb := Switchboard{Name: "MSB-1"}
	err := sb.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one section")

	sb.Sections = []Section{{Width: 24, Height: 90, Depth: 36, Type: Standard}}
	assert.NoError(t, sb.Validate())

	sb.Sections = append(sb.Sections, Section{Width: 24, Height: 0, Depth: 36, Type: Standard})
	err = sb.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "height must be positive")
}

func TestValidateAll(t *testing.T) {
	assert.Error(t, ValidateAll(nil))

	good := Switchboard{Name: "A", Sections: []Section{{Width: 1, Height: 1, Depth: 1, Type: Standard}}}
	bad := Switchboard{Name: "B"}

	assert.NoError(t, ValidateAll([]Switchboard{good}))

	err := ValidateAll([]Switchboard{good, bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "switchboard 2 (B)")
}

func TestFormatDimension(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{10.0, "10"},
		{10.50, "10.5"},
		{10.25, "10.25"},
		{24.00, "24"},
		{100, "100"},
		{90.126, "90.13"},
		{0.5, "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDimension(tt.value))
		})
	}
}

func TestFormatDimension_Idempotent(t *testing.T) {
	for _, v := range []float64{10, 10.5, 10.25, 36, 7.75} {
		once := FormatDimension(v)
		reparsed, err := strconv.ParseFloat(once, 64)
		require.NoError(t, err)
		assert.Equal(t, once, FormatDimension(reparsed))
	}
}

func TestDimensionKey(t *testing.T) {
	assert.Equal(t, `24"`, DimensionKey(24))
	assert.Equal(t, `24.5"`, DimensionKey(24.5))
}

package pagespec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/txtpdf/layout"
	"github.com/ByLCY/txtpdf/pagespec"
)

func TestParsePresets(t *testing.T) {
	tests := []struct {
		in   string
		want layout.PageSize
	}{
		{"", layout.SizeA4},
		{"A4", layout.SizeA4},
		{"letter", layout.SizeLetter},
		{"Legal portrait", layout.SizeLegal},
		{"A5 landscape", layout.PageSize{Width: layout.SizeA5.Height, Height: layout.SizeA5.Width}},
		{"landscape", layout.SizeA4.Landscape()},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			geo, err := pagespec.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, geo.Size)
			assert.Nil(t, geo.Margin)
		})
	}
}

func TestParseExplicitSize(t *testing.T) {
	geo, err := pagespec.Parse("8.5in x 11in")
	require.NoError(t, err)
	assert.InDelta(t, 612, geo.Size.Width, 1e-9)
	assert.InDelta(t, 792, geo.Size.Height, 1e-9)

	geo, err = pagespec.Parse("210mm x 297mm margin 20mm")
	require.NoError(t, err)
	assert.InDelta(t, 595.2756, geo.Size.Width, 1e-3)
	assert.InDelta(t, 841.8898, geo.Size.Height, 1e-3)
	require.NotNil(t, geo.Margin)
	assert.InDelta(t, 56.6929, *geo.Margin, 1e-3)

	geo, err = pagespec.Parse("400x300 portrait")
	require.NoError(t, err)
	assert.Equal(t, layout.PageSize{Width: 300, Height: 400}, geo.Size)
}

func TestParseMarginOnly(t *testing.T) {
	geo, err := pagespec.Parse("margin 36")
	require.NoError(t, err)
	assert.Equal(t, layout.SizeA4, geo.Size)
	require.NotNil(t, geo.Margin)
	assert.Equal(t, 36.0, *geo.Margin)
}

func TestParseAST(t *testing.T) {
	spec, err := pagespec.ParseString("Letter Landscape margin 1in")
	require.NoError(t, err)
	require.NotNil(t, spec.Size)
	assert.Equal(t, "letter", spec.Size.Preset)
	assert.Equal(t, "landscape", spec.Orientation)
	require.NotNil(t, spec.Margin)
	assert.Equal(t, layout.Length{Value: 1, Unit: layout.UnitIN}, spec.Margin.Length)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"B5", "210mm x", "a4 sideways", "margin", "0 x 100"} {
		_, err := pagespec.Parse(in)
		assert.Error(t, err, "input %q", in)
	}
}

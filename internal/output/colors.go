package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for the elements of a rendered
// report block
type ColorScheme struct {
	Header    *color.Color
	Separator *color.Color
	Label     *color.Color
	Value     *color.Color
	Null      *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header:    color.New(color.FgCyan, color.Bold),
		Separator: color.New(color.Faint),
		Label:     color.New(color.FgYellow),
		Value:     color.New(color.FgWhite),
		Null:      color.New(color.FgMagenta),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Header.DisableColor()
	scheme.Separator.DisableColor()
	scheme.Label.DisableColor()
	scheme.Value.DisableColor()
	scheme.Null.DisableColor()

	return scheme
}

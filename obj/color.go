package obj

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// KeyColor pairs a key with the lock it opens.
type KeyColor int

const (
	KeyWhite KeyColor = iota
	KeyYellow
	KeyRed
	KeyHotPink
	KeyPurple
	KeySkyBlue
	KeyOrange
	KeyChartreuse

	KeyColorCount = int(KeyChartreuse) + 1
)

var keyPalette = [KeyColorCount]color.RGBA{
	colornames.White,
	colornames.Yellow,
	colornames.Red,
	colornames.Hotpink,
	colornames.Purple,
	colornames.Skyblue,
	colornames.Orange,
	colornames.Chartreuse,
}

var keyColorNames = [KeyColorCount]string{
	"white", "yellow", "red", "hotpink", "purple", "skyblue", "orange", "chartreuse",
}

// ParseKeyColor converts a color index from a puzzle file.
func ParseKeyColor(index int) (KeyColor, error) {
	if index < 0 || index >= KeyColorCount {
		return 0, fmt.Errorf("obj: key color %d out of range [0,%d)", index, KeyColorCount)
	}
	return KeyColor(index), nil
}

// RGBA is the draw color.
func (c KeyColor) RGBA() color.RGBA {
	if c < 0 || int(c) >= KeyColorCount {
		return color.RGBA{}
	}
	return keyPalette[c]
}

func (c KeyColor) String() string {
	if c < 0 || int(c) >= KeyColorCount {
		return fmt.Sprintf("KeyColor(%d)", int(c))
	}
	return keyColorNames[c]
}

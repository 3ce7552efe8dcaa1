package kilominx

// Face identifies one of the twelve pentagonal faces. The letters follow the
// desktop app's picker: F(ront), U(p), R(ight), D(own), L(eft), the five
// back faces, and the two oblique faces UL/UR.
type Face uint8

// The twelve faces, in the fixed order used throughout all tables.
const (
	F Face = iota
	U
	R
	D
	L
	BR
	BL
	BU
	BD
	B
	UL
	UR
)

// NumFaces is the face count of a dodecahedron.
const NumFaces = 12

var faceNames = [NumFaces]string{
	"F", "U", "R", "D", "L", "BR", "BL", "BU", "BD", "B", "UL", "UR",
}

var faceLongNames = [NumFaces]string{
	"Front", "Up", "Right", "Down", "Left", "Back-Right", "Back-Left",
	"Back-Up", "Back-Down", "Back", "Up-Left", "Up-Right",
}

// String returns the short notation letter(s) of the face.
func (f Face) String() string {
	if int(f) >= NumFaces {
		return "?"
	}

	return faceNames[f]
}

// LongName returns the human-readable face name used in instructions.
func (f Face) LongName() string {
	if int(f) >= NumFaces {
		return "unknown"
	}

	return faceLongNames[f]
}

// Color is a sticker color label from the fixed twelve-color palette.
type Color uint8

// The palette, one color per face of the solved puzzle.
const (
	White Color = iota
	Yellow
	Red
	Orange
	Green
	Blue
	Purple
	Pink
	LightBlue
	LightGreen
	Brown
	Gray
)

// NumColors is the palette size.
const NumColors = 12

var colorNames = [NumColors]string{
	"White", "Yellow", "Red", "Orange", "Green", "Blue",
	"Purple", "Pink", "LightBlue", "LightGreen", "Brown", "Gray",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if int(c) >= NumColors {
		return "?"
	}

	return colorNames[c]
}

// ParseColor resolves a palette name (case-sensitive, as written by the
// picker) to its Color. The second result reports success.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}

	return 0, false
}

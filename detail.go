package favicon

// Detail is the size-dependent tuning applied when drawing the glyph.
type Detail struct {
	// Outline is the width in pixels of the dark rim around cap and stem.
	// Zero disables the rim.
	Outline int

	// Eyes reports whether the two eye dots are drawn.
	Eyes bool
}

// Detail thresholds, in pixels.
const (
	thinOutlineMax  = 24 // up to here: 1px rim
	thickOutlineMax = 32 // up to here: 2px rim
	EyesMinSize     = 48 // eyes turn into noise below this size
)

// DetailFor returns the detail level for a canvas of the given size.
//
// Below EyesMinSize the eyes become illegible noise and are dropped; a rim
// keeps the silhouette readable against arbitrary tab bar colors instead.
func DetailFor(size int) Detail {
	switch {
	case size <= thinOutlineMax:
		return Detail{Outline: 1}
	case size <= thickOutlineMax:
		return Detail{Outline: 2}
	case size < EyesMinSize:
		return Detail{Outline: 1}
	default:
		return Detail{Eyes: true}
	}
}

// Package palette assigns avatar and background colours to display names.
//
// The assignment is a pure function of the name's UTF-16 code units, so the
// same name always lands on the same entry regardless of call order or
// process restarts.
package palette

import "unicode/utf16"

// ColorPair is one palette entry
type ColorPair struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`   // utility class for the avatar circle
	Hex      string `json:"hex"`      // avatar circle colour
	Gradient string `json:"gradient"` // tile background CSS
	Tint     string `json:"tint"`     // gradient centre colour
}

const gradientEdge = "#202124"

func entry(name, hex, tint string) ColorPair {
	return ColorPair{
		Name:     name,
		Avatar:   "bg-" + name + "-600",
		Hex:      hex,
		Gradient: "radial-gradient(circle at center, " + tint + " 0%, " + gradientEdge + " 100%)",
		Tint:     tint,
	}
}

var entries = [...]ColorPair{
	entry("red", "#dc2626", "#7f1d1d"),
	entry("orange", "#ea580c", "#7c2d12"),
	entry("amber", "#d97706", "#78350f"),
	entry("yellow", "#ca8a04", "#713f12"),
	entry("lime", "#65a30d", "#3f6212"),
	entry("green", "#16a34a", "#14532d"),
	entry("emerald", "#059669", "#064e3b"),
	entry("teal", "#0d9488", "#134e4a"),
	entry("cyan", "#0891b2", "#164e63"),
	entry("sky", "#0284c7", "#0c4a6e"),
	entry("blue", "#2563eb", "#1e3a8a"),
	entry("indigo", "#4f46e5", "#312e81"),
	entry("violet", "#7c3aed", "#4c1d95"),
	entry("purple", "#9333ea", "#581c87"),
	entry("fuchsia", "#c026d3", "#701a75"),
	entry("pink", "#db2777", "#831843"),
	entry("rose", "#e11d48", "#881337"),
	entry("slate", "#475569", "#334155"),
}

// Size is the number of palette entries
const Size = len(entries)

// Palette returns a copy of the ordered palette
func Palette() []ColorPair {
	return append([]ColorPair(nil), entries[:]...)
}

// Hash is the 32-bit rolling hash h = c + ((h << 5) - h) over the UTF-16
// code units of name. int32 arithmetic wraps on overflow.
func Hash(name string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(name)) {
		h = int32(c) + ((h << 5) - h)
	}
	return h
}

// Index returns the palette index assigned to name
func Index(name string) int {
	if name == "" {
		return 0
	}
	return indexFor(Hash(name))
}

func indexFor(hash int32) int {
	// widen before abs so MinInt32 does not overflow
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return int(h % int64(Size))
}

// ColorFor returns the colour pair assigned to name
func ColorFor(name string) ColorPair {
	return entries[Index(name)]
}

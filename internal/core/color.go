package core

// Color is a foreground color for a screen cell, stored as a "#rrggbb" hex string.
// The empty string means the terminal's default foreground.
type Color string

// Predefined colors for playfield elements.
const (
	ColorDefault Color = ""
	ColorHazard  Color = "#ff4d4d"
	ColorBonus   Color = "#ffd400"
	ColorText    Color = "#ffffff"
	ColorDim     Color = "#8a8a8a"
	ColorEdge    Color = "#444444"
)

// Package window shows the simulation in a desktop window. The GUI build
// requires the ebiten build tag.
package window

const (
	// Name is the renderer's registry key.
	Name = "window"

	// DefaultCellSize is the on-screen size of a cell in pixels.
	DefaultCellSize = 25
)

// Package frontend holds the windowed renderers. raylib is built by default;
// building with the "ebiten" tag swaps in the ebiten renderer. Both link
// their own GLFW, so only one can be part of a binary.
package frontend

const (
	borderPadding = 10 // Padding around HUD text
	fontSize      = 16
)

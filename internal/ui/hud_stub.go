//go:build !ebiten

// Package ui draws status overlays for the window renderer.
package ui

import "simwall/internal/app"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*app.Simulation) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, bool) {}

//go:build !ebiten

// Package render blits grid snapshots to a screen. The real painter lives
// behind the ebiten build tag; this file only keeps the package buildable
// in headless environments.
package render

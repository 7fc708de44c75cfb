// Package core provides fundamental types and utilities for the lane-crossing game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Position is a cell coordinate on the board.
// X grows to the right, Y grows towards the finish lane.
type Position struct {
	X, Y int
}

// Pos creates a new position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// In returns true if the position lies inside a width x height grid.
func (p Position) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// String formats the position the way the diagnostics pane shows it.
func (p Position) String() string {
	return fmt.Sprintf("X: %d, Y: %d", p.X, p.Y)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Wrap maps val into [0, n). n must be positive.
func Wrap(val, n int) int {
	val %= n
	if val < 0 {
		val += n
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

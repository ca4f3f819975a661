// Package ui holds the layout primitives the study screens are composed
// from: a leaf text widget and a generic container that partitions its area
// between its children. Widgets are ephemeral values rebuilt on every frame
// and render to plain strings, so any terminal front end can paint them.
package ui

// Rect is the rectangular character area a widget renders into.
type Rect struct {
	Width  int
	Height int
}

// Widget is anything that can render itself into an area.
type Widget interface {
	Render(area Rect) string
}

// Axis is the direction a container stacks its children.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Partition splits length into n parts that sum exactly to length, with no
// two parts differing by more than one. The leading parts take the
// remainder.
func Partition(length, n int) []int {
	if n <= 0 {
		return nil
	}
	if length < 0 {
		length = 0
	}
	base, rem := length/n, length%n
	parts := make([]int, n)
	for i := range parts {
		parts[i] = base
		if i < rem {
			parts[i]++
		}
	}
	return parts
}

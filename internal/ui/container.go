package ui

import "github.com/charmbracelet/lipgloss"

// Container stacks child widgets along one axis, giving each an equal share
// of the area. It owns its children for its own lifetime; they are rendered
// recursively, each solely responsible for staying inside its region.
type Container[W Widget] struct {
	axis     Axis
	children []W
}

// NewContainer creates an empty container stacking along axis.
func NewContainer[W Widget](axis Axis) *Container[W] {
	return &Container[W]{axis: axis}
}

// Push appends a child.
func (c *Container[W]) Push(child W) {
	c.children = append(c.children, child)
}

// Len returns the number of children.
func (c *Container[W]) Len() int { return len(c.children) }

// Render partitions area into one region per child along the container's
// axis and renders each child into its region, in insertion order. The
// regions sum exactly to the area; uneven division is spread so no two
// regions differ by more than one cell.
func (c *Container[W]) Render(area Rect) string {
	if len(c.children) == 0 || area.Width <= 0 || area.Height <= 0 {
		return ""
	}

	parts := make([]string, len(c.children))
	switch c.axis {
	case Vertical:
		for i, h := range Partition(area.Height, len(c.children)) {
			parts[i] = c.children[i].Render(Rect{Width: area.Width, Height: h})
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	default:
		for i, w := range Partition(area.Width, len(c.children)) {
			parts[i] = c.children[i].Render(Rect{Width: w, Height: area.Height})
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
}

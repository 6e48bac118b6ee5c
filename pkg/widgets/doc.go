// Package widgets provides the hexagon image widget.
//
// Widgets are immutable descriptions; CreateRenderObject builds the render
// box that performs layout and paint, and UpdateRenderObject applies a new
// description to an existing box.
//
//	img := widgets.HexagonImage{
//	    Source: avatar,
//	    Size:   96,
//	}
package widgets

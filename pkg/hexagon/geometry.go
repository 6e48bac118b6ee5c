package hexagon

import (
	"image"
	"math"

	"github.com/playdraft/hexagonview/pkg/graphics"
)

const (
	// tan30 relates the distance from the center to a side vertex's vertical offset.
	tan30 = 0.57735026919
	// sin60 relates half the inset height to the horizontal vertex margin.
	sin60 = 0.86602540378
)

// VertexCount is the number of vertices in a hexagon.
const VertexCount = 6

// Vertex indices in path order.
const (
	Top = iota
	UpperLeft
	LowerLeft
	Bottom
	LowerRight
	UpperRight
)

// Hexagon is a closed six-vertex outline inside a square viewport.
type Hexagon struct {
	// Vertices in path order: top, upper-left, lower-left, bottom,
	// lower-right, upper-right.
	Vertices [VertexCount]image.Point
	// Bounds is always (0, 0, height, height), whatever the viewport width.
	Bounds graphics.Rect
}

// ComputeHexagon returns the hexagon for a viewport of the given height with
// a border of the given thickness. The top and bottom vertices are inset by
// half the border thickness so the stroke stays inside the viewport.
//
// Out-of-range inputs (height <= 0, negative thickness, or a thickness larger
// than the height) produce a zero-area hexagon with every vertex at the
// center of the viewport.
func ComputeHexagon(height, borderThickness int) Hexagon {
	if height < 0 {
		height = 0
	}
	bounds := graphics.RectFromLTWH(0, 0, float64(height), float64(height))
	center := height / 2

	if height == 0 || borderThickness < 0 || borderThickness > height {
		hex := Hexagon{Bounds: bounds}
		for i := range hex.Vertices {
			hex.Vertices[i] = image.Pt(center, center)
		}
		return hex
	}

	borderOffset := borderThickness / 2
	verticalOffset := int(math.Round(float64(center-borderOffset) * tan30))
	margin := int(math.Round(float64(height-2*borderOffset) / 2 * sin60))
	sideLength := height - borderThickness - 2*verticalOffset

	return Hexagon{
		Vertices: [VertexCount]image.Point{
			Top:        image.Pt(center, borderOffset),
			UpperLeft:  image.Pt(center-margin, verticalOffset),
			LowerLeft:  image.Pt(center-margin, verticalOffset+sideLength),
			Bottom:     image.Pt(center, height-borderOffset),
			LowerRight: image.Pt(center+margin, verticalOffset+sideLength),
			UpperRight: image.Pt(center+margin, verticalOffset),
		},
		Bounds: bounds,
	}
}

// Path returns the closed outline of the hexagon.
func (h Hexagon) Path() *graphics.Path {
	p := graphics.NewPath()
	for i, v := range h.Vertices {
		if i == 0 {
			p.MoveTo(float64(v.X), float64(v.Y))
			continue
		}
		p.LineTo(float64(v.X), float64(v.Y))
	}
	p.Close()
	return p
}

// IsDegenerate reports whether all vertices coincide.
func (h Hexagon) IsDegenerate() bool {
	for _, v := range h.Vertices[1:] {
		if v != h.Vertices[0] {
			return false
		}
	}
	return true
}

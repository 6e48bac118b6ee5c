// Package hexagon computes a hexagonal silhouette for a square viewport and
// composites an image into it with a rounded border.
//
// The geometry is a pure function of the viewport height and the border
// thickness:
//
//	hex := hexagon.ComputeHexagon(100, 10)
//	// hex.Vertices: (50,5) (11,26) (11,64) (50,95) (89,64) (89,26)
//
// Drawing happens through a graphics.Canvas inside an isolated layer: the
// hexagon is filled as a mask, the image is drawn with src-in so only the
// masked pixels survive, and the border is stroked on top.
//
//	c := hexagon.NewCompositor(hexagon.DefaultBorder())
//	c.Render(canvas, hex, img, 100, 100)
//
// View ties the two together for widget hosts: SizeChanged recomputes the
// cached hexagon and Draw renders with it.
package hexagon

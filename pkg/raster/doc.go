// Package raster provides a software implementation of graphics.Canvas.
//
// Shapes are converted to coverage masks with golang.org/x/image/vector and
// images are resampled with golang.org/x/image/draw. Compositing follows the
// Porter-Duff rules on premultiplied pixels, so a Canvas can reproduce
// masked drawing such as a shape fill followed by a src-in image draw inside
// an isolated layer.
//
//	dst := image.NewRGBA(image.Rect(0, 0, 128, 128))
//	canvas := raster.NewCanvas(dst)
//	canvas.DrawPath(path, graphics.DefaultPaint())
package raster

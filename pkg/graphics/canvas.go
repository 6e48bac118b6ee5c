package graphics

import "image"

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// SaveLayer pushes an isolated off-screen layer covering bounds. Drawing
	// until the matching Restore accumulates in the layer, which is then
	// composited onto the parent using paint's blend mode and alpha.
	// A nil paint composites with src-over at full opacity.
	SaveLayer(bounds Rect, paint *Paint)

	// Restore pops the most recent Save or SaveLayer.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear replaces every pixel inside the clip with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawImageRect draws the srcRect region of img into dstRect.
	// A zero srcRect selects the entire image. The paint's blend mode and
	// alpha apply; its color is ignored. A nil paint draws with src-over.
	DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality, paint *Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}

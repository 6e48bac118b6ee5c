package testing

import (
	"fmt"
	"image"
	"math"

	"github.com/playdraft/hexagonview/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) SaveLayer(bounds graphics.Rect, paint *graphics.Paint) {
	params := sortedMap("bounds", serializeRect(bounds))
	if paint != nil {
		params["blend"] = paint.EffectiveBlendMode().String()
		params["alpha"] = round2(paint.EffectiveAlpha())
	}
	c.ops = append(c.ops, DisplayOp{Op: "saveLayer", Params: params})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := serializePaint(paint)
	params["points"] = serializePoints(path)
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *serializingCanvas) DrawImageRect(img image.Image, srcRect, dstRect graphics.Rect, quality graphics.FilterQuality, paint *graphics.Paint) {
	params := sortedMap(
		"src", serializeRect(srcRect),
		"dst", serializeRect(dstRect),
		"quality", quality.String(),
	)
	if img != nil {
		b := img.Bounds()
		params["image"] = [2]int{b.Dx(), b.Dy()}
	}
	if paint != nil {
		params["blend"] = paint.EffectiveBlendMode().String()
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawImageRect", Params: params})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializePaint(p graphics.Paint) map[string]any {
	m := sortedMap(
		"color", serializeColor(p.Color),
		"style", p.Style.String(),
		"blend", p.EffectiveBlendMode().String(),
	)
	if p.Style != graphics.PaintStyleFill {
		m["strokeWidth"] = round2(p.StrokeWidth)
		m["join"] = p.StrokeJoin.String()
		m["cap"] = p.StrokeCap.String()
	}
	if p.CornerRadius > 0 {
		m["cornerRadius"] = round2(p.CornerRadius)
	}
	return m
}

// serializePoints lists the end point of every path command, with "Z" for a
// close.
func serializePoints(path *graphics.Path) []string {
	if path.IsEmpty() {
		return nil
	}
	out := make([]string, 0, len(path.Commands))
	for _, cmd := range path.Commands {
		if cmd.Op == graphics.PathOpClose {
			out = append(out, "Z")
			continue
		}
		n := len(cmd.Args)
		out = append(out, fmt.Sprintf("%g,%g", round2(cmd.Args[n-2]), round2(cmd.Args[n-1])))
	}
	return out
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. The JSON encoder
// sorts the keys when the map is written out.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

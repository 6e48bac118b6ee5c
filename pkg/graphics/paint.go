package graphics

import "fmt"

// FilterQuality controls image sampling quality during scaling.
type FilterQuality int

const (
	FilterQualityNone   FilterQuality = iota // Nearest neighbor (pixelated)
	FilterQualityLow                         // Approximate bilinear
	FilterQualityMedium                      // Bilinear
	FilterQualityHigh                        // Bicubic (Catmull-Rom)
)

// String returns a human-readable representation of the filter quality.
func (q FilterQuality) String() string {
	switch q {
	case FilterQualityNone:
		return "none"
	case FilterQualityLow:
		return "low"
	case FilterQualityMedium:
		return "medium"
	case FilterQualityHigh:
		return "high"
	default:
		return fmt.Sprintf("FilterQuality(%d)", int(q))
	}
}

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke

	// PaintStyleFillAndStroke fills and then strokes the outline.
	PaintStyleFillAndStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	case PaintStyleFillAndStroke:
		return "fill_and_stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt   StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                   // Semicircle at endpoint
	CapSquare                  // Square extending past endpoint
)

// String returns a human-readable representation of the stroke cap.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// StrokeJoin describes how stroke corners are drawn.
type StrokeJoin int

const (
	JoinMiter StrokeJoin = iota // Sharp corner (default)
	JoinRound                   // Rounded corner
	JoinBevel                   // Flattened corner
)

// String returns a human-readable representation of the stroke join.
func (j StrokeJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("StrokeJoin(%d)", int(j))
	}
}

// BlendMode controls how source and destination colors are composited.
// Values match Skia's SkBlendMode enum.
type BlendMode int

const (
	BlendModeClear   BlendMode = 0 // clear
	BlendModeSrc     BlendMode = 1 // src
	BlendModeSrcOver BlendMode = 3 // src_over
	BlendModeSrcIn   BlendMode = 5 // src_in
)

// String returns a human-readable representation of the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendModeClear:
		return "clear"
	case BlendModeSrc:
		return "src"
	case BlendModeSrcOver:
		return "src_over"
	case BlendModeSrcIn:
		return "src_in"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(b))
	}
}

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint draws nothing (BlendModeClear with Alpha 0).
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color       Color
	Style       PaintStyle // Fill, stroke, or both
	StrokeWidth float64    // Width of stroke in pixels

	// Stroke styling (only applies when Style includes stroke)
	StrokeCap  StrokeCap  // How endpoints are drawn; 0 = CapButt
	StrokeJoin StrokeJoin // How corners are drawn; 0 = JoinMiter
	MiterLimit float64    // Miter join limit before beveling; 0 defaults to 4.0

	// CornerRadius replaces every sharp corner of the geometry with a
	// quadratic curve of this radius before filling or stroking. 0 disables it.
	CornerRadius float64

	// Compositing
	BlendMode BlendMode // Compositing mode; negative defaults to BlendModeSrcOver
	Alpha     float64   // Overall opacity 0.0-1.0; negative defaults to 1.0
}

// DefaultPaint returns a basic opaque white fill paint with standard compositing.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		StrokeCap:   CapButt,
		StrokeJoin:  JoinMiter,
		MiterLimit:  4.0,
		BlendMode:   BlendModeSrcOver,
		Alpha:       1.0,
	}
}

// EffectiveBlendMode resolves the negative sentinel to src-over.
func (p Paint) EffectiveBlendMode() BlendMode {
	if p.BlendMode < 0 {
		return BlendModeSrcOver
	}
	return p.BlendMode
}

// EffectiveAlpha resolves the negative sentinel to 1 and clamps to [0, 1].
func (p Paint) EffectiveAlpha() float64 {
	switch {
	case p.Alpha < 0:
		return 1
	case p.Alpha > 1:
		return 1
	default:
		return p.Alpha
	}
}

// EffectiveMiterLimit resolves the zero value to 4.
func (p Paint) EffectiveMiterLimit() float64 {
	if p.MiterLimit <= 0 {
		return 4
	}
	return p.MiterLimit
}

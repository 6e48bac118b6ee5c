package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for filling or stroking arbitrary shapes.
// Interiors are computed with the nonzero winding rule.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Reset removes all commands from the path.
func (p *Path) Reset() {
	p.Commands = p.Commands[:0]
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		out.Commands[i] = PathCommand{
			Op:   cmd.Op,
			Args: append([]float64(nil), cmd.Args...),
		}
	}
	return out
}

// Bounds returns the bounding box of all points and control points.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	r := Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	seen := false
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			r.Left = math.Min(r.Left, x)
			r.Top = math.Min(r.Top, y)
			r.Right = math.Max(r.Right, x)
			r.Bottom = math.Max(r.Bottom, y)
			seen = true
		}
	}
	if !seen {
		return Rect{}
	}
	return r
}

// WithRoundedCorners returns a copy of the path in which every corner
// between two straight segments is replaced by a quadratic curve that starts
// and ends radius away from the corner (or half the adjacent segment,
// whichever is shorter) and uses the corner as its control point.
// Subpaths that contain curves are copied unchanged.
func (p *Path) WithRoundedCorners(radius float64) *Path {
	if p.IsEmpty() || radius <= 0 {
		return p.Clone()
	}
	out := NewPath()
	for _, sub := range splitSubpaths(p.Commands) {
		if !sub.straight {
			for _, cmd := range sub.commands {
				out.Commands = append(out.Commands, PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)})
			}
			continue
		}
		roundCorners(out, dedupe(sub.points, sub.closed), sub.closed, radius)
	}
	return out
}

type subpath struct {
	commands []PathCommand
	points   []Offset
	closed   bool
	straight bool
}

func splitSubpaths(cmds []PathCommand) []subpath {
	var subs []subpath
	var cur *subpath
	for _, cmd := range cmds {
		if cmd.Op == PathOpMoveTo || cur == nil {
			subs = append(subs, subpath{straight: true})
			cur = &subs[len(subs)-1]
		}
		cur.commands = append(cur.commands, cmd)
		switch cmd.Op {
		case PathOpMoveTo, PathOpLineTo:
			cur.points = append(cur.points, Offset{X: cmd.Args[0], Y: cmd.Args[1]})
		case PathOpQuadTo, PathOpCubicTo:
			cur.straight = false
		case PathOpClose:
			cur.closed = true
			cur = nil
		}
	}
	return subs
}

// dedupe drops consecutive duplicate points, including a closing point that
// repeats the first one.
func dedupe(pts []Offset, closed bool) []Offset {
	out := make([]Offset, 0, len(pts))
	for _, pt := range pts {
		if len(out) > 0 && out[len(out)-1] == pt {
			continue
		}
		out = append(out, pt)
	}
	if closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

func cornerStep(from, to Offset, radius float64) Offset {
	d := to.Sub(from)
	length := d.Length()
	if length == 0 {
		return Offset{}
	}
	return d.Scale(math.Min(radius/length, 0.5))
}

func roundCorners(out *Path, pts []Offset, closed bool, radius float64) {
	n := len(pts)
	switch {
	case n == 0:
		return
	case n == 1:
		out.MoveTo(pts[0].X, pts[0].Y)
		if closed {
			out.Close()
		}
		return
	case n == 2 || !closed:
		out.MoveTo(pts[0].X, pts[0].Y)
		for i := 1; i < n-1; i++ {
			v := pts[i]
			in := v.Add(cornerStep(v, pts[i-1], radius))
			after := v.Add(cornerStep(v, pts[i+1], radius))
			out.LineTo(in.X, in.Y)
			out.QuadTo(v.X, v.Y, after.X, after.Y)
		}
		out.LineTo(pts[n-1].X, pts[n-1].Y)
		if closed {
			out.Close()
		}
		return
	}
	start := pts[0].Add(cornerStep(pts[0], pts[1], radius))
	out.MoveTo(start.X, start.Y)
	for i := 1; i <= n; i++ {
		v := pts[i%n]
		in := v.Add(cornerStep(v, pts[i-1], radius))
		after := v.Add(cornerStep(v, pts[(i+1)%n], radius))
		out.LineTo(in.X, in.Y)
		out.QuadTo(v.X, v.Y, after.X, after.Y)
	}
	out.Close()
}

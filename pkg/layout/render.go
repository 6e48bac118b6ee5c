package layout

import "github.com/playdraft/hexagonview/pkg/graphics"

// RenderObject handles layout and painting.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
	IsRepaintBoundary() bool
}

// RenderBox is a RenderObject with box layout.
type RenderBox interface {
	RenderObject
}

// RenderBoxBase provides base behavior for render boxes.
type RenderBoxBase struct {
	size        graphics.Size
	owner       *PipelineOwner
	self        RenderObject
	needsLayout bool
	constraints Constraints
	needsPaint  bool
	layer       *graphics.DisplayList // recorded content for repaint boundaries
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize updates the render box size.
// A changed size marks paint dirty since the recorded content no longer fits.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// MarkNeedsLayout marks this render box as needing layout and schedules it
// with the owner.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true
	if r.owner != nil && r.self != nil {
		r.owner.ScheduleLayout(r.self)
	}
}

// MarkNeedsPaint marks this render box as needing paint and schedules it
// with the owner.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.needsPaint = true
	if r.owner != nil && r.self != nil {
		r.owner.SchedulePaint(r.self)
	}
}

// SetOwner assigns the pipeline owner for scheduling layout and paint.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

// SetSelf registers the concrete render object for scheduling.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
}

// NeedsLayout returns true if this render box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// IsRepaintBoundary returns whether this render object repaints separately.
// Override this in render objects that should isolate their paint.
func (r *RenderBoxBase) IsRepaintBoundary() bool {
	return false
}

// NeedsPaint returns true if this render box needs painting.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// Layer returns the recorded content of a repaint boundary.
func (r *RenderBoxBase) Layer() *graphics.DisplayList {
	return r.layer
}

// SetLayer stores the recorded content of a repaint boundary.
func (r *RenderBoxBase) SetLayer(layer *graphics.DisplayList) {
	r.layer = layer
}

// ClearNeedsPaint marks this render object as painted.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// Layout delegates to PerformLayout unless the box is clean and the
// constraints are unchanged.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	if r.self != nil && r.self.IsRepaintBoundary() && r.needsPaint && r.owner != nil {
		r.owner.SchedulePaint(r.self)
	}

	if !r.needsLayout && r.constraints == constraints {
		return
	}

	r.constraints = constraints
	r.needsLayout = false

	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

package layout

// PipelineOwner tracks render objects that need layout or paint.
//
// MarkNeedsLayout schedules the marked box here. FlushLayoutForRoot then lays
// out from the root, reaching every marked node.
type PipelineOwner struct {
	dirtyPaint    []RenderObject
	dirtyPaintSet map[RenderObject]struct{}
	needsLayout   bool
	needsPaint    bool
}

// ScheduleLayout marks the pipeline as needing layout. Layout always restarts
// from the root, so the object itself is not queued.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint queues a render object for paint. Objects are returned by
// FlushPaint in the order they were first scheduled.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if p.dirtyPaintSet == nil {
		p.dirtyPaintSet = make(map[RenderObject]struct{})
	}
	if _, exists := p.dirtyPaintSet[object]; exists {
		return
	}
	p.dirtyPaintSet[object] = struct{}{}
	p.dirtyPaint = append(p.dirtyPaint, object)
	p.needsPaint = true
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// FlushLayoutForRoot runs layout starting from the root.
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if !p.needsLayout || root == nil {
		return
	}
	root.Layout(constraints, false)
	p.needsLayout = false
}

// FlushPaint returns the scheduled render objects that still need paint.
func (p *PipelineOwner) FlushPaint() []RenderObject {
	dirty := p.dirtyPaint
	p.dirtyPaint = nil
	p.dirtyPaintSet = nil
	p.needsPaint = false

	var result []RenderObject
	for _, node := range dirty {
		if np, ok := node.(interface{ NeedsPaint() bool }); ok && np.NeedsPaint() {
			result = append(result, node)
		}
	}
	return result
}

package layout

// RenderObjectWidget is a widget backed directly by a render object.
type RenderObjectWidget interface {
	// CreateRenderObject returns a new render object configured from the widget.
	CreateRenderObject() RenderObject
	// UpdateRenderObject applies the widget's configuration to an existing
	// render object created by the same widget type.
	UpdateRenderObject(renderObject RenderObject)
}

package testing

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playdraft/hexagonview/pkg/errors"
	"github.com/playdraft/hexagonview/pkg/graphics"
	"github.com/playdraft/hexagonview/pkg/layout"
	"github.com/playdraft/hexagonview/pkg/testing/internal/testbed"
)

type paintCounter interface {
	PaintCount() int
}

func opNames(ops []DisplayOp) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Op
	}
	return names
}

func TestNewRenderTester_Defaults(t *testing.T) {
	tester := NewRenderTesterWithT(t)

	assert.Equal(t, graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}, tester.size)
	assert.Nil(t, tester.RenderObject())
	assert.Nil(t, tester.DisplayOps())
	assert.Nil(t, tester.LayerOps())
}

func TestNewRenderTester_InstallsHandler(t *testing.T) {
	prev := errors.DefaultHandler
	tester := NewRenderTester()
	assert.Same(t, tester.Handler(), errors.DefaultHandler)

	errors.Report(&errors.ViewError{Op: "test.op", Kind: errors.KindRender})
	require.Len(t, tester.Handler().Errors(), 1)
	assert.Equal(t, "test.op", tester.Handler().Errors()[0].Op)

	tester.Cleanup()
	assert.Equal(t, prev, errors.DefaultHandler)
}

func TestPumpWidget_TightByDefault(t *testing.T) {
	tester := NewRenderTesterWithT(t)
	tester.PumpWidget(testbed.LayoutBox{Width: 50, Height: 50})

	require.NotNil(t, tester.RenderObject())
	assert.Equal(t, graphics.Size{Width: 100, Height: 100}, tester.RenderObject().Size())
}

func TestPumpWidget_LooseConstraints(t *testing.T) {
	tester := NewRenderTesterWithT(t)
	loose := layout.Loose(graphics.Size{Width: 100, Height: 100})
	tester.SetConstraints(&loose)
	tester.PumpWidget(testbed.LayoutBox{Width: 50, Height: 40})

	assert.Equal(t, graphics.Size{Width: 50, Height: 40}, tester.RenderObject().Size())

	tester.SetConstraints(nil)
	tester.Pump()
	assert.Equal(t, graphics.Size{Width: 100, Height: 100}, tester.RenderObject().Size())
}

func TestPumpWidget_SameTypeUpdates(t *testing.T) {
	tester := NewRenderTesterWithT(t)
	loose := layout.Loose(graphics.Size{Width: 100, Height: 100})
	tester.SetConstraints(&loose)

	tester.PumpWidget(testbed.LayoutBox{Width: 10, Height: 10})
	first := tester.RenderObject()

	tester.PumpWidget(testbed.LayoutBox{Width: 20, Height: 30})
	assert.Same(t, first, tester.RenderObject())
	assert.Equal(t, graphics.Size{Width: 20, Height: 30}, first.Size())
}

func TestSetSize_Relayouts(t *testing.T) {
	tester := NewRenderTesterWithT(t)
	tester.PumpWidget(testbed.LayoutBox{Width: 10, Height: 10})

	tester.SetSize(graphics.Size{Width: 64, Height: 32})
	tester.Pump()
	assert.Equal(t, graphics.Size{Width: 64, Height: 32}, tester.RenderObject().Size())
}

func TestDisplayOps_PaintsRoot(t *testing.T) {
	tester := NewRenderTesterWithT(t)
	tester.PumpWidget(testbed.LayoutBox{Width: 10, Height: 10, Color: graphics.ColorRed})

	ops := tester.DisplayOps()
	assert.Equal(t, []string{"save", "translate", "drawRect", "restore"}, opNames(ops))
	assert.Equal(t, "0xFFFF0000", ops[2].Params["color"])
	assert.Equal(t, "fill", ops[2].Params["style"])
	assert.Nil(t, tester.LayerOps())
}

func TestRepaintBoundary_ReplaysLayer(t *testing.T) {
	tester := NewRenderTesterWithT(t)
	tester.PumpWidget(testbed.LayoutBox{Width: 10, Height: 10, Color: graphics.ColorRed, Boundary: true})

	counter := tester.RenderObject().(paintCounter)
	assert.Equal(t, 1, counter.PaintCount(), "pump records the layer")

	layer := tester.LayerOps()
	require.Len(t, layer, 1)
	assert.Equal(t, "drawRect", layer[0].Op)

	ops := tester.DisplayOps()
	assert.Equal(t, []string{"save", "translate", "drawRect", "restore"}, opNames(ops))
	assert.Equal(t, 1, counter.PaintCount(), "clean layer is replayed without painting")

	tester.Pump()
	assert.Equal(t, 1, counter.PaintCount(), "nothing dirty")

	tester.PumpWidget(testbed.LayoutBox{Width: 10, Height: 10, Color: graphics.ColorGreen, Boundary: true})
	assert.Equal(t, 2, counter.PaintCount())
	assert.Equal(t, "0xFF00FF00", tester.LayerOps()[0].Params["color"])
}

func TestRasterize(t *testing.T) {
	tester := NewRenderTesterWithT(t)
	loose := layout.Loose(graphics.Size{Width: 100, Height: 100})
	tester.SetConstraints(&loose)
	tester.PumpWidget(testbed.LayoutBox{Width: 50, Height: 50, Color: graphics.ColorRed})

	img := tester.Rasterize(graphics.ColorBlue)
	require.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, img.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{B: 0xFF, A: 0xFF}, img.RGBAAt(75, 75))
}

func TestRasterize_Empty(t *testing.T) {
	tester := NewRenderTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 4, Height: 4})

	img := tester.Rasterize(graphics.ColorWhite)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, img.RGBAAt(3, 3))
}

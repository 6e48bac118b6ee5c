// Package testing lays out and paints render object widgets without a host.
//
// # Quick Start
//
// Create a tester, pump a widget, and inspect what it drew:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := hexagontest.NewRenderTesterWithT(t)
//	    tester.SetSize(graphics.Size{Width: 100, Height: 100})
//	    tester.PumpWidget(widgets.HexagonImage{Source: img})
//
//	    ops := tester.DisplayOps()
//	    pixels := tester.Rasterize(graphics.ColorBlue)
//	}
//
// # Snapshot Testing
//
// Capture and compare display list snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_widget.snapshot.json")
//
// Update snapshots with:
//
//	HEXAGON_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import hexagontest "github.com/playdraft/hexagonview/pkg/testing"
package testing

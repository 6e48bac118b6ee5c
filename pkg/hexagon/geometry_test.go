package hexagon_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playdraft/hexagonview/pkg/graphics"
	"github.com/playdraft/hexagonview/pkg/hexagon"
)

func pts(xy ...int) [hexagon.VertexCount]image.Point {
	var out [hexagon.VertexCount]image.Point
	for i := range out {
		out[i] = image.Pt(xy[2*i], xy[2*i+1])
	}
	return out
}

func TestComputeHexagon_KnownSizes(t *testing.T) {
	tests := []struct {
		name           string
		height, border int
		want           [hexagon.VertexCount]image.Point
	}{
		{"100 with border 10", 100, 10, pts(50, 5, 11, 26, 11, 64, 50, 95, 89, 64, 89, 26)},
		{"100 without border", 100, 0, pts(50, 0, 7, 29, 7, 71, 50, 100, 93, 71, 93, 29)},
		{"odd height", 101, 0, pts(50, 0, 6, 29, 6, 72, 50, 101, 94, 72, 94, 29)},
		{"small", 20, 5, pts(10, 2, 3, 5, 3, 10, 10, 18, 17, 10, 17, 5)},
		{"200 with border 20", 200, 20, pts(100, 10, 22, 52, 22, 128, 100, 190, 178, 128, 178, 52)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hex := hexagon.ComputeHexagon(tt.height, tt.border)
			assert.Equal(t, tt.want, hex.Vertices)
			assert.Equal(t, graphics.RectFromLTWH(0, 0, float64(tt.height), float64(tt.height)), hex.Bounds)
		})
	}
}

func TestComputeHexagon_Deterministic(t *testing.T) {
	assert.Equal(t, hexagon.ComputeHexagon(137, 9), hexagon.ComputeHexagon(137, 9))
}

func TestComputeHexagon_Degenerate(t *testing.T) {
	tests := []struct {
		name           string
		height, border int
		center         int
		side           float64
	}{
		{"zero height", 0, 10, 0, 0},
		{"negative height", -5, 0, 0, 0},
		{"negative border", 50, -1, 25, 50},
		{"border larger than height", 50, 51, 25, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hex := hexagon.ComputeHexagon(tt.height, tt.border)
			require.True(t, hex.IsDegenerate())
			for _, v := range hex.Vertices {
				assert.Equal(t, image.Pt(tt.center, tt.center), v)
			}
			assert.Equal(t, tt.side, hex.Bounds.Width())
			assert.Equal(t, tt.side, hex.Bounds.Height())
		})
	}
}

func TestComputeHexagon_HorizontalMirror(t *testing.T) {
	for h := 1; h <= 160; h++ {
		for b := 0; b <= h; b += 3 {
			hex := hexagon.ComputeHexagon(h, b)
			v := hex.Vertices
			c := h / 2
			assert.Equal(t, c, v[hexagon.Top].X)
			assert.Equal(t, c, v[hexagon.Bottom].X)
			assert.Equal(t, c-v[hexagon.UpperLeft].X, v[hexagon.UpperRight].X-c, "h=%d b=%d", h, b)
			assert.Equal(t, c-v[hexagon.LowerLeft].X, v[hexagon.LowerRight].X-c, "h=%d b=%d", h, b)
			assert.Equal(t, v[hexagon.UpperLeft].Y, v[hexagon.UpperRight].Y)
			assert.Equal(t, v[hexagon.LowerLeft].Y, v[hexagon.LowerRight].Y)
			assert.Equal(t, h, v[hexagon.Top].Y+v[hexagon.Bottom].Y, "top and bottom inset equally")
		}
	}
}

func TestComputeHexagon_VerticalMirrorWithoutBorder(t *testing.T) {
	for h := 1; h <= 200; h++ {
		v := hexagon.ComputeHexagon(h, 0).Vertices
		assert.Equal(t, v[hexagon.UpperLeft].Y, h-v[hexagon.LowerLeft].Y, "h=%d", h)
	}
}

func TestComputeHexagon_Convex(t *testing.T) {
	for h := 20; h <= 200; h++ {
		for b := 0; b <= h/4; b++ {
			v := hexagon.ComputeHexagon(h, b).Vertices
			for i := range v {
				prev := v[(i+hexagon.VertexCount-1)%hexagon.VertexCount]
				next := v[(i+1)%hexagon.VertexCount]
				cross := (v[i].X-prev.X)*(next.Y-v[i].Y) - (v[i].Y-prev.Y)*(next.X-v[i].X)
				require.Negative(t, cross, "h=%d b=%d vertex %d", h, b, i)
			}
		}
	}
}

func TestComputeHexagon_InsideViewport(t *testing.T) {
	for h := 1; h <= 120; h++ {
		for b := 0; b <= h/3; b++ {
			hex := hexagon.ComputeHexagon(h, b)
			for _, v := range hex.Vertices {
				assert.GreaterOrEqual(t, v.X, 0)
				assert.LessOrEqual(t, v.X, h)
				assert.GreaterOrEqual(t, v.Y, 0)
				assert.LessOrEqual(t, v.Y, h)
			}
		}
	}
}

func TestHexagon_Path(t *testing.T) {
	hex := hexagon.ComputeHexagon(100, 10)
	p := hex.Path()

	require.Len(t, p.Commands, 7)
	assert.Equal(t, graphics.PathOpMoveTo, p.Commands[0].Op)
	for i, v := range hex.Vertices {
		cmd := p.Commands[i]
		if i > 0 {
			assert.Equal(t, graphics.PathOpLineTo, cmd.Op)
		}
		assert.Equal(t, []float64{float64(v.X), float64(v.Y)}, cmd.Args)
	}
	assert.Equal(t, graphics.PathOpClose, p.Commands[6].Op)
	assert.Equal(t, graphics.Rect{Left: 11, Top: 5, Right: 89, Bottom: 95}, p.Bounds())
}

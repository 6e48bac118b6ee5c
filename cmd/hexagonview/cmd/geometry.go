package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/playdraft/hexagonview/pkg/config"
	"github.com/playdraft/hexagonview/pkg/hexagon"
)

var vertexNames = [hexagon.VertexCount]string{
	hexagon.Top:        "top",
	hexagon.UpperLeft:  "upper-left",
	hexagon.LowerLeft:  "lower-left",
	hexagon.Bottom:     "bottom",
	hexagon.LowerRight: "lower-right",
	hexagon.UpperRight: "upper-right",
}

func init() {
	RegisterCommand(&Command{
		Name:  "geometry",
		Short: "Print the hexagon vertices for a size",
		Long: `Print the six hexagon vertices computed for a viewport height and border
thickness, in drawing order starting at the top.`,
		Usage: "hexagonview geometry --size N [--border N] [--json]",
		Flags: geometryFlags,
		Run:   runGeometry,
	})
}

func geometryFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("geometry", pflag.ContinueOnError)
	fs.IntP("size", "s", 0, "viewport height in pixels")
	fs.IntP("border", "b", config.DefaultBorderSize, "border thickness in pixels")
	fs.Bool("json", false, "print JSON instead of text")
	return fs
}

type vertexJSON struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func runGeometry(flags *pflag.FlagSet, args []string, out io.Writer) error {
	if !flags.Changed("size") {
		return fmt.Errorf("--size is required\n\nUsage: hexagonview geometry --size N")
	}
	size, _ := flags.GetInt("size")
	border, _ := flags.GetInt("border")
	asJSON, _ := flags.GetBool("json")

	hex := hexagon.ComputeHexagon(size, border)

	if asJSON {
		vertices := make([]vertexJSON, 0, hexagon.VertexCount)
		for i, v := range hex.Vertices {
			vertices = append(vertices, vertexJSON{Name: vertexNames[i], X: v.X, Y: v.Y})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"size":       size,
			"border":     border,
			"degenerate": hex.IsDegenerate(),
			"vertices":   vertices,
		})
	}

	for i, v := range hex.Vertices {
		fmt.Fprintf(out, "%-12s %d,%d\n", vertexNames[i], v.X, v.Y)
	}
	if hex.IsDegenerate() {
		fmt.Fprintln(out, "(degenerate)")
	}
	return nil
}

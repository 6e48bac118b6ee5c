package cmd

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/playdraft/hexagonview/pkg/config"
	"github.com/playdraft/hexagonview/pkg/errors"
	"github.com/playdraft/hexagonview/pkg/graphics"
	"github.com/playdraft/hexagonview/pkg/layout"
	"github.com/playdraft/hexagonview/pkg/raster"
	"github.com/playdraft/hexagonview/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render an image into a hexagon PNG",
		Long: `Decode an image, mask it into a hexagon with a rounded border and
write the result as PNG.

Supported input formats: png, jpeg, gif, webp, bmp, tiff.

Options are read from the YAML file given by --config (missing files use the
defaults: border_size 10, border_color white, filter_quality low). Flags that
are set explicitly override the file.`,
		Usage: "hexagonview render [--config FILE] [--size N] [--border N] [--border-color C] [--background C] [--quality Q] <in> <out.png>",
		Flags: renderFlags,
		Run:   runRender,
	})
}

func renderFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	fs.StringP("config", "c", "hexagon.yaml", "YAML options file")
	fs.IntP("size", "s", 0, "output side in pixels (default: input height)")
	fs.IntP("border", "b", config.DefaultBorderSize, "border thickness in pixels")
	fs.String("border-color", config.DefaultBorderColor, "border color (any CSS color)")
	fs.String("background", "transparent", "color behind the hexagon")
	fs.StringP("quality", "q", config.DefaultFilterQuality, "image sampling: none, low, medium or high")
	return fs
}

func runRender(flags *pflag.FlagSet, args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("input and output paths are required\n\nUsage: hexagonview render <in> <out.png>")
	}
	in, outPath := args[0], args[1]

	cfg, err := renderConfig(flags)
	if err != nil {
		return err
	}
	size, _ := flags.GetInt("size")
	if size < 0 {
		return errors.Wrap("render", errors.KindConfig, fmt.Errorf("--size must be >= 0, got %d", size))
	}
	bgName, _ := flags.GetString("background")
	background, err := graphics.ParseColor(bgName)
	if err != nil {
		return errors.Wrap("render", errors.KindConfig, fmt.Errorf("--background: %w", err))
	}

	src, format, err := decodeFile(in)
	if err != nil {
		return err
	}
	log.Debug().Str("tag", errors.LogTag).Str("in", in).Str("format", format).
		Int("width", src.Bounds().Dx()).Int("height", src.Bounds().Dy()).Msg("decoded source")

	widget, err := widgets.WidgetFromConfig(cfg, src)
	if err != nil {
		return err
	}
	side := size
	if side == 0 {
		side = src.Bounds().Dy()
	}
	dst := Rasterize(widget, side, background)

	if err := encodeFile(outPath, dst); err != nil {
		return err
	}
	log.Info().Str("tag", errors.LogTag).Str("out", outPath).Int("size", side).
		Int("border", cfg.BorderSize).Str("quality", cfg.FilterQuality).Msg("rendered")
	fmt.Fprintln(out, outPath)
	return nil
}

// renderConfig loads the config file and applies the flags that were set on
// the command line.
func renderConfig(flags *pflag.FlagSet) (config.Config, error) {
	path, _ := flags.GetString("config")
	var (
		cfg config.Config
		err error
	)
	if flags.Changed("config") {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOptional(path)
	}
	if err != nil {
		return config.Config{}, err
	}
	if flags.Changed("border") {
		cfg.BorderSize, _ = flags.GetInt("border")
	}
	if flags.Changed("border-color") {
		cfg.BorderColor, _ = flags.GetString("border-color")
	}
	if flags.Changed("quality") {
		cfg.FilterQuality, _ = flags.GetString("quality")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Rasterize lays widget out in a side x side box and paints it over
// background with the software canvas.
func Rasterize(widget widgets.HexagonImage, side int, background graphics.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	canvas := raster.NewCanvas(dst)
	canvas.Clear(background)
	if side <= 0 {
		return dst
	}

	owner := &layout.PipelineOwner{}
	root := widget.CreateRenderObject()
	root.SetOwner(owner)
	owner.ScheduleLayout(root)
	owner.FlushLayoutForRoot(root, layout.Tight(graphics.Size{Width: float64(side), Height: float64(side)}))

	ctx := &layout.PaintContext{Canvas: canvas}
	ctx.PaintChild(root, graphics.Offset{})
	return dst
}

func decodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrap("render.decode", errors.KindIO, err)
	}
	defer f.Close()
	img, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, "", errors.Wrap("render.decode", errors.KindDecode, fmt.Errorf("%s: %w", path, err))
	}
	return img, format, nil
}

func encodeFile(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap("render.encode", errors.KindIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap("render.encode", errors.KindIO, cerr)
		}
	}()
	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap("render.encode", errors.KindIO, err)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap("render.encode", errors.KindIO, err)
	}
	return nil
}

// Command svgpath parses SVG path data and prints or renders the result.
//
// Usage:
//
//	svgpath [flags] [path-data]
//
// Path data comes from the first argument, or from -file. Modes:
//
//	segments   one segment per line (default)
//	normalize  absolute path data with arcs converted to cubics
//	bounds     bounding box, its size and subpath count
//	png        fill the path into -output
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/svgpath"
	"github.com/gogpu/svgpath/raster"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("svgpath: %v", err)
	}
}

// config holds the parsed command line.
type config struct {
	file    string
	mode    string
	output  string
	width   int
	height  int
	scale   float64
	rotate  float64
	dx, dy  float64
	fill    string
	verbose bool
}

func parseFlags(args []string) (config, []string, error) {
	var cfg config
	fs := flag.NewFlagSet("svgpath", flag.ContinueOnError)
	fs.StringVar(&cfg.file, "file", "", "read path data from `file` (- for stdin)")
	fs.StringVar(&cfg.mode, "mode", "segments", "output mode: segments, normalize, bounds or png")
	fs.StringVar(&cfg.output, "output", "path.png", "output file for png mode")
	fs.IntVar(&cfg.width, "width", 256, "image width for png mode")
	fs.IntVar(&cfg.height, "height", 256, "image height for png mode")
	fs.Float64Var(&cfg.scale, "scale", 1, "scale applied after the offset in png mode")
	fs.Float64Var(&cfg.rotate, "rotate", 0, "rotation in degrees applied after the offset in png mode")
	fs.Float64Var(&cfg.dx, "dx", 0, "horizontal offset in path units for png mode")
	fs.Float64Var(&cfg.dy, "dy", 0, "vertical offset in path units for png mode")
	fs.StringVar(&cfg.fill, "fill", "#1e90ff", "fill color for png mode, as #rrggbb or #rgb")
	fs.BoolVar(&cfg.verbose, "v", false, "log tolerated input at debug level to stderr")
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}
	return cfg, fs.Args(), nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, rest, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if cfg.verbose {
		svgpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	d, err := pathData(cfg, rest, stdin)
	if err != nil {
		return err
	}
	p := svgpath.Parse(d)

	switch cfg.mode {
	case "segments":
		return writeSegments(stdout, p)
	case "normalize":
		_, err := fmt.Fprintln(stdout, p.String())
		return err
	case "bounds":
		b := p.Bounds()
		_, err := fmt.Fprintf(stdout, "min %g,%g max %g,%g size %gx%g subpaths %d\n",
			b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, b.Width(), b.Height(), p.Subpaths())
		return err
	case "png":
		return writePNG(cfg, p)
	}
	return fmt.Errorf("unknown mode %q", cfg.mode)
}

// pathData returns the path data from -file or the first argument.
func pathData(cfg config, rest []string, stdin io.Reader) (string, error) {
	if cfg.file == "" {
		if len(rest) == 0 {
			return "", errors.New("no path data: pass it as an argument or use -file")
		}
		return rest[0], nil
	}
	if cfg.file == "-" {
		return decodeText(stdin)
	}
	f, err := os.Open(cfg.file)
	if err != nil {
		return "", fmt.Errorf("open path data: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return decodeText(f)
}

// decodeText reads r as text, honoring a UTF-8 or UTF-16 byte order mark.
// Input without a mark is taken as UTF-8.
func decodeText(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", fmt.Errorf("read path data: %w", err)
	}
	return string(b), nil
}

func writeSegments(w io.Writer, p *svgpath.Path) error {
	for _, seg := range p.Segments() {
		var err error
		switch s := seg.(type) {
		case svgpath.MoveTo:
			_, err = fmt.Fprintf(w, "MoveTo %g,%g\n", s.Point.X, s.Point.Y)
		case svgpath.LineTo:
			_, err = fmt.Fprintf(w, "LineTo %g,%g\n", s.Point.X, s.Point.Y)
		case svgpath.QuadTo:
			_, err = fmt.Fprintf(w, "QuadTo %g,%g %g,%g\n",
				s.Control.X, s.Control.Y, s.Point.X, s.Point.Y)
		case svgpath.CubicTo:
			_, err = fmt.Fprintf(w, "CubicTo %g,%g %g,%g %g,%g\n",
				s.Control1.X, s.Control1.Y, s.Control2.X, s.Control2.Y, s.Point.X, s.Point.Y)
		case svgpath.Close:
			_, err = fmt.Fprintln(w, "Close")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writePNG(cfg config, p *svgpath.Path) error {
	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", cfg.width, cfg.height)
	}
	c, err := parseHexColor(cfg.fill)
	if err != nil {
		return err
	}
	img := image.NewRGBA(image.Rect(0, 0, cfg.width, cfg.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	m := svgpath.Scale(cfg.scale, cfg.scale).
		Multiply(svgpath.Rotate(cfg.rotate * math.Pi / 180)).
		Multiply(svgpath.Translate(cfg.dx, cfg.dy))
	raster.Fill(img, p, m, c)
	if err := raster.SavePNG(cfg.output, img); err != nil {
		return err
	}
	log.Printf("Path saved to %s (%dx%d)\n", cfg.output, cfg.width, cfg.height)
	return nil
}

// parseHexColor parses a #rrggbb or #rgb color.
func parseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

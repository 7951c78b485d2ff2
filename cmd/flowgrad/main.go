// Command flowgrad renders gradient textures to image files or previews
// them in a true-color terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/flowgrad"
	"github.com/gogpu/flowgrad/internal/preview"
)

func main() {
	var (
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 600, "image height")
		output     = flag.String("output", "gradient.png", "output file (.png, .bmp, .tif)")
		paramsPath = flag.String("params", "", "JSON parameter file")
		preset     = flag.String("preset", "", "color preset (see -list)")
		randColors = flag.Int64("randomize-colors", 0, "replace colors with a random palette from this seed")
		randBlend  = flag.Uint("randomize-blending", 0, "randomize blending parameters from this seed")
		creativity = flag.Float64("creativity", flowgrad.DefaultCreativity, "range scale for -randomize-blending")
		mode       = flag.String("mode", "", "blend mode override (see -list)")
		seed       = flag.Uint("seed", 0, "seed override")
		threshold  = flag.Int("threshold", flowgrad.DefaultParallelThreshold, "pixel count above which rendering runs in parallel")
		showTerm   = flag.Bool("preview", false, "show the result in the terminal instead of writing a file")
		dump       = flag.Bool("dump-params", false, "print the effective parameters as JSON and exit")
		list       = flag.Bool("list", false, "list presets and blend modes and exit")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	flowgrad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *list {
		printList(os.Stdout)
		return
	}

	g := flowgrad.New(flowgrad.WithParallelThreshold(*threshold))
	defer g.Close()

	if *paramsPath != "" {
		data, err := os.ReadFile(*paramsPath)
		if err != nil {
			log.Fatalf("Failed to read params: %v", err)
		}
		if err := g.UpdateParamsJSON(data); err != nil {
			log.Fatalf("Invalid params: %v", err)
		}
	}
	if *preset != "" {
		if err := g.ApplyPreset(*preset); err != nil {
			log.Fatalf("Failed to apply preset: %v", err)
		}
	}
	if set["mode"] || set["seed"] {
		p := g.Params()
		if set["mode"] {
			p.BlendMode = *mode
		}
		if set["seed"] {
			p.Seed = uint32(*seed) //nolint:gosec // seeds are 32-bit
		}
		g.UpdateParams(p)
	}
	if set["randomize-blending"] {
		g.RandomizeWithCreativity(uint32(*randBlend), *creativity) //nolint:gosec // seeds are 32-bit
	}
	if set["randomize-colors"] {
		g.RandomizeColors(*randColors)
	}

	if *dump {
		data, err := g.ParamsJSON()
		if err != nil {
			log.Fatalf("Failed to encode params: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	start := time.Now()
	img, err := g.Image(*width, *height)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	elapsed := time.Since(start)

	if *showTerm {
		screen, err := tcell.NewScreen()
		if err != nil {
			log.Fatalf("Failed to open terminal: %v", err)
		}
		if err := preview.Run(screen, img); err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
		return
	}

	if err := flowgrad.SaveImage(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Gradient saved to %s (%dx%d, %s mode, %v)\n",
		*output, *width, *height, g.Mode(), elapsed.Round(time.Microsecond))
}

func printList(w io.Writer) {
	title := cases.Title(language.English)

	fmt.Fprintln(w, "Presets:")
	for _, name := range flowgrad.Presets() {
		colors, err := flowgrad.Preset(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "  %-8s %s", name, title.String(name))
		for _, c := range colors {
			fmt.Fprintf(w, " %s", c.Hex())
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Blend modes:")
	for _, m := range flowgrad.BlendModes() {
		fmt.Fprintf(w, "  %-8s %s\n", m, title.String(m.String()))
	}
}

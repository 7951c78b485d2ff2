package flowgrad

import (
	"fmt"
	"slices"
)

// presets holds the built-in palettes, six colors each.
var presets = map[string][]string{
	"sunset": {"#2d0b00", "#ffb347", "#ff5e13", "#ffd580", "#6e00ff", "#00ffd0"},
	"ocean":  {"#0abde3", "#006ba6", "#0c2461", "#1e3799", "#74b9ff", "#00cec9"},
	"forest": {"#00d2d3", "#54a0ff", "#5f27cd", "#00b894", "#55a3ff", "#26de81"},
	"cosmic": {"#6c5ce7", "#fd79a8", "#a55eea", "#fff700", "#00fff7", "#e84393"},
	"fire":   {"#ff3838", "#ff9500", "#ffdd59", "#ff6348", "#e17055", "#d63031"},
	"ice":    {"#7bed9f", "#70a1ff", "#5352ed", "#40407a", "#74b9ff", "#a29bfe"},
	"earth":  {"#2c2c54", "#40407a", "#706fd3", "#f7f1e3", "#6c5ce7", "#fdcb6e"},
	"neon":   {"#ff006e", "#8338ec", "#3a86ff", "#06ffa5", "#fd79a8", "#fdcb6e"},
}

// Presets returns the names of the built-in palettes, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Preset returns the colors of a built-in palette.
func Preset(name string) ([]RGBA, error) {
	hexes, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	colors := make([]RGBA, len(hexes))
	for i, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

// ApplyPreset replaces the color stops with a built-in palette, keeping the
// current stop count. Palettes shorter than the count repeat from the start.
func (g *Generator) ApplyPreset(name string) error {
	colors, err := Preset(name)
	if err != nil {
		return err
	}
	p := g.Params()
	p.Colors = cycle(colors, stopCount(len(p.Colors)))
	g.UpdateParams(p)
	return nil
}

// stopCount clamps n into [MinColors, MaxColors].
func stopCount(n int) int {
	return min(max(n, MinColors), MaxColors)
}

func cycle(colors []RGBA, n int) []RGBA {
	out := make([]RGBA, n)
	for i := range out {
		out[i] = colors[i%len(colors)]
	}
	return out
}

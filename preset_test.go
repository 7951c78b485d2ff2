package flowgrad

import (
	"errors"
	"slices"
	"testing"
)

func TestPresets(t *testing.T) {
	want := []string{"cosmic", "earth", "fire", "forest", "ice", "neon", "ocean", "sunset"}
	if got := Presets(); !slices.Equal(got, want) {
		t.Errorf("Presets() = %v, want %v", got, want)
	}

	for _, name := range want {
		colors, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q) error = %v", name, err)
		}
		if len(colors) != 6 {
			t.Errorf("Preset(%q) has %d colors, want 6", name, len(colors))
		}
		for i, c := range colors {
			if c.A != 1 {
				t.Errorf("Preset(%q)[%d] alpha = %v, want 1", name, i, c.A)
			}
		}
	}
}

func TestPreset_Values(t *testing.T) {
	colors, err := Preset("fire")
	if err != nil {
		t.Fatalf("Preset() error = %v", err)
	}
	if got := colors[0].Hex(); got != "#ff3838" {
		t.Errorf("fire[0] = %s, want #ff3838", got)
	}
	if got := colors[5].Hex(); got != "#d63031" {
		t.Errorf("fire[5] = %s, want #d63031", got)
	}
}

func TestPreset_Unknown(t *testing.T) {
	if _, err := Preset("lava"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Preset(lava) error = %v, want ErrUnknownPreset", err)
	}

	g := New()
	defer g.Close()
	before := g.Params()
	if err := g.ApplyPreset("lava"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ApplyPreset(lava) error = %v, want ErrUnknownPreset", err)
	}
	after := g.Params()
	if !slices.Equal(after.Colors, before.Colors) {
		t.Error("failed ApplyPreset changed the colors")
	}
}

func TestApplyPreset_KeepsStopCount(t *testing.T) {
	ocean, err := Preset("ocean")
	if err != nil {
		t.Fatalf("Preset() error = %v", err)
	}

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"default four", 4, 4},
		{"single stop grows to two", 1, 2},
		{"eight cycles the palette", 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.Colors = cycle(p.Colors, tt.count)
			g := New(WithParams(p))
			defer g.Close()

			if err := g.ApplyPreset("ocean"); err != nil {
				t.Fatalf("ApplyPreset() error = %v", err)
			}
			got := g.Params().Colors
			if len(got) != tt.want {
				t.Fatalf("len(Colors) = %d, want %d", len(got), tt.want)
			}
			for i, c := range got {
				if c != ocean[i%len(ocean)] {
					t.Errorf("Colors[%d] = %v, want %v", i, c, ocean[i%len(ocean)])
				}
			}
		})
	}
}

func TestApplyPreset_KeepsComposition(t *testing.T) {
	p := DefaultParams()
	p.Seed = 1234
	p.BlendMode = "vortex"
	p.Zoom = 3
	g := New(WithParams(p))
	defer g.Close()

	if err := g.ApplyPreset("neon"); err != nil {
		t.Fatalf("ApplyPreset() error = %v", err)
	}
	got := g.Params()
	if got.Seed != 1234 || got.Mode() != BlendVortex || got.Zoom != 3 {
		t.Errorf("ApplyPreset changed non-color params: %+v", got)
	}
}

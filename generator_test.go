package flowgrad

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

// defaultFixture is Generate(2, 2) with DefaultParams.
var defaultFixture = []byte{
	207, 90, 56, 255,
	111, 66, 68, 255,
	248, 100, 51, 255,
	53, 51, 76, 255,
}

func TestGenerate_DefaultFixture(t *testing.T) {
	g := New()
	defer g.Close()

	got, err := g.Generate(2, 2)
	if err != nil {
		t.Fatalf("Generate(2, 2) error = %v", err)
	}
	if !bytes.Equal(got, defaultFixture) {
		t.Errorf("Generate(2, 2) = %v, want %v", got, defaultFixture)
	}
}

func TestGenerate_Length(t *testing.T) {
	g := New()
	defer g.Close()

	tests := []struct {
		w, h int
		want int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{10, 0, 0},
		{1, 1, 4},
		{3, 5, 60},
		{17, 9, 612},
	}
	for _, tt := range tests {
		buf, err := g.Generate(tt.w, tt.h)
		if err != nil {
			t.Fatalf("Generate(%d, %d) error = %v", tt.w, tt.h, err)
		}
		if buf == nil || len(buf) != tt.want {
			t.Errorf("Generate(%d, %d) len = %d (nil=%v), want %d", tt.w, tt.h, len(buf), buf == nil, tt.want)
		}
	}
}

func TestGenerate_InvalidSize(t *testing.T) {
	g := New()
	defer g.Close()

	tests := []struct {
		name string
		w, h int
	}{
		{"negative width", -1, 4},
		{"negative height", 4, -1},
		{"overflow", math.MaxInt / 2, 3},
		{"overflow square", math.MaxInt / 3, math.MaxInt / 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.Generate(tt.w, tt.h); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("Generate(%d, %d) error = %v, want ErrInvalidSize", tt.w, tt.h, err)
			}
		})
	}
}

func TestFill(t *testing.T) {
	g := New()
	defer g.Close()

	want, _ := g.Generate(5, 3)
	dst := bytes.Repeat([]byte{0xAA}, 5*3*4)
	if err := g.Fill(dst, 5, 3); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if !bytes.Equal(dst, want) {
		t.Error("Fill() differs from Generate()")
	}

	if err := g.Fill(make([]byte, 10), 5, 3); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Fill() with short buffer error = %v, want ErrInvalidSize", err)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, mode := range BlendModes() {
		t.Run(mode.String(), func(t *testing.T) {
			p := DefaultParams()
			p.BlendMode = mode.String()
			p.CanvasRotation = 33
			p.Zoom = 1.7
			p.OffsetX, p.OffsetY = 120, -80

			a := New(WithParams(p))
			b := New(WithParams(p))
			defer a.Close()
			defer b.Close()

			ba, _ := a.Generate(37, 23)
			bb, _ := b.Generate(37, 23)
			ba2, _ := a.Generate(37, 23)
			if !bytes.Equal(ba, bb) || !bytes.Equal(ba, ba2) {
				t.Error("identical parameters produced different buffers")
			}
		})
	}
}

// fillBoth renders with the sequential and the parallel path directly.
func fillBoth(t *testing.T, g *Generator, w, h int) (seq, par []byte) {
	t.Helper()
	seq = make([]byte, w*h*4)
	par = make([]byte, w*h*4)
	fillSequential(g.field, seq, w, h)
	g.fillParallel(par, w, h)
	return seq, par
}

func TestFillPaths_Identical(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1},
		{3, 7},
		{64, 64},
		{61, 33},
	}
	for _, mode := range BlendModes() {
		p := DefaultParams()
		p.BlendMode = mode.String()
		p.CanvasRotation = 15
		g := New(WithParams(p), WithWorkers(4))
		for _, s := range sizes {
			seq, par := fillBoth(t, g, s.w, s.h)
			if !bytes.Equal(seq, par) {
				t.Errorf("%s %dx%d: sequential and parallel fills differ", mode, s.w, s.h)
			}
		}
		g.Close()
	}
}

func TestFillPaths_IdenticalLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("large fill skipped in short mode")
	}
	p := DefaultParams()
	p.BlendMode = "vortex"
	g := New(WithParams(p))
	defer g.Close()

	seq, par := fillBoth(t, g, 1024, 1024)
	if !bytes.Equal(seq, par) {
		t.Error("1024x1024: sequential and parallel fills differ")
	}

	// Generate picks the parallel path for this size.
	got, _ := g.Generate(1024, 1024)
	if !bytes.Equal(got, seq) {
		t.Error("Generate(1024, 1024) differs from the sequential fill")
	}
}

func TestGenerate_ThresholdDoesNotChangeOutput(t *testing.T) {
	seqGen := New(WithParallelThreshold(math.MaxInt))
	parGen := New(WithParallelThreshold(0), WithWorkers(3))
	defer seqGen.Close()
	defer parGen.Close()

	a, _ := seqGen.Generate(40, 30)
	b, _ := parGen.Generate(40, 30)
	if !bytes.Equal(a, b) {
		t.Error("parallel threshold changed the output")
	}
	if parGen.ParallelThreshold() != 0 {
		t.Errorf("ParallelThreshold() = %d, want 0", parGen.ParallelThreshold())
	}
}

func TestGenerate_AfterClose(t *testing.T) {
	g := New(WithParallelThreshold(0))
	want, _ := g.Generate(16, 16)
	g.Close()
	got, err := g.Generate(16, 16)
	if err != nil || !bytes.Equal(got, want) {
		t.Errorf("Generate after Close: err = %v, equal = %v", err, bytes.Equal(got, want))
	}

	closedEarly := New(WithParallelThreshold(0))
	closedEarly.Close()
	if got, _ := closedEarly.Generate(16, 16); !bytes.Equal(got, want) {
		t.Error("generator closed before its first fill rendered different bytes")
	}
}

func TestGenerate_SingleStop(t *testing.T) {
	p := DefaultParams()
	p.Colors = []RGBA{{0.2, 0.4, 0.6, 0.8}}
	p.BlendMode = "vortex"
	g := New(WithParams(p))
	defer g.Close()

	buf, _ := g.Generate(9, 7)
	want := []byte{51, 102, 153, 204}
	for i := 0; i < len(buf); i += 4 {
		if !bytes.Equal(buf[i:i+4], want) {
			t.Fatalf("pixel %d = %v, want %v", i/4, buf[i:i+4], want)
		}
	}
}

func TestGenerate_OpaqueStopsGiveOpaquePixels(t *testing.T) {
	p := DefaultParams()
	p.BlendMode = "angular"
	p.OrganicDistortion = 0.8
	g := New(WithParams(p))
	defer g.Close()

	buf, _ := g.Generate(31, 17)
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 255 {
			t.Fatalf("alpha of pixel %d = %d, want 255", i/4, buf[i])
		}
	}
}

func TestUpdateParams(t *testing.T) {
	g := New()
	defer g.Close()

	before, _ := g.Generate(8, 8)

	p := g.Params()
	p.Seed = 7
	p.BlendMode = "radial"
	g.UpdateParams(p)

	if g.Mode() != BlendRadial {
		t.Errorf("Mode() = %v, want radial", g.Mode())
	}
	if g.Params().Seed != 7 {
		t.Errorf("Params().Seed = %d, want 7", g.Params().Seed)
	}
	after, _ := g.Generate(8, 8)
	if bytes.Equal(before, after) {
		t.Error("changing seed and mode did not change the output")
	}
}

func TestUpdateParams_UnknownModeIsSmooth(t *testing.T) {
	smooth := New()
	defer smooth.Close()

	p := DefaultParams()
	p.BlendMode = "plasma"
	unknown := New(WithParams(p))
	defer unknown.Close()

	if unknown.Mode() != BlendSmooth {
		t.Errorf("Mode() = %v, want smooth", unknown.Mode())
	}
	a, _ := smooth.Generate(12, 12)
	b, _ := unknown.Generate(12, 12)
	if !bytes.Equal(a, b) {
		t.Error("unknown mode did not render like smooth")
	}
	// The raw string is preserved for round-trips.
	if unknown.Params().BlendMode != "plasma" {
		t.Errorf("BlendMode = %q, want plasma", unknown.Params().BlendMode)
	}
}

func TestUpdateParams_EmptyColorsKeepsPrevious(t *testing.T) {
	g := New()
	defer g.Close()

	want := g.Params().Colors
	p := g.Params()
	p.Colors = nil
	p.Seed = 9
	g.UpdateParams(p)

	got := g.Params()
	if got.Seed != 9 {
		t.Errorf("Seed = %d, want 9", got.Seed)
	}
	if len(got.Colors) != len(want) {
		t.Fatalf("len(Colors) = %d, want %d", len(got.Colors), len(want))
	}
	for i := range want {
		if got.Colors[i] != want[i] {
			t.Errorf("Colors[%d] = %v, want %v", i, got.Colors[i], want[i])
		}
	}
}

func TestUpdateParams_TruncatesColors(t *testing.T) {
	g := New()
	defer g.Close()

	p := g.Params()
	p.Colors = RandomColors(1, 12)
	g.UpdateParams(p)
	if n := len(g.Params().Colors); n != MaxColors {
		t.Errorf("len(Colors) = %d, want %d", n, MaxColors)
	}
}

func TestUpdateParams_CopiesInput(t *testing.T) {
	g := New()
	defer g.Close()

	p := DefaultParams()
	g.UpdateParams(p)
	before, _ := g.Generate(4, 4)

	p.Colors[0] = RGB(0, 1, 0)
	after, _ := g.Generate(4, 4)
	if !bytes.Equal(before, after) {
		t.Error("mutating the caller's Params changed the generator")
	}

	got := g.Params()
	got.Colors[0] = RGB(0, 0, 1)
	if g.Params().Colors[0] == RGB(0, 0, 1) {
		t.Error("Params() exposed internal state")
	}
}

func TestUpdateParams_DegenerateArithmetic(t *testing.T) {
	p := DefaultParams()
	p.Zoom = 0
	g := New(WithParams(p))
	defer g.Close()

	buf, err := g.Generate(6, 6)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	p.Zoom = MinZoom
	ref := New(WithParams(p))
	defer ref.Close()
	want, _ := ref.Generate(6, 6)
	if !bytes.Equal(buf, want) {
		t.Error("zoom 0 did not render like the clamped minimum zoom")
	}
}

func TestUpdateParamsJSON(t *testing.T) {
	g := New()
	defer g.Close()

	err := g.UpdateParamsJSON([]byte(`{"seed": 5, "blend_mode": "diamond"}`))
	if err != nil {
		t.Fatalf("UpdateParamsJSON() error = %v", err)
	}
	if g.Params().Seed != 5 || g.Mode() != BlendDiamond {
		t.Errorf("params not applied: seed=%d mode=%v", g.Params().Seed, g.Mode())
	}
}

func TestUpdateParamsJSON_MalformedKeepsState(t *testing.T) {
	g := New()
	defer g.Close()

	p := g.Params()
	p.Seed = 77
	g.UpdateParams(p)
	before, _ := g.Generate(4, 4)

	for _, doc := range []string{
		`{"seed": `,
		`{"seed": "x"}`,
		`{"color_count": 2, "color_1": [1, 0], "color_2": [0, 0, 0]}`,
		`not json`,
	} {
		err := g.UpdateParamsJSON([]byte(doc))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("UpdateParamsJSON(%q) error = %v, want *ParseError", doc, err)
		}
	}

	if g.Params().Seed != 77 {
		t.Errorf("Seed = %d after failed updates, want 77", g.Params().Seed)
	}
	after, _ := g.Generate(4, 4)
	if !bytes.Equal(before, after) {
		t.Error("failed updates changed the output")
	}
}

func TestParamsJSON_RoundTrip(t *testing.T) {
	p := DefaultParams()
	p.Seed = 1234
	p.BlendMode = "vortex"
	p.CanvasRotation = 45
	p.GradientAngle = 30
	p.OffsetX = -12.5
	p.Colors = append(p.Colors, RGBA{0.5, 0.25, 0.125, 0.5})

	a := New(WithParams(p))
	defer a.Close()
	doc, err := a.ParamsJSON()
	if err != nil {
		t.Fatalf("ParamsJSON() error = %v", err)
	}

	b := New()
	defer b.Close()
	if err := b.UpdateParamsJSON(doc); err != nil {
		t.Fatalf("UpdateParamsJSON() error = %v", err)
	}

	ba, _ := a.Generate(16, 16)
	bb, _ := b.Generate(16, 16)
	if !bytes.Equal(ba, bb) {
		t.Error("round-tripped params render differently")
	}
	if len(b.Params().Colors) != 5 {
		t.Errorf("round-trip kept %d colors, want 5", len(b.Params().Colors))
	}
}

func TestNew_InvalidTableSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(WithTableSize(1000)) did not panic")
		}
	}()
	New(WithTableSize(1000))
}

func TestNew_CustomTableSize(t *testing.T) {
	g := New(WithTableSize(1 << 14))
	defer g.Close()

	buf, _ := g.Generate(2, 2)
	// A finer table moves values by far less than one byte step.
	for i := range buf {
		d := int(buf[i]) - int(defaultFixture[i])
		if d < -1 || d > 1 {
			t.Errorf("byte %d = %d, want within 1 of %d", i, buf[i], defaultFixture[i])
		}
	}
}

func BenchmarkGenerate_256(b *testing.B) {
	g := New()
	defer g.Close()
	b.SetBytes(256 * 256 * 4)
	for i := 0; i < b.N; i++ {
		_, _ = g.Generate(256, 256)
	}
}

func BenchmarkGenerate_1080p(b *testing.B) {
	g := New()
	defer g.Close()
	dst := make([]byte, 1920*1080*4)
	b.SetBytes(int64(len(dst)))
	for i := 0; i < b.N; i++ {
		_ = g.Fill(dst, 1920, 1080)
	}
}

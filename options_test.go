package flowgrad

import (
	"testing"

	"github.com/gogpu/flowgrad/internal/trig"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.tableSize != trig.DefaultSize {
		t.Errorf("tableSize = %d, want %d", o.tableSize, trig.DefaultSize)
	}
	if o.threshold != DefaultParallelThreshold {
		t.Errorf("threshold = %d, want %d", o.threshold, DefaultParallelThreshold)
	}
	if o.workers != 0 {
		t.Errorf("workers = %d, want 0", o.workers)
	}
	if o.params != nil {
		t.Error("params should be nil by default")
	}
}

func TestWithParallelThreshold(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{1000, 1000},
		{-5, 0},
	}
	for _, tt := range tests {
		o := defaultOptions()
		WithParallelThreshold(tt.in)(&o)
		if o.threshold != tt.want {
			t.Errorf("WithParallelThreshold(%d): threshold = %d, want %d", tt.in, o.threshold, tt.want)
		}
	}

	g := New(WithParallelThreshold(64))
	defer g.Close()
	if got := g.ParallelThreshold(); got != 64 {
		t.Errorf("ParallelThreshold() = %d, want 64", got)
	}
}

func TestWithParams(t *testing.T) {
	p := DefaultParams()
	p.Seed = 7
	p.BlendMode = "diamond"

	opt := WithParams(p)
	p.Colors[0] = White // must not leak into the option

	g := New(opt)
	defer g.Close()

	got := g.Params()
	if got.Seed != 7 || got.Mode() != BlendDiamond {
		t.Errorf("Params() = %+v, want seed 7 diamond", got)
	}
	if got.Colors[0] == White {
		t.Error("WithParams did not copy the color slice")
	}
}

func TestWithWorkers(t *testing.T) {
	g := New(WithWorkers(3), WithParallelThreshold(0))
	defer g.Close()

	if _, err := g.Generate(8, 8); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := g.workerPool().Workers(); got != 3 {
		t.Errorf("pool workers = %d, want 3", got)
	}
}

func TestWithTableSize(t *testing.T) {
	g := New(WithTableSize(1024))
	defer g.Close()
	if got := g.tab.Size(); got != 1024 {
		t.Errorf("table size = %d, want 1024", got)
	}
}

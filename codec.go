package flowgrad

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// wireParams is the JSON document exchanged with hosts: flat snake_case
// keys with eight fixed color slots and an explicit color count.
type wireParams struct {
	Seed              uint32    `json:"seed"`
	BlendMode         string    `json:"blend_mode"`
	ColorSpread       float64   `json:"color_spread"`
	FlowIntensity     float64   `json:"flow_intensity"`
	OrganicDistortion float64   `json:"organic_distortion"`
	ColorVariance     float64   `json:"color_variance"`
	CenterBias        float64   `json:"center_bias"`
	OffsetX           float64   `json:"offset_x"`
	OffsetY           float64   `json:"offset_y"`
	Zoom              float64   `json:"zoom"`
	CanvasRotation    float64   `json:"canvas_rotation"`
	GradientAngle     float64   `json:"gradient_angle"`
	LevelsShadows     float64   `json:"levels_shadows"`
	LevelsMidtones    float64   `json:"levels_midtones"`
	LevelsHighlights  float64   `json:"levels_highlights"`
	HueShift          float64   `json:"hue_shift"`
	Saturation        float64   `json:"saturation"`
	NoiseAmount       float64   `json:"noise_amount"`
	NoiseScale        float64   `json:"noise_scale"`
	ColorCount        *int      `json:"color_count"`
	Color1            []float64 `json:"color_1"`
	Color2            []float64 `json:"color_2"`
	Color3            []float64 `json:"color_3"`
	Color4            []float64 `json:"color_4"`
	Color5            []float64 `json:"color_5"`
	Color6            []float64 `json:"color_6"`
	Color7            []float64 `json:"color_7"`
	Color8            []float64 `json:"color_8"`
}

func (w *wireParams) slots() [MaxColors]*[]float64 {
	return [MaxColors]*[]float64{
		&w.Color1, &w.Color2, &w.Color3, &w.Color4,
		&w.Color5, &w.Color6, &w.Color7, &w.Color8,
	}
}

// MarshalJSON encodes p in the wire format. All eight color slots are
// written; unused slots are transparent black. Colors past the eighth are
// dropped.
func (p Params) MarshalJSON() ([]byte, error) {
	count := min(len(p.Colors), MaxColors)
	w := wireParams{
		Seed:              p.Seed,
		BlendMode:         p.BlendMode,
		ColorSpread:       p.ColorSpread,
		FlowIntensity:     p.FlowIntensity,
		OrganicDistortion: p.OrganicDistortion,
		ColorVariance:     p.ColorVariance,
		CenterBias:        p.CenterBias,
		OffsetX:           p.OffsetX,
		OffsetY:           p.OffsetY,
		Zoom:              p.Zoom,
		CanvasRotation:    p.CanvasRotation,
		GradientAngle:     p.GradientAngle,
		ColorCount:        &count,
	}
	w.setAdjustments(p.Adjust)
	for i, slot := range w.slots() {
		c := Transparent
		if i < len(p.Colors) {
			c = p.Colors[i]
		}
		*slot = []float64{c.R, c.G, c.B, c.A}
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the wire format into p. Keys that are absent keep
// their DefaultParams value; unknown keys are ignored. A color slot must hold
// three (opaque) or four channels. A color_count above eight is clamped.
// Errors are returned as *ParseError.
func (p *Params) UnmarshalJSON(data []byte) error {
	def := DefaultParams()
	w := wireParams{
		Seed:              def.Seed,
		BlendMode:         def.BlendMode,
		ColorSpread:       def.ColorSpread,
		FlowIntensity:     def.FlowIntensity,
		OrganicDistortion: def.OrganicDistortion,
		ColorVariance:     def.ColorVariance,
		CenterBias:        def.CenterBias,
		Zoom:              def.Zoom,
	}
	w.setAdjustments(def.Adjust)

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&w); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ParseError{Field: typeErr.Field, Err: err}
		}
		return &ParseError{Err: err}
	}
	if dec.More() {
		return &ParseError{Err: errors.New("trailing data after parameter object")}
	}

	colors, err := w.colors(def.Colors)
	if err != nil {
		return err
	}

	*p = Params{
		Seed:              w.Seed,
		BlendMode:         w.BlendMode,
		ColorSpread:       w.ColorSpread,
		FlowIntensity:     w.FlowIntensity,
		OrganicDistortion: w.OrganicDistortion,
		ColorVariance:     w.ColorVariance,
		CenterBias:        w.CenterBias,
		OffsetX:           w.OffsetX,
		OffsetY:           w.OffsetY,
		Zoom:              w.Zoom,
		CanvasRotation:    w.CanvasRotation,
		GradientAngle:     w.GradientAngle,
		Colors:            colors,
		Adjust: Adjustments{
			LevelsShadows:    w.LevelsShadows,
			LevelsMidtones:   w.LevelsMidtones,
			LevelsHighlights: w.LevelsHighlights,
			HueShift:         w.HueShift,
			Saturation:       w.Saturation,
			NoiseAmount:      w.NoiseAmount,
			NoiseScale:       w.NoiseScale,
		},
	}
	return nil
}

func (w *wireParams) setAdjustments(a Adjustments) {
	w.LevelsShadows = a.LevelsShadows
	w.LevelsMidtones = a.LevelsMidtones
	w.LevelsHighlights = a.LevelsHighlights
	w.HueShift = a.HueShift
	w.Saturation = a.Saturation
	w.NoiseAmount = a.NoiseAmount
	w.NoiseScale = a.NoiseScale
}

// colors resolves the stop list. Without color_count the default stops are
// used; otherwise the first color_count slots are read and a missing slot
// is transparent black.
func (w *wireParams) colors(def []RGBA) ([]RGBA, error) {
	if w.ColorCount == nil {
		return def, nil
	}
	count := *w.ColorCount
	switch {
	case count < 0:
		return nil, &ParseError{Field: "color_count", Err: fmt.Errorf("negative count %d", count)}
	case count > MaxColors:
		Logger().Warn("flowgrad: color_count clamped", "color_count", count, "max", MaxColors)
		count = MaxColors
	}

	slots := w.slots()
	colors := make([]RGBA, 0, count)
	for i, slot := range slots[:count] {
		ch := *slot
		switch len(ch) {
		case 0:
			colors = append(colors, Transparent)
		case 3:
			colors = append(colors, RGBA{R: ch[0], G: ch[1], B: ch[2], A: 1})
		case 4:
			colors = append(colors, RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]})
		default:
			return nil, &ParseError{
				Field: fmt.Sprintf("color_%d", i+1),
				Err:   fmt.Errorf("want 3 or 4 channels, got %d", len(ch)),
			}
		}
	}
	return colors, nil
}

// ParseParams decodes a wire-format document.
func ParseParams(data []byte) (Params, error) {
	var p Params
	if err := p.UnmarshalJSON(data); err != nil {
		return Params{}, err
	}
	return p, nil
}

package pattern

import (
	"bytes"
	"context"
	"errors"
	"image"
	"math"
	"math/rand"
	"testing"
)

func presetParams() ParameterSet {
	p := PresetClassic.Preset().Apply(DefaultParameters())
	p.Color1 = RGB{0.25, 0.5, 1.0}
	p.Color2 = RGB{1.0, 0.25, 0.5}
	p.EdgeIntensity = 0.5
	p.GlowIntensity = 0.3
	p.PatternMix = 0.5
	return p
}

func mustEvaluate(t *testing.T, e *Evaluator, p ParameterSet, fc FrameContext) *ColorBuffer {
	t.Helper()
	buf, err := e.EvaluateInto(context.Background(), p, fc)
	if err != nil {
		t.Fatalf("EvaluateInto: %v", err)
	}
	return buf
}

func TestPresetDeterminism(t *testing.T) {
	p := presetParams()
	fc := FrameContext{Time: 0, Resolution: Resolution{2, 2}}

	first, err := EvaluateFrame(context.Background(), p, fc)
	if err != nil {
		t.Fatalf("EvaluateFrame: %v", err)
	}
	second, err := EvaluateFrame(context.Background(), p, fc)
	if err != nil {
		t.Fatalf("EvaluateFrame: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("outputs differ:\n%v\n%v", first.Bytes(), second.Bytes())
	}

	// Row 0 is the top of the surface.
	uvs := [4]Vec2{{-0.25, 0.25}, {0.25, 0.25}, {-0.25, -0.25}, {0.25, -0.25}}
	for i, uv := range uvs {
		want := Pixel(p, 0, uv)
		if got := first.Pix[i]; got != want {
			t.Errorf("pixel %d = %v, want %v", i, got, want)
		}
	}

	out := first.Bytes()
	for i := 3; i < len(out); i += 4 {
		if out[i] != 0xff {
			t.Errorf("alpha at %d = %d, want 255", i, out[i])
		}
	}
}

// Reference bytes for the classic preset on a 2x2 surface, row 0 on top.
func TestPresetGolden(t *testing.T) {
	tests := []struct {
		time float64
		want []byte
	}{
		{0, []byte{
			255, 104, 207, 255, 146, 88, 176, 255,
			146, 88, 176, 255, 162, 158, 223, 255,
		}},
		{3.5, []byte{
			255, 131, 255, 255, 255, 255, 255, 255,
			255, 255, 255, 255, 57, 86, 147, 255,
		}},
	}

	for _, tt := range tests {
		buf, err := EvaluateFrame(context.Background(), presetParams(), FrameContext{Time: tt.time, Resolution: Resolution{2, 2}})
		if err != nil {
			t.Fatalf("t=%v: %v", tt.time, err)
		}
		if got := buf.Bytes(); !bytes.Equal(got, tt.want) {
			t.Errorf("t=%v:\n got %v\nwant %v", tt.time, got, tt.want)
		}
	}
}

func TestEvaluateIterationsPastCap(t *testing.T) {
	fc := FrameContext{Time: 2, Resolution: Resolution{4, 3}}
	p := presetParams()
	p.Iterations = MaxIterations

	capped, err := EvaluateFrame(context.Background(), p, fc)
	if err != nil {
		t.Fatalf("iterations=%d: %v", p.Iterations, err)
	}
	want := capped.Bytes()

	for _, n := range []int{MaxIterations + 1, 1000} {
		p.Iterations = n
		buf, err := EvaluateFrame(context.Background(), p, fc)
		if err != nil {
			t.Fatalf("iterations=%d: %v", n, err)
		}
		if !bytes.Equal(buf.Bytes(), want) {
			t.Errorf("iterations=%d differs from %d", n, MaxIterations)
		}
	}
}

func nearRGB(a, b RGB) bool {
	return math.Abs(a.R-b.R) < tolerance && math.Abs(a.G-b.G) < tolerance && math.Abs(a.B-b.B) < tolerance
}

func TestShadeBlend(t *testing.T) {
	p := presetParams()
	p.EdgeIntensity = 0
	p.GlowIntensity = 0

	// v=1 at the center gives full weight to the gradient color.
	if got := Shade(p, 1, Vec2{}, Vec2{}, 0); !nearRGB(got, p.Color2) {
		t.Errorf("center = %v, want color2 %v", got, p.Color2)
	}

	// At distance 4 the weight drops to zero and only the ambient remains.
	far := Vec2{4, 0}
	if got := Shade(p, 0.5, far, Vec2{}, 0); !nearRGB(got, Ambient(4)) {
		t.Errorf("far = %v, want ambient %v", got, Ambient(4))
	}

	// In between the result leans toward the ambient: weight (0.5*0.8+0.2)*(1-2*0.25) = 0.3.
	mid := Vec2{0, 2}
	col := p.Color1.Mix(p.Color2, 0.5)
	want := Ambient(2).Mix(col, 0.3)
	if got := Shade(p, 0.5, mid, Vec2{}, 0); !nearRGB(got, want) {
		t.Errorf("mid = %v, want %v", got, want)
	}
}

func TestEvaluateWorkersAgree(t *testing.T) {
	p := presetParams()
	fc := FrameContext{Time: 12.75, Resolution: Resolution{37, 23}}

	serial := Evaluator{Workers: 1}
	parallel := Evaluator{Workers: 8}

	a := mustEvaluate(t, &serial, p, fc)
	b := mustEvaluate(t, &parallel, p, fc)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("serial and parallel evaluation differ")
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel %d: %v vs %v", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestEvaluatorReusesBufferAcrossResize(t *testing.T) {
	var e Evaluator
	p := DefaultParameters()

	big := mustEvaluate(t, &e, p, FrameContext{Time: 1, Resolution: Resolution{16, 9}})
	if len(big.Pix) != 16*9 {
		t.Fatalf("len = %d", len(big.Pix))
	}
	small := mustEvaluate(t, &e, p, FrameContext{Time: 1, Resolution: Resolution{4, 3}})
	if small.Width != 4 || small.Height != 3 || len(small.Pix) != 12 {
		t.Fatalf("got %dx%d with %d pixels", small.Width, small.Height, len(small.Pix))
	}

	fresh, err := EvaluateFrame(context.Background(), p, FrameContext{Time: 1, Resolution: Resolution{4, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(small.Bytes(), fresh.Bytes()) {
		t.Error("reused buffer differs from a fresh evaluation")
	}
}

func TestEvaluateResizeInvariance(t *testing.T) {
	p := presetParams()
	small := Resolution{8, 6}
	large := Resolution{16, 12}
	const tm = 3.5

	buf, err := EvaluateFrame(context.Background(), p, FrameContext{Time: tm, Resolution: small})
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < small.Height; y++ {
		for x := 0; x < small.Width; x++ {
			fx := float64(x) + 0.5
			fy := float64(small.Height-y) - 0.5
			scaled := Normalize(fx*2, fy*2, large)
			if got, want := buf.At(x, y), Pixel(p, tm, scaled); got != want {
				t.Errorf("(%d,%d): %v, scaled evaluation %v", x, y, got, want)
			}
		}
	}
}

func TestEvaluateFrameRejectsBadInput(t *testing.T) {
	good := DefaultParameters()
	bad := good
	bad.Symmetry = 1

	tests := []struct {
		name   string
		params ParameterSet
		fc     FrameContext
		want   error
	}{
		{"zero width", good, FrameContext{Resolution: Resolution{0, 10}}, ErrBadFrame},
		{"negative height", good, FrameContext{Resolution: Resolution{10, -1}}, ErrBadFrame},
		{"nan time", good, FrameContext{Time: math.NaN(), Resolution: Resolution{1, 1}}, ErrBadFrame},
		{"negative time", good, FrameContext{Time: -1, Resolution: Resolution{1, 1}}, ErrBadFrame},
		{"bad symmetry", bad, FrameContext{Resolution: Resolution{1, 1}}, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateFrame(context.Background(), tt.params, tt.fc)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEvaluateFrameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EvaluateFrame(ctx, DefaultParameters(), FrameContext{Time: 1, Resolution: Resolution{64, 64}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func randomParams(r *rand.Rand) ParameterSet {
	in := func(lo, hi float64) float64 { return lo + r.Float64()*(hi-lo) }
	color := func() RGB { return RGB{r.Float64(), r.Float64(), r.Float64()} }
	return ParameterSet{
		SpeedFactor:   in(MinSpeedFactor, MaxSpeedFactor),
		Iterations:    MinIterations + r.Intn(MaxIterations),
		Symmetry:      in(MinSymmetry, MaxSymmetry),
		Complexity:    in(MinComplexity, MaxComplexity),
		RotationSpeed: in(MinRotationSpeed, MaxRotationSpeed),
		Color1:        color(),
		Color2:        color(),
		EdgeIntensity: r.Float64(),
		GlowIntensity: r.Float64(),
		HarmonicScale: in(MinHarmonicScale, MaxHarmonicScale),
		SpiralFactor:  in(MinSpiralFactor, MaxSpiralFactor),
		PatternMix:    r.Float64(),
	}
}

func extremeParams() []ParameterSet {
	lo := ParameterSet{
		SpeedFactor: MinSpeedFactor, Iterations: MinIterations, Symmetry: MinSymmetry,
		Complexity: MinComplexity, RotationSpeed: MinRotationSpeed,
		HarmonicScale: MinHarmonicScale, SpiralFactor: MinSpiralFactor,
	}
	hi := ParameterSet{
		SpeedFactor: MaxSpeedFactor, Iterations: MaxIterations, Symmetry: MaxSymmetry,
		Complexity: MaxComplexity, RotationSpeed: MaxRotationSpeed,
		Color1: RGB{1, 1, 1}, Color2: RGB{1, 1, 1},
		EdgeIntensity: 1, GlowIntensity: 1,
		HarmonicScale: MaxHarmonicScale, SpiralFactor: MaxSpiralFactor, PatternMix: 1,
	}
	return []ParameterSet{lo, hi}
}

func TestRangeStability(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	sets := extremeParams()
	for i := 0; i < 150; i++ {
		sets = append(sets, randomParams(r))
	}

	var e Evaluator
	for i, p := range sets {
		if err := p.Validate(); err != nil {
			t.Fatalf("set %d invalid: %v", i, err)
		}
		fc := FrameContext{Time: r.Float64() * 10000, Resolution: Resolution{9, 7}}
		buf := mustEvaluate(t, &e, p, fc)
		for j, c := range buf.Pix {
			if !c.finite() {
				t.Fatalf("set %d time %v pixel %d: %v", i, fc.Time, j, c)
			}
		}
	}
}

func TestPixelAtOriginIsFinite(t *testing.T) {
	for _, p := range append(extremeParams(), DefaultParameters()) {
		for _, tm := range []float64{0, 1, 9999.9} {
			if c := Pixel(p, tm, Vec2{}); !c.finite() {
				t.Errorf("Pixel at origin, t=%v: %v", tm, c)
			}
		}
	}
}

func TestIterationBound(t *testing.T) {
	p := Vec2{0.31, -0.12}
	const tm, sym, rot = 4.2, 5, 0.1

	for k := 0; k < MaxIterations; k++ {
		want := step(Iterate(p, tm, k, sym, rot), tm, k, sym, rot)
		if got := Iterate(p, tm, k+1, sym, rot); !near(got, want) {
			t.Errorf("Iterate(k=%d) = %v, want one more step %v", k+1, got, want)
		}
	}

	capped := Iterate(p, tm, MaxIterations, sym, rot)
	for _, n := range []int{11, 20, 1000} {
		if got := Iterate(p, tm, n, sym, rot); got != capped {
			t.Errorf("Iterate(%d) = %v, want %v", n, got, capped)
		}
	}

	if got := Iterate(p, tm, 0, sym, rot); got != p {
		t.Errorf("Iterate(0) = %v, want input %v", got, p)
	}
}

func TestInvertZeroGuard(t *testing.T) {
	got := invert(Vec2{})
	if got != (Vec2{-0.5, -0.5}) {
		t.Errorf("invert(origin) = %v", got)
	}
}

func TestSubPatternsInUnitRange(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		q := Vec2{r.NormFloat64() * 3, r.NormFloat64() * 3}
		tm := r.Float64() * 100
		if h := Harmonic(q, 5+r.Float64()*35, tm); h < 0 || h > 1 {
			t.Fatalf("Harmonic = %v", h)
		}
		if s := Spiral(q, 1+r.Float64()*19, tm); s < 0 || s > 1 {
			t.Fatalf("Spiral = %v", s)
		}
	}
}

func TestMixWeightIsUnclamped(t *testing.T) {
	tm := math.Pi / 2 / 0.2
	if got := MixWeight(1, tm); math.Abs(got-1.5) > tolerance {
		t.Errorf("MixWeight(1, peak) = %v, want 1.5", got)
	}
	if got := MixWeight(0, -tm); math.Abs(got+0.5) > tolerance {
		t.Errorf("MixWeight(0, trough) = %v, want -0.5", got)
	}
}

func TestAmbient(t *testing.T) {
	if c := Ambient(0); c != (RGB{}) {
		t.Errorf("Ambient(0) = %v, want black", c)
	}
	c := Ambient(2)
	// Hue 0.7 is a violet blue: blue is the strongest channel, green the weakest.
	if !(c.B > c.R && c.R > c.G) {
		t.Errorf("Ambient(2) = %v", c)
	}
	if math.Abs(c.B-0.1) > tolerance {
		t.Errorf("value channel = %v, want 0.1", c.B)
	}
}

func TestWriteNRGBA(t *testing.T) {
	buf, err := EvaluateFrame(context.Background(), DefaultParameters(), FrameContext{Time: 2, Resolution: Resolution{5, 4}})
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 5, 4))
	buf.WriteNRGBA(img)
	if !bytes.Equal(img.Pix, buf.Bytes()) {
		t.Error("WriteNRGBA and Bytes disagree")
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{7, 255},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := quantize(tt.in); got != tt.want {
			t.Errorf("quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

package game

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/kaleidoscope/internal/game/shader"
	"github.com/iburimskiy/kaleidoscope/internal/pattern"
)

// cpuRenderer evaluates the pattern on the CPU at a reduced resolution and
// scales the result up to the screen.
type cpuRenderer struct {
	scale int
	eval  pattern.Evaluator

	// parameter change notifications from the store
	changed <-chan struct{}

	rgba *image.NRGBA
	img  *ebiten.Image

	// img shows the current parameters at this time
	time  float64
	valid bool
}

func newCPURenderer(scale int, changed <-chan struct{}) *cpuRenderer {
	return &cpuRenderer{scale: max(scale, 1), changed: changed}
}

// poll drops the cached frame after a parameter change. Call it before
// reading the parameters for the next frame.
func (r *cpuRenderer) poll() {
	select {
	case <-r.changed:
		r.valid = false
	default:
	}
}

func (r *cpuRenderer) resolution(screenW, screenH int) pattern.Resolution {
	return pattern.Resolution{
		Width:  max(screenW/r.scale, 1),
		Height: max(screenH/r.scale, 1),
	}
}

// render evaluates a frame unless img already shows the same parameters at
// the same time and size. It reports whether a new frame was evaluated.
func (r *cpuRenderer) render(ctx context.Context, p pattern.ParameterSet, fc pattern.FrameContext) (bool, error) {
	w, h := fc.Resolution.Width, fc.Resolution.Height
	if r.img != nil && r.valid && r.time == fc.Time && r.rgba.Rect.Dx() == w && r.rgba.Rect.Dy() == h {
		return false, nil
	}

	buf, err := r.eval.EvaluateInto(ctx, p, fc)
	if err != nil {
		r.valid = false
		return false, errors.Wrap(err, "evaluate frame")
	}

	if r.img == nil || r.rgba.Rect.Dx() != w || r.rgba.Rect.Dy() != h {
		if r.img != nil {
			r.img.Deallocate()
		}
		r.img = ebiten.NewImage(w, h)
		r.rgba = image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	buf.WriteNRGBA(r.rgba)
	// Alpha is always opaque, so straight and premultiplied bytes agree.
	r.img.WritePixels(r.rgba.Pix)

	r.time, r.valid = fc.Time, true
	return true, nil
}

func (r *cpuRenderer) draw(screen *ebiten.Image) {
	if r.img == nil {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(r.rgba.Rect.Dx()), float64(sh)/float64(r.rgba.Rect.Dy()))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.img, op)
}

// gpuRenderer evaluates the same pattern in a Kage shader at full
// resolution.
type gpuRenderer struct {
	shader   *ebiten.Shader
	fromDisk bool
	uniforms map[string]any
}

func newGPURenderer() (*gpuRenderer, error) {
	r := &gpuRenderer{uniforms: make(map[string]any)}
	s, err := ebiten.NewShader(shader.Source())
	if err != nil {
		return nil, errors.Wrap(err, "compile shader")
	}
	r.shader = s
	return r, nil
}

// reload recompiles the shader, preferring an edited copy on disk. The old
// shader stays in use when compilation fails.
func (r *gpuRenderer) reload() error {
	src, fromDisk := shader.Load()
	s, err := ebiten.NewShader(src)
	if err != nil {
		return errors.Wrap(err, "compile shader")
	}
	if r.shader != nil {
		r.shader.Deallocate()
	}
	r.shader, r.fromDisk = s, fromDisk
	return nil
}

func (r *gpuRenderer) draw(screen *ebiten.Image, p pattern.ParameterSet, fc pattern.FrameContext) {
	w, h := fc.Resolution.Width, fc.Resolution.Height
	u := r.uniforms
	u["Time"] = float32(fc.Time * p.SpeedFactor)
	u["Resolution"] = []float32{float32(w), float32(h)}
	u["Iterations"] = float32(p.Iterations)
	u["Symmetry"] = float32(p.Symmetry)
	u["Complexity"] = float32(p.Complexity)
	u["RotationSpeed"] = float32(p.RotationSpeed)
	u["Color1"] = []float32{float32(p.Color1.R), float32(p.Color1.G), float32(p.Color1.B)}
	u["Color2"] = []float32{float32(p.Color2.R), float32(p.Color2.G), float32(p.Color2.B)}
	u["EdgeIntensity"] = float32(p.EdgeIntensity)
	u["GlowIntensity"] = float32(p.GlowIntensity)
	u["HarmonicScale"] = float32(p.HarmonicScale)
	u["SpiralFactor"] = float32(p.SpiralFactor)
	u["PatternMix"] = float32(p.PatternMix)

	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = u
	screen.DrawRectShader(w, h, r.shader, op)
}

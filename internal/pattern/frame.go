package pattern

import (
	"context"
	"image"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ColorBuffer is one evaluated frame, row-major with row 0 at the top.
type ColorBuffer struct {
	Width, Height int
	Pix           []RGB
}

func NewColorBuffer(width, height int) *ColorBuffer {
	return &ColorBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

func (b *ColorBuffer) At(x, y int) RGB {
	return b.Pix[y*b.Width+x]
}

func (b *ColorBuffer) resize(width, height int) {
	n := width * height
	if cap(b.Pix) < n {
		b.Pix = make([]RGB, n)
	}
	b.Pix = b.Pix[:n]
	b.Width, b.Height = width, height
}

func quantize(v float64) uint8 {
	return uint8(math.Round(clampChannel(v) * 255))
}

// Quantize converts c to 8-bit channels.
func (c RGB) Quantize() (r, g, b uint8) {
	return quantize(c.R), quantize(c.G), quantize(c.B)
}

// Bytes returns the frame as 8-bit RGBA with opaque alpha.
func (b *ColorBuffer) Bytes() []byte {
	out := make([]byte, 4*len(b.Pix))
	b.fill(out)
	return out
}

func (b *ColorBuffer) fill(dst []byte) {
	for i, c := range b.Pix {
		j := i * 4
		dst[j+0] = quantize(c.R)
		dst[j+1] = quantize(c.G)
		dst[j+2] = quantize(c.B)
		dst[j+3] = 0xff
	}
}

// WriteNRGBA copies the frame into img, which must have the same size.
func (b *ColorBuffer) WriteNRGBA(img *image.NRGBA) {
	if img.Rect.Dx() != b.Width || img.Rect.Dy() != b.Height {
		panic("pattern: image size does not match color buffer")
	}
	for y := 0; y < b.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+4*b.Width]
		src := ColorBuffer{Width: b.Width, Height: 1, Pix: b.Pix[y*b.Width : (y+1)*b.Width]}
		src.fill(row)
	}
}

// Evaluator evaluates frames into a reused buffer. It is not safe for
// concurrent use; each driver owns one.
type Evaluator struct {
	// Workers bounds the goroutines used per frame. Zero means GOMAXPROCS.
	Workers int

	buf *ColorBuffer
}

// EvaluateFrame evaluates every pixel of a fresh buffer.
func EvaluateFrame(ctx context.Context, params ParameterSet, fc FrameContext) (*ColorBuffer, error) {
	var e Evaluator
	return e.EvaluateInto(ctx, params, fc)
}

// EvaluateInto evaluates a frame into the evaluator's buffer and returns it.
// The returned buffer is overwritten by the next call.
func (e *Evaluator) EvaluateInto(ctx context.Context, params ParameterSet, fc FrameContext) (*ColorBuffer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := fc.Validate(); err != nil {
		return nil, err
	}

	w, h := fc.Resolution.Width, fc.Resolution.Height
	if e.buf == nil {
		e.buf = NewColorBuffer(w, h)
	} else {
		e.buf.resize(w, h)
	}
	buf := e.buf

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	t := fc.Time * params.SpeedFactor

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < h; y++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Fragment centers, with y flipped to a bottom-left origin.
			fy := float64(h-y) - 0.5
			row := buf.Pix[y*w : (y+1)*w]
			for x := range row {
				uv := Normalize(float64(x)+0.5, fy, fc.Resolution)
				row[x] = Pixel(params, t, uv)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

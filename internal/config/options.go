package config

import (
	"flag"

	"github.com/pkg/errors"

	"github.com/iburimskiy/kaleidoscope/internal/pattern"
)

// Options are the command line settings shared by both drivers.
type Options struct {
	Preset     string
	ParamsFile string
	Watch      bool
	GPU        bool
	Scale      int
	Width      int
	Height     int
	Debug      bool
	Color1     string
	Color2     string
}

// RegisterFlags binds the options to fs with their defaults.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.Preset, "preset", pattern.PresetClassic.String(), "initial preset (classic, crystal, vortex, fractal, flower)")
	fs.StringVar(&o.ParamsFile, "params", "", "JSON parameter file applied on top of the preset")
	fs.BoolVar(&o.Watch, "watch", false, "reload the parameter file when it changes")
	fs.BoolVar(&o.GPU, "gpu", false, "evaluate the pattern with the GPU shader")
	fs.IntVar(&o.Scale, "scale", RenderScale, "CPU render scale (pixels per evaluated sample)")
	fs.IntVar(&o.Width, "width", WindowWidth, "initial window width")
	fs.IntVar(&o.Height, "height", WindowHeight, "initial window height")
	fs.BoolVar(&o.Debug, "debug", false, "write a debug log under "+LogDir)
	fs.StringVar(&o.Color1, "color1", "", "first gradient color (CSS color)")
	fs.StringVar(&o.Color2, "color2", "", "second gradient color (CSS color)")
}

// Parse parses args into a fresh Options.
func Parse(name string, args []string) (Options, error) {
	var o Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	o.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, o.Check()
}

// Check validates option combinations after parsing.
func (o Options) Check() error {
	if o.Scale < 1 || o.Scale > MaxRenderScale {
		return errors.Errorf("scale %d not in [1, %d]", o.Scale, MaxRenderScale)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Errorf("window size %dx%d", o.Width, o.Height)
	}
	if o.Watch && o.ParamsFile == "" {
		return errors.New("-watch needs -params")
	}
	return nil
}

// Parameters builds the initial parameter set: defaults, then the preset,
// then the parameter file, then the color flags.
func (o Options) Parameters() (pattern.ParameterSet, error) {
	p := pattern.DefaultParameters()

	if o.Preset != "" {
		id, err := pattern.ParsePreset(o.Preset)
		if err != nil {
			return p, errors.WithStack(err)
		}
		p = id.Preset().Apply(p)
	}

	if o.ParamsFile != "" {
		var err error
		if p, err = LoadParameters(o.ParamsFile, p); err != nil {
			return p, err
		}
	}

	for _, c := range []struct {
		src string
		dst *pattern.RGB
	}{{o.Color1, &p.Color1}, {o.Color2, &p.Color2}} {
		if c.src == "" {
			continue
		}
		rgb, err := ParseColor(c.src)
		if err != nil {
			return p, err
		}
		*c.dst = rgb
	}

	return p.Clamped(), nil
}

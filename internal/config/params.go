package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	css "github.com/mazznoer/csscolorparser"
	"github.com/pkg/errors"

	"github.com/iburimskiy/kaleidoscope/internal/pattern"
)

// paramsFile is the on-disk form of a ParameterSet. Every field is optional;
// missing fields keep the base value. Colors are CSS color strings.
type paramsFile struct {
	Preset        *string  `json:"preset,omitempty"`
	SpeedFactor   *float64 `json:"speedFactor,omitempty"`
	Iterations    *int     `json:"iterations,omitempty"`
	Symmetry      *float64 `json:"symmetry,omitempty"`
	Complexity    *float64 `json:"complexity,omitempty"`
	RotationSpeed *float64 `json:"rotationSpeed,omitempty"`
	Color1        *string  `json:"color1,omitempty"`
	Color2        *string  `json:"color2,omitempty"`
	EdgeIntensity *float64 `json:"edgeIntensity,omitempty"`
	GlowIntensity *float64 `json:"glowIntensity,omitempty"`
	HarmonicScale *float64 `json:"harmonicScale,omitempty"`
	SpiralFactor  *float64 `json:"spiralFactor,omitempty"`
	PatternMix    *float64 `json:"patternMix,omitempty"`
}

// ParseColor reads a CSS color string (hex, rgb(), named colors...).
func ParseColor(str string) (pattern.RGB, error) {
	c, err := css.Parse(str)
	if err != nil {
		return pattern.RGB{}, errors.Wrapf(err, "parse color %q", str)
	}
	return pattern.RGB{R: c.R, G: c.G, B: c.B}, nil
}

// ColorString formats a color as #rrggbb.
func ColorString(c pattern.RGB) string {
	c = c.Clamped()
	to8 := func(v float64) uint8 { return uint8(math.Round(v * 255)) }
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// DecodeParameters overlays the JSON document data onto base. A preset is
// applied first, explicit fields win over it. The result is pulled into
// range.
func DecodeParameters(data []byte, base pattern.ParameterSet) (pattern.ParameterSet, error) {
	var f paramsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return base, errors.Wrap(err, "decode parameters")
	}

	p := base
	if f.Preset != nil {
		id, err := pattern.ParsePreset(*f.Preset)
		if err != nil {
			return base, errors.WithStack(err)
		}
		p = id.Preset().Apply(p)
	}

	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&p.SpeedFactor, f.SpeedFactor)
	setF(&p.Symmetry, f.Symmetry)
	setF(&p.Complexity, f.Complexity)
	setF(&p.RotationSpeed, f.RotationSpeed)
	setF(&p.EdgeIntensity, f.EdgeIntensity)
	setF(&p.GlowIntensity, f.GlowIntensity)
	setF(&p.HarmonicScale, f.HarmonicScale)
	setF(&p.SpiralFactor, f.SpiralFactor)
	setF(&p.PatternMix, f.PatternMix)
	if f.Iterations != nil {
		p.Iterations = *f.Iterations
	}

	for _, c := range []struct {
		src *string
		dst *pattern.RGB
	}{{f.Color1, &p.Color1}, {f.Color2, &p.Color2}} {
		if c.src == nil {
			continue
		}
		rgb, err := ParseColor(*c.src)
		if err != nil {
			return base, err
		}
		*c.dst = rgb
	}

	return p.Clamped(), nil
}

// EncodeParameters writes every field of p as indented JSON.
func EncodeParameters(p pattern.ParameterSet) ([]byte, error) {
	c1, c2 := ColorString(p.Color1), ColorString(p.Color2)
	f := paramsFile{
		SpeedFactor:   &p.SpeedFactor,
		Iterations:    &p.Iterations,
		Symmetry:      &p.Symmetry,
		Complexity:    &p.Complexity,
		RotationSpeed: &p.RotationSpeed,
		Color1:        &c1,
		Color2:        &c2,
		EdgeIntensity: &p.EdgeIntensity,
		GlowIntensity: &p.GlowIntensity,
		HarmonicScale: &p.HarmonicScale,
		SpiralFactor:  &p.SpiralFactor,
		PatternMix:    &p.PatternMix,
	}

	jsonBytes, err := json.MarshalIndent(f, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "encode parameters")
	}
	return jsonBytes, nil
}

// LoadParameters reads a parameter file and overlays it onto base.
func LoadParameters(path string, base pattern.ParameterSet) (pattern.ParameterSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Wrapf(err, "read %s", path)
	}
	p, err := DecodeParameters(data, base)
	if err != nil {
		return base, errors.Wrapf(err, "load %s", path)
	}
	return p, nil
}

package pattern

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type PresetID int

const (
	PresetClassic PresetID = iota
	PresetCrystal
	PresetVortex
	PresetFractal
	PresetFlower

	PresetCount
)

// Preset is a named bundle of shape parameters. Colors, intensities, speed
// and mix are left alone when it is applied.
type Preset struct {
	Name          string
	Title         string
	Iterations    int
	Symmetry      float64
	Complexity    float64
	RotationSpeed float64
	HarmonicScale float64
	SpiralFactor  float64
}

var presetTable = [PresetCount]Preset{
	PresetClassic: {"classic", "Classic Kaleidoscope", 5, 5, 20, 0.1, 20, 5},
	PresetCrystal: {"crystal", "Crystal Star", 3, 8, 30, 0.05, 15, 8},
	PresetVortex:  {"vortex", "Spiral Galaxy", 4, 2, 15, 0.15, 10, 12},
	PresetFractal: {"fractal", "Fractal Maze", 8, 3, 25, 0.08, 25, 3},
	PresetFlower:  {"flower", "Kaleido Flower", 6, 6, 18, 0.12, 12, 6},
}

func (id PresetID) String() string {
	if id < 0 || id >= PresetCount {
		return fmt.Sprintf("PresetID(%d)", int(id))
	}
	return presetTable[id].Name
}

// Preset returns the table entry for id. Unknown ids yield the classic preset.
func (id PresetID) Preset() Preset {
	if id < 0 || id >= PresetCount {
		return presetTable[PresetClassic]
	}
	return presetTable[id]
}

// ParsePreset looks a preset up by its name, case-insensitively.
func ParsePreset(name string) (PresetID, error) {
	for i := PresetID(0); i < PresetCount; i++ {
		if strings.EqualFold(presetTable[i].Name, name) {
			return i, nil
		}
	}
	return 0, errors.Errorf("unknown preset %q", name)
}

// Apply returns p with the preset's fields replaced in one step.
func (pr Preset) Apply(p ParameterSet) ParameterSet {
	p.Iterations = pr.Iterations
	p.Symmetry = pr.Symmetry
	p.Complexity = pr.Complexity
	p.RotationSpeed = pr.RotationSpeed
	p.HarmonicScale = pr.HarmonicScale
	p.SpiralFactor = pr.SpiralFactor
	return p
}

// MatchPreset reports which preset p currently shows, if any.
func MatchPreset(p ParameterSet) (PresetID, bool) {
	for i := PresetID(0); i < PresetCount; i++ {
		if presetTable[i].Apply(p) == p {
			return i, true
		}
	}
	return 0, false
}

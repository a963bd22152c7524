package control

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/iburimskiy/kaleidoscope/internal/config"
	"github.com/iburimskiy/kaleidoscope/internal/pattern"
	"github.com/iburimskiy/kaleidoscope/internal/store"
)

// Action is a driver independent user command. Each driver maps its own
// input events onto these.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTogglePause
	ActionTogglePanel
	ActionSelectNext
	ActionSelectPrev
	ActionIncrease
	ActionDecrease
	ActionSpeedUp
	ActionSpeedDown
	ActionPreset
)

// Command is an Action with its argument.
type Command struct {
	Action Action
	Preset pattern.PresetID
}

func Do(a Action) Command {
	return Command{Action: a}
}

func PresetCommand(id pattern.PresetID) Command {
	return Command{Action: ActionPreset, Preset: id}
}

// Controller owns the interactive state shared by both drivers.
type Controller struct {
	Store *store.Store
	Clock Clock
	Panel *Panel
	Tap   *FrameTap

	logger *log.Logger
}

func NewController(s *store.Store, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		Store:  s,
		Panel:  NewPanel(config.Sliders),
		Tap:    NewFrameTap(config.FrameTapSize),
		logger: logger,
	}
}

// Apply executes cmd. It returns false when the driver should exit.
func (c *Controller) Apply(cmd Command) bool {
	switch cmd.Action {
	case ActionQuit:
		return false
	case ActionTogglePause:
		if c.Clock.TogglePause() {
			c.logger.Printf("paused at %s", FormatClock(c.Clock.Elapsed()))
		}
	case ActionTogglePanel:
		c.Panel.Visible = !c.Panel.Visible
	case ActionSelectNext:
		c.Panel.Select(1)
	case ActionSelectPrev:
		c.Panel.Select(-1)
	case ActionIncrease:
		c.Panel.Nudge(c.Store, 1)
	case ActionDecrease:
		c.Panel.Nudge(c.Store, -1)
	case ActionSpeedUp, ActionSpeedDown:
		steps := 1
		if cmd.Action == ActionSpeedDown {
			steps = -1
		}
		c.Store.Update(func(p *pattern.ParameterSet) {
			config.Sliders[config.SliderSpeed].Nudge(p, steps)
		})
	case ActionPreset:
		c.ApplyPreset(cmd.Preset)
	}
	return true
}

// ApplyPreset swaps the preset's shape parameters in as one update.
func (c *Controller) ApplyPreset(id pattern.PresetID) {
	pr := id.Preset()
	c.Store.Update(func(p *pattern.ParameterSet) { *p = pr.Apply(*p) })
	c.logger.Printf("preset %s", pr.Name)
}

// Tick advances the clock by one driver tick.
func (c *Controller) Tick(dt time.Duration) {
	c.Clock.Advance(dt)
}

// Frame builds the evaluator input for a viewport of the given size.
func (c *Controller) Frame(width, height int) pattern.FrameContext {
	return pattern.FrameContext{
		Time:       c.Clock.Seconds(),
		Resolution: pattern.Resolution{Width: width, Height: height},
	}
}

// PresetTitle names the preset the current parameters match, or "Custom".
func (c *Controller) PresetTitle() string {
	if id, ok := pattern.MatchPreset(c.Store.Params()); ok {
		return id.Preset().Title
	}
	return "Custom"
}

// Status is the one line summary shown by both drivers.
func (c *Controller) Status() string {
	p := c.Store.Params()
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  speed %.1f", c.PresetTitle(), FormatClock(c.Clock.Elapsed()), p.SpeedFactor)
	if c.Clock.Paused() {
		b.WriteString("  [paused]")
	}
	return b.String()
}

package control

import "time"

// Controller runs one station control iteration at a time. It owns all
// transient loop state (filters, idle clock, press episode, pending
// save) so there is exactly one writer and no hidden aliasing.
// The caller feeds it one Input per tick and applies the returned Output
// to the hardware.
type Controller struct {
	setpoint int

	temp   Filter
	supply Filter
	idle   IdleTracker
	editor SetpointEditor
	timers Timers

	lastIdle IdleState
	// tick is the free-running iteration counter driving the blink and
	// auto-repeat cadences. It does not advance on fault iterations.
	tick uint32
}

// New creates a controller from the persisted settings. The setpoint
// display window opens immediately so the station shows the configured
// setpoint right after power-on.
func New(setpoint int, sleepTimeout, deepSleepTimeout time.Duration, start time.Time) *Controller {
	c := &Controller{
		setpoint: setpoint,
		idle:     NewIdleTracker(sleepTimeout, deepSleepTimeout),
	}
	c.timers.IdleSince = start
	c.timers.SetpointShownUntil = start.Add(setpointShownFor)
	return c
}

// Setpoint returns the current target temperature in degrees.
func (c *Controller) Setpoint() int {
	return c.setpoint
}

// Step runs one control iteration. A sensor fault short-circuits the
// whole iteration: the heater is forced off, the error frame is shown
// with a beep, and idle tracking, button handling and persistence are all
// skipped until a normal sample arrives.
func (c *Controller) Step(in Input) Output {
	supply := c.supply.Apply(in.RawSupply)
	temp := c.temp.Apply(in.RawTemp)

	if fault := ClassifyFault(temp); fault != FaultNone {
		return Output{
			Command: HeatOff,
			Frame:   FaultFrame(fault),
			Beep:    true,
			Fault:   fault,
			Supply:  supply,
		}
	}

	out := Output{Supply: supply}

	out.Idle = c.idle.Update(in.Presence, in.Now, &c.timers)
	if out.Idle != c.lastIdle {
		out.BeepAlarm = true
		c.lastIdle = out.Idle
	}

	out.Degrees = Degrees(temp)
	// The drive command uses the setpoint as it stood before this
	// iteration's edits; the display uses the edited value below.
	out.Command = Command(out.Degrees, c.setpoint, out.Idle)

	active, beep := c.editor.Update(in.Plus, in.Minus, &c.setpoint, in.Now, &c.timers)
	out.Beep = beep
	c.setpoint = ClampSetpoint(c.setpoint)

	out.Frame = ComposeFrame(out.Degrees, c.setpoint, active, out.Idle, out.Command, c.tick, in.Now, &c.timers)

	if c.timers.SaveDue(in.Now) {
		out.Save = true
		// The saving glyph takes over the symbol position for this one
		// iteration.
		out.Frame.Symbols = SymSave
	}

	c.tick++
	return out
}

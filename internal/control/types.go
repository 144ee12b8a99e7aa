// Package control contains the pure control-loop logic for the station.
// This package has NO external dependencies (no GPIO, ADC, PWM, serial, or
// time.Sleep). Time is always injectable via time.Time parameters.
package control

import "time"

// Setpoint range and calibration constants. The ADC window [40, 130] maps
// linearly onto the degree range [50, 450]; readings outside the window are
// deliberately not clamped and can produce out-of-range degree values.
const (
	MinSetpoint     = 50
	MaxSetpoint     = 450
	DefaultSetpoint = 270

	// Target held while the station is in the Idle state.
	idleSetpoint = 100

	adcAtMinHeat = 40
	adcAtMaxHeat = 130
)

// Button and persistence timing.
const (
	shortPress    = 700 * time.Millisecond
	longPress     = 1800 * time.Millisecond
	repeatDivisor = 40 // auto-repeat applies once per this many iterations

	saveDelay        = 2 * time.Second
	setpointShownFor = 5 * time.Second
)

// IdleState is the station power state derived from presence-sensor
// activity. States are an ordered escalation.
type IdleState int

const (
	Active IdleState = iota
	Idle
	DeepIdle
)

// String returns a human-readable state name for logging.
func (s IdleState) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case DeepIdle:
		return "DEEP_IDLE"
	}
	return "ACTIVE"
}

// Symbol bits for the fourth display position.
const (
	SymCelsius  byte = 1 << 0
	SymSetpoint byte = 1 << 1 // numeric value is the setpoint, not the reading
	SymMoon     byte = 1 << 2
	SymSun      byte = 1 << 3
	SymSave     byte = 1 << 4
)

// Frame is one display refresh worth of content.
type Frame struct {
	// Text, when non-empty, replaces the numeric value ("ER" on faults).
	Text string
	// Code is the fault code digit rendered after Text.
	Code int
	// Value is the three-digit numeric value.
	Value int
	// Blank suppresses the numeric digits entirely (deep idle).
	Blank bool
	// Symbols is the mask for the symbol position.
	Symbols byte
}

// Timers is the loop-owned transient state. Every field is a timestamp on
// the loop clock; the zero time means "not active". All of them are reset
// only at startup.
type Timers struct {
	// IdleSince marks the last presence-sensor transition.
	IdleSince time.Time
	// ButtonPressStart and LongPressStart mark the current press episode.
	ButtonPressStart time.Time
	LongPressStart   time.Time
	// PendingSaveSince marks the last un-persisted setpoint edit.
	PendingSaveSince time.Time
	// SetpointShownUntil keeps the display on the setpoint value.
	SetpointShownUntil time.Time
}

// SaveDue reports whether the debounced settings write should fire at now,
// clearing the pending mark when it does. Edits keep refreshing
// PendingSaveSince, so a burst of edits coalesces into a single write
// landing saveDelay after the last edit.
func (t *Timers) SaveDue(now time.Time) bool {
	if t.PendingSaveSince.IsZero() || now.Sub(t.PendingSaveSince) <= saveDelay {
		return false
	}
	t.PendingSaveSince = time.Time{}
	return true
}

// Input is one iteration worth of sensor and button readings.
type Input struct {
	Now       time.Time
	RawTemp   int // temperature channel, 0-1023
	RawSupply int // supply voltage channel, 0-1023
	Plus      bool
	Minus     bool
	Presence  bool
}

// Output is what the loop must apply to the hardware after one iteration.
type Output struct {
	Command   HeatCommand
	Frame     Frame
	Beep      bool
	BeepAlarm bool
	// Save requests one write of the settings record.
	Save    bool
	Fault   Fault
	Idle    IdleState
	Degrees int
	// Supply is the filtered supply-voltage reading, for status logging.
	Supply int
}

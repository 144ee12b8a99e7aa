package control

import "time"

// ComposeFrame decides what the front panel shows for one normal (fault
// free) iteration. The numeric value is the measured degrees unless a
// button is active, the setpoint display window is open, or the reading is
// within 10 degrees of the setpoint; then the setpoint is shown instead,
// flagged with the setpoint symbol.
//
// The moon and sun symbols blink off the free-running iteration counter
// rather than the wall clock: the moon toggles every 500 iterations while
// the station is idle, the sun every 50 while the heater is driven. With
// the stock 1ms loop delay that comes out near 1Hz and 10Hz.
func ComposeFrame(degrees, setpoint int, buttonActive bool, idle IdleState, cmd HeatCommand, tick uint32, now time.Time, t *Timers) Frame {
	f := Frame{Value: degrees, Symbols: SymCelsius}

	inRange := degrees >= setpoint-10 && degrees <= setpoint+10
	if buttonActive || now.Before(t.SetpointShownUntil) || inRange {
		f.Value = setpoint
		f.Symbols |= SymSetpoint
	}

	if idle != Active && (tick/500)%2 == 1 {
		f.Symbols |= SymMoon
	}
	if cmd.Heating() && (tick/50)%2 == 1 {
		f.Symbols |= SymSun
	}

	if idle == DeepIdle {
		f.Blank = true
	}
	return f
}

// FaultFrame is shown instead of the temperature while a sensor fault is
// present: the letters "ER" followed by the fault code.
func FaultFrame(fault Fault) Frame {
	return Frame{Text: "ER", Code: fault.Code()}
}

package control

// HeatCommand is a heater drive level on the station's native duty scale.
// The scale is inverted: lower values drive the heater harder, and the
// literal 100 is the off sentinel. All inversion arithmetic stays behind
// this type.
type HeatCommand int

// HeatOff is the sentinel duty that switches the heater off entirely.
const HeatOff HeatCommand = 100

// Duty returns the value to hand to the PWM output, 0-100.
func (c HeatCommand) Duty() int {
	return int(c)
}

// Heating reports whether the command drives any heat at all.
func (c HeatCommand) Heating() bool {
	return c < HeatOff
}

// Degrees converts a filtered temperature sample to display degrees using
// the station's fixed two-point calibration. Samples outside the
// calibration window are not clamped and can map to negative or
// above-range values; callers that care must handle that themselves.
func Degrees(sample int) int {
	return (MaxSetpoint - MinSetpoint) * (sample - adcAtMinHeat) / (adcAtMaxHeat - adcAtMinHeat)
}

// Command computes the heater drive for one iteration. Fifty degrees
// below the target the drive starts ramping down linearly; further below
// it holds at half power; above the target (or in deep idle) the heater
// is off. While in Idle the target drops to idleSetpoint instead of the
// configured setpoint.
func Command(degrees, setpoint int, idle IdleState) HeatCommand {
	target := setpoint
	if idle == Idle {
		target = idleSetpoint
	}
	diff := target - degrees
	switch {
	case idle == DeepIdle || diff < 0:
		return HeatOff
	case diff > 50:
		return HeatCommand(50)
	}
	return HeatCommand(90 - diff)
}

// ClampSetpoint forces a setpoint into the valid range. The loop applies
// this every iteration regardless of where the value came from, so an
// out-of-range value read from storage is corrected too.
func ClampSetpoint(v int) int {
	if v > MaxSetpoint {
		return MaxSetpoint
	}
	if v < MinSetpoint {
		return MinSetpoint
	}
	return v
}

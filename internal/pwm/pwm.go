// Package pwm drives the heater output with hardware abstraction. The
// real implementation writes to a sysfs PWM channel; the fake records
// duty values for tests.
//
// The duty value handed to SetDuty is the station's native drive level:
// the control package decides what it means (on this hardware a lower
// duty drives the heater harder, see control.HeatCommand).
package pwm

// Heater sets the heater drive duty cycle.
type Heater interface {
	// SetDuty applies a duty value in percent, 0-100.
	SetDuty(percent int) error

	// Close releases the output, leaving the heater off.
	Close() error
}

// Package status formats point-in-time station state for the periodic
// log line and the print-state mode.
package status

import (
	"fmt"
	"time"

	"github.com/sweeney/solder-station/internal/control"
)

// Snapshot is a point-in-time view of the control loop. It is a value
// type filled in by the loop after an iteration.
type Snapshot struct {
	Setpoint  int
	Degrees   int
	Duty      int
	Supply    int
	Idle      control.IdleState
	Fault     control.Fault
	StartTime time.Time
	Now       time.Time
}

// Uptime returns the duration since the loop started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// String renders the snapshot as a single log-friendly line.
func (s Snapshot) String() string {
	return fmt.Sprintf("setpoint=%d temp=%d duty=%d supply=%d idle=%s fault=%s uptime=%s",
		s.Setpoint, s.Degrees, s.Duty, s.Supply, s.Idle, s.Fault,
		s.Uptime().Truncate(time.Second))
}

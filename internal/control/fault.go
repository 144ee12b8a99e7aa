package control

// Fault classifies the temperature channel. A fault forces the heater off
// and replaces the display with "ER" plus the fault code for that
// iteration. Faults are re-evaluated from scratch every iteration, so they
// self-clear as soon as a normal sample arrives.
type Fault int

const (
	FaultNone Fault = iota
	// FaultShort: sensor input reads near ground (short on the sensor).
	FaultShort
	// FaultOpen: sensor input reads near full scale (broken sensor).
	FaultOpen
)

// Code returns the display error code (1 for short, 2 for open).
func (f Fault) Code() int {
	return int(f)
}

func (f Fault) String() string {
	switch f {
	case FaultShort:
		return "SHORT_CIRCUIT"
	case FaultOpen:
		return "OPEN_CIRCUIT"
	}
	return "NONE"
}

// ClassifyFault maps a filtered temperature sample (0-1023) to a fault.
func ClassifyFault(sample int) Fault {
	switch {
	case sample < 10:
		return FaultShort
	case sample > 1000:
		return FaultOpen
	}
	return FaultNone
}

// Package gpio provides digital input reading with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Sample is one reading of the station's input pins, already in logical
// form: buttons are true while pressed, presence is the raw sensor level.
type Sample struct {
	Plus     bool
	Minus    bool
	Presence bool
}

// Reader reads the station's digital inputs.
type Reader interface {
	// Read returns the current logical pin states. The raw button levels
	// are inverted: buttons are wired active-low.
	Read() (Sample, error)

	// Close releases GPIO resources.
	Close() error
}

// Default pin assignments (BCM numbering).
const (
	DefaultPinPlus     = 23
	DefaultPinMinus    = 24
	DefaultPinPresence = 25
)

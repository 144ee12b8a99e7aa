// Package panel drives the station front panel: a small helper MCU that
// owns the 4-position 7-segment display and the buzzer, attached over a
// serial link. The core composes display content digit by digit; the
// panel MCU handles multiplexing and tone generation on its own.
package panel

import "time"

// Display updates the numeric digits and the symbol position. Digit and
// symbol setters stage content locally; Refresh pushes the staged frame
// out.
type Display interface {
	// SetDigit stages a single digit (0-9) at position 0-2.
	SetDigit(pos, value int)

	// SetChars stages text characters starting at position 0.
	SetChars(text string)

	// BlankDigits stages all three digit positions empty.
	BlankDigits()

	// SetSymbols stages the symbol bitmask for the fourth position.
	SetSymbols(mask byte)

	// Refresh pushes the staged frame to the panel.
	Refresh(now time.Time) error
}

// Sounder produces audible feedback.
type Sounder interface {
	// Beep plays a single short tone.
	Beep() error

	// BeepAlarm plays the longer attention pattern used for power state
	// changes and startup.
	BeepAlarm() error
}

// Panel is the full front panel.
type Panel interface {
	Display
	Sounder
	Close() error
}

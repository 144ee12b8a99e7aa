package panel

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate is the front panel MCU's fixed baud rate.
const DefaultBaudRate = 115200

// Line protocol, one command per line:
//
//	Fxxx yy\n  display frame: three digit characters and the symbol
//	           mask as two hex digits
//	B\n        short beep
//	A\n        alarm pattern
const (
	cmdBeep  = "B\n"
	cmdAlarm = "A\n"
)

// Serial is the real front panel on a serial port.
type Serial struct {
	port serial.Port

	digits  [3]byte
	symbols byte
	// lastFrame suppresses rewrites of an unchanged frame so the link
	// is not flooded at loop rate.
	lastFrame string
}

// NewSerial opens the panel's serial port.
func NewSerial(portName string, baudRate int) (*Serial, error) {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}

	port, err := serial.Open(portName, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}

	p := &Serial{port: port}
	p.BlankDigits()
	return p, nil
}

// SetDigit stages a single digit at position 0-2.
func (p *Serial) SetDigit(pos, value int) {
	if pos < 0 || pos > 2 || value < 0 || value > 9 {
		return
	}
	p.digits[pos] = byte('0' + value)
}

// SetChars stages text characters starting at position 0.
func (p *Serial) SetChars(text string) {
	for i := 0; i < len(text) && i < 3; i++ {
		p.digits[i] = text[i]
	}
}

// BlankDigits stages all three digit positions empty.
func (p *Serial) BlankDigits() {
	p.digits = [3]byte{' ', ' ', ' '}
}

// SetSymbols stages the symbol bitmask.
func (p *Serial) SetSymbols(mask byte) {
	p.symbols = mask
}

// Refresh writes the staged frame to the panel if it changed.
func (p *Serial) Refresh(now time.Time) error {
	frame := fmt.Sprintf("F%s %02X\n", p.digits[:], p.symbols)
	if frame == p.lastFrame {
		return nil
	}
	if _, err := p.port.Write([]byte(frame)); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	p.lastFrame = frame
	return nil
}

// Beep plays a single short tone.
func (p *Serial) Beep() error {
	if _, err := p.port.Write([]byte(cmdBeep)); err != nil {
		return fmt.Errorf("write beep: %w", err)
	}
	return nil
}

// BeepAlarm plays the alarm pattern.
func (p *Serial) BeepAlarm() error {
	if _, err := p.port.Write([]byte(cmdAlarm)); err != nil {
		return fmt.Errorf("write alarm: %w", err)
	}
	return nil
}

// Close closes the serial port.
func (p *Serial) Close() error {
	return p.port.Close()
}

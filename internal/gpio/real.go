//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealReader reads the input pins from actual hardware using the Linux
// GPIO character device.
type RealReader struct {
	chip        *gpiocdev.Chip
	plusPin     *gpiocdev.Line
	minusPin    *gpiocdev.Line
	presencePin *gpiocdev.Line
}

// NewRealReader creates a GPIO reader for the station's input pins. The
// buttons are requested with pull-ups since they switch to ground; the
// presence sensor drives its line on its own.
func NewRealReader(chipName string, pinPlus, pinMinus, pinPresence int) (*RealReader, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	plusLine, err := chip.RequestLine(pinPlus, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request plus pin %d: %w", pinPlus, err)
	}

	minusLine, err := chip.RequestLine(pinMinus, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		plusLine.Close()
		chip.Close()
		return nil, fmt.Errorf("request minus pin %d: %w", pinMinus, err)
	}

	presenceLine, err := chip.RequestLine(pinPresence, gpiocdev.AsInput)
	if err != nil {
		minusLine.Close()
		plusLine.Close()
		chip.Close()
		return nil, fmt.Errorf("request presence pin %d: %w", pinPresence, err)
	}

	return &RealReader{
		chip:        chip,
		plusPin:     plusLine,
		minusPin:    minusLine,
		presencePin: presenceLine,
	}, nil
}

// Read returns the logical pin states. Buttons are active-low: a raw 0
// means pressed.
func (r *RealReader) Read() (Sample, error) {
	plusRaw, err := r.plusPin.Value()
	if err != nil {
		return Sample{}, fmt.Errorf("read plus pin: %w", err)
	}

	minusRaw, err := r.minusPin.Value()
	if err != nil {
		return Sample{}, fmt.Errorf("read minus pin: %w", err)
	}

	presenceRaw, err := r.presencePin.Value()
	if err != nil {
		return Sample{}, fmt.Errorf("read presence pin: %w", err)
	}

	return Sample{
		Plus:     plusRaw == 0,
		Minus:    minusRaw == 0,
		Presence: presenceRaw != 0,
	}, nil
}

// Close releases GPIO resources.
func (r *RealReader) Close() error {
	var errs []error

	for _, line := range []*gpiocdev.Line{r.plusPin, r.minusPin, r.presencePin} {
		if line == nil {
			continue
		}
		if err := line.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

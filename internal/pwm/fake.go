package pwm

// FakeHeater is a test double that records every duty value applied.
type FakeHeater struct {
	// Duties contains every value passed to SetDuty, in order.
	Duties []int

	// SetError, if set, will be returned by SetDuty.
	SetError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeHeater creates a FakeHeater.
func NewFakeHeater() *FakeHeater {
	return &FakeHeater{}
}

// SetDuty records the duty value.
func (f *FakeHeater) SetDuty(percent int) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.Duties = append(f.Duties, percent)
	return nil
}

// Last returns the most recent duty value, or -1 if none was set.
func (f *FakeHeater) Last() int {
	if len(f.Duties) == 0 {
		return -1
	}
	return f.Duties[len(f.Duties)-1]
}

// Close marks the heater as closed.
func (f *FakeHeater) Close() error {
	f.Closed = true
	return nil
}

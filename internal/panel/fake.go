package panel

import "time"

// FakePanel records staged frames and beeps for test assertions.
type FakePanel struct {
	// Frames contains one entry per Refresh call: the three digit
	// characters plus the symbol mask.
	Frames []FakeFrame

	// Beeps and Alarms count the tones played.
	Beeps  int
	Alarms int

	// RefreshError, if set, will be returned by Refresh.
	RefreshError error

	// Closed tracks if Close was called.
	Closed bool

	digits  [3]byte
	symbols byte
}

// FakeFrame is one recorded display refresh.
type FakeFrame struct {
	Digits  string
	Symbols byte
}

// NewFakePanel creates a FakePanel.
func NewFakePanel() *FakePanel {
	return &FakePanel{digits: [3]byte{' ', ' ', ' '}}
}

// SetDigit stages a single digit at position 0-2.
func (f *FakePanel) SetDigit(pos, value int) {
	if pos < 0 || pos > 2 || value < 0 || value > 9 {
		return
	}
	f.digits[pos] = byte('0' + value)
}

// SetChars stages text characters starting at position 0.
func (f *FakePanel) SetChars(text string) {
	for i := 0; i < len(text) && i < 3; i++ {
		f.digits[i] = text[i]
	}
}

// BlankDigits stages all three digit positions empty.
func (f *FakePanel) BlankDigits() {
	f.digits = [3]byte{' ', ' ', ' '}
}

// SetSymbols stages the symbol bitmask.
func (f *FakePanel) SetSymbols(mask byte) {
	f.symbols = mask
}

// Refresh records the staged frame.
func (f *FakePanel) Refresh(now time.Time) error {
	if f.RefreshError != nil {
		return f.RefreshError
	}
	f.Frames = append(f.Frames, FakeFrame{
		Digits:  string(f.digits[:]),
		Symbols: f.symbols,
	})
	return nil
}

// Last returns the most recent recorded frame.
func (f *FakePanel) Last() FakeFrame {
	if len(f.Frames) == 0 {
		return FakeFrame{}
	}
	return f.Frames[len(f.Frames)-1]
}

// Beep counts a short tone.
func (f *FakePanel) Beep() error {
	f.Beeps++
	return nil
}

// BeepAlarm counts an alarm pattern.
func (f *FakePanel) BeepAlarm() error {
	f.Alarms++
	return nil
}

// Close marks the panel as closed.
func (f *FakePanel) Close() error {
	f.Closed = true
	return nil
}

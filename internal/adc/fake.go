package adc

import "errors"

// FakeReader is a test double that returns scripted samples per channel.
type FakeReader struct {
	// Samples holds scripted values per channel. Each Read consumes the
	// next value for that channel; once exhausted, the last one repeats.
	Samples map[Channel][]int

	// ReadError, if set, will be returned by Read()
	ReadError error

	// Closed tracks if Close was called
	Closed bool

	index map[Channel]int
}

// NewFakeReader creates a FakeReader with the given per-channel samples.
func NewFakeReader(samples map[Channel][]int) *FakeReader {
	return &FakeReader{
		Samples: samples,
		index:   make(map[Channel]int),
	}
}

// Read returns the next scripted sample for the channel.
func (f *FakeReader) Read(ch Channel) (int, error) {
	if f.ReadError != nil {
		return 0, f.ReadError
	}

	samples := f.Samples[ch]
	if len(samples) == 0 {
		return 0, errors.New("no samples configured")
	}

	val := samples[f.index[ch]]
	if f.index[ch] < len(samples)-1 {
		f.index[ch]++
	}
	return val, nil
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

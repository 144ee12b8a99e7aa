package adc

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultDevice is the usual sysfs path of the station's ADC chip.
const DefaultDevice = "/sys/bus/iio/devices/iio:device0"

// IIOReader reads raw samples from a sysfs IIO ADC device. Each read
// opens the channel's in_voltageN_raw attribute; the kernel performs the
// actual conversion on demand.
type IIOReader struct {
	dir      string
	channels map[Channel]int
}

// NewIIOReader creates a reader for the given IIO device directory with
// the given hardware channel indices.
func NewIIOReader(dir string, tempChannel, supplyChannel int) (*IIOReader, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("iio device %s: %w", dir, err)
	}
	return &IIOReader{
		dir: dir,
		channels: map[Channel]int{
			ChannelTemperature: tempChannel,
			ChannelSupply:      supplyChannel,
		},
	}, nil
}

// Read returns the raw sample for the given channel.
func (r *IIOReader) Read(ch Channel) (int, error) {
	idx, ok := r.channels[ch]
	if !ok {
		return 0, fmt.Errorf("unknown channel %d", ch)
	}

	path := filepath.Join(r.dir, fmt.Sprintf("in_voltage%d_raw", idx))
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	val, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return val, nil
}

// Close is a no-op; the sysfs attributes are opened per read.
func (r *IIOReader) Close() error {
	return nil
}

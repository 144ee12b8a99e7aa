// Package store persists the station settings record. The on-wire layout
// is byte-compatible with the record the station MCU keeps in EEPROM:
// setpoint (uint16), sleep timeout (uint32 ms), deep sleep timeout
// (uint32 ms), big-endian, no padding and no version tag.
package store

import (
	"encoding/binary"
	"fmt"
	"time"
)

// RecordSize is the exact size of the settings record in bytes.
const RecordSize = 10

// Config is the station settings record.
type Config struct {
	Setpoint         uint16
	SleepTimeout     uint32 // milliseconds
	DeepSleepTimeout uint32 // milliseconds
}

// Defaults returns the factory settings written to an uninitialized store.
func Defaults() Config {
	return Config{
		Setpoint:         270,
		SleepTimeout:     180000, // 3 min
		DeepSleepTimeout: 600000, // 10 min
	}
}

// SleepDuration returns the sleep timeout as a duration.
func (c Config) SleepDuration() time.Duration {
	return time.Duration(c.SleepTimeout) * time.Millisecond
}

// DeepSleepDuration returns the deep sleep timeout as a duration.
func (c Config) DeepSleepDuration() time.Duration {
	return time.Duration(c.DeepSleepTimeout) * time.Millisecond
}

// Marshal encodes the record in its fixed on-wire layout.
func (c Config) Marshal() []byte {
	b := make([]byte, RecordSize)
	binary.BigEndian.PutUint16(b[0:2], c.Setpoint)
	binary.BigEndian.PutUint32(b[2:6], c.SleepTimeout)
	binary.BigEndian.PutUint32(b[6:10], c.DeepSleepTimeout)
	return b
}

// Unmarshal decodes a record from its fixed on-wire layout.
func Unmarshal(b []byte) (Config, error) {
	if len(b) < RecordSize {
		return Config{}, fmt.Errorf("record too short: %d bytes, want %d", len(b), RecordSize)
	}
	return Config{
		Setpoint:         binary.BigEndian.Uint16(b[0:2]),
		SleepTimeout:     binary.BigEndian.Uint32(b[2:6]),
		DeepSleepTimeout: binary.BigEndian.Uint32(b[6:10]),
	}, nil
}

// Store reads and writes the settings record at its fixed address.
type Store interface {
	ReadRecord() (Config, error)
	WriteRecord(Config) error
}

// Load returns the persisted settings. A record with a zero setpoint is
// treated as uninitialized (first power-up, blank EEPROM): the defaults
// are written back immediately and returned.
func Load(s Store) (Config, error) {
	cfg, err := s.ReadRecord()
	if err != nil {
		return Config{}, fmt.Errorf("read settings: %w", err)
	}
	if cfg.Setpoint == 0 {
		cfg = Defaults()
		if err := s.WriteRecord(cfg); err != nil {
			return Config{}, fmt.Errorf("initialize settings: %w", err)
		}
	}
	return cfg, nil
}

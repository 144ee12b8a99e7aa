package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalLayout(t *testing.T) {
	cfg := Config{
		Setpoint:         270,
		SleepTimeout:     180000,
		DeepSleepTimeout: 600000,
	}
	// Byte-exact fixture: the layout must stay compatible with the
	// record the MCU firmware keeps in EEPROM.
	want := []byte{
		0x01, 0x0E, // 270
		0x00, 0x02, 0xBF, 0x20, // 180000
		0x00, 0x09, 0x27, 0xC0, // 600000
	}
	assert.Equal(t, want, cfg.Marshal())

	got, err := Unmarshal(want)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestUnmarshalShortRecord(t *testing.T) {
	_, err := Unmarshal(make([]byte, RecordSize-1))
	assert.Error(t, err)
}

func TestLoadInitializesBlankStore(t *testing.T) {
	// A zero setpoint marks the record as uninitialized: defaults are
	// returned and written back immediately.
	fake := NewFakeStore(Config{})
	cfg, err := Load(fake)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	require.Len(t, fake.Writes, 1)
	assert.Equal(t, Defaults(), fake.Writes[0])
}

func TestLoadKeepsExistingRecord(t *testing.T) {
	saved := Config{Setpoint: 310, SleepTimeout: 60000, DeepSleepTimeout: 120000}
	fake := NewFakeStore(saved)
	cfg, err := Load(fake)
	require.NoError(t, err)
	assert.Equal(t, saved, cfg)
	assert.Empty(t, fake.Writes)
}

func TestLoadPropagatesErrors(t *testing.T) {
	fake := NewFakeStore(Config{})
	fake.ReadError = errors.New("bus error")
	_, err := Load(fake)
	assert.Error(t, err)

	fake = NewFakeStore(Config{})
	fake.WriteError = errors.New("write protected")
	_, err = Load(fake)
	assert.Error(t, err)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.bin")
	s := NewFileStore(path, 0)

	// Missing file reads as uninitialized.
	cfg, err := s.ReadRecord()
	require.NoError(t, err)
	assert.Zero(t, cfg.Setpoint)

	want := Config{Setpoint: 305, SleepTimeout: 180000, DeepSleepTimeout: 600000}
	require.NoError(t, s.WriteRecord(want))

	got, err := s.ReadRecord()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreAtOffset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nvmem")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o644))

	s := NewFileStore(path, 16)
	want := Config{Setpoint: 270, SleepTimeout: 1000, DeepSleepTimeout: 2000}
	require.NoError(t, s.WriteRecord(want))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, raw, 64)
	got, err := Unmarshal(raw[16 : 16+RecordSize])
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// The surrounding bytes are untouched.
	for i, b := range raw[:16] {
		assert.Zero(t, b, "byte %d", i)
	}
}

func TestDurations(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, int64(180000), cfg.SleepDuration().Milliseconds())
	assert.Equal(t, int64(600000), cfg.DeepSleepDuration().Milliseconds())
}

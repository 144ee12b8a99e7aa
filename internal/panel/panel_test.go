package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refreshTime = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestFakePanelFrames(t *testing.T) {
	p := NewFakePanel()

	p.SetDigit(0, 2)
	p.SetDigit(1, 7)
	p.SetDigit(2, 0)
	p.SetSymbols(0x03)
	require.NoError(t, p.Refresh(refreshTime))

	require.Len(t, p.Frames, 1)
	assert.Equal(t, "270", p.Frames[0].Digits)
	assert.Equal(t, byte(0x03), p.Frames[0].Symbols)
}

func TestFakePanelChars(t *testing.T) {
	p := NewFakePanel()

	p.SetChars("ER")
	p.SetDigit(2, 1)
	require.NoError(t, p.Refresh(refreshTime))

	assert.Equal(t, "ER1", p.Last().Digits)
}

func TestFakePanelBlank(t *testing.T) {
	p := NewFakePanel()

	p.SetDigit(0, 9)
	p.BlankDigits()
	require.NoError(t, p.Refresh(refreshTime))

	assert.Equal(t, "   ", p.Last().Digits)
}

func TestFakePanelIgnoresOutOfRange(t *testing.T) {
	p := NewFakePanel()

	p.SetDigit(-1, 5)
	p.SetDigit(3, 5)
	p.SetDigit(0, 17)
	require.NoError(t, p.Refresh(refreshTime))

	assert.Equal(t, "   ", p.Last().Digits)
}

func TestFakePanelBeeps(t *testing.T) {
	p := NewFakePanel()

	require.NoError(t, p.Beep())
	require.NoError(t, p.Beep())
	require.NoError(t, p.BeepAlarm())

	assert.Equal(t, 2, p.Beeps)
	assert.Equal(t, 1, p.Alarms)
}

package pwm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDutyNs(t *testing.T) {
	assert.Equal(t, 0, dutyNs(40000, 0))
	assert.Equal(t, 20000, dutyNs(40000, 50))
	assert.Equal(t, 40000, dutyNs(40000, 100))

	// Out-of-range values clamp rather than wrap.
	assert.Equal(t, 0, dutyNs(40000, -5))
	assert.Equal(t, 40000, dutyNs(40000, 130))
}

func TestFakeHeaterRecordsDuties(t *testing.T) {
	h := NewFakeHeater()

	assert.Equal(t, -1, h.Last())

	assert.NoError(t, h.SetDuty(50))
	assert.NoError(t, h.SetDuty(86))
	assert.NoError(t, h.SetDuty(100))

	assert.Equal(t, []int{50, 86, 100}, h.Duties)
	assert.Equal(t, 100, h.Last())
}

func TestFakeHeaterSetError(t *testing.T) {
	h := NewFakeHeater()
	h.SetError = errors.New("write failed")

	assert.Error(t, h.SetDuty(50))
	assert.Empty(t, h.Duties)
}

func TestFakeHeaterClose(t *testing.T) {
	h := NewFakeHeater()
	assert.NoError(t, h.Close())
	assert.True(t, h.Closed)
}

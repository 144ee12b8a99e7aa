package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegrees(t *testing.T) {
	tests := []struct {
		name   string
		sample int
		want   int
	}{
		{"top of calibration window", 130, 400},
		{"bottom of calibration window", 40, 0},
		{"mid window", 85, 200},
		{"truncating division", 86, 204}, // 400*46/90 = 204.44
		// The calibration map is deliberately unclamped.
		{"below window goes negative", 30, -44},
		{"above window overshoots", 200, 711},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Degrees(tt.sample))
		})
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		degrees  int
		setpoint int
		idle     IdleState
		want     HeatCommand
	}{
		{"far below target holds half power", 100, 270, Active, 50},
		{"ramp begins 50 degrees out", 220, 270, Active, 40},
		{"mid ramp", 230, 270, Active, 50},
		{"at target", 270, 270, Active, 90},
		{"above target switches off", 271, 270, Active, HeatOff},
		{"idle retargets to the standby temperature", 90, 270, Idle, 80},
		{"idle above standby temperature switches off", 150, 270, Idle, HeatOff},
		{"deep idle is always off", 0, 450, DeepIdle, HeatOff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Command(tt.degrees, tt.setpoint, tt.idle))
		})
	}
}

func TestHeatCommand(t *testing.T) {
	assert.Equal(t, 100, HeatOff.Duty())
	assert.False(t, HeatOff.Heating())

	cmd := HeatCommand(90)
	assert.Equal(t, 90, cmd.Duty())
	assert.True(t, cmd.Heating())

	// Lower duty means more drive on this scale.
	assert.True(t, HeatCommand(50).Duty() < HeatCommand(90).Duty())
}

func TestClampSetpoint(t *testing.T) {
	assert.Equal(t, MinSetpoint, ClampSetpoint(0))
	assert.Equal(t, MinSetpoint, ClampSetpoint(-100))
	assert.Equal(t, MinSetpoint, ClampSetpoint(49))
	assert.Equal(t, 50, ClampSetpoint(50))
	assert.Equal(t, 270, ClampSetpoint(270))
	assert.Equal(t, 450, ClampSetpoint(450))
	assert.Equal(t, MaxSetpoint, ClampSetpoint(451))
	assert.Equal(t, MaxSetpoint, ClampSetpoint(9999))
}

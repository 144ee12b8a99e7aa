package pwm

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// SysfsHeater drives a sysfs PWM channel
// (/sys/class/pwm/<chip>/pwm<channel>).
type SysfsHeater struct {
	dir      string
	periodNs int
}

// NewSysfsHeater exports the channel if needed, programs the period and
// enables the output at zero duty.
func NewSysfsHeater(chip string, channel, periodNs int) (*SysfsHeater, error) {
	chipDir := filepath.Join("/sys/class/pwm", chip)
	dir := filepath.Join(chipDir, fmt.Sprintf("pwm%d", channel))

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := writeAttr(filepath.Join(chipDir, "export"), strconv.Itoa(channel)); err != nil {
			return nil, fmt.Errorf("export pwm channel %d: %w", channel, err)
		}
	}

	h := &SysfsHeater{dir: dir, periodNs: periodNs}
	if err := writeAttr(filepath.Join(dir, "duty_cycle"), "0"); err != nil {
		return nil, fmt.Errorf("clear duty: %w", err)
	}
	if err := writeAttr(filepath.Join(dir, "period"), strconv.Itoa(periodNs)); err != nil {
		return nil, fmt.Errorf("set period: %w", err)
	}
	if err := writeAttr(filepath.Join(dir, "enable"), "1"); err != nil {
		return nil, fmt.Errorf("enable: %w", err)
	}
	return h, nil
}

// SetDuty applies a duty value in percent, clamped to 0-100.
func (h *SysfsHeater) SetDuty(percent int) error {
	duty := dutyNs(h.periodNs, percent)
	if err := writeAttr(filepath.Join(h.dir, "duty_cycle"), strconv.Itoa(duty)); err != nil {
		return fmt.Errorf("set duty: %w", err)
	}
	return nil
}

// dutyNs converts a percent drive level to the on-time in nanoseconds,
// clamping out-of-range values.
func dutyNs(periodNs, percent int) int {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return periodNs / 100 * percent
}

// Close disables the output, leaving the heater off.
func (h *SysfsHeater) Close() error {
	if err := writeAttr(filepath.Join(h.dir, "duty_cycle"), "0"); err != nil {
		return err
	}
	return writeAttr(filepath.Join(h.dir, "enable"), "0")
}

func writeAttr(path, value string) error {
	return os.WriteFile(path, []byte(value), 0o644)
}

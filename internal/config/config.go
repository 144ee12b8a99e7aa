// Package config loads the station's hardware and runtime configuration
// from a YAML file. Missing files and missing fields fall back to the
// defaults, so a bare board with stock wiring needs no file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sweeney/solder-station/internal/adc"
	"github.com/sweeney/solder-station/internal/gpio"
	"github.com/sweeney/solder-station/internal/panel"
)

// Config is the full station configuration.
type Config struct {
	// PollInterval is the control loop interval.
	PollInterval time.Duration `yaml:"poll_interval"`
	GPIO         GPIOConfig    `yaml:"gpio"`
	ADC          ADCConfig     `yaml:"adc"`
	PWM          PWMConfig     `yaml:"pwm"`
	Panel        PanelConfig   `yaml:"panel"`
	Store        StoreConfig   `yaml:"store"`
}

// GPIOConfig maps the input pins.
type GPIOConfig struct {
	Chip        string `yaml:"chip"`
	PinPlus     int    `yaml:"pin_plus"`
	PinMinus    int    `yaml:"pin_minus"`
	PinPresence int    `yaml:"pin_presence"`
}

// ADCConfig locates the analog channels.
type ADCConfig struct {
	Device        string `yaml:"device"`
	TempChannel   int    `yaml:"temp_channel"`
	SupplyChannel int    `yaml:"supply_channel"`
}

// PWMConfig locates the heater output.
type PWMConfig struct {
	Chip     string `yaml:"chip"`
	Channel  int    `yaml:"channel"`
	PeriodNs int    `yaml:"period_ns"`
}

// PanelConfig locates the front panel serial link.
type PanelConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// StoreConfig locates the persisted settings record.
type StoreConfig struct {
	Path   string `yaml:"path"`
	Offset int64  `yaml:"offset"`
}

// Default returns the stock wiring configuration.
func Default() *Config {
	return &Config{
		PollInterval: time.Millisecond,
		GPIO: GPIOConfig{
			Chip:        "gpiochip0",
			PinPlus:     gpio.DefaultPinPlus,
			PinMinus:    gpio.DefaultPinMinus,
			PinPresence: gpio.DefaultPinPresence,
		},
		ADC: ADCConfig{
			Device:        adc.DefaultDevice,
			TempChannel:   0,
			SupplyChannel: 1,
		},
		PWM: PWMConfig{
			Chip:     "pwmchip0",
			Channel:  0,
			PeriodNs: 40000, // 25 kHz
		},
		Panel: PanelConfig{
			Port:     "/dev/ttyAMA0",
			BaudRate: panel.DefaultBaudRate,
		},
		Store: StoreConfig{
			Path:   "/var/lib/solder-station/settings.bin",
			Offset: 0,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, default values are used.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.ensureDefaults()
	return cfg, nil
}

// ensureDefaults fills in zero-valued required fields.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.PollInterval == 0 {
		c.PollInterval = def.PollInterval
	}
	if c.GPIO.Chip == "" {
		c.GPIO.Chip = def.GPIO.Chip
	}
	if c.ADC.Device == "" {
		c.ADC.Device = def.ADC.Device
	}
	if c.PWM.Chip == "" {
		c.PWM.Chip = def.PWM.Chip
	}
	if c.PWM.PeriodNs == 0 {
		c.PWM.PeriodNs = def.PWM.PeriodNs
	}
	if c.Panel.Port == "" {
		c.Panel.Port = def.Panel.Port
	}
	if c.Panel.BaudRate == 0 {
		c.Panel.BaudRate = def.Panel.BaudRate
	}
	if c.Store.Path == "" {
		c.Store.Path = def.Store.Path
	}
}

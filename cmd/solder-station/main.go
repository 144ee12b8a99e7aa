// Command solder-station runs the temperature control loop of a
// soldering-iron station: it reads the tip thermocouple and supply
// voltage, drives the heater PWM, handles the setpoint buttons, and
// renders status on the front panel.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/solder-station/internal/adc"
	"github.com/sweeney/solder-station/internal/config"
	"github.com/sweeney/solder-station/internal/control"
	"github.com/sweeney/solder-station/internal/gpio"
	"github.com/sweeney/solder-station/internal/panel"
	"github.com/sweeney/solder-station/internal/pwm"
	"github.com/sweeney/solder-station/internal/status"
	"github.com/sweeney/solder-station/internal/store"
)

func main() {
	configPath := flag.String("config", "/etc/solder-station.yaml", "Configuration file path")
	poll := flag.Duration("poll", 0, "Loop interval (0 = from config)")
	statusEvery := flag.Duration("status", time.Minute, "Status log interval (0 to disable)")
	printState := flag.Bool("print-state", false, "Print current sensor state and exit")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
	if *poll != 0 {
		cfg.PollInterval = *poll
	}

	if err := run(cfg, *statusEvery, *printState); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(cfg *config.Config, statusEvery time.Duration, printState bool) error {
	pins, err := gpio.NewRealReader(cfg.GPIO.Chip, cfg.GPIO.PinPlus, cfg.GPIO.PinMinus, cfg.GPIO.PinPresence)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer pins.Close()

	analog, err := adc.NewIIOReader(cfg.ADC.Device, cfg.ADC.TempChannel, cfg.ADC.SupplyChannel)
	if err != nil {
		return fmt.Errorf("init adc: %w", err)
	}
	defer analog.Close()

	// Print state mode
	if printState {
		sample, err := pins.Read()
		if err != nil {
			return fmt.Errorf("read gpio: %w", err)
		}
		rawTemp, err := analog.Read(adc.ChannelTemperature)
		if err != nil {
			return fmt.Errorf("read adc: %w", err)
		}
		rawSupply, err := analog.Read(adc.ChannelSupply)
		if err != nil {
			return fmt.Errorf("read adc: %w", err)
		}
		fmt.Printf("temp_raw=%d supply_raw=%d plus=%v minus=%v presence=%v\n",
			rawTemp, rawSupply, sample.Plus, sample.Minus, sample.Presence)
		return nil
	}

	heater, err := pwm.NewSysfsHeater(cfg.PWM.Chip, cfg.PWM.Channel, cfg.PWM.PeriodNs)
	if err != nil {
		return fmt.Errorf("init pwm: %w", err)
	}
	defer heater.Close()

	pnl, err := panel.NewSerial(cfg.Panel.Port, cfg.Panel.BaudRate)
	if err != nil {
		return fmt.Errorf("init panel: %w", err)
	}
	defer pnl.Close()

	st := store.NewFileStore(cfg.Store.Path, cfg.Store.Offset)
	settings, err := store.Load(st)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Startup mirrors the station's power-on sequence: attention tone,
	// heater held at half drive until the first control iteration.
	if err := pnl.BeepAlarm(); err != nil {
		log.Printf("startup alarm error: %v", err)
	}
	if err := heater.SetDuty(50); err != nil {
		log.Printf("startup duty error: %v", err)
	}

	ctl := control.New(int(settings.Setpoint), settings.SleepDuration(), settings.DeepSleepDuration(), time.Now())

	log.Printf("started: poll=%v setpoint=%d sleep=%v deep_sleep=%v store=%s",
		cfg.PollInterval, ctl.Setpoint(), settings.SleepDuration(), settings.DeepSleepDuration(), cfg.Store.Path)

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(ctl, pins, analog, heater, pnl, st, settings, statusEvery, time.Now, ticker.C, sigCh)
}

func runLoop(ctl *control.Controller, pins gpio.Reader, analog adc.Reader, heater pwm.Heater, pnl panel.Panel, st store.Store, settings store.Config, statusEvery time.Duration, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	startTime := now()
	lastStatus := startTime

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			forceHeaterOff(heater)
			return nil

		case <-tick:
			t := now()

			sample, err := pins.Read()
			if err != nil {
				log.Printf("gpio read error: %v", err)
				forceHeaterOff(heater)
				continue
			}
			rawTemp, err := analog.Read(adc.ChannelTemperature)
			if err != nil {
				log.Printf("adc read error: %v", err)
				forceHeaterOff(heater)
				continue
			}
			rawSupply, err := analog.Read(adc.ChannelSupply)
			if err != nil {
				log.Printf("adc read error: %v", err)
				forceHeaterOff(heater)
				continue
			}

			out := ctl.Step(control.Input{
				Now:       t,
				RawTemp:   rawTemp,
				RawSupply: rawSupply,
				Plus:      sample.Plus,
				Minus:     sample.Minus,
				Presence:  sample.Presence,
			})

			if err := heater.SetDuty(out.Command.Duty()); err != nil {
				log.Printf("heater error: %v", err)
			}

			applyFrame(pnl, out.Frame)

			if out.BeepAlarm {
				if err := pnl.BeepAlarm(); err != nil {
					log.Printf("alarm error: %v", err)
				}
			}
			if out.Beep {
				if err := pnl.Beep(); err != nil {
					log.Printf("beep error: %v", err)
				}
			}

			if out.Save {
				settings.Setpoint = uint16(ctl.Setpoint())
				if err := st.WriteRecord(settings); err != nil {
					log.Printf("settings write error: %v", err)
				} else {
					log.Printf("settings saved: setpoint=%d", settings.Setpoint)
				}
			}

			if err := pnl.Refresh(t); err != nil {
				log.Printf("panel error: %v", err)
			}

			if statusEvery > 0 && t.Sub(lastStatus) >= statusEvery {
				lastStatus = t
				snap := status.Snapshot{
					Setpoint:  ctl.Setpoint(),
					Degrees:   out.Degrees,
					Duty:      out.Command.Duty(),
					Supply:    out.Supply,
					Idle:      out.Idle,
					Fault:     out.Fault,
					StartTime: startTime,
					Now:       t,
				}
				log.Printf("status: %s", snap)
			}
		}
	}
}

// applyFrame stages one composed frame onto the display. The numeric
// value is bounded to the three digit positions here; the composer's
// value is passed through otherwise.
func applyFrame(d panel.Display, f control.Frame) {
	switch {
	case f.Text != "":
		d.SetChars(f.Text)
		d.SetDigit(2, f.Code)
	case f.Blank:
		d.BlankDigits()
	default:
		v := f.Value
		if v < 0 {
			v = 0
		}
		if v > 999 {
			v = 999
		}
		d.SetDigit(0, v/100)
		d.SetDigit(1, (v%100)/10)
		d.SetDigit(2, v%10)
	}
	d.SetSymbols(f.Symbols)
}

func forceHeaterOff(heater pwm.Heater) {
	if err := heater.SetDuty(control.HeatOff.Duty()); err != nil {
		log.Printf("heater off error: %v", err)
	}
}

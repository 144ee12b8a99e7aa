// Package adc provides analog input reading with hardware abstraction.
// The real implementation reads raw channel attributes from a sysfs IIO
// device; the fake implementation allows testing without hardware.
package adc

// Channel identifies one of the station's analog inputs.
type Channel int

const (
	// ChannelTemperature is the iron tip thermocouple amplifier output.
	ChannelTemperature Channel = iota
	// ChannelSupply is the divided input supply voltage.
	ChannelSupply
)

// Reader reads raw analog samples on a 0-1023 scale.
type Reader interface {
	Read(ch Channel) (int, error)
	Close() error
}

package reader

import "github.com/sirupsen/logrus"

// Config holds the session configuration.
type Config struct {
	// Address is the reader address on the serial bus, usually 0x01
	Address byte

	// AntennaCount is the number of antenna ports the reader exposes
	AntennaCount int

	// Logger receives frame dumps at debug level and dropped-frame
	// diagnostics at warn level
	Logger logrus.FieldLogger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Address:      0x01,
		AntennaCount: 1,
		Logger:       logrus.StandardLogger(),
	}
}

// Option is a functional option for configuring the Reader.
type Option func(*Config)

// WithAddress sets the reader address used in every command frame.
// Readers ship with address 0x01 unless reconfigured.
//
// Example:
//
//	rdr := reader.New(port, reader.WithAddress(0x02))
func WithAddress(address byte) Option {
	return func(c *Config) {
		c.Address = address
	}
}

// WithAntennaCount sets the number of antenna ports the reader has.
// This bounds SetOutputPower input and expands single-value OutputPower
// replies.
//
// Example:
//
//	rdr := reader.New(port, reader.WithAntennaCount(4))
func WithAntennaCount(count int) Option {
	return func(c *Config) {
		if count > 0 {
			c.AntennaCount = count
		}
	}
}

// WithLogger sets the logger for session diagnostics.
//
// Example:
//
//	log := logrus.New()
//	log.SetLevel(logrus.DebugLevel)
//	rdr := reader.New(port, reader.WithLogger(log))
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

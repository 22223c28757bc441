// Package serialport opens and configures the serial device an RFID reader
// session runs over.
//
// The readers speak 115200 baud, 8 data bits, no parity, one stop bit, no
// flow control. Reads block for up to the configured timeout; operations can
// genuinely take more than a second with many tags in range, so the default
// timeout is generous.
package serialport

import (
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
)

const (
	// DefaultBaudRate is the fixed factory baud rate of the reader modules
	DefaultBaudRate = 115200

	// DefaultReadTimeout bounds each blocking read
	DefaultReadTimeout = 5 * time.Second
)

// ErrTimeout is returned when a read produces no data within the configured
// timeout. The session treats this as an I/O failure and remains usable.
var ErrTimeout = errors.New("serialport: read timed out")

// Config holds the port configuration. Zero values select the defaults.
type Config struct {
	// BaudRate is the line speed; readers ship fixed at 115200
	BaudRate int

	// ReadTimeout bounds each blocking read
	ReadTimeout time.Duration
}

// Port is an open serial device ready to back a reader session.
//
// The underlying serial library reports a timed-out read as zero bytes with
// a nil error, which would make io.ReadFull spin forever. Port converts that
// case to ErrTimeout so the session's reads terminate.
type Port struct {
	port serial.Port
}

// Open opens and configures the serial device at the given path
// (e.g. /dev/ttyUSB0 or COM3).
func Open(device string, cfg Config) (*Port, error) {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = DefaultBaudRate
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}

	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", device, err)
	}
	if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", device, err)
	}

	return &Port{port: port}, nil
}

func (p *Port) Read(b []byte) (int, error) {
	n, err := p.port.Read(b)
	if err == nil && n == 0 {
		return 0, ErrTimeout
	}
	return n, err
}

func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close releases the serial device.
func (p *Port) Close() error {
	return p.port.Close()
}

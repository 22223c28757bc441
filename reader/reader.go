package reader

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/moffa90/go-invelion/protocol"
)

// Reader is an exchange session with one RFID reader module over a serial
// transport. It owns the transport exclusively; a Reader must not be used
// from more than one goroutine at a time.
type Reader struct {
	device io.ReadWriter
	config Config
}

// New creates a Reader over the given transport. The transport must block on
// reads with a configured timeout (see the serialport package); the timeout
// is the only bound on how long an exchange can take.
//
// Example:
//
//	rdr := reader.New(port,
//	    reader.WithAddress(0x01),
//	    reader.WithAntennaCount(4),
//	)
func New(device io.ReadWriter, opts ...Option) *Reader {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Reader{
		device: device,
		config: cfg,
	}
}

// Address returns the reader address the session targets.
func (r *Reader) Address() byte {
	return r.config.Address
}

// AntennaCount returns the configured number of antenna ports.
func (r *Reader) AntennaCount() int {
	return r.config.AntennaCount
}

// send serializes and writes one command frame.
func (r *Reader) send(cmd protocol.Command) error {
	frame := cmd.Bytes()
	r.config.Logger.WithFields(logrus.Fields{
		"command": cmd.Command.String(),
		"frame":   fmt.Sprintf("% X", frame),
	}).Debug("send")

	if _, err := r.device.Write(frame); err != nil {
		return fmt.Errorf("write command: %w", err)
	}
	return nil
}

// waitForStart blocks until a start byte arrives, discarding anything else.
//
// This is how the session recovers from desyncs: if a previous read timed out
// mid-frame, the leftover bytes of that frame are consumed and dropped here
// before the next response is read. Stricter framing would turn a recoverable
// desync into a fatal error, so keep the byte-by-byte scan.
func (r *Reader) waitForStart() error {
	var b [1]byte
	discarded := 0
	for {
		if _, err := io.ReadFull(r.device, b[:]); err != nil {
			return fmt.Errorf("read start byte: %w", err)
		}
		if b[0] == protocol.StartByte {
			if discarded > 0 {
				r.config.Logger.WithField("bytes", discarded).Warn("discarded garbage before start byte")
			}
			return nil
		}
		discarded++
	}
}

// receivePacket reads exactly one frame off the wire and parses it.
func (r *Reader) receivePacket() (*protocol.Response, error) {
	if err := r.waitForStart(); err != nil {
		return nil, err
	}

	var length [1]byte
	if _, err := io.ReadFull(r.device, length[:]); err != nil {
		return nil, fmt.Errorf("read length byte: %w", err)
	}

	frame := make([]byte, int(length[0])+2)
	frame[0] = protocol.StartByte
	frame[1] = length[0]
	if _, err := io.ReadFull(r.device, frame[2:]); err != nil {
		return nil, fmt.Errorf("read frame body: %w", err)
	}

	r.config.Logger.WithField("frame", fmt.Sprintf("% X", frame)).Debug("receive")
	return protocol.ParseResponse(frame)
}

// receive reads frames until one matches the expected command type,
// dropping anything else in case the session has lost sync with the reader.
func (r *Reader) receive(command protocol.CommandType) (*protocol.Response, error) {
	for {
		resp, err := r.receivePacket()
		if err != nil {
			return nil, err
		}
		if resp.Command == command {
			return resp, nil
		}
		r.config.Logger.WithFields(logrus.Fields{
			"expected": command.String(),
			"received": resp.Command.String(),
		}).Warn("dropped frame with unexpected command type")
	}
}

// exchange is the single-request/single-response primitive: send the command,
// receive the matching response, and fail on any non-success status.
func (r *Reader) exchange(cmd protocol.Command) (*protocol.Response, error) {
	if err := r.send(cmd); err != nil {
		return nil, err
	}
	resp, err := r.receive(cmd.Command)
	if err != nil {
		return nil, err
	}
	if resp.HasStatus && !resp.Status.IsSuccess() {
		return nil, &StatusError{Command: cmd.Command, Status: resp.Status}
	}
	return resp, nil
}

// exchangeSimple exchanges a command with no parameters.
func (r *Reader) exchangeSimple(command protocol.CommandType) (*protocol.Response, error) {
	return r.exchange(protocol.Command{
		Address: r.config.Address,
		Command: command,
	})
}

// Reset resets the reader.
func (r *Reader) Reset() error {
	_, err := r.exchangeSimple(protocol.CmdReset)
	return err
}

// FirmwareVersion returns the reader's firmware version as (major, minor).
func (r *Reader) FirmwareVersion() (major, minor byte, err error) {
	resp, err := r.exchangeSimple(protocol.CmdGetFirmwareVersion)
	if err != nil {
		return 0, 0, err
	}
	if len(resp.Data) < 2 {
		return 0, 0, &protocol.FrameError{Reason: "firmware version payload too short", Frame: resp.Data}
	}
	return resp.Data[0], resp.Data[1], nil
}

// SetWorkAntenna selects the working antenna port, 0 to AntennaCount-1.
func (r *Reader) SetWorkAntenna(antenna byte) error {
	_, err := r.exchange(protocol.Command{
		Address: r.config.Address,
		Command: protocol.CmdSetWorkAntenna,
		Data:    []byte{antenna},
	})
	return err
}

// WorkAntenna returns the currently selected antenna port.
func (r *Reader) WorkAntenna() (byte, error) {
	resp, err := r.exchangeSimple(protocol.CmdGetWorkAntenna)
	if err != nil {
		return 0, err
	}
	if len(resp.Data) < 1 {
		return 0, &protocol.FrameError{Reason: "work antenna payload too short", Frame: resp.Data}
	}
	return resp.Data[0], nil
}

// AntennaConnectionDetector returns the connection detector threshold for the
// working antenna, in dB of return loss, or 0 if the detector is disabled.
func (r *Reader) AntennaConnectionDetector() (int8, error) {
	resp, err := r.exchangeSimple(protocol.CmdGetAntConnectionDetector)
	if err != nil {
		return 0, err
	}
	if len(resp.Data) < 1 {
		return 0, &protocol.FrameError{Reason: "connection detector payload too short", Frame: resp.Data}
	}
	return -int8(resp.Data[0]), nil
}

// SetOutputPower sets the per-antenna output power in dBm and saves it to
// flash. power must hold one value per antenna port.
func (r *Reader) SetOutputPower(power []byte) error {
	if len(power) != r.config.AntennaCount {
		return &protocol.ParameterError{
			Reason: fmt.Sprintf("output power needs %d values, got %d", r.config.AntennaCount, len(power)),
		}
	}
	_, err := r.exchange(protocol.Command{
		Address: r.config.Address,
		Command: protocol.CmdSetOutputPower,
		Data:    append([]byte(nil), power...),
	})
	return err
}

// OutputPower returns the output power per antenna in dBm. Readers answer
// with a single value when every antenna is set the same; that value is
// repeated per antenna for a consistent result shape.
func (r *Reader) OutputPower() ([]byte, error) {
	resp, err := r.exchangeSimple(protocol.CmdGetOutputPower)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 1 {
		power := make([]byte, r.config.AntennaCount)
		for i := range power {
			power[i] = resp.Data[0]
		}
		return power, nil
	}
	return append([]byte(nil), resp.Data...), nil
}

// Temperature returns the reader temperature in degrees celsius.
func (r *Reader) Temperature() (int8, error) {
	resp, err := r.exchangeSimple(protocol.CmdGetReaderTemperature)
	if err != nil {
		return 0, err
	}
	if len(resp.Data) < 2 {
		return 0, &protocol.FrameError{Reason: "temperature payload too short", Frame: resp.Data}
	}
	temp := int8(resp.Data[1])
	// The datasheet claims the flag byte is 0x01 for negative readings, but
	// hardware does the opposite.
	if resp.Data[0] == 0x00 {
		temp = -temp
	}
	return temp, nil
}

// MeasureReturnLoss measures the return loss of the working antenna at the
// given frequency, in dB.
func (r *Reader) MeasureReturnLoss(freqMHz float32) (int8, error) {
	raw, err := protocol.EncodeFrequency(freqMHz)
	if err != nil {
		return 0, err
	}
	resp, err := r.exchange(protocol.Command{
		Address: r.config.Address,
		Command: protocol.CmdGetRFPortReturnLoss,
		Data:    []byte{raw},
	})
	if err != nil {
		return 0, err
	}
	if len(resp.Data) < 1 {
		return 0, &protocol.FrameError{Reason: "return loss payload too short", Frame: resp.Data}
	}
	return -int8(resp.Data[0]), nil
}

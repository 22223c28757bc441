package reader

import (
	"errors"
	"fmt"

	"github.com/moffa90/go-invelion/protocol"
)

// Kind classifies every failure the session can surface.
type Kind int

const (
	// KindIO is a transport-level failure, timeouts included. The session
	// stays usable; the caller may retry the whole exchange.
	KindIO Kind = iota

	// KindCommunication is a device status indicating a transient tag or
	// RF communication problem. Safe to retry.
	KindCommunication

	// KindProtocol is a semantic failure the device returned deliberately,
	// such as no tag found or an invalid parameter. Retrying without
	// changing the request will not help.
	KindProtocol

	// KindProgram is a malformed frame, bad checksum, unknown opcode or
	// status byte, or an invalid caller-supplied parameter. Indicates a
	// corrupted link or a programming mistake; never silently recovered.
	KindProgram
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindCommunication:
		return "communication"
	case KindProtocol:
		return "protocol"
	case KindProgram:
		return "program"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// StatusError is a non-success status returned by the device in an otherwise
// well-formed response. It carries the original command and status values.
type StatusError struct {
	Command protocol.CommandType
	Status  protocol.ResponseCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v failed: %v (0x%02X)", e.Command, e.Status, byte(e.Status))
}

// Transient reports whether the status describes a tag/RF communication
// problem that a retry has a reasonable chance of clearing.
func (e *StatusError) Transient() bool {
	switch e.Status {
	case protocol.StatusTagInventoryError,
		protocol.StatusTagReadError,
		protocol.StatusTagWriteError,
		protocol.StatusTagLockError,
		protocol.StatusTagKillError,
		protocol.StatusFailToGetRN16Error:
		return true
	}
	return false
}

// KindOf classifies any error surfaced by this package into one of the four
// failure kinds.
func KindOf(err error) Kind {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Transient() {
			return KindCommunication
		}
		return KindProtocol
	}

	var (
		frameErr     *protocol.FrameError
		checksumErr  *protocol.ChecksumError
		unknownCmd   *protocol.UnknownCommandError
		unknownState *protocol.UnknownStatusError
		paramErr     *protocol.ParameterError
	)
	if errors.As(err, &frameErr) ||
		errors.As(err, &checksumErr) ||
		errors.As(err, &unknownCmd) ||
		errors.As(err, &unknownState) ||
		errors.As(err, &paramErr) {
		return KindProgram
	}

	return KindIO
}

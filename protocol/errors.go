package protocol

import "fmt"

// FrameError indicates a structurally malformed frame or record: bad start
// byte, inconsistent length, or a truncated payload.
type FrameError struct {
	// Reason describes what was wrong with the frame
	Reason string

	// Frame is the offending bytes, for diagnostics
	Frame []byte
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("malformed frame: %s (% X)", e.Reason, e.Frame)
}

// ChecksumError indicates a frame whose trailing checksum byte does not match
// the checksum computed over the rest of the frame.
type ChecksumError struct {
	Expected byte
	Actual   byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: computed 0x%02X, frame carries 0x%02X", e.Expected, e.Actual)
}

// UnknownCommandError indicates an opcode byte outside the known command set.
type UnknownCommandError struct {
	Value byte
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command opcode 0x%02X", e.Value)
}

// UnknownStatusError indicates a status byte outside the known response code
// set. This is distinct from a known failure status, which parses fine and is
// reported by the session as a status error.
type UnknownStatusError struct {
	Value byte
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown status byte 0x%02X", e.Value)
}

// ParameterError indicates an invalid caller-supplied parameter, such as a
// frequency outside the reader's bands.
type ParameterError struct {
	Reason string
}

func (e *ParameterError) Error() string {
	return e.Reason
}

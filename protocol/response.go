package protocol

// Response is one validated incoming frame.
type Response struct {
	// Address is the responding reader's address
	Address byte

	// Command is the operation code the frame answers
	Command CommandType

	// Status is the decoded status byte; only meaningful when HasStatus is true
	Status ResponseCode

	// HasStatus reports whether the frame carried a status byte at all
	HasStatus bool

	// Data is the payload after the opcode (and status byte, if present),
	// excluding the trailing checksum
	Data []byte
}

// CommandHasResponseCode reports whether a response frame for the given
// command carries a status byte after the opcode.
//
// Most commands do. The getter commands below answer with bare payload and
// no status at all. RealTimeInventory is the awkward one: its tag-data frames
// have no status byte, but the short frame it emits when an inventory round
// fails does, so the decision needs the observed frame length as well as the
// opcode. Keep this a function of both; it cannot be a per-opcode table.
func CommandHasResponseCode(command CommandType, length byte) bool {
	switch command {
	case CmdGetFirmwareVersion,
		CmdGetOutputPower,
		CmdGetReaderTemperature,
		CmdGetRFPortReturnLoss,
		CmdGetWorkAntenna,
		CmdGetAntConnectionDetector:
		return false
	case CmdRealTimeInventory:
		return length == FailedInventoryLength
	default:
		return true
	}
}

// ParseResponse validates and decodes a complete response frame.
//
// The frame must start with StartByte, its total size must equal the declared
// length plus two, its trailing checksum must match, and its opcode and
// status byte (when present) must decode to known values. Each violation
// returns the corresponding typed error.
func ParseResponse(frame []byte) (*Response, error) {
	if len(frame) < MinResponseSize {
		return nil, &FrameError{Reason: "frame too short", Frame: frame}
	}
	if frame[0] != StartByte {
		return nil, &FrameError{Reason: "missing start byte", Frame: frame}
	}

	length := frame[1]
	if len(frame) != int(length)+2 {
		return nil, &FrameError{Reason: "declared length does not match frame size", Frame: frame}
	}

	want := Checksum(frame[:len(frame)-1])
	if got := frame[len(frame)-1]; got != want {
		return nil, &ChecksumError{Expected: want, Actual: got}
	}

	command, err := ParseCommandType(frame[3])
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Address: frame[2],
		Command: command,
	}

	payload := frame[4 : len(frame)-1]
	if CommandHasResponseCode(command, length) {
		if len(payload) == 0 {
			return nil, &FrameError{Reason: "missing status byte", Frame: frame}
		}
		status, err := ParseResponseCode(payload[0])
		if err != nil {
			return nil, err
		}
		resp.Status = status
		resp.HasStatus = true
		payload = payload[1:]
	}
	resp.Data = payload

	return resp, nil
}

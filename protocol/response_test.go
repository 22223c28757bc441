package protocol

import (
	"bytes"
	"errors"
	"testing"
)

// buildResponseFrame assembles a valid response frame around the given body
// (status byte included when the command carries one).
func buildResponseFrame(addr byte, command CommandType, body []byte) []byte {
	frame := []byte{StartByte, byte(len(body) + LengthOverhead), addr, byte(command)}
	frame = append(frame, body...)
	return append(frame, Checksum(frame))
}

func TestParseResponseNoStatusByte(t *testing.T) {
	// Canned firmware version reply: version 1.2, no status byte.
	frame := []byte{0xA0, 0x05, 0x01, 0x72, 0x01, 0x02, 0xE5}

	resp, err := ParseResponse(frame)
	if err != nil {
		t.Fatalf("ParseResponse() returned error: %v", err)
	}
	if resp.Address != 0x01 {
		t.Errorf("Address = 0x%02X, want 0x01", resp.Address)
	}
	if resp.Command != CmdGetFirmwareVersion {
		t.Errorf("Command = %v, want GetFirmwareVersion", resp.Command)
	}
	if resp.HasStatus {
		t.Error("HasStatus = true for a command that never carries a status byte")
	}
	if !bytes.Equal(resp.Data, []byte{0x01, 0x02}) {
		t.Errorf("Data = % X, want 01 02", resp.Data)
	}
}

func TestParseResponseWithStatusByte(t *testing.T) {
	tests := []struct {
		name    string
		command CommandType
		body    []byte
		status  ResponseCode
		data    []byte
	}{
		{
			name:    "set work antenna success",
			command: CmdSetWorkAntenna,
			body:    []byte{0x00},
			status:  StatusSuccess,
		},
		{
			name:    "reset with device failure",
			command: CmdReset,
			body:    []byte{0x20},
			status:  StatusMCUResetError,
		},
		{
			name:    "read reply keeps payload after status",
			command: CmdRead,
			body:    []byte{0x00, 0x01, 0x08},
			status:  StatusSuccess,
			data:    []byte{0x01, 0x08},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := buildResponseFrame(0x01, tt.command, tt.body)
			resp, err := ParseResponse(frame)
			if err != nil {
				t.Fatalf("ParseResponse() returned error: %v", err)
			}
			if !resp.HasStatus {
				t.Fatal("HasStatus = false, want true")
			}
			if resp.Status != tt.status {
				t.Errorf("Status = %v, want %v", resp.Status, tt.status)
			}
			if !bytes.Equal(resp.Data, tt.data) {
				t.Errorf("Data = % X, want % X", resp.Data, tt.data)
			}
		})
	}
}

func TestParseResponseRealTimeInventory(t *testing.T) {
	// A failed inventory round is the one RealTimeInventory frame with a
	// status byte; it has declared length 4.
	failed := buildResponseFrame(0x01, CmdRealTimeInventory, []byte{0x22})
	resp, err := ParseResponse(failed)
	if err != nil {
		t.Fatalf("ParseResponse(failed round) returned error: %v", err)
	}
	if !resp.HasStatus || resp.Status != StatusAntennaMissingError {
		t.Errorf("failed round: HasStatus=%v Status=%v, want antenna missing status", resp.HasStatus, resp.Status)
	}

	// A tag-data frame is longer and carries raw payload, no status byte.
	tag := buildResponseFrame(0x01, CmdRealTimeInventory,
		[]byte{0x15, 0x30, 0x00, 0xE2, 0x00, 0x10, 0x20, 0x50})
	resp, err = ParseResponse(tag)
	if err != nil {
		t.Fatalf("ParseResponse(tag frame) returned error: %v", err)
	}
	if resp.HasStatus {
		t.Error("tag frame: HasStatus = true, want false")
	}
	if len(resp.Data) != 8 {
		t.Errorf("tag frame: len(Data) = %d, want 8", len(resp.Data))
	}
}

func TestParseResponseErrors(t *testing.T) {
	valid := buildResponseFrame(0x01, CmdGetWorkAntenna, []byte{0x02})

	corrupted := append([]byte(nil), valid...)
	corrupted[len(corrupted)-1] ^= 0xFF

	badStart := append([]byte(nil), valid...)
	badStart[0] = 0x5A

	badLength := append([]byte(nil), valid...)
	badLength[1]++

	unknownOpcode := buildResponseFrame(0x01, CommandType(0x55), []byte{0x00})
	unknownStatus := buildResponseFrame(0x01, CmdReset, []byte{0x99})
	missingStatus := buildResponseFrame(0x01, CmdReset, nil)

	tests := []struct {
		name   string
		frame  []byte
		target error
	}{
		{"flipped checksum", corrupted, &ChecksumError{}},
		{"missing start byte", badStart, &FrameError{}},
		{"length mismatch", badLength, &FrameError{}},
		{"truncated frame", valid[:3], &FrameError{}},
		{"unknown opcode", unknownOpcode, &UnknownCommandError{}},
		{"unknown status byte", unknownStatus, &UnknownStatusError{}},
		{"status byte absent", missingStatus, &FrameError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.frame)
			if err == nil {
				t.Fatal("ParseResponse() should fail")
			}
			switch want := tt.target.(type) {
			case *ChecksumError:
				if !errors.As(err, &want) {
					t.Errorf("error = %T (%v), want *ChecksumError", err, err)
				}
			case *FrameError:
				if !errors.As(err, &want) {
					t.Errorf("error = %T (%v), want *FrameError", err, err)
				}
			case *UnknownCommandError:
				if !errors.As(err, &want) {
					t.Errorf("error = %T (%v), want *UnknownCommandError", err, err)
				}
			case *UnknownStatusError:
				if !errors.As(err, &want) {
					t.Errorf("error = %T (%v), want *UnknownStatusError", err, err)
				}
			}
		})
	}
}

func TestCommandHasResponseCode(t *testing.T) {
	tests := []struct {
		command  CommandType
		length   byte
		expected bool
	}{
		{CmdGetFirmwareVersion, 5, false},
		{CmdGetOutputPower, 4, false},
		{CmdGetReaderTemperature, 5, false},
		{CmdGetRFPortReturnLoss, 4, false},
		{CmdGetWorkAntenna, 4, false},
		{CmdGetAntConnectionDetector, 4, false},
		{CmdRealTimeInventory, FailedInventoryLength, true},
		{CmdRealTimeInventory, 11, false},
		{CmdReset, 4, true},
		{CmdSetWorkAntenna, 4, true},
		{CmdRead, 24, true},
		{CmdSetAccessEPCMatch, 4, true},
	}

	for _, tt := range tests {
		if got := CommandHasResponseCode(tt.command, tt.length); got != tt.expected {
			t.Errorf("CommandHasResponseCode(%v, %d) = %v, want %v",
				tt.command, tt.length, got, tt.expected)
		}
	}
}

func TestParseCommandTypeBijection(t *testing.T) {
	seen := make(map[byte]bool)
	for value := 0; value < 256; value++ {
		ct, err := ParseCommandType(byte(value))
		if err != nil {
			continue
		}
		if byte(ct) != byte(value) {
			t.Errorf("ParseCommandType(0x%02X) = 0x%02X, byte value must round-trip", value, byte(ct))
		}
		seen[byte(value)] = true
	}

	// Spot-check the opcode ranges the protocol defines.
	for _, b := range []byte{0x70, 0x72, 0x7E, 0x80, 0x89, 0x8E, 0xB0, 0xB4, 0x90, 0x93} {
		if !seen[b] {
			t.Errorf("opcode 0x%02X should be known", b)
		}
	}
	for _, b := range []byte{0x00, 0x64, 0x7F, 0x8F, 0xB5, 0x94, 0xFF} {
		if seen[b] {
			t.Errorf("opcode 0x%02X should be unknown", b)
		}
	}
}

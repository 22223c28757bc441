// Package protocol implements the serial communication protocol spoken by
// Invelion/Rodinbell-family UHF RFID Gen2 reader modules.
//
// This package provides the pure codec layer: it builds command frames,
// parses and validates response frames, and decodes the per-tag records
// carried by streaming operations. It performs no I/O; see the reader
// package for the exchange session that drives a serial transport.
//
// # Protocol Overview
//
// Every frame on the wire has the same layout:
//
//	Command:  [0xA0][LEN][ADDR][CMD][DATA...][CHECKSUM]
//	Response: [0xA0][LEN][ADDR][CMD][STATUS?][DATA...][CHECKSUM]
//
// Where:
//   - 0xA0 is the start byte
//   - LEN counts every byte after the length byte, checksum included
//   - CHECKSUM is the two's complement of the 8-bit sum of all preceding bytes
//
// The STATUS byte is not present on every response. Whether it is depends on
// both the command and the observed frame length; see CommandHasResponseCode.
//
// # Building Commands
//
// Fill in a Command and serialize it with Bytes:
//
//	cmd := protocol.Command{Address: 0x01, Command: protocol.CmdGetFirmwareVersion}
//	frame := cmd.Bytes() // [0xA0, 0x03, 0x01, 0x72, 0xEA]
//
// # Parsing Responses
//
// Use ParseResponse to validate and classify a complete frame:
//
//	resp, err := protocol.ParseResponse(frame)
//	if resp.HasStatus && resp.Status != protocol.StatusSuccess {
//	    // the device reported a failure
//	}
//
// Streaming operations deliver one frame per tag; decode those with
// ParseInventoryItem, ParseInventoryResult and ParseReadResult.
//
// # Error Handling
//
// Malformed input is reported through the typed errors in this package
// (FrameError, ChecksumError, UnknownCommandError, UnknownStatusError,
// ParameterError). None of the parse functions panic on corrupt frames.
package protocol

package protocol

import "encoding/binary"

// InventoryItem is one tag observed during a real-time inventory cycle.
type InventoryItem struct {
	// Frequency is the carrier frequency the tag was read at, in MHz
	Frequency float32

	// Antenna is the antenna port the tag was read on (0-3)
	Antenna byte

	// PC is the tag's 2-byte protocol-control field
	PC [2]byte

	// EPC is the tag's identifier, variable length
	EPC []byte

	// RSSI is the received signal strength in dBm
	RSSI int8
}

// minInventoryItemSize is the smallest decodable tag record:
// packed frequency/antenna byte, PC, and the trailing RSSI byte.
const minInventoryItemSize = 4

// ParseInventoryItem decodes one tag record from a real-time inventory frame
// payload. Byte 0 packs the raw frequency index in its top 6 bits and the
// antenna ID in its bottom 2; the EPC runs from byte 3 up to the final RSSI
// byte.
func ParseInventoryItem(data []byte) (InventoryItem, error) {
	if len(data) < minInventoryItemSize {
		return InventoryItem{}, &FrameError{Reason: "inventory record too short", Frame: data}
	}

	item := InventoryItem{
		Frequency: DecodeFrequency(data[0] >> 2),
		Antenna:   data[0] & 0x03,
		RSSI:      DecodeRSSI(data[len(data)-1]),
	}
	copy(item.PC[:], data[1:3])
	item.EPC = append([]byte(nil), data[3:len(data)-1]...)

	return item, nil
}

// InventoryResult is the terminal aggregate of a real-time inventory
// exchange, combining the accumulated tag records with the summary the
// reader sends in its final short frame.
type InventoryResult struct {
	// Items are the decoded tag records in arrival order
	Items []InventoryItem

	// Antenna is the antenna the inventory ran on
	Antenna byte

	// ReadRate is the read throughput in tags per second
	ReadRate uint16

	// TotalRead is the total number of tag reads during the cycle
	TotalRead uint32
}

// inventoryResultSize is the summary record size:
// antenna(1) + read rate(2) + total read(4), big-endian.
const inventoryResultSize = 7

// ParseInventoryResult decodes the terminal summary frame payload and
// combines it with the tag records accumulated from earlier frames.
func ParseInventoryResult(data []byte, items []InventoryItem) (InventoryResult, error) {
	if len(data) < inventoryResultSize {
		return InventoryResult{}, &FrameError{Reason: "inventory summary too short", Frame: data}
	}

	return InventoryResult{
		Items:     items,
		Antenna:   data[0],
		ReadRate:  binary.BigEndian.Uint16(data[1:3]),
		TotalRead: binary.BigEndian.Uint32(data[3:7]),
	}, nil
}

// ReadResult is one tag's memory read outcome from a Read exchange.
type ReadResult struct {
	// Frequency is the carrier frequency the tag was accessed at, in MHz
	Frequency float32

	// Antenna is the antenna port the tag was accessed on (0-3)
	Antenna byte

	// PC is the tag's 2-byte protocol-control field
	PC [2]byte

	// EPC is the tag's identifier, variable length
	EPC []byte

	// CRC is the tag's stored CRC-16
	CRC [2]byte

	// Data is the memory read out of the requested bank
	Data []byte

	// ReadCount is how many times the reader accessed this tag
	ReadCount byte
}

// minReadResultSize covers the fixed parts of a read record:
// tag count(1) + data length(1) + read length(1) + packed byte(1) + read count(1).
const minReadResultSize = 5

// ParseReadResult decodes one tag record from a Read response payload and
// returns the total number of records the reader will send for the whole
// operation, so the session knows when to stop reading frames.
//
// Payload layout (after the status byte has been stripped by ParseResponse):
//
//	[COUNT][DATALEN][PC(2)][EPC...][CRC(2)][READ DATA...][READLEN][FREQ/ANT][READCOUNT]
//
// where DATALEN covers PC through read data and READLEN is the read data
// length alone, leaving the EPC as the variable remainder.
func ParseReadResult(data []byte) (int, ReadResult, error) {
	if len(data) < minReadResultSize {
		return 0, ReadResult{}, &FrameError{Reason: "read record too short", Frame: data}
	}

	count := int(data[0])
	dataLen := int(data[1])
	if count < 1 {
		return 0, ReadResult{}, &FrameError{Reason: "read record declares zero tags", Frame: data}
	}
	if len(data) < 2+dataLen+3 {
		return 0, ReadResult{}, &FrameError{Reason: "read record truncated", Frame: data}
	}

	body := data[2 : 2+dataLen]
	readLen := int(data[2+dataLen])
	packed := data[3+dataLen]
	readCount := data[4+dataLen]

	// body = PC(2) + EPC + CRC(2) + read data(readLen)
	if dataLen < 4+readLen {
		return 0, ReadResult{}, &FrameError{Reason: "read record data length inconsistent", Frame: data}
	}
	epcEnd := dataLen - 2 - readLen

	result := ReadResult{
		Frequency: DecodeFrequency(packed >> 2),
		Antenna:   packed & 0x03,
		EPC:       append([]byte(nil), body[2:epcEnd]...),
		Data:      append([]byte(nil), body[dataLen-readLen:]...),
		ReadCount: readCount,
	}
	copy(result.PC[:], body[0:2])
	copy(result.CRC[:], body[epcEnd:epcEnd+2])

	return count, result, nil
}

package protocol

// Command is one outgoing request frame before serialization.
// Commands are built per call and consumed immediately by Bytes.
type Command struct {
	// Address is the reader address, usually 0x01
	Address byte

	// Command is the operation code
	Command CommandType

	// Data is the command-specific payload, possibly empty
	Data []byte
}

// Bytes serializes the command into a complete wire frame:
//
//	[0xA0][LEN][ADDR][CMD][DATA...][CHECKSUM]
//
// LEN counts every byte after the length byte, checksum included, so it is
// always len(Data)+3. The checksum covers the whole frame before it.
func (c Command) Bytes() []byte {
	frame := make([]byte, 0, len(c.Data)+MinResponseSize)
	frame = append(frame, StartByte, byte(len(c.Data)+LengthOverhead), c.Address, byte(c.Command))
	frame = append(frame, c.Data...)
	frame = append(frame, Checksum(frame))
	return frame
}

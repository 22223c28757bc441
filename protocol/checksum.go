package protocol

// Checksum computes the single-byte frame checksum: the two's complement of
// the 8-bit wrapping sum of the input.
//
// Outgoing frames append Checksum(frame) as their final byte; incoming frames
// are valid when Checksum(frame[:len-1]) equals the trailing byte.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return ^sum + 1
}

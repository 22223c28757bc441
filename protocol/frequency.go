package protocol

import "fmt"

// The readers tune in 0.5 MHz steps across two regulatory sub-bands with a
// gap between them: raw values 0-6 cover 865.0-868.0 MHz (ETSI) and raw
// values from 7 up cover 902.0-928.0 MHz (FCC).
const (
	lowBandBase   = 865.0
	lowBandLimit  = 868.0
	highBandBase  = 902.0
	highBandLimit = 928.0
	highBandFirst = 7
	frequencyStep = 0.5
)

// DecodeFrequency converts a raw frequency index to MHz.
func DecodeFrequency(raw byte) float32 {
	if raw < highBandFirst {
		return lowBandBase + frequencyStep*float32(raw)
	}
	return highBandBase + frequencyStep*float32(raw-highBandFirst)
}

// EncodeFrequency converts a frequency in MHz to the raw index the reader
// expects. Frequencies off the 0.5 MHz grid truncate toward the lower step.
// Frequencies outside [865,868] and [902,928] MHz are rejected.
func EncodeFrequency(mhz float32) (byte, error) {
	switch {
	case mhz >= lowBandBase && mhz <= lowBandLimit:
		return byte((mhz - lowBandBase) / frequencyStep), nil
	case mhz >= highBandBase && mhz <= highBandLimit:
		return highBandFirst + byte((mhz-highBandBase)/frequencyStep), nil
	}
	return 0, &ParameterError{Reason: fmt.Sprintf("invalid frequency %.1f MHz: must be within 865-868 or 902-928", mhz)}
}

// DecodeRSSI converts a raw RSSI byte to dBm. The offset changes at raw 89;
// this matches the device's actual (undocumented) behaviour and must not be
// smoothed into a single linear map.
func DecodeRSSI(raw byte) int8 {
	if raw > 89 {
		return int8(int16(raw) - 129)
	}
	return int8(int16(raw) - 130)
}

// Package reader drives Invelion/Rodinbell-family UHF RFID reader modules
// over a byte-oriented serial transport.
//
// These readers are built on the Impinj Indy R2000 chipset and share a
// white-label module design sold under several names (Invelion IND9xx/YR9xx,
// Rodinbell D100/M500/M2600/M2800/S-8600 and others). They all speak the
// framing protocol implemented by the protocol package.
//
// # Usage
//
// The Reader owns an io.ReadWriter transport exclusively for the duration of
// each call. Open a serial device (see the serialport package) and hand it
// over:
//
//	port, err := serialport.Open("/dev/ttyUSB0", serialport.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	rdr := reader.New(port, reader.WithAddress(0x01), reader.WithAntennaCount(4))
//	major, minor, err := rdr.FirmwareVersion()
//
// A Reader must not be used concurrently: the protocol has no pipelining and
// matches responses to requests by opcode alone, so there can only ever be
// one outstanding request.
//
// # Recovery
//
// The session resynchronizes on the wire by scanning for the frame start
// byte, discarding anything else. After a timeout or a corrupted frame the
// same Reader stays usable; the next call starts with a fresh scan. Desyncs
// do happen in practice, typically from marginal USB-serial adapters.
//
// # Errors
//
// Failures fall into four kinds (see Kind and KindOf): transport I/O errors,
// transient communication statuses worth retrying, protocol statuses the
// device returned deliberately, and program errors (malformed frames, bad
// parameters). The session never retries on its own; that is the caller's
// decision.
package reader

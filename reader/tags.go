package reader

import (
	"fmt"

	"github.com/moffa90/go-invelion/protocol"
)

// accessPasswordSize is the ISO18000-6C access password length in bytes.
const accessPasswordSize = 4

// inventorySummaryThreshold separates tag-data frames from the terminal
// summary: any real-time inventory payload shorter than this is the summary.
const inventorySummaryThreshold = 8

// RealTimeInventory runs one inventory cycle on the working antenna and
// streams tag records back in real time, returning them once the reader
// sends its terminal summary frame.
//
// repeat is the number of inventory rounds the reader attempts; 0xFF lets
// the reader optimise for speed, which is what fast multi-antenna setups
// want.
func (r *Reader) RealTimeInventory(repeat byte) (protocol.InventoryResult, error) {
	err := r.send(protocol.Command{
		Address: r.config.Address,
		Command: protocol.CmdRealTimeInventory,
		Data:    []byte{repeat},
	})
	if err != nil {
		return protocol.InventoryResult{}, err
	}

	var items []protocol.InventoryItem
	for {
		resp, err := r.receive(protocol.CmdRealTimeInventory)
		if err != nil {
			return protocol.InventoryResult{}, err
		}
		if resp.HasStatus && !resp.Status.IsSuccess() {
			return protocol.InventoryResult{}, &StatusError{
				Command: protocol.CmdRealTimeInventory,
				Status:  resp.Status,
			}
		}

		if len(resp.Data) < inventorySummaryThreshold {
			return protocol.ParseInventoryResult(resp.Data, items)
		}

		item, err := protocol.ParseInventoryItem(resp.Data)
		if err != nil {
			return protocol.InventoryResult{}, err
		}
		items = append(items, item)
	}
}

// Read reads tag memory from every tag in range (or every tag selected by a
// prior SetEPCMatch). One ReadResult is returned per tag the reader accessed;
// duplicate EPCs are possible when tags carry different data.
//
// bank is the memory bank to read, password the 4-byte access password
// ([0,0,0,0] when unset), start and length the read window in 2-byte words.
func (r *Reader) Read(bank protocol.MemoryBank, password []byte, start, length byte) ([]protocol.ReadResult, error) {
	if len(password) != accessPasswordSize {
		return nil, &protocol.ParameterError{
			Reason: fmt.Sprintf("access password must be %d bytes, got %d", accessPasswordSize, len(password)),
		}
	}

	data := make([]byte, 0, 3+accessPasswordSize)
	data = append(data, byte(bank), start, length)
	data = append(data, password...)

	err := r.send(protocol.Command{
		Address: r.config.Address,
		Command: protocol.CmdRead,
		Data:    data,
	})
	if err != nil {
		return nil, err
	}

	var results []protocol.ReadResult
	for {
		resp, err := r.receive(protocol.CmdRead)
		if err != nil {
			return nil, err
		}
		if resp.HasStatus && !resp.Status.IsSuccess() {
			if resp.Status == protocol.StatusNoTagError {
				// Nothing in range; not a failure of the exchange.
				return results, nil
			}
			return nil, &StatusError{Command: protocol.CmdRead, Status: resp.Status}
		}

		count, result, err := protocol.ParseReadResult(resp.Data)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
		if len(results) >= count {
			return results, nil
		}
	}
}

// SetEPCMatch restricts subsequent access commands to tags whose EPC matches
// the given bytes. An empty EPC clears the match so commands act on every
// tag in range again.
func (r *Reader) SetEPCMatch(epc []byte) error {
	mode := byte(0x00)
	if len(epc) == 0 {
		mode = 0x01 // clear
	}

	data := make([]byte, 0, 2+len(epc))
	data = append(data, mode, byte(len(epc)))
	data = append(data, epc...)

	_, err := r.exchange(protocol.Command{
		Address: r.config.Address,
		Command: protocol.CmdSetAccessEPCMatch,
		Data:    data,
	})
	return err
}

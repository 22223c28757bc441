package reader

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moffa90/go-invelion/protocol"
)

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{
		Command: protocol.CmdRead,
		Status:  protocol.StatusNoTagError,
	}
	assert.Equal(t, "Read failed: no tag found (0x36)", err.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{
			name:     "transport error",
			err:      fmt.Errorf("read frame body: %w", errors.New("port closed")),
			expected: KindIO,
		},
		{
			name:     "transient tag status",
			err:      &StatusError{Command: protocol.CmdRead, Status: protocol.StatusTagReadError},
			expected: KindCommunication,
		},
		{
			name:     "deliberate device status",
			err:      &StatusError{Command: protocol.CmdSetWorkAntenna, Status: protocol.StatusInvalidAntennaIDError},
			expected: KindProtocol,
		},
		{
			name:     "checksum mismatch",
			err:      &protocol.ChecksumError{Expected: 0xEA, Actual: 0x15},
			expected: KindProgram,
		},
		{
			name:     "unknown opcode",
			err:      &protocol.UnknownCommandError{Value: 0x55},
			expected: KindProgram,
		},
		{
			name:     "bad caller parameter",
			err:      &protocol.ParameterError{Reason: "invalid frequency"},
			expected: KindProgram,
		},
		{
			name:     "wrapped program error",
			err:      fmt.Errorf("decode: %w", &protocol.FrameError{Reason: "too short"}),
			expected: KindProgram,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "io", KindIO.String())
	assert.Equal(t, "communication", KindCommunication.String())
	assert.Equal(t, "protocol", KindProtocol.String())
	assert.Equal(t, "program", KindProgram.String())
}

package protocol

import "fmt"

// Frame structure constants.
const (
	// StartByte marks the beginning of every frame (0xA0)
	StartByte = 0xA0

	// MinResponseSize is the smallest structurally valid response frame:
	// START(1) + LEN(1) + ADDR(1) + CMD(1) + CHECKSUM(1)
	MinResponseSize = 5

	// LengthOverhead is the number of non-data bytes counted by the length
	// field: ADDR(1) + CMD(1) + CHECKSUM(1)
	LengthOverhead = 3

	// FailedInventoryLength is the declared length of the short frame a
	// reader emits when a real-time inventory round fails. Only frames of
	// this length carry a status byte for CmdRealTimeInventory.
	FailedInventoryLength = 4
)

// CommandType identifies a reader operation code.
type CommandType byte

// Reader configuration commands.
const (
	CmdReadGPIOValue            CommandType = 0x60
	CmdWriteGPIOValue           CommandType = 0x61
	CmdSetAntConnectionDetector CommandType = 0x62
	CmdGetAntConnectionDetector CommandType = 0x63
	CmdSetTemporaryOutputPower  CommandType = 0x66
	CmdSetReaderIdentifier      CommandType = 0x67
	CmdGetReaderIdentifier      CommandType = 0x68
	CmdSetRFLinkProfile         CommandType = 0x69
	CmdGetRFLinkProfile         CommandType = 0x6A
	CmdReset                    CommandType = 0x70
	CmdSetUARTBaudRate          CommandType = 0x71
	CmdGetFirmwareVersion       CommandType = 0x72
	CmdSetReaderAddress         CommandType = 0x73
	CmdSetWorkAntenna           CommandType = 0x74
	CmdGetWorkAntenna           CommandType = 0x75
	CmdSetOutputPower           CommandType = 0x76
	CmdGetOutputPower           CommandType = 0x77
	CmdSetFrequencyRegion       CommandType = 0x78
	CmdGetFrequencyRegion       CommandType = 0x79
	CmdSetBeeperMode            CommandType = 0x7A
	CmdGetReaderTemperature     CommandType = 0x7B
	CmdGetRFPortReturnLoss      CommandType = 0x7E
)

// ISO18000-6C tag commands.
const (
	CmdInventory                        CommandType = 0x80
	CmdRead                             CommandType = 0x81
	CmdWrite                            CommandType = 0x82
	CmdLock                             CommandType = 0x83
	CmdKill                             CommandType = 0x84
	CmdSetAccessEPCMatch                CommandType = 0x85
	CmdGetAccessEPCMatch                CommandType = 0x86
	CmdRealTimeInventory                CommandType = 0x89
	CmdFastSwitchAntInventory           CommandType = 0x8A
	CmdCustomizedSessionTargetInventory CommandType = 0x8B
	CmdSetImpinjFastTID                 CommandType = 0x8C
	CmdSetAndSaveImpinjFastTID          CommandType = 0x8D
	CmdGetImpinjFastTID                 CommandType = 0x8E
)

// ISO18000-6B tag commands. Defined for completeness; the driver does not
// exercise them.
const (
	CmdInventory6B CommandType = 0xB0
	CmdRead6B      CommandType = 0xB1
	CmdWrite6B     CommandType = 0xB2
	CmdLock6B      CommandType = 0xB3
	CmdQueryLock6B CommandType = 0xB4
)

// Buffered inventory commands. Defined for completeness; the driver does not
// exercise them.
const (
	CmdGetInventoryBuffer         CommandType = 0x90
	CmdGetAndResetInventoryBuffer CommandType = 0x91
	CmdGetBufferTagCount          CommandType = 0x92
	CmdResetInventoryBuffer       CommandType = 0x93
)

var commandTypeNames = map[CommandType]string{
	CmdReadGPIOValue:            "ReadGPIOValue",
	CmdWriteGPIOValue:           "WriteGPIOValue",
	CmdSetAntConnectionDetector: "SetAntConnectionDetector",
	CmdGetAntConnectionDetector: "GetAntConnectionDetector",
	CmdSetTemporaryOutputPower:  "SetTemporaryOutputPower",
	CmdSetReaderIdentifier:      "SetReaderIdentifier",
	CmdGetReaderIdentifier:      "GetReaderIdentifier",
	CmdSetRFLinkProfile:         "SetRFLinkProfile",
	CmdGetRFLinkProfile:         "GetRFLinkProfile",
	CmdReset:                    "Reset",
	CmdSetUARTBaudRate:          "SetUARTBaudRate",
	CmdGetFirmwareVersion:       "GetFirmwareVersion",
	CmdSetReaderAddress:         "SetReaderAddress",
	CmdSetWorkAntenna:           "SetWorkAntenna",
	CmdGetWorkAntenna:           "GetWorkAntenna",
	CmdSetOutputPower:           "SetOutputPower",
	CmdGetOutputPower:           "GetOutputPower",
	CmdSetFrequencyRegion:       "SetFrequencyRegion",
	CmdGetFrequencyRegion:       "GetFrequencyRegion",
	CmdSetBeeperMode:            "SetBeeperMode",
	CmdGetReaderTemperature:     "GetReaderTemperature",
	CmdGetRFPortReturnLoss:      "GetRFPortReturnLoss",

	CmdInventory:                        "Inventory",
	CmdRead:                             "Read",
	CmdWrite:                            "Write",
	CmdLock:                             "Lock",
	CmdKill:                             "Kill",
	CmdSetAccessEPCMatch:                "SetAccessEPCMatch",
	CmdGetAccessEPCMatch:                "GetAccessEPCMatch",
	CmdRealTimeInventory:                "RealTimeInventory",
	CmdFastSwitchAntInventory:           "FastSwitchAntInventory",
	CmdCustomizedSessionTargetInventory: "CustomizedSessionTargetInventory",
	CmdSetImpinjFastTID:                 "SetImpinjFastTID",
	CmdSetAndSaveImpinjFastTID:          "SetAndSaveImpinjFastTID",
	CmdGetImpinjFastTID:                 "GetImpinjFastTID",

	CmdInventory6B: "Inventory6B",
	CmdRead6B:      "Read6B",
	CmdWrite6B:     "Write6B",
	CmdLock6B:      "Lock6B",
	CmdQueryLock6B: "QueryLock6B",

	CmdGetInventoryBuffer:         "GetInventoryBuffer",
	CmdGetAndResetInventoryBuffer: "GetAndResetInventoryBuffer",
	CmdGetBufferTagCount:          "GetBufferTagCount",
	CmdResetInventoryBuffer:       "ResetInventoryBuffer",
}

// ParseCommandType maps an opcode byte to its CommandType.
// Unknown opcodes are a parse error, never a silent default.
func ParseCommandType(b byte) (CommandType, error) {
	ct := CommandType(b)
	if _, ok := commandTypeNames[ct]; !ok {
		return 0, &UnknownCommandError{Value: b}
	}
	return ct, nil
}

func (c CommandType) String() string {
	if name, ok := commandTypeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CommandType(0x%02X)", byte(c))
}

// ResponseCode is the status byte a reader returns in most responses.
type ResponseCode byte

// Status codes per the reader command-error table.
const (
	StatusSuccess ResponseCode = 0x00
	StatusFail    ResponseCode = 0x11

	StatusMCUResetError       ResponseCode = 0x20
	StatusCWOnError           ResponseCode = 0x21
	StatusAntennaMissingError ResponseCode = 0x22
	StatusWriteFlashError     ResponseCode = 0x23
	StatusReadFlashError      ResponseCode = 0x24
	StatusSetOutputPowerError ResponseCode = 0x25

	StatusTagInventoryError          ResponseCode = 0x31
	StatusTagReadError               ResponseCode = 0x32
	StatusTagWriteError              ResponseCode = 0x33
	StatusTagLockError               ResponseCode = 0x34
	StatusTagKillError               ResponseCode = 0x35
	StatusNoTagError                 ResponseCode = 0x36
	StatusInventoryOKAccessFailError ResponseCode = 0x37
	StatusBufferEmptyError           ResponseCode = 0x38

	StatusAccessFailError                ResponseCode = 0x40
	StatusInvalidParameterError          ResponseCode = 0x41
	StatusWordCntTooLongError            ResponseCode = 0x42
	StatusMemBankOutOfRangeError         ResponseCode = 0x43
	StatusLockRegionOutOfRangeError      ResponseCode = 0x44
	StatusLockTypeOutOfRangeError        ResponseCode = 0x45
	StatusInvalidReaderAddressError      ResponseCode = 0x46
	StatusInvalidAntennaIDError          ResponseCode = 0x47
	StatusOutputPowerOutOfRangeError     ResponseCode = 0x48
	StatusInvalidFrequencyRegionError    ResponseCode = 0x49
	StatusInvalidBaudRateError           ResponseCode = 0x4A
	StatusInvalidBeeperModeError         ResponseCode = 0x4B
	StatusEPCMatchLenTooLongError        ResponseCode = 0x4C
	StatusEPCMatchLenError               ResponseCode = 0x4D
	StatusInvalidEPCMatchModeError       ResponseCode = 0x4E
	StatusInvalidFrequencyRangeError     ResponseCode = 0x4F
	StatusFailToGetRN16Error             ResponseCode = 0x50
	StatusInvalidDRMModeError            ResponseCode = 0x51
	StatusPLLLockFailError               ResponseCode = 0x52
	StatusRFChipError                    ResponseCode = 0x53
	StatusFailToAchieveDesiredPowerError ResponseCode = 0x54
	StatusCopyrightAuthenticationError   ResponseCode = 0x55
	StatusSpectrumRegulationError        ResponseCode = 0x56
	StatusOutputPowerTooLowError         ResponseCode = 0x57
)

var responseCodeNames = map[ResponseCode]string{
	StatusSuccess: "success",
	StatusFail:    "command failed",

	StatusMCUResetError:       "MCU reset error",
	StatusCWOnError:           "CW on error",
	StatusAntennaMissingError: "antenna missing",
	StatusWriteFlashError:     "flash write error",
	StatusReadFlashError:      "flash read error",
	StatusSetOutputPowerError: "set output power error",

	StatusTagInventoryError:          "tag inventory error",
	StatusTagReadError:               "tag read error",
	StatusTagWriteError:              "tag write error",
	StatusTagLockError:               "tag lock error",
	StatusTagKillError:               "tag kill error",
	StatusNoTagError:                 "no tag found",
	StatusInventoryOKAccessFailError: "inventory ok but access failed",
	StatusBufferEmptyError:           "inventory buffer empty",

	StatusAccessFailError:                "access failed",
	StatusInvalidParameterError:          "invalid parameter",
	StatusWordCntTooLongError:            "word count too long",
	StatusMemBankOutOfRangeError:         "memory bank out of range",
	StatusLockRegionOutOfRangeError:      "lock region out of range",
	StatusLockTypeOutOfRangeError:        "lock type out of range",
	StatusInvalidReaderAddressError:      "invalid reader address",
	StatusInvalidAntennaIDError:          "invalid antenna ID",
	StatusOutputPowerOutOfRangeError:     "output power out of range",
	StatusInvalidFrequencyRegionError:    "invalid frequency region",
	StatusInvalidBaudRateError:           "invalid baud rate",
	StatusInvalidBeeperModeError:         "invalid beeper mode",
	StatusEPCMatchLenTooLongError:        "EPC match length too long",
	StatusEPCMatchLenError:               "EPC match length error",
	StatusInvalidEPCMatchModeError:       "invalid EPC match mode",
	StatusInvalidFrequencyRangeError:     "invalid frequency range",
	StatusFailToGetRN16Error:             "failed to get RN16 from tag",
	StatusInvalidDRMModeError:            "invalid DRM mode",
	StatusPLLLockFailError:               "PLL lock failed",
	StatusRFChipError:                    "RF chip error",
	StatusFailToAchieveDesiredPowerError: "failed to achieve desired output power",
	StatusCopyrightAuthenticationError:   "copyright authentication failed",
	StatusSpectrumRegulationError:        "spectrum regulation error",
	StatusOutputPowerTooLowError:         "output power too low",
}

// ParseResponseCode maps a status byte to its ResponseCode.
// Unknown values are a parse error, distinct from a known failure status.
func ParseResponseCode(b byte) (ResponseCode, error) {
	rc := ResponseCode(b)
	if _, ok := responseCodeNames[rc]; !ok {
		return 0, &UnknownStatusError{Value: b}
	}
	return rc, nil
}

// IsSuccess reports whether the code is the single success value.
func (r ResponseCode) IsSuccess() bool {
	return r == StatusSuccess
}

func (r ResponseCode) String() string {
	if name, ok := responseCodeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ResponseCode(0x%02X)", byte(r))
}

// MemoryBank selects the ISO18000-6C tag memory bank for access commands.
type MemoryBank byte

const (
	BankReserved MemoryBank = 0x00
	BankEPC      MemoryBank = 0x01
	BankTID      MemoryBank = 0x02
	BankUser     MemoryBank = 0x03
)

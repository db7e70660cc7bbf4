package cpu

import "fmt"

// UnknownInstructionFault is returned by Tick when the bytes at the
// program counter do not decode to a defined instruction.
type UnknownInstructionFault struct {
	// Bytes holds the bytes that failed to decode.
	Bytes []byte
	// PC is the address of the first byte.
	PC uint16
}

func (e *UnknownInstructionFault) Error() string {
	return fmt.Sprintf("cpu: unknown instruction % X at 0x%04X", e.Bytes, e.PC)
}

package cpu

import (
	"errors"
	"fmt"
)

// ErrIllegalOpcode matches every IllegalOpcodeError through errors.Is,
// for callers that only care whether execution hit an undecodable byte.
var ErrIllegalOpcode = errors.New("illegal opcode")

// IllegalOpcodeError is returned by Step when the fetched byte does not
// decode to an implemented instruction: the eleven opcodes the SM83
// leaves undefined, plus HALT and STOP, which this core does not model.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e IllegalOpcodeError) Unwrap() error {
	return ErrIllegalOpcode
}

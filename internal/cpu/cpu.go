// Package cpu implements the SM83 interpreter core: fetch, decode and
// execute, one instruction per Step. All memory traffic is routed
// through the bus, which is also what advances the machine clock; the
// CPU itself keeps no notion of time.
package cpu

import (
	"github.com/thelolagemann/go-dmg/internal/io"
)

// CPU is the SM83 register file and execution core.
type CPU struct {
	// AF, BC, DE and HL are the four register pairs. The accumulator
	// is AF.Hi and the flag register is AF.Lo.
	AF RegisterPair
	BC RegisterPair
	DE RegisterPair
	HL RegisterPair
	// SP points at the last byte pushed onto the stack.
	SP uint16
	// PC points at the next byte to fetch.
	PC uint16

	b *io.Bus
}

// NewCPU returns a CPU attached to the given bus, in the post-boot
// register state.
func NewCPU(b *io.Bus) *CPU {
	c := &CPU{b: b}
	c.Reset()
	return c
}

// Reset forces the register file to the documented post-boot values:
// the state the boot ROM leaves the machine in just before handing
// control to the cartridge entry point at 0x0100.
func (c *CPU) Reset() {
	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
}

// Step fetches, decodes and executes a single instruction, returning
// the number of T-cycles it consumed as measured on the bus clock.
// Fetching an opcode the core does not implement returns zero cycles
// and an IllegalOpcodeError naming the opcode and the address it was
// fetched from.
func (c *CPU) Step() (uint64, error) {
	start := c.b.Cycle()
	addr := c.PC

	opcode := c.readOperand()
	instruction := InstructionSet[opcode]
	if instruction.fn == nil {
		return 0, IllegalOpcodeError{Opcode: opcode, PC: addr}
	}
	instruction.fn(c)

	return c.b.Cycle() - start, nil
}

// readOperand fetches the byte at PC and advances PC past it.
func (c *CPU) readOperand() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// loadRegister16 reads a little-endian immediate word into the pair.
func (c *CPU) loadRegister16(register *RegisterPair) {
	register.Lo = c.readOperand()
	register.Hi = c.readOperand()
}

// push writes a register pair onto the stack, high byte first.
func (c *CPU) push(hi, lo uint8) {
	c.SP--
	c.b.Write(c.SP, hi)
	c.SP--
	c.b.Write(c.SP, lo)
}

// pop reads a register pair off the stack.
func (c *CPU) pop(hi, lo *uint8) {
	*lo = c.b.Read(c.SP)
	c.SP++
	*hi = c.b.Read(c.SP)
	c.SP++
}

// jumpRelative reads the signed 8-bit displacement and, when condition
// holds, applies it to the PC already advanced past the operand.
func (c *CPU) jumpRelative(condition bool) {
	offset := c.readOperand()
	if condition {
		c.PC = uint16(int32(c.PC) + int32(int8(offset)))
	}
}

// jumpAbsolute reads a 16-bit target and jumps to it when condition
// holds. The operand bytes are consumed either way.
func (c *CPU) jumpAbsolute(condition bool) {
	low := c.readOperand()
	high := c.readOperand()
	if condition {
		c.PC = uint16(high)<<8 | uint16(low)
	}
}

// call reads a 16-bit target and, when condition holds, pushes the
// return address and jumps to it.
func (c *CPU) call(condition bool) {
	low := c.readOperand()
	high := c.readOperand()
	if condition {
		c.push(uint8(c.PC>>8), uint8(c.PC))
		c.PC = uint16(high)<<8 | uint16(low)
	}
}

// ret pops the return address into PC when condition holds.
func (c *CPU) ret(condition bool) {
	if condition {
		low := c.b.Read(c.SP)
		c.SP++
		high := c.b.Read(c.SP)
		c.SP++
		c.PC = uint16(high)<<8 | uint16(low)
	}
}

// rst pushes the return address and jumps to one of the eight fixed
// restart vectors.
func (c *CPU) rst(vector uint16) {
	c.push(uint8(c.PC>>8), uint8(c.PC))
	c.PC = vector
}

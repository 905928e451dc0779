package cpu

import (
	"fmt"
)

// Instruction pairs a mnemonic with the function that executes it.
type Instruction struct {
	name string     // mnemonic, for diagnostics
	fn   func(*CPU) // fn mutates the CPU when executed
}

// illegalOpcode marks an opcode with no implemented decoding. The nil
// fn is what Step tests for when it reports an IllegalOpcodeError.
func illegalOpcode(opcode uint8) Instruction {
	return Instruction{name: fmt.Sprintf("ILLEGAL 0x%02X", opcode)}
}

// InstructionSet is the primary decode table, indexed by opcode. The
// eleven opcodes the SM83 leaves undefined are marked illegal, as are
// HALT and STOP, which this core does not model.
var InstructionSet = [256]Instruction{
	0x00: {
		"NOP",
		func(c *CPU) {},
	},
	0x01: {
		"LD BC, d16",
		func(c *CPU) {
			c.loadRegister16(&c.BC)
		},
	},
	0x02: {
		"LD (BC), A",
		func(c *CPU) {
			c.b.Write(c.BC.Uint16(), c.AF.Hi)
		},
	},
	0x03: {
		"INC BC",
		func(c *CPU) {
			c.BC.SetUint16(c.BC.Uint16() + 1)
		},
	},
	0x04: {
		"INC B",
		func(c *CPU) {
			c.BC.Hi = c.increment(c.BC.Hi)
		},
	},
	0x05: {
		"DEC B",
		func(c *CPU) {
			c.BC.Hi = c.decrement(c.BC.Hi)
		},
	},
	0x06: {
		"LD B, d8",
		func(c *CPU) {
			c.BC.Hi = c.readOperand()
		},
	},
	0x07: {
		"RLCA",
		func(c *CPU) {
			c.rotateLeftCarryAccumulator()
		},
	},
	0x08: {
		"LD (a16), SP",
		func(c *CPU) {
			low := c.readOperand()
			high := c.readOperand()

			address := uint16(high)<<8 | uint16(low)
			c.b.Write(address, uint8(c.SP))
			c.b.Write(address+1, uint8(c.SP>>8))
		},
	},
	0x09: {
		"ADD HL, BC",
		func(c *CPU) {
			c.addHLRR(&c.BC)
		},
	},
	0x0A: {
		"LD A, (BC)",
		func(c *CPU) {
			c.AF.Hi = c.b.Read(c.BC.Uint16())
		},
	},
	0x0B: {
		"DEC BC",
		func(c *CPU) {
			c.BC.SetUint16(c.BC.Uint16() - 1)
		},
	},
	0x0C: {
		"INC C",
		func(c *CPU) {
			c.BC.Lo = c.increment(c.BC.Lo)
		},
	},
	0x0D: {
		"DEC C",
		func(c *CPU) {
			c.BC.Lo = c.decrement(c.BC.Lo)
		},
	},
	0x0E: {
		"LD C, d8",
		func(c *CPU) {
			c.BC.Lo = c.readOperand()
		},
	},
	0x0F: {
		"RRCA",
		func(c *CPU) {
			c.rotateRightCarryAccumulator()
		},
	},
	0x10: illegalOpcode(0x10), // STOP
	0x11: {
		"LD DE, d16",
		func(c *CPU) {
			c.loadRegister16(&c.DE)
		},
	},
	0x12: {
		"LD (DE), A",
		func(c *CPU) {
			c.b.Write(c.DE.Uint16(), c.AF.Hi)
		},
	},
	0x13: {
		"INC DE",
		func(c *CPU) {
			c.DE.SetUint16(c.DE.Uint16() + 1)
		},
	},
	0x14: {
		"INC D",
		func(c *CPU) {
			c.DE.Hi = c.increment(c.DE.Hi)
		},
	},
	0x15: {
		"DEC D",
		func(c *CPU) {
			c.DE.Hi = c.decrement(c.DE.Hi)
		},
	},
	0x16: {
		"LD D, d8",
		func(c *CPU) {
			c.DE.Hi = c.readOperand()
		},
	},
	0x17: {
		"RLA",
		func(c *CPU) {
			c.rotateLeftAccumulatorThroughCarry()
		},
	},
	0x18: {
		"JR r8",
		func(c *CPU) {
			c.jumpRelative(true)
		},
	},
	0x19: {
		"ADD HL, DE",
		func(c *CPU) {
			c.addHLRR(&c.DE)
		},
	},
	0x1A: {
		"LD A, (DE)",
		func(c *CPU) {
			c.AF.Hi = c.b.Read(c.DE.Uint16())
		},
	},
	0x1B: {
		"DEC DE",
		func(c *CPU) {
			c.DE.SetUint16(c.DE.Uint16() - 1)
		},
	},
	0x1C: {
		"INC E",
		func(c *CPU) {
			c.DE.Lo = c.increment(c.DE.Lo)
		},
	},
	0x1D: {
		"DEC E",
		func(c *CPU) {
			c.DE.Lo = c.decrement(c.DE.Lo)
		},
	},
	0x1E: {
		"LD E, d8",
		func(c *CPU) {
			c.DE.Lo = c.readOperand()
		},
	},
	0x1F: {
		"RRA",
		func(c *CPU) {
			c.rotateRightAccumulatorThroughCarry()
		},
	},
	0x20: {
		"JR NZ, r8",
		func(c *CPU) {
			c.jumpRelative(!c.isFlagSet(flagZero))
		},
	},
	0x21: {
		"LD HL, d16",
		func(c *CPU) {
			c.loadRegister16(&c.HL)
		},
	},
	0x22: {
		"LD (HL+), A",
		func(c *CPU) {
			c.b.Write(c.HL.Uint16(), c.AF.Hi)
			c.HL.SetUint16(c.HL.Uint16() + 1)
		},
	},
	0x23: {
		"INC HL",
		func(c *CPU) {
			c.HL.SetUint16(c.HL.Uint16() + 1)
		},
	},
	0x24: {
		"INC H",
		func(c *CPU) {
			c.HL.Hi = c.increment(c.HL.Hi)
		},
	},
	0x25: {
		"DEC H",
		func(c *CPU) {
			c.HL.Hi = c.decrement(c.HL.Hi)
		},
	},
	0x26: {
		"LD H, d8",
		func(c *CPU) {
			c.HL.Hi = c.readOperand()
		},
	},
	0x27: {
		"DAA",
		func(c *CPU) {
			// adjust the accumulator back to packed BCD after an add
			// or subtract of two BCD operands
			a := c.AF.Hi
			carry := c.isFlagSet(flagCarry)
			if !c.isFlagSet(flagSubtract) {
				if carry || a > 0x99 {
					a += 0x60
					carry = true
				}
				if c.isFlagSet(flagHalfCarry) || a&0x0F > 0x09 {
					a += 0x06
				}
			} else {
				if carry {
					a -= 0x60
				}
				if c.isFlagSet(flagHalfCarry) {
					a -= 0x06
				}
			}
			c.setFlags(a == 0, c.isFlagSet(flagSubtract), false, carry)
			c.AF.Hi = a
		},
	},
	0x28: {
		"JR Z, r8",
		func(c *CPU) {
			c.jumpRelative(c.isFlagSet(flagZero))
		},
	},
	0x29: {
		"ADD HL, HL",
		func(c *CPU) {
			c.addHLRR(&c.HL)
		},
	},
	0x2A: {
		"LD A, (HL+)",
		func(c *CPU) {
			c.AF.Hi = c.b.Read(c.HL.Uint16())
			c.HL.SetUint16(c.HL.Uint16() + 1)
		},
	},
	0x2B: {
		"DEC HL",
		func(c *CPU) {
			c.HL.SetUint16(c.HL.Uint16() - 1)
		},
	},
	0x2C: {
		"INC L",
		func(c *CPU) {
			c.HL.Lo = c.increment(c.HL.Lo)
		},
	},
	0x2D: {
		"DEC L",
		func(c *CPU) {
			c.HL.Lo = c.decrement(c.HL.Lo)
		},
	},
	0x2E: {
		"LD L, d8",
		func(c *CPU) {
			c.HL.Lo = c.readOperand()
		},
	},
	0x2F: {
		"CPL",
		func(c *CPU) {
			c.AF.Hi = ^c.AF.Hi
			c.setFlags(c.isFlagSet(flagZero), true, true, c.isFlagSet(flagCarry))
		},
	},
	0x30: {
		"JR NC, r8",
		func(c *CPU) {
			c.jumpRelative(!c.isFlagSet(flagCarry))
		},
	},
	0x31: {
		"LD SP, d16",
		func(c *CPU) {
			low := c.readOperand()
			high := c.readOperand()

			c.SP = uint16(high)<<8 | uint16(low)
		},
	},
	0x32: {
		"LD (HL-), A",
		func(c *CPU) {
			c.b.Write(c.HL.Uint16(), c.AF.Hi)
			c.HL.SetUint16(c.HL.Uint16() - 1)
		},
	},
	0x33: {
		"INC SP",
		func(c *CPU) {
			c.SP++
		},
	},
	0x34: {
		"INC (HL)",
		func(c *CPU) {
			c.b.Write(c.HL.Uint16(), c.increment(c.b.Read(c.HL.Uint16())))
		},
	},
	0x35: {
		"DEC (HL)",
		func(c *CPU) {
			c.b.Write(c.HL.Uint16(), c.decrement(c.b.Read(c.HL.Uint16())))
		},
	},
	0x36: {
		"LD (HL), d8",
		func(c *CPU) {
			c.b.Write(c.HL.Uint16(), c.readOperand())
		},
	},
	0x37: {
		"SCF",
		func(c *CPU) {
			c.setFlags(c.isFlagSet(flagZero), false, false, true)
		},
	},
	0x38: {
		"JR C, r8",
		func(c *CPU) {
			c.jumpRelative(c.isFlagSet(flagCarry))
		},
	},
	0x39: {
		"ADD HL, SP",
		func(c *CPU) {
			c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.SP))
		},
	},
	0x3A: {
		"LD A, (HL-)",
		func(c *CPU) {
			c.AF.Hi = c.b.Read(c.HL.Uint16())
			c.HL.SetUint16(c.HL.Uint16() - 1)
		},
	},
	0x3B: {
		"DEC SP",
		func(c *CPU) {
			c.SP--
		},
	},
	0x3C: {
		"INC A",
		func(c *CPU) {
			c.AF.Hi = c.increment(c.AF.Hi)
		},
	},
	0x3D: {
		"DEC A",
		func(c *CPU) {
			c.AF.Hi = c.decrement(c.AF.Hi)
		},
	},
	0x3E: {
		"LD A, d8",
		func(c *CPU) {
			c.AF.Hi = c.readOperand()
		},
	},
	0x3F: {
		"CCF",
		func(c *CPU) {
			c.setFlags(c.isFlagSet(flagZero), false, false, !c.isFlagSet(flagCarry))
		},
	},
	0x40: {
		"LD B, B",
		func(c *CPU) {},
	},
	0x41: {
		"LD B, C",
		func(c *CPU) {
			c.BC.Hi = c.BC.Lo
		},
	},
	0x42: {
		"LD B, D",
		func(c *CPU) {
			c.BC.Hi = c.DE.Hi
		},
	},
	0x43: {
		"LD B, E",
		func(c *CPU) {
			c.BC.Hi = c.DE.Lo
		},
	},
	0x44: {
		"LD B, H",
		func(c *CPU) {
			c.BC.Hi = c.HL.Hi
		},
	},
	0x45: {
		"LD B, L",
		func(c *CPU) {
			c.BC.Hi = c.HL.Lo
		},
	},
	0x46: {
		"LD B, (HL)",
		func(c *CPU) {
			c.BC.Hi = c.b.Read(c.HL.Uint16())
		},
	},
	0x47: {
		"LD B, A",
		func(c *CPU) {
			c.BC.Hi = c.AF.Hi
		},
	},
	0x48: {
		"LD C, B",
		func(c *CPU) {
			c.BC.Lo = c.BC.Hi
		},
	},
	0x49: {
		"LD C, C",
		func(c *CPU) {},
	},
	0x4A: {
		"LD C, D",
		func(c *CPU) {
			c.BC.Lo = c.DE.Hi
		},
	},
	0x4B: {
		"LD C, E",
		func(c *CPU) {
			c.BC.Lo = c.DE.Lo
		},
	},
	0x4C: {
		"LD C, H",
		func(c *CPU) {
			c.BC.Lo = c.HL.Hi
		},
	},
	0x4D: {
		"LD C, L",
		func(c *CPU) {
			c.BC.Lo = c.HL.Lo
		},
	},
	0x4E: {
		"LD C, (HL)",
		func(c *CPU) {
			c.BC.Lo = c.b.Read(c.HL.Uint16())
		},
	},
	0x4F: {
		"LD C, A",
		func(c *CPU) {
			c.BC.Lo = c.AF.Hi
		},
	},
	0x50: {
		"LD D, B",
		func(c *CPU) {
			c.DE.Hi = c.BC.Hi
		},
	},
	0x51: {
		"LD D, C",
		func(c *CPU) {
			c.DE.Hi = c.BC.Lo
		},
	},
	0x52: {
		"LD D, D",
		func(c *CPU) {},
	},
	0x53: {
		"LD D, E",
		func(c *CPU) {
			c.DE.Hi = c.DE.Lo
		},
	},
	0x54: {
		"LD D, H",
		func(c *CPU) {
			c.DE.Hi = c.HL.Hi
		},
	},
	0x55: {
		"LD D, L",
		func(c *CPU) {
			c.DE.Hi = c.HL.Lo
		},
	},
	0x56: {
		"LD D, (HL)",
		func(c *CPU) {
			c.DE.Hi = c.b.Read(c.HL.Uint16())
		},
	},
	0x57: {
		"LD D, A",
		func(c *CPU) {
			c.DE.Hi = c.AF.Hi
		},
	},
	0x58: {
		"LD E, B",
		func(c *CPU) {
			c.DE.Lo = c.BC.Hi
		},
	},
	0x59: {
		"LD E, C",
		func(c *CPU) {
			c.DE.Lo = c.BC.Lo
		},
	},
	0x5A: {
		"LD E, D",
		func(c *CPU) {
			c.DE.Lo = c.DE.Hi
		},
	},
	0x5B: {
		"LD E, E",
		func(c *CPU) {},
	},
	0x5C: {
		"LD E, H",
		func(c *CPU) {
			c.DE.Lo = c.HL.Hi
		},
	},
	0x5D: {
		"LD E, L",
		func(c *CPU) {
			c.DE.Lo = c.HL.Lo
		},
	},
	0x5E: {
		"LD E, (HL)",
		func(c *CPU) {
			c.DE.Lo = c.b.Read(c.HL.Uint16())
		},
	},
	0x5F: {
		"LD E, A",
		func(c *CPU) {
			c.DE.Lo = c.AF.Hi
		},
	},
	0x60: {
		"LD H, B",
		func(c *CPU) {
			c.HL.Hi = c.BC.Hi
		},
	},
	0x61: {
		"LD H, C",
		func(c *CPU) {
			c.HL.Hi = c.BC.Lo
		},
	},
	0x62: {
		"LD H, D",
		func(c *CPU) {
			c.HL.Hi = c.DE.Hi
		},
	},
	0x63: {
		"LD H, E",
		func(c *CPU) {
			c.HL.Hi = c.DE.Lo
		},
	},
	0x64: {
		"LD H, H",
		func(c *CPU) {},
	},
	0x65: {
		"LD H, L",
		func(c *CPU) {
			c.HL.Hi = c.HL.Lo
		},
	},
	0x66: {
		"LD H, (HL)",
		func(c *CPU) {
			c.HL.Hi = c.b.Read(c.HL.Uint16())
		},
	},
	0x67: {
		"LD H, A",
		func(c *CPU) {
			c.HL.Hi = c.AF.Hi
		},
	},
	0x68: {
		"LD L, B",
		func(c *CPU) {
			c.HL.Lo = c.BC.Hi
		},
	},
	0x69: {
		"LD L, C",
		func(c *CPU) {
			c.HL.Lo = c.BC.Lo
		},
	},
	0x6A: {
		"LD L, D",
		func(c *CPU) {
			c.HL.Lo = c.DE.Hi
		},
	},
	0x6B: {
		"LD L, E",
		func(c *CPU) {
			c.HL.Lo = c.DE.Lo
		},
	},
	0x6C: {
		"LD L, H",
		func(c *CPU) {
			c.HL.Lo = c.HL.Hi
		},
	},
	0x6D: {
		"LD L, L",
		func(c *CPU) {},
	},
	0x6E: {
		"LD L, (HL)",
		func(c *CPU) {
			c.HL.Lo = c.b.Read(c.HL.Uint16())
		},
	},
	0x6F: {
		"LD L, A",
		func(c *CPU) {
			c.HL.Lo = c.AF.Hi
		},
	},
	0x70: {
		"LD (HL), B",
		func(c *CPU) {
			c.b.Write(c.HL.Uint16(), c.BC.Hi)
		},
	},
	0x71: {
		"LD (HL), C",
		func(c *CPU) {
			c.b.Write(c.HL.Uint16(), c.BC.Lo)
		},
	},
	0x72: {
		"LD (HL), D",
		func(c *CPU) {
			c.b.Write(c.HL.Uint16(), c.DE.Hi)
		},
	},
	0x73: {
		"LD (HL), E",
		func(c *CPU) {
			c.b.Write(c.HL.Uint16(), c.DE.Lo)
		},
	},
	0x74: {
		"LD (HL), H",
		func(c *CPU) {
			c.b.Write(c.HL.Uint16(), c.HL.Hi)
		},
	},
	0x75: {
		"LD (HL), L",
		func(c *CPU) {
			c.b.Write(c.HL.Uint16(), c.HL.Lo)
		},
	},
	0x76: illegalOpcode(0x76), // HALT
	0x77: {
		"LD (HL), A",
		func(c *CPU) {
			c.b.Write(c.HL.Uint16(), c.AF.Hi)
		},
	},
	0x78: {
		"LD A, B",
		func(c *CPU) {
			c.AF.Hi = c.BC.Hi
		},
	},
	0x79: {
		"LD A, C",
		func(c *CPU) {
			c.AF.Hi = c.BC.Lo
		},
	},
	0x7A: {
		"LD A, D",
		func(c *CPU) {
			c.AF.Hi = c.DE.Hi
		},
	},
	0x7B: {
		"LD A, E",
		func(c *CPU) {
			c.AF.Hi = c.DE.Lo
		},
	},
	0x7C: {
		"LD A, H",
		func(c *CPU) {
			c.AF.Hi = c.HL.Hi
		},
	},
	0x7D: {
		"LD A, L",
		func(c *CPU) {
			c.AF.Hi = c.HL.Lo
		},
	},
	0x7E: {
		"LD A, (HL)",
		func(c *CPU) {
			c.AF.Hi = c.b.Read(c.HL.Uint16())
		},
	},
	0x7F: {
		"LD A, A",
		func(c *CPU) {},
	},
	0x80: {
		"ADD A, B",
		func(c *CPU) {
			c.add(c.BC.Hi, false)
		},
	},
	0x81: {
		"ADD A, C",
		func(c *CPU) {
			c.add(c.BC.Lo, false)
		},
	},
	0x82: {
		"ADD A, D",
		func(c *CPU) {
			c.add(c.DE.Hi, false)
		},
	},
	0x83: {
		"ADD A, E",
		func(c *CPU) {
			c.add(c.DE.Lo, false)
		},
	},
	0x84: {
		"ADD A, H",
		func(c *CPU) {
			c.add(c.HL.Hi, false)
		},
	},
	0x85: {
		"ADD A, L",
		func(c *CPU) {
			c.add(c.HL.Lo, false)
		},
	},
	0x86: {
		"ADD A, (HL)",
		func(c *CPU) {
			c.add(c.b.Read(c.HL.Uint16()), false)
		},
	},
	0x87: {
		"ADD A, A",
		func(c *CPU) {
			c.add(c.AF.Hi, false)
		},
	},
	0x88: {
		"ADC A, B",
		func(c *CPU) {
			c.add(c.BC.Hi, true)
		},
	},
	0x89: {
		"ADC A, C",
		func(c *CPU) {
			c.add(c.BC.Lo, true)
		},
	},
	0x8A: {
		"ADC A, D",
		func(c *CPU) {
			c.add(c.DE.Hi, true)
		},
	},
	0x8B: {
		"ADC A, E",
		func(c *CPU) {
			c.add(c.DE.Lo, true)
		},
	},
	0x8C: {
		"ADC A, H",
		func(c *CPU) {
			c.add(c.HL.Hi, true)
		},
	},
	0x8D: {
		"ADC A, L",
		func(c *CPU) {
			c.add(c.HL.Lo, true)
		},
	},
	0x8E: {
		"ADC A, (HL)",
		func(c *CPU) {
			c.add(c.b.Read(c.HL.Uint16()), true)
		},
	},
	0x8F: {
		"ADC A, A",
		func(c *CPU) {
			c.add(c.AF.Hi, true)
		},
	},
	0x90: {
		"SUB B",
		func(c *CPU) {
			c.sub(c.BC.Hi, false)
		},
	},
	0x91: {
		"SUB C",
		func(c *CPU) {
			c.sub(c.BC.Lo, false)
		},
	},
	0x92: {
		"SUB D",
		func(c *CPU) {
			c.sub(c.DE.Hi, false)
		},
	},
	0x93: {
		"SUB E",
		func(c *CPU) {
			c.sub(c.DE.Lo, false)
		},
	},
	0x94: {
		"SUB H",
		func(c *CPU) {
			c.sub(c.HL.Hi, false)
		},
	},
	0x95: {
		"SUB L",
		func(c *CPU) {
			c.sub(c.HL.Lo, false)
		},
	},
	0x96: {
		"SUB (HL)",
		func(c *CPU) {
			c.sub(c.b.Read(c.HL.Uint16()), false)
		},
	},
	0x97: {
		"SUB A",
		func(c *CPU) {
			c.sub(c.AF.Hi, false)
		},
	},
	0x98: {
		"SBC A, B",
		func(c *CPU) {
			c.sub(c.BC.Hi, true)
		},
	},
	0x99: {
		"SBC A, C",
		func(c *CPU) {
			c.sub(c.BC.Lo, true)
		},
	},
	0x9A: {
		"SBC A, D",
		func(c *CPU) {
			c.sub(c.DE.Hi, true)
		},
	},
	0x9B: {
		"SBC A, E",
		func(c *CPU) {
			c.sub(c.DE.Lo, true)
		},
	},
	0x9C: {
		"SBC A, H",
		func(c *CPU) {
			c.sub(c.HL.Hi, true)
		},
	},
	0x9D: {
		"SBC A, L",
		func(c *CPU) {
			c.sub(c.HL.Lo, true)
		},
	},
	0x9E: {
		"SBC A, (HL)",
		func(c *CPU) {
			c.sub(c.b.Read(c.HL.Uint16()), true)
		},
	},
	0x9F: {
		"SBC A, A",
		func(c *CPU) {
			c.sub(c.AF.Hi, true)
		},
	},
	0xA0: {
		"AND B",
		func(c *CPU) {
			c.and(c.BC.Hi)
		},
	},
	0xA1: {
		"AND C",
		func(c *CPU) {
			c.and(c.BC.Lo)
		},
	},
	0xA2: {
		"AND D",
		func(c *CPU) {
			c.and(c.DE.Hi)
		},
	},
	0xA3: {
		"AND E",
		func(c *CPU) {
			c.and(c.DE.Lo)
		},
	},
	0xA4: {
		"AND H",
		func(c *CPU) {
			c.and(c.HL.Hi)
		},
	},
	0xA5: {
		"AND L",
		func(c *CPU) {
			c.and(c.HL.Lo)
		},
	},
	0xA6: {
		"AND (HL)",
		func(c *CPU) {
			c.and(c.b.Read(c.HL.Uint16()))
		},
	},
	0xA7: {
		"AND A",
		func(c *CPU) {
			c.and(c.AF.Hi)
		},
	},
	0xA8: {
		"XOR B",
		func(c *CPU) {
			c.xor(c.BC.Hi)
		},
	},
	0xA9: {
		"XOR C",
		func(c *CPU) {
			c.xor(c.BC.Lo)
		},
	},
	0xAA: {
		"XOR D",
		func(c *CPU) {
			c.xor(c.DE.Hi)
		},
	},
	0xAB: {
		"XOR E",
		func(c *CPU) {
			c.xor(c.DE.Lo)
		},
	},
	0xAC: {
		"XOR H",
		func(c *CPU) {
			c.xor(c.HL.Hi)
		},
	},
	0xAD: {
		"XOR L",
		func(c *CPU) {
			c.xor(c.HL.Lo)
		},
	},
	0xAE: {
		"XOR (HL)",
		func(c *CPU) {
			c.xor(c.b.Read(c.HL.Uint16()))
		},
	},
	0xAF: {
		"XOR A",
		func(c *CPU) {
			c.xor(c.AF.Hi)
		},
	},
	0xB0: {
		"OR B",
		func(c *CPU) {
			c.or(c.BC.Hi)
		},
	},
	0xB1: {
		"OR C",
		func(c *CPU) {
			c.or(c.BC.Lo)
		},
	},
	0xB2: {
		"OR D",
		func(c *CPU) {
			c.or(c.DE.Hi)
		},
	},
	0xB3: {
		"OR E",
		func(c *CPU) {
			c.or(c.DE.Lo)
		},
	},
	0xB4: {
		"OR H",
		func(c *CPU) {
			c.or(c.HL.Hi)
		},
	},
	0xB5: {
		"OR L",
		func(c *CPU) {
			c.or(c.HL.Lo)
		},
	},
	0xB6: {
		"OR (HL)",
		func(c *CPU) {
			c.or(c.b.Read(c.HL.Uint16()))
		},
	},
	0xB7: {
		"OR A",
		func(c *CPU) {
			c.or(c.AF.Hi)
		},
	},
	0xB8: {
		"CP B",
		func(c *CPU) {
			c.compare(c.BC.Hi)
		},
	},
	0xB9: {
		"CP C",
		func(c *CPU) {
			c.compare(c.BC.Lo)
		},
	},
	0xBA: {
		"CP D",
		func(c *CPU) {
			c.compare(c.DE.Hi)
		},
	},
	0xBB: {
		"CP E",
		func(c *CPU) {
			c.compare(c.DE.Lo)
		},
	},
	0xBC: {
		"CP H",
		func(c *CPU) {
			c.compare(c.HL.Hi)
		},
	},
	0xBD: {
		"CP L",
		func(c *CPU) {
			c.compare(c.HL.Lo)
		},
	},
	0xBE: {
		"CP (HL)",
		func(c *CPU) {
			c.compare(c.b.Read(c.HL.Uint16()))
		},
	},
	0xBF: {
		"CP A",
		func(c *CPU) {
			c.compare(c.AF.Hi)
		},
	},
	0xC0: {
		"RET NZ",
		func(c *CPU) {
			c.ret(!c.isFlagSet(flagZero))
		},
	},
	0xC1: {
		"POP BC",
		func(c *CPU) {
			c.pop(&c.BC.Hi, &c.BC.Lo)
		},
	},
	0xC2: {
		"JP NZ, a16",
		func(c *CPU) {
			c.jumpAbsolute(!c.isFlagSet(flagZero))
		},
	},
	0xC3: {
		"JP a16",
		func(c *CPU) {
			c.jumpAbsolute(true)
		},
	},
	0xC4: {
		"CALL NZ, a16",
		func(c *CPU) {
			c.call(!c.isFlagSet(flagZero))
		},
	},
	0xC5: {
		"PUSH BC",
		func(c *CPU) {
			c.push(c.BC.Hi, c.BC.Lo)
		},
	},
	0xC6: {
		"ADD A, d8",
		func(c *CPU) {
			c.add(c.readOperand(), false)
		},
	},
	0xC7: {
		"RST 0",
		func(c *CPU) {
			c.rst(0x00)
		},
	},
	0xC8: {
		"RET Z",
		func(c *CPU) {
			c.ret(c.isFlagSet(flagZero))
		},
	},
	0xC9: {
		"RET",
		func(c *CPU) {
			c.ret(true)
		},
	},
	0xCA: {
		"JP Z, a16",
		func(c *CPU) {
			c.jumpAbsolute(c.isFlagSet(flagZero))
		},
	},
	0xCB: {
		"CB Prefix",
		func(c *CPU) {
			InstructionSetCB[c.readOperand()].fn(c)
		},
	},
	0xCC: {
		"CALL Z, a16",
		func(c *CPU) {
			c.call(c.isFlagSet(flagZero))
		},
	},
	0xCD: {
		"CALL a16",
		func(c *CPU) {
			c.call(true)
		},
	},
	0xCE: {
		"ADC A, d8",
		func(c *CPU) {
			c.add(c.readOperand(), true)
		},
	},
	0xCF: {
		"RST 1",
		func(c *CPU) {
			c.rst(0x08)
		},
	},
	0xD0: {
		"RET NC",
		func(c *CPU) {
			c.ret(!c.isFlagSet(flagCarry))
		},
	},
	0xD1: {
		"POP DE",
		func(c *CPU) {
			c.pop(&c.DE.Hi, &c.DE.Lo)
		},
	},
	0xD2: {
		"JP NC, a16",
		func(c *CPU) {
			c.jumpAbsolute(!c.isFlagSet(flagCarry))
		},
	},
	0xD3: illegalOpcode(0xD3),
	0xD4: {
		"CALL NC, a16",
		func(c *CPU) {
			c.call(!c.isFlagSet(flagCarry))
		},
	},
	0xD5: {
		"PUSH DE",
		func(c *CPU) {
			c.push(c.DE.Hi, c.DE.Lo)
		},
	},
	0xD6: {
		"SUB d8",
		func(c *CPU) {
			c.sub(c.readOperand(), false)
		},
	},
	0xD7: {
		"RST 2",
		func(c *CPU) {
			c.rst(0x10)
		},
	},
	0xD8: {
		"RET C",
		func(c *CPU) {
			c.ret(c.isFlagSet(flagCarry))
		},
	},
	0xD9: {
		"RETI",
		func(c *CPU) {
			// interrupt dispatch is not modelled, so RETI is a RET
			c.ret(true)
		},
	},
	0xDA: {
		"JP C, a16",
		func(c *CPU) {
			c.jumpAbsolute(c.isFlagSet(flagCarry))
		},
	},
	0xDB: illegalOpcode(0xDB),
	0xDC: {
		"CALL C, a16",
		func(c *CPU) {
			c.call(c.isFlagSet(flagCarry))
		},
	},
	0xDD: illegalOpcode(0xDD),
	0xDE: {
		"SBC A, d8",
		func(c *CPU) {
			c.sub(c.readOperand(), true)
		},
	},
	0xDF: {
		"RST 3",
		func(c *CPU) {
			c.rst(0x18)
		},
	},
	0xE0: {
		"LDH (a8), A",
		func(c *CPU) {
			c.b.Write(0xFF00+uint16(c.readOperand()), c.AF.Hi)
		},
	},
	0xE1: {
		"POP HL",
		func(c *CPU) {
			c.pop(&c.HL.Hi, &c.HL.Lo)
		},
	},
	0xE2: {
		"LD (C), A",
		func(c *CPU) {
			c.b.Write(0xFF00+uint16(c.BC.Lo), c.AF.Hi)
		},
	},
	0xE3: illegalOpcode(0xE3),
	0xE4: illegalOpcode(0xE4),
	0xE5: {
		"PUSH HL",
		func(c *CPU) {
			c.push(c.HL.Hi, c.HL.Lo)
		},
	},
	0xE6: {
		"AND d8",
		func(c *CPU) {
			c.and(c.readOperand())
		},
	},
	0xE7: {
		"RST 4",
		func(c *CPU) {
			c.rst(0x20)
		},
	},
	0xE8: {
		"ADD SP, r8",
		func(c *CPU) {
			c.SP = c.addSPSigned()
		},
	},
	0xE9: {
		"JP HL",
		func(c *CPU) {
			c.PC = c.HL.Uint16()
		},
	},
	0xEA: {
		"LD (a16), A",
		func(c *CPU) {
			low := c.readOperand()
			high := c.readOperand()

			c.b.Write(uint16(high)<<8|uint16(low), c.AF.Hi)
		},
	},
	0xEB: illegalOpcode(0xEB),
	0xEC: illegalOpcode(0xEC),
	0xED: illegalOpcode(0xED),
	0xEE: {
		"XOR d8",
		func(c *CPU) {
			c.xor(c.readOperand())
		},
	},
	0xEF: {
		"RST 5",
		func(c *CPU) {
			c.rst(0x28)
		},
	},
	0xF0: {
		"LDH A, (a8)",
		func(c *CPU) {
			c.AF.Hi = c.b.Read(0xFF00 + uint16(c.readOperand()))
		},
	},
	0xF1: {
		"POP AF",
		func(c *CPU) {
			c.pop(&c.AF.Hi, &c.AF.Lo)
			c.AF.Lo &= 0xF0
		},
	},
	0xF2: {
		"LD A, (C)",
		func(c *CPU) {
			c.AF.Hi = c.b.Read(0xFF00 + uint16(c.BC.Lo))
		},
	},
	0xF3: {
		"DI",
		func(c *CPU) {
			// interrupt dispatch is not modelled; DI decodes but does
			// nothing
		},
	},
	0xF4: illegalOpcode(0xF4),
	0xF5: {
		"PUSH AF",
		func(c *CPU) {
			c.push(c.AF.Hi, c.AF.Lo)
		},
	},
	0xF6: {
		"OR d8",
		func(c *CPU) {
			c.or(c.readOperand())
		},
	},
	0xF7: {
		"RST 6",
		func(c *CPU) {
			c.rst(0x30)
		},
	},
	0xF8: {
		"LD HL, SP+r8",
		func(c *CPU) {
			c.HL.SetUint16(c.addSPSigned())
		},
	},
	0xF9: {
		"LD SP, HL",
		func(c *CPU) {
			c.SP = c.HL.Uint16()
		},
	},
	0xFA: {
		"LD A, (a16)",
		func(c *CPU) {
			low := c.readOperand()
			high := c.readOperand()

			c.AF.Hi = c.b.Read(uint16(high)<<8 | uint16(low))
		},
	},
	0xFB: {
		"EI",
		func(c *CPU) {
			// interrupt dispatch is not modelled; EI decodes but does
			// nothing
		},
	},
	0xFC: illegalOpcode(0xFC),
	0xFD: illegalOpcode(0xFD),
	0xFE: {
		"CP d8",
		func(c *CPU) {
			c.compare(c.readOperand())
		},
	},
	0xFF: {
		"RST 7",
		func(c *CPU) {
			c.rst(0x38)
		},
	},
}

package cpu

import "github.com/thelolagemann/go-dmg/internal/types"

// InstructionSetCB is the secondary decode table, reached through the
// 0xCB prefix. Every slot decodes, so dispatch never consults fn for
// nil. The table is a regular grid of 8-opcode rows, one operand per
// column, so entries stay on one line.
var InstructionSetCB = [256]Instruction{
	0x00: {"RLC B", func(c *CPU) { c.BC.Hi = c.rotateLeftCarry(c.BC.Hi) }},
	0x01: {"RLC C", func(c *CPU) { c.BC.Lo = c.rotateLeftCarry(c.BC.Lo) }},
	0x02: {"RLC D", func(c *CPU) { c.DE.Hi = c.rotateLeftCarry(c.DE.Hi) }},
	0x03: {"RLC E", func(c *CPU) { c.DE.Lo = c.rotateLeftCarry(c.DE.Lo) }},
	0x04: {"RLC H", func(c *CPU) { c.HL.Hi = c.rotateLeftCarry(c.HL.Hi) }},
	0x05: {"RLC L", func(c *CPU) { c.HL.Lo = c.rotateLeftCarry(c.HL.Lo) }},
	0x06: {"RLC (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.rotateLeftCarry(c.b.Read(c.HL.Uint16()))) }},
	0x07: {"RLC A", func(c *CPU) { c.AF.Hi = c.rotateLeftCarry(c.AF.Hi) }},
	0x08: {"RRC B", func(c *CPU) { c.BC.Hi = c.rotateRightCarry(c.BC.Hi) }},
	0x09: {"RRC C", func(c *CPU) { c.BC.Lo = c.rotateRightCarry(c.BC.Lo) }},
	0x0A: {"RRC D", func(c *CPU) { c.DE.Hi = c.rotateRightCarry(c.DE.Hi) }},
	0x0B: {"RRC E", func(c *CPU) { c.DE.Lo = c.rotateRightCarry(c.DE.Lo) }},
	0x0C: {"RRC H", func(c *CPU) { c.HL.Hi = c.rotateRightCarry(c.HL.Hi) }},
	0x0D: {"RRC L", func(c *CPU) { c.HL.Lo = c.rotateRightCarry(c.HL.Lo) }},
	0x0E: {"RRC (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.rotateRightCarry(c.b.Read(c.HL.Uint16()))) }},
	0x0F: {"RRC A", func(c *CPU) { c.AF.Hi = c.rotateRightCarry(c.AF.Hi) }},
	0x10: {"RL B", func(c *CPU) { c.BC.Hi = c.rotateLeftThroughCarry(c.BC.Hi) }},
	0x11: {"RL C", func(c *CPU) { c.BC.Lo = c.rotateLeftThroughCarry(c.BC.Lo) }},
	0x12: {"RL D", func(c *CPU) { c.DE.Hi = c.rotateLeftThroughCarry(c.DE.Hi) }},
	0x13: {"RL E", func(c *CPU) { c.DE.Lo = c.rotateLeftThroughCarry(c.DE.Lo) }},
	0x14: {"RL H", func(c *CPU) { c.HL.Hi = c.rotateLeftThroughCarry(c.HL.Hi) }},
	0x15: {"RL L", func(c *CPU) { c.HL.Lo = c.rotateLeftThroughCarry(c.HL.Lo) }},
	0x16: {"RL (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.rotateLeftThroughCarry(c.b.Read(c.HL.Uint16()))) }},
	0x17: {"RL A", func(c *CPU) { c.AF.Hi = c.rotateLeftThroughCarry(c.AF.Hi) }},
	0x18: {"RR B", func(c *CPU) { c.BC.Hi = c.rotateRightThroughCarry(c.BC.Hi) }},
	0x19: {"RR C", func(c *CPU) { c.BC.Lo = c.rotateRightThroughCarry(c.BC.Lo) }},
	0x1A: {"RR D", func(c *CPU) { c.DE.Hi = c.rotateRightThroughCarry(c.DE.Hi) }},
	0x1B: {"RR E", func(c *CPU) { c.DE.Lo = c.rotateRightThroughCarry(c.DE.Lo) }},
	0x1C: {"RR H", func(c *CPU) { c.HL.Hi = c.rotateRightThroughCarry(c.HL.Hi) }},
	0x1D: {"RR L", func(c *CPU) { c.HL.Lo = c.rotateRightThroughCarry(c.HL.Lo) }},
	0x1E: {"RR (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.rotateRightThroughCarry(c.b.Read(c.HL.Uint16()))) }},
	0x1F: {"RR A", func(c *CPU) { c.AF.Hi = c.rotateRightThroughCarry(c.AF.Hi) }},
	0x20: {"SLA B", func(c *CPU) { c.BC.Hi = c.shiftLeftArithmetic(c.BC.Hi) }},
	0x21: {"SLA C", func(c *CPU) { c.BC.Lo = c.shiftLeftArithmetic(c.BC.Lo) }},
	0x22: {"SLA D", func(c *CPU) { c.DE.Hi = c.shiftLeftArithmetic(c.DE.Hi) }},
	0x23: {"SLA E", func(c *CPU) { c.DE.Lo = c.shiftLeftArithmetic(c.DE.Lo) }},
	0x24: {"SLA H", func(c *CPU) { c.HL.Hi = c.shiftLeftArithmetic(c.HL.Hi) }},
	0x25: {"SLA L", func(c *CPU) { c.HL.Lo = c.shiftLeftArithmetic(c.HL.Lo) }},
	0x26: {"SLA (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.shiftLeftArithmetic(c.b.Read(c.HL.Uint16()))) }},
	0x27: {"SLA A", func(c *CPU) { c.AF.Hi = c.shiftLeftArithmetic(c.AF.Hi) }},
	0x28: {"SRA B", func(c *CPU) { c.BC.Hi = c.shiftRightArithmetic(c.BC.Hi) }},
	0x29: {"SRA C", func(c *CPU) { c.BC.Lo = c.shiftRightArithmetic(c.BC.Lo) }},
	0x2A: {"SRA D", func(c *CPU) { c.DE.Hi = c.shiftRightArithmetic(c.DE.Hi) }},
	0x2B: {"SRA E", func(c *CPU) { c.DE.Lo = c.shiftRightArithmetic(c.DE.Lo) }},
	0x2C: {"SRA H", func(c *CPU) { c.HL.Hi = c.shiftRightArithmetic(c.HL.Hi) }},
	0x2D: {"SRA L", func(c *CPU) { c.HL.Lo = c.shiftRightArithmetic(c.HL.Lo) }},
	0x2E: {"SRA (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.shiftRightArithmetic(c.b.Read(c.HL.Uint16()))) }},
	0x2F: {"SRA A", func(c *CPU) { c.AF.Hi = c.shiftRightArithmetic(c.AF.Hi) }},
	0x30: {"SWAP B", func(c *CPU) { c.BC.Hi = c.swap(c.BC.Hi) }},
	0x31: {"SWAP C", func(c *CPU) { c.BC.Lo = c.swap(c.BC.Lo) }},
	0x32: {"SWAP D", func(c *CPU) { c.DE.Hi = c.swap(c.DE.Hi) }},
	0x33: {"SWAP E", func(c *CPU) { c.DE.Lo = c.swap(c.DE.Lo) }},
	0x34: {"SWAP H", func(c *CPU) { c.HL.Hi = c.swap(c.HL.Hi) }},
	0x35: {"SWAP L", func(c *CPU) { c.HL.Lo = c.swap(c.HL.Lo) }},
	0x36: {"SWAP (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.swap(c.b.Read(c.HL.Uint16()))) }},
	0x37: {"SWAP A", func(c *CPU) { c.AF.Hi = c.swap(c.AF.Hi) }},
	0x38: {"SRL B", func(c *CPU) { c.BC.Hi = c.shiftRightLogical(c.BC.Hi) }},
	0x39: {"SRL C", func(c *CPU) { c.BC.Lo = c.shiftRightLogical(c.BC.Lo) }},
	0x3A: {"SRL D", func(c *CPU) { c.DE.Hi = c.shiftRightLogical(c.DE.Hi) }},
	0x3B: {"SRL E", func(c *CPU) { c.DE.Lo = c.shiftRightLogical(c.DE.Lo) }},
	0x3C: {"SRL H", func(c *CPU) { c.HL.Hi = c.shiftRightLogical(c.HL.Hi) }},
	0x3D: {"SRL L", func(c *CPU) { c.HL.Lo = c.shiftRightLogical(c.HL.Lo) }},
	0x3E: {"SRL (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.shiftRightLogical(c.b.Read(c.HL.Uint16()))) }},
	0x3F: {"SRL A", func(c *CPU) { c.AF.Hi = c.shiftRightLogical(c.AF.Hi) }},
	0x40: {"BIT 0, B", func(c *CPU) { c.testBit(c.BC.Hi, types.Bit0) }},
	0x41: {"BIT 0, C", func(c *CPU) { c.testBit(c.BC.Lo, types.Bit0) }},
	0x42: {"BIT 0, D", func(c *CPU) { c.testBit(c.DE.Hi, types.Bit0) }},
	0x43: {"BIT 0, E", func(c *CPU) { c.testBit(c.DE.Lo, types.Bit0) }},
	0x44: {"BIT 0, H", func(c *CPU) { c.testBit(c.HL.Hi, types.Bit0) }},
	0x45: {"BIT 0, L", func(c *CPU) { c.testBit(c.HL.Lo, types.Bit0) }},
	0x46: {"BIT 0, (HL)", func(c *CPU) { c.testBit(c.b.Read(c.HL.Uint16()), types.Bit0) }},
	0x47: {"BIT 0, A", func(c *CPU) { c.testBit(c.AF.Hi, types.Bit0) }},
	0x48: {"BIT 1, B", func(c *CPU) { c.testBit(c.BC.Hi, types.Bit1) }},
	0x49: {"BIT 1, C", func(c *CPU) { c.testBit(c.BC.Lo, types.Bit1) }},
	0x4A: {"BIT 1, D", func(c *CPU) { c.testBit(c.DE.Hi, types.Bit1) }},
	0x4B: {"BIT 1, E", func(c *CPU) { c.testBit(c.DE.Lo, types.Bit1) }},
	0x4C: {"BIT 1, H", func(c *CPU) { c.testBit(c.HL.Hi, types.Bit1) }},
	0x4D: {"BIT 1, L", func(c *CPU) { c.testBit(c.HL.Lo, types.Bit1) }},
	0x4E: {"BIT 1, (HL)", func(c *CPU) { c.testBit(c.b.Read(c.HL.Uint16()), types.Bit1) }},
	0x4F: {"BIT 1, A", func(c *CPU) { c.testBit(c.AF.Hi, types.Bit1) }},
	0x50: {"BIT 2, B", func(c *CPU) { c.testBit(c.BC.Hi, types.Bit2) }},
	0x51: {"BIT 2, C", func(c *CPU) { c.testBit(c.BC.Lo, types.Bit2) }},
	0x52: {"BIT 2, D", func(c *CPU) { c.testBit(c.DE.Hi, types.Bit2) }},
	0x53: {"BIT 2, E", func(c *CPU) { c.testBit(c.DE.Lo, types.Bit2) }},
	0x54: {"BIT 2, H", func(c *CPU) { c.testBit(c.HL.Hi, types.Bit2) }},
	0x55: {"BIT 2, L", func(c *CPU) { c.testBit(c.HL.Lo, types.Bit2) }},
	0x56: {"BIT 2, (HL)", func(c *CPU) { c.testBit(c.b.Read(c.HL.Uint16()), types.Bit2) }},
	0x57: {"BIT 2, A", func(c *CPU) { c.testBit(c.AF.Hi, types.Bit2) }},
	0x58: {"BIT 3, B", func(c *CPU) { c.testBit(c.BC.Hi, types.Bit3) }},
	0x59: {"BIT 3, C", func(c *CPU) { c.testBit(c.BC.Lo, types.Bit3) }},
	0x5A: {"BIT 3, D", func(c *CPU) { c.testBit(c.DE.Hi, types.Bit3) }},
	0x5B: {"BIT 3, E", func(c *CPU) { c.testBit(c.DE.Lo, types.Bit3) }},
	0x5C: {"BIT 3, H", func(c *CPU) { c.testBit(c.HL.Hi, types.Bit3) }},
	0x5D: {"BIT 3, L", func(c *CPU) { c.testBit(c.HL.Lo, types.Bit3) }},
	0x5E: {"BIT 3, (HL)", func(c *CPU) { c.testBit(c.b.Read(c.HL.Uint16()), types.Bit3) }},
	0x5F: {"BIT 3, A", func(c *CPU) { c.testBit(c.AF.Hi, types.Bit3) }},
	0x60: {"BIT 4, B", func(c *CPU) { c.testBit(c.BC.Hi, types.Bit4) }},
	0x61: {"BIT 4, C", func(c *CPU) { c.testBit(c.BC.Lo, types.Bit4) }},
	0x62: {"BIT 4, D", func(c *CPU) { c.testBit(c.DE.Hi, types.Bit4) }},
	0x63: {"BIT 4, E", func(c *CPU) { c.testBit(c.DE.Lo, types.Bit4) }},
	0x64: {"BIT 4, H", func(c *CPU) { c.testBit(c.HL.Hi, types.Bit4) }},
	0x65: {"BIT 4, L", func(c *CPU) { c.testBit(c.HL.Lo, types.Bit4) }},
	0x66: {"BIT 4, (HL)", func(c *CPU) { c.testBit(c.b.Read(c.HL.Uint16()), types.Bit4) }},
	0x67: {"BIT 4, A", func(c *CPU) { c.testBit(c.AF.Hi, types.Bit4) }},
	0x68: {"BIT 5, B", func(c *CPU) { c.testBit(c.BC.Hi, types.Bit5) }},
	0x69: {"BIT 5, C", func(c *CPU) { c.testBit(c.BC.Lo, types.Bit5) }},
	0x6A: {"BIT 5, D", func(c *CPU) { c.testBit(c.DE.Hi, types.Bit5) }},
	0x6B: {"BIT 5, E", func(c *CPU) { c.testBit(c.DE.Lo, types.Bit5) }},
	0x6C: {"BIT 5, H", func(c *CPU) { c.testBit(c.HL.Hi, types.Bit5) }},
	0x6D: {"BIT 5, L", func(c *CPU) { c.testBit(c.HL.Lo, types.Bit5) }},
	0x6E: {"BIT 5, (HL)", func(c *CPU) { c.testBit(c.b.Read(c.HL.Uint16()), types.Bit5) }},
	0x6F: {"BIT 5, A", func(c *CPU) { c.testBit(c.AF.Hi, types.Bit5) }},
	0x70: {"BIT 6, B", func(c *CPU) { c.testBit(c.BC.Hi, types.Bit6) }},
	0x71: {"BIT 6, C", func(c *CPU) { c.testBit(c.BC.Lo, types.Bit6) }},
	0x72: {"BIT 6, D", func(c *CPU) { c.testBit(c.DE.Hi, types.Bit6) }},
	0x73: {"BIT 6, E", func(c *CPU) { c.testBit(c.DE.Lo, types.Bit6) }},
	0x74: {"BIT 6, H", func(c *CPU) { c.testBit(c.HL.Hi, types.Bit6) }},
	0x75: {"BIT 6, L", func(c *CPU) { c.testBit(c.HL.Lo, types.Bit6) }},
	0x76: {"BIT 6, (HL)", func(c *CPU) { c.testBit(c.b.Read(c.HL.Uint16()), types.Bit6) }},
	0x77: {"BIT 6, A", func(c *CPU) { c.testBit(c.AF.Hi, types.Bit6) }},
	0x78: {"BIT 7, B", func(c *CPU) { c.testBit(c.BC.Hi, types.Bit7) }},
	0x79: {"BIT 7, C", func(c *CPU) { c.testBit(c.BC.Lo, types.Bit7) }},
	0x7A: {"BIT 7, D", func(c *CPU) { c.testBit(c.DE.Hi, types.Bit7) }},
	0x7B: {"BIT 7, E", func(c *CPU) { c.testBit(c.DE.Lo, types.Bit7) }},
	0x7C: {"BIT 7, H", func(c *CPU) { c.testBit(c.HL.Hi, types.Bit7) }},
	0x7D: {"BIT 7, L", func(c *CPU) { c.testBit(c.HL.Lo, types.Bit7) }},
	0x7E: {"BIT 7, (HL)", func(c *CPU) { c.testBit(c.b.Read(c.HL.Uint16()), types.Bit7) }},
	0x7F: {"BIT 7, A", func(c *CPU) { c.testBit(c.AF.Hi, types.Bit7) }},
	0x80: {"RES 0, B", func(c *CPU) { c.BC.Hi &^= types.Bit0 }},
	0x81: {"RES 0, C", func(c *CPU) { c.BC.Lo &^= types.Bit0 }},
	0x82: {"RES 0, D", func(c *CPU) { c.DE.Hi &^= types.Bit0 }},
	0x83: {"RES 0, E", func(c *CPU) { c.DE.Lo &^= types.Bit0 }},
	0x84: {"RES 0, H", func(c *CPU) { c.HL.Hi &^= types.Bit0 }},
	0x85: {"RES 0, L", func(c *CPU) { c.HL.Lo &^= types.Bit0 }},
	0x86: {"RES 0, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())&^types.Bit0) }},
	0x87: {"RES 0, A", func(c *CPU) { c.AF.Hi &^= types.Bit0 }},
	0x88: {"RES 1, B", func(c *CPU) { c.BC.Hi &^= types.Bit1 }},
	0x89: {"RES 1, C", func(c *CPU) { c.BC.Lo &^= types.Bit1 }},
	0x8A: {"RES 1, D", func(c *CPU) { c.DE.Hi &^= types.Bit1 }},
	0x8B: {"RES 1, E", func(c *CPU) { c.DE.Lo &^= types.Bit1 }},
	0x8C: {"RES 1, H", func(c *CPU) { c.HL.Hi &^= types.Bit1 }},
	0x8D: {"RES 1, L", func(c *CPU) { c.HL.Lo &^= types.Bit1 }},
	0x8E: {"RES 1, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())&^types.Bit1) }},
	0x8F: {"RES 1, A", func(c *CPU) { c.AF.Hi &^= types.Bit1 }},
	0x90: {"RES 2, B", func(c *CPU) { c.BC.Hi &^= types.Bit2 }},
	0x91: {"RES 2, C", func(c *CPU) { c.BC.Lo &^= types.Bit2 }},
	0x92: {"RES 2, D", func(c *CPU) { c.DE.Hi &^= types.Bit2 }},
	0x93: {"RES 2, E", func(c *CPU) { c.DE.Lo &^= types.Bit2 }},
	0x94: {"RES 2, H", func(c *CPU) { c.HL.Hi &^= types.Bit2 }},
	0x95: {"RES 2, L", func(c *CPU) { c.HL.Lo &^= types.Bit2 }},
	0x96: {"RES 2, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())&^types.Bit2) }},
	0x97: {"RES 2, A", func(c *CPU) { c.AF.Hi &^= types.Bit2 }},
	0x98: {"RES 3, B", func(c *CPU) { c.BC.Hi &^= types.Bit3 }},
	0x99: {"RES 3, C", func(c *CPU) { c.BC.Lo &^= types.Bit3 }},
	0x9A: {"RES 3, D", func(c *CPU) { c.DE.Hi &^= types.Bit3 }},
	0x9B: {"RES 3, E", func(c *CPU) { c.DE.Lo &^= types.Bit3 }},
	0x9C: {"RES 3, H", func(c *CPU) { c.HL.Hi &^= types.Bit3 }},
	0x9D: {"RES 3, L", func(c *CPU) { c.HL.Lo &^= types.Bit3 }},
	0x9E: {"RES 3, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())&^types.Bit3) }},
	0x9F: {"RES 3, A", func(c *CPU) { c.AF.Hi &^= types.Bit3 }},
	0xA0: {"RES 4, B", func(c *CPU) { c.BC.Hi &^= types.Bit4 }},
	0xA1: {"RES 4, C", func(c *CPU) { c.BC.Lo &^= types.Bit4 }},
	0xA2: {"RES 4, D", func(c *CPU) { c.DE.Hi &^= types.Bit4 }},
	0xA3: {"RES 4, E", func(c *CPU) { c.DE.Lo &^= types.Bit4 }},
	0xA4: {"RES 4, H", func(c *CPU) { c.HL.Hi &^= types.Bit4 }},
	0xA5: {"RES 4, L", func(c *CPU) { c.HL.Lo &^= types.Bit4 }},
	0xA6: {"RES 4, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())&^types.Bit4) }},
	0xA7: {"RES 4, A", func(c *CPU) { c.AF.Hi &^= types.Bit4 }},
	0xA8: {"RES 5, B", func(c *CPU) { c.BC.Hi &^= types.Bit5 }},
	0xA9: {"RES 5, C", func(c *CPU) { c.BC.Lo &^= types.Bit5 }},
	0xAA: {"RES 5, D", func(c *CPU) { c.DE.Hi &^= types.Bit5 }},
	0xAB: {"RES 5, E", func(c *CPU) { c.DE.Lo &^= types.Bit5 }},
	0xAC: {"RES 5, H", func(c *CPU) { c.HL.Hi &^= types.Bit5 }},
	0xAD: {"RES 5, L", func(c *CPU) { c.HL.Lo &^= types.Bit5 }},
	0xAE: {"RES 5, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())&^types.Bit5) }},
	0xAF: {"RES 5, A", func(c *CPU) { c.AF.Hi &^= types.Bit5 }},
	0xB0: {"RES 6, B", func(c *CPU) { c.BC.Hi &^= types.Bit6 }},
	0xB1: {"RES 6, C", func(c *CPU) { c.BC.Lo &^= types.Bit6 }},
	0xB2: {"RES 6, D", func(c *CPU) { c.DE.Hi &^= types.Bit6 }},
	0xB3: {"RES 6, E", func(c *CPU) { c.DE.Lo &^= types.Bit6 }},
	0xB4: {"RES 6, H", func(c *CPU) { c.HL.Hi &^= types.Bit6 }},
	0xB5: {"RES 6, L", func(c *CPU) { c.HL.Lo &^= types.Bit6 }},
	0xB6: {"RES 6, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())&^types.Bit6) }},
	0xB7: {"RES 6, A", func(c *CPU) { c.AF.Hi &^= types.Bit6 }},
	0xB8: {"RES 7, B", func(c *CPU) { c.BC.Hi &^= types.Bit7 }},
	0xB9: {"RES 7, C", func(c *CPU) { c.BC.Lo &^= types.Bit7 }},
	0xBA: {"RES 7, D", func(c *CPU) { c.DE.Hi &^= types.Bit7 }},
	0xBB: {"RES 7, E", func(c *CPU) { c.DE.Lo &^= types.Bit7 }},
	0xBC: {"RES 7, H", func(c *CPU) { c.HL.Hi &^= types.Bit7 }},
	0xBD: {"RES 7, L", func(c *CPU) { c.HL.Lo &^= types.Bit7 }},
	0xBE: {"RES 7, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())&^types.Bit7) }},
	0xBF: {"RES 7, A", func(c *CPU) { c.AF.Hi &^= types.Bit7 }},
	0xC0: {"SET 0, B", func(c *CPU) { c.BC.Hi |= types.Bit0 }},
	0xC1: {"SET 0, C", func(c *CPU) { c.BC.Lo |= types.Bit0 }},
	0xC2: {"SET 0, D", func(c *CPU) { c.DE.Hi |= types.Bit0 }},
	0xC3: {"SET 0, E", func(c *CPU) { c.DE.Lo |= types.Bit0 }},
	0xC4: {"SET 0, H", func(c *CPU) { c.HL.Hi |= types.Bit0 }},
	0xC5: {"SET 0, L", func(c *CPU) { c.HL.Lo |= types.Bit0 }},
	0xC6: {"SET 0, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())|types.Bit0) }},
	0xC7: {"SET 0, A", func(c *CPU) { c.AF.Hi |= types.Bit0 }},
	0xC8: {"SET 1, B", func(c *CPU) { c.BC.Hi |= types.Bit1 }},
	0xC9: {"SET 1, C", func(c *CPU) { c.BC.Lo |= types.Bit1 }},
	0xCA: {"SET 1, D", func(c *CPU) { c.DE.Hi |= types.Bit1 }},
	0xCB: {"SET 1, E", func(c *CPU) { c.DE.Lo |= types.Bit1 }},
	0xCC: {"SET 1, H", func(c *CPU) { c.HL.Hi |= types.Bit1 }},
	0xCD: {"SET 1, L", func(c *CPU) { c.HL.Lo |= types.Bit1 }},
	0xCE: {"SET 1, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())|types.Bit1) }},
	0xCF: {"SET 1, A", func(c *CPU) { c.AF.Hi |= types.Bit1 }},
	0xD0: {"SET 2, B", func(c *CPU) { c.BC.Hi |= types.Bit2 }},
	0xD1: {"SET 2, C", func(c *CPU) { c.BC.Lo |= types.Bit2 }},
	0xD2: {"SET 2, D", func(c *CPU) { c.DE.Hi |= types.Bit2 }},
	0xD3: {"SET 2, E", func(c *CPU) { c.DE.Lo |= types.Bit2 }},
	0xD4: {"SET 2, H", func(c *CPU) { c.HL.Hi |= types.Bit2 }},
	0xD5: {"SET 2, L", func(c *CPU) { c.HL.Lo |= types.Bit2 }},
	0xD6: {"SET 2, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())|types.Bit2) }},
	0xD7: {"SET 2, A", func(c *CPU) { c.AF.Hi |= types.Bit2 }},
	0xD8: {"SET 3, B", func(c *CPU) { c.BC.Hi |= types.Bit3 }},
	0xD9: {"SET 3, C", func(c *CPU) { c.BC.Lo |= types.Bit3 }},
	0xDA: {"SET 3, D", func(c *CPU) { c.DE.Hi |= types.Bit3 }},
	0xDB: {"SET 3, E", func(c *CPU) { c.DE.Lo |= types.Bit3 }},
	0xDC: {"SET 3, H", func(c *CPU) { c.HL.Hi |= types.Bit3 }},
	0xDD: {"SET 3, L", func(c *CPU) { c.HL.Lo |= types.Bit3 }},
	0xDE: {"SET 3, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())|types.Bit3) }},
	0xDF: {"SET 3, A", func(c *CPU) { c.AF.Hi |= types.Bit3 }},
	0xE0: {"SET 4, B", func(c *CPU) { c.BC.Hi |= types.Bit4 }},
	0xE1: {"SET 4, C", func(c *CPU) { c.BC.Lo |= types.Bit4 }},
	0xE2: {"SET 4, D", func(c *CPU) { c.DE.Hi |= types.Bit4 }},
	0xE3: {"SET 4, E", func(c *CPU) { c.DE.Lo |= types.Bit4 }},
	0xE4: {"SET 4, H", func(c *CPU) { c.HL.Hi |= types.Bit4 }},
	0xE5: {"SET 4, L", func(c *CPU) { c.HL.Lo |= types.Bit4 }},
	0xE6: {"SET 4, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())|types.Bit4) }},
	0xE7: {"SET 4, A", func(c *CPU) { c.AF.Hi |= types.Bit4 }},
	0xE8: {"SET 5, B", func(c *CPU) { c.BC.Hi |= types.Bit5 }},
	0xE9: {"SET 5, C", func(c *CPU) { c.BC.Lo |= types.Bit5 }},
	0xEA: {"SET 5, D", func(c *CPU) { c.DE.Hi |= types.Bit5 }},
	0xEB: {"SET 5, E", func(c *CPU) { c.DE.Lo |= types.Bit5 }},
	0xEC: {"SET 5, H", func(c *CPU) { c.HL.Hi |= types.Bit5 }},
	0xED: {"SET 5, L", func(c *CPU) { c.HL.Lo |= types.Bit5 }},
	0xEE: {"SET 5, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())|types.Bit5) }},
	0xEF: {"SET 5, A", func(c *CPU) { c.AF.Hi |= types.Bit5 }},
	0xF0: {"SET 6, B", func(c *CPU) { c.BC.Hi |= types.Bit6 }},
	0xF1: {"SET 6, C", func(c *CPU) { c.BC.Lo |= types.Bit6 }},
	0xF2: {"SET 6, D", func(c *CPU) { c.DE.Hi |= types.Bit6 }},
	0xF3: {"SET 6, E", func(c *CPU) { c.DE.Lo |= types.Bit6 }},
	0xF4: {"SET 6, H", func(c *CPU) { c.HL.Hi |= types.Bit6 }},
	0xF5: {"SET 6, L", func(c *CPU) { c.HL.Lo |= types.Bit6 }},
	0xF6: {"SET 6, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())|types.Bit6) }},
	0xF7: {"SET 6, A", func(c *CPU) { c.AF.Hi |= types.Bit6 }},
	0xF8: {"SET 7, B", func(c *CPU) { c.BC.Hi |= types.Bit7 }},
	0xF9: {"SET 7, C", func(c *CPU) { c.BC.Lo |= types.Bit7 }},
	0xFA: {"SET 7, D", func(c *CPU) { c.DE.Hi |= types.Bit7 }},
	0xFB: {"SET 7, E", func(c *CPU) { c.DE.Lo |= types.Bit7 }},
	0xFC: {"SET 7, H", func(c *CPU) { c.HL.Hi |= types.Bit7 }},
	0xFD: {"SET 7, L", func(c *CPU) { c.HL.Lo |= types.Bit7 }},
	0xFE: {"SET 7, (HL)", func(c *CPU) { c.b.Write(c.HL.Uint16(), c.b.Read(c.HL.Uint16())|types.Bit7) }},
	0xFF: {"SET 7, A", func(c *CPU) { c.AF.Hi |= types.Bit7 }},
}

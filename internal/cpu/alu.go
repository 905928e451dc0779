package cpu

import (
	"github.com/thelolagemann/go-dmg/internal/types"
)

// add adds n to the accumulator, optionally with the carry flag as a
// carry in. The half-carry is bit 4 of the XOR of both operands and the
// result.
//
//	ADD A, n / ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	carryIn := uint16(0)
	if withCarry && c.isFlagSet(flagCarry) {
		carryIn = 1
	}
	sum := uint16(c.AF.Hi) + uint16(n) + carryIn
	result := uint8(sum)
	c.setFlags(result == 0, false, (c.AF.Hi^n^result)&types.Bit4 != 0, sum > 0xFF)
	c.AF.Hi = result
}

// sub subtracts n from the accumulator, optionally with the carry flag
// as a borrow in.
//
//	SUB n / SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	carryIn := uint16(0)
	if withCarry && c.isFlagSet(flagCarry) {
		carryIn = 1
	}
	result := uint8(uint16(c.AF.Hi) - uint16(n) - carryIn)
	c.setFlags(result == 0, true, (c.AF.Hi^n^result)&types.Bit4 != 0, uint16(c.AF.Hi) < uint16(n)+carryIn)
	c.AF.Hi = result
}

// compare subtracts n from the accumulator for the flags alone; the
// accumulator keeps its value.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	result := c.AF.Hi - n
	c.setFlags(result == 0, true, (c.AF.Hi^n^result)&types.Bit4 != 0, c.AF.Hi < n)
}

// and performs a bitwise AND of n against the accumulator.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.AF.Hi &= n
	c.setFlags(c.AF.Hi == 0, false, true, false)
}

// or performs a bitwise OR of n against the accumulator.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.AF.Hi |= n
	c.setFlags(c.AF.Hi == 0, false, false, false)
}

// xor performs a bitwise XOR of n against the accumulator.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.AF.Hi ^= n
	c.setFlags(c.AF.Hi == 0, false, false, false)
}

// increment adds one to n. The carry flag is untouched.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(incremented == 0, false, n&0x0F == 0x0F, c.isFlagSet(flagCarry))
	return incremented
}

// decrement subtracts one from n. The carry flag is untouched.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(decremented == 0, true, n&0x0F == 0x00, c.isFlagSet(flagCarry))
	return decremented
}

// addUint16 adds two 16-bit values. The half-carry is bit 12 of the
// XOR of both operands and the result, and the zero flag is untouched.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	result := uint16(sum)
	c.setFlags(c.isFlagSet(flagZero), false, (a^b^result)&0x1000 != 0, sum > 0xFFFF)
	return result
}

// addHLRR adds the given register pair to HL.
func (c *CPU) addHLRR(register *RegisterPair) {
	c.HL.SetUint16(c.addUint16(c.HL.Uint16(), register.Uint16()))
}

// addSPSigned reads a signed 8-bit displacement and returns SP plus the
// displacement. The half-carry and carry are bits 4 and 8 of the XOR of
// SP, the sign-extended displacement and the result.
//
//	ADD SP, r8 / LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	displacement := c.readOperand()
	result := uint16(int32(c.SP) + int32(int8(displacement)))

	xor := c.SP ^ uint16(int8(displacement)) ^ result
	c.setFlags(false, false, xor&0x0010 != 0, xor&0x0100 != 0)
	return result
}

// swap exchanges the upper and lower nibbles of n.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	swapped := n<<4 | n>>4
	c.setFlags(swapped == 0, false, false, false)
	return swapped
}

// testBit tests a single bit of n. The carry flag is untouched.
//
//	BIT b, n
//	b = 0-7
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if the tested bit is zero.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, mask uint8) {
	c.setFlags(n&mask == 0, false, true, c.isFlagSet(flagCarry))
}

// rotateLeftCarry rotates n left by one bit. The old bit 7 lands in
// both the carry flag and bit 0.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	rotated := n<<1 | n>>7
	c.setFlags(rotated == 0, false, false, n&types.Bit7 != 0)
	return rotated
}

// rotateRightCarry rotates n right by one bit. The old bit 0 lands in
// both the carry flag and bit 7.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	rotated := n>>1 | n<<7
	c.setFlags(rotated == 0, false, false, n&types.Bit0 != 0)
	return rotated
}

// rotateLeftThroughCarry rotates n left by one bit through the carry
// flag: the old carry lands in bit 0 and the old bit 7 in the carry.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	rotated := n << 1
	if c.isFlagSet(flagCarry) {
		rotated |= types.Bit0
	}
	c.setFlags(rotated == 0, false, false, n&types.Bit7 != 0)
	return rotated
}

// rotateRightThroughCarry rotates n right by one bit through the carry
// flag: the old carry lands in bit 7 and the old bit 0 in the carry.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	rotated := n >> 1
	if c.isFlagSet(flagCarry) {
		rotated |= types.Bit7
	}
	c.setFlags(rotated == 0, false, false, n&types.Bit0 != 0)
	return rotated
}

// rotateLeftCarryAccumulator is RLC applied to the accumulator. Unlike
// the CB-prefixed form, the zero flag is always reset.
//
//	RLCA
func (c *CPU) rotateLeftCarryAccumulator() {
	carry := c.AF.Hi&types.Bit7 != 0
	c.AF.Hi = c.AF.Hi<<1 | c.AF.Hi>>7
	c.setFlags(false, false, false, carry)
}

// rotateRightCarryAccumulator is RRC applied to the accumulator. Unlike
// the CB-prefixed form, the zero flag is always reset.
//
//	RRCA
func (c *CPU) rotateRightCarryAccumulator() {
	carry := c.AF.Hi&types.Bit0 != 0
	c.AF.Hi = c.AF.Hi>>1 | c.AF.Hi<<7
	c.setFlags(false, false, false, carry)
}

// rotateLeftAccumulatorThroughCarry is RL applied to the accumulator.
// Unlike the CB-prefixed form, the zero flag is always reset.
//
//	RLA
func (c *CPU) rotateLeftAccumulatorThroughCarry() {
	carry := c.AF.Hi&types.Bit7 != 0
	c.AF.Hi <<= 1
	if c.isFlagSet(flagCarry) {
		c.AF.Hi |= types.Bit0
	}
	c.setFlags(false, false, false, carry)
}

// rotateRightAccumulatorThroughCarry is RR applied to the accumulator.
// Unlike the CB-prefixed form, the zero flag is always reset.
//
//	RRA
func (c *CPU) rotateRightAccumulatorThroughCarry() {
	carry := c.AF.Hi&types.Bit0 != 0
	c.AF.Hi >>= 1
	if c.isFlagSet(flagCarry) {
		c.AF.Hi |= types.Bit7
	}
	c.setFlags(false, false, false, carry)
}

// shiftLeftArithmetic shifts n left by one bit into the carry flag.
// Bit 0 is cleared.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	shifted := n << 1
	c.setFlags(shifted == 0, false, false, n&types.Bit7 != 0)
	return shifted
}

// shiftRightArithmetic shifts n right by one bit into the carry flag.
// Bit 7 keeps its value, preserving the sign.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	shifted := n>>1 | n&types.Bit7
	c.setFlags(shifted == 0, false, false, n&types.Bit0 != 0)
	return shifted
}

// shiftRightLogical shifts n right by one bit into the carry flag.
// Bit 7 is cleared.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	shifted := n >> 1
	c.setFlags(shifted == 0, false, false, n&types.Bit0 != 0)
	return shifted
}

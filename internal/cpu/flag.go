package cpu

import "github.com/thelolagemann/go-dmg/internal/types"

// The flag register is the low byte of AF. Only the top four bits hold
// state; the low nibble always reads back as zero.
const (
	flagZero      = types.Bit7
	flagSubtract  = types.Bit6
	flagHalfCarry = types.Bit5
	flagCarry     = types.Bit4
)

// setFlags rewrites the whole flag register at once. Every instruction
// that touches flags funnels through here, which is what keeps the low
// nibble of F zero.
func (c *CPU) setFlags(z, n, h, carry bool) {
	var f uint8
	if z {
		f |= flagZero
	}
	if n {
		f |= flagSubtract
	}
	if h {
		f |= flagHalfCarry
	}
	if carry {
		f |= flagCarry
	}
	c.AF.Lo = f
}

// isFlagSet reports whether the given flag is set.
func (c *CPU) isFlagSet(flag uint8) bool {
	return c.AF.Lo&flag != 0
}

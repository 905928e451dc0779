package cpu

// RegisterPair is two 8-bit registers addressed together as a 16-bit
// value. The two bytes are the canonical storage; the combined view is
// computed on demand, never aliased.
type RegisterPair struct {
	Hi uint8
	Lo uint8
}

// Uint16 returns the pair as a 16-bit value, high byte first.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(r.Hi)<<8 | uint16(r.Lo)
}

// SetUint16 splits a 16-bit value across the two halves of the pair.
func (r *RegisterPair) SetUint16(value uint16) {
	r.Hi = uint8(value >> 8)
	r.Lo = uint8(value)
}

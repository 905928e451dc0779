// Package apu stores the sound control registers the bus exposes. No
// audio is synthesised: NR50, NR51 and NR52 are plain byte storage so
// software can program the mixer without faulting.
package apu

import (
	"fmt"

	"github.com/thelolagemann/go-dmg/internal/types"
)

// APU holds the implemented sound register bytes.
type APU struct {
	nr50 uint8 // master volume & VIN panning
	nr51 uint8 // sound panning
	nr52 uint8 // sound on/off
}

// NewAPU returns a new APU with all registers cleared.
func NewAPU() *APU {
	return &APU{}
}

// Read returns the value of the register at the given address.
func (a *APU) Read(address uint16) uint8 {
	switch address {
	case types.NR50:
		return a.nr50
	case types.NR51:
		return a.nr51
	case types.NR52:
		return a.nr52
	}

	panic(fmt.Sprintf("apu: illegal read from address 0x%04X", address))
}

// Write writes the value to the register at the given address.
func (a *APU) Write(address uint16, value uint8) {
	switch address {
	case types.NR50:
		a.nr50 = value
	case types.NR51:
		a.nr51 = value
	case types.NR52:
		a.nr52 = value
	default:
		panic(fmt.Sprintf("apu: illegal write to address 0x%04X", address))
	}
}

// Reset clears the registers to their power-on state.
func (a *APU) Reset() {
	a.nr50 = 0
	a.nr51 = 0
	a.nr52 = 0
}

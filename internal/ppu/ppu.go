// Package ppu stores the LCD registers and video RAM the bus exposes.
// Nothing is rendered: the registers are byte storage, LY stays at
// whatever the power-on state left it, and VRAM is an ordinary 8kB
// array software can fill and read back.
package ppu

import (
	"fmt"

	"github.com/thelolagemann/go-dmg/internal/types"
)

// VRAMSize is the size of video RAM in bytes.
const VRAMSize = 0x2000

// PPU holds the implemented LCD register bytes and video RAM.
type PPU struct {
	lcdc uint8 // LCD control
	scy  uint8 // background viewport Y
	scx  uint8 // background viewport X
	ly   uint8 // current scanline, read only
	bgp  uint8 // background palette

	vram [VRAMSize]uint8
}

// NewPPU returns a new PPU with cleared registers and VRAM.
func NewPPU() *PPU {
	return &PPU{}
}

// Read returns the value of the register at the given address.
func (p *PPU) Read(address uint16) uint8 {
	switch address {
	case types.LCDC:
		return p.lcdc
	case types.SCY:
		return p.scy
	case types.SCX:
		return p.scx
	case types.LY:
		return p.ly
	case types.BGP:
		return p.bgp
	}

	panic(fmt.Sprintf("ppu: illegal read from address 0x%04X", address))
}

// Write writes the value to the register at the given address. LY is
// read only and is not routed here.
func (p *PPU) Write(address uint16, value uint8) {
	switch address {
	case types.LCDC:
		p.lcdc = value
	case types.SCY:
		p.scy = value
	case types.SCX:
		p.scx = value
	case types.BGP:
		p.bgp = value
	default:
		panic(fmt.Sprintf("ppu: illegal write to address 0x%04X", address))
	}
}

// ReadVRAM returns the byte at the given offset into video RAM.
func (p *PPU) ReadVRAM(offset uint16) uint8 {
	return p.vram[offset]
}

// WriteVRAM writes the byte at the given offset into video RAM.
func (p *PPU) WriteVRAM(offset uint16, value uint8) {
	p.vram[offset] = value
}

// Reset clears the registers and VRAM to their power-on state.
func (p *PPU) Reset() {
	p.lcdc = 0
	p.scy = 0
	p.scx = 0
	p.ly = 0
	p.bgp = 0
	p.vram = [VRAMSize]uint8{}
}

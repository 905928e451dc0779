// Package cartridge provides the read-only view of the ROM image that
// the bus maps at 0x0000 - 0x7FFF. Bank switching is not modelled: the
// image is a flat byte array, and reads past its end return open bus.
package cartridge

import (
	"github.com/cespare/xxhash"
)

// Cartridge wraps the ROM image supplied at system construction. The
// image is never mutated and may be shorter than the mapped region,
// in which case the missing bytes read as open bus (0xFF).
type Cartridge struct {
	rom         []byte
	header      Header
	fingerprint uint64
}

// NewCartridge returns a Cartridge for the given ROM image.
func NewCartridge(rom []byte) *Cartridge {
	return &Cartridge{
		rom:         rom,
		header:      parseHeader(rom),
		fingerprint: xxhash.Sum64(rom),
	}
}

// Read returns the ROM byte at address, or 0xFF when the image does
// not extend that far.
func (c *Cartridge) Read(address uint16) uint8 {
	if int(address) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[address]
}

// Size returns the length of the ROM image in bytes.
func (c *Cartridge) Size() int {
	return len(c.rom)
}

// Header returns the metadata parsed from the cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Fingerprint returns the 64-bit xxHash of the ROM image, used to
// identify the image in logs.
func (c *Cartridge) Fingerprint() uint64 {
	return c.fingerprint
}

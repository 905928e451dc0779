package cartridge

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// buildROM returns a headered image with the given title, padded to
// 32kB, with a correct header checksum.
func buildROM(title string) []byte {
	rom := make([]byte, 32*1024)
	copy(rom[0x0134:], title)
	rom[0x0147] = uint8(ROM)
	rom[0x0148] = 0x00 // 32kB
	rom[0x014C] = 0x01

	var sum uint8
	for i := 0x0134; i <= 0x014C; i++ {
		sum = sum - rom[i] - 1
	}
	rom[0x014D] = sum

	return rom
}

func TestCartridgeRead(t *testing.T) {
	rom := buildROM("READTEST")
	rom[0x0000] = 0x3C
	rom[0x7FFF] = 0x0F

	c := NewCartridge(rom)
	assert.Equal(t, uint8(0x3C), c.Read(0x0000))
	assert.Equal(t, uint8(0x0F), c.Read(0x7FFF))
}

func TestCartridgeReadPastEndIsOpenBus(t *testing.T) {
	c := NewCartridge([]byte{0x00, 0x01, 0x02})

	assert.Equal(t, uint8(0x02), c.Read(0x0002))
	assert.Equal(t, uint8(0xFF), c.Read(0x0003))
	assert.Equal(t, uint8(0xFF), c.Read(0x7FFF))
}

func TestCartridgeHeader(t *testing.T) {
	c := NewCartridge(buildROM("HEADERTEST"))

	h := c.Header()
	assert.Equal(t, "HEADERTEST", h.Title)
	assert.Equal(t, ROM, h.CartridgeType)
	assert.Equal(t, uint(32*1024), h.ROMSize)
	assert.Equal(t, uint8(0x01), h.Revision)
	assert.True(t, h.Valid(buildROM("HEADERTEST")))
}

func TestCartridgeHeaderChecksumMismatch(t *testing.T) {
	rom := buildROM("BADSUM")
	rom[0x014D] ^= 0xFF

	c := NewCartridge(rom)
	assert.False(t, c.Header().Valid(rom))
}

func TestCartridgeWithoutHeader(t *testing.T) {
	c := NewCartridge([]byte{0xED})

	h := c.Header()
	assert.Equal(t, "", h.Title)
	assert.False(t, h.Valid([]byte{0xED}))
	assert.Equal(t, "no header", h.String())
}

func TestCartridgeFingerprint(t *testing.T) {
	a := NewCartridge(buildROM("FPRINT A"))
	b := NewCartridge(buildROM("FPRINT B"))

	assert.True(t, a.Fingerprint() != 0)
	assert.Equal(t, a.Fingerprint(), NewCartridge(buildROM("FPRINT A")).Fingerprint())
	assert.True(t, a.Fingerprint() != b.Fingerprint())
}

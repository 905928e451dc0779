package cartridge

import (
	"fmt"
	"strings"
)

// headerEnd is the first byte past the cartridge header region
// (0x0100 - 0x014F). Images shorter than this have no header and parse
// to the zero value.
const headerEnd = 0x0150

// Type identifies the mapper hardware the image was built for. Only
// flat ROM images are actually mapped here; the type is metadata
// surfaced in logs.
type Type uint8

const (
	ROM         Type = 0x00
	MBC1        Type = 0x01
	MBC1RAM     Type = 0x02
	MBC1RAMBATT Type = 0x03
	MBC2        Type = 0x05
	MBC2BATT    Type = 0x06
	MBC3        Type = 0x11
	MBC3RAM     Type = 0x12
	MBC3RAMBATT Type = 0x13
	MBC5        Type = 0x19
	MBC5RAM     Type = 0x1A
	MBC5RAMBATT Type = 0x1B
)

var typeNames = map[Type]string{
	ROM:         "ROM",
	MBC1:        "MBC1",
	MBC1RAM:     "MBC1+RAM",
	MBC1RAMBATT: "MBC1+RAM+BATT",
	MBC2:        "MBC2",
	MBC2BATT:    "MBC2+BATT",
	MBC3:        "MBC3",
	MBC3RAM:     "MBC3+RAM",
	MBC3RAMBATT: "MBC3+RAM+BATT",
	MBC5:        "MBC5",
	MBC5RAM:     "MBC5+RAM",
	MBC5RAMBATT: "MBC5+RAM+BATT",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(t))
}

// Header holds the metadata stored at 0x0100 - 0x014F of a ROM image.
// It is informational only; none of it changes how the bus maps the
// image.
type Header struct {
	// Title of the game, stored at 0x0134 - 0x0143.
	Title string

	// CartridgeType of the game, stored at 0x0147.
	CartridgeType Type

	// ROMSize the image claims to have, in bytes, decoded from 0x0148.
	ROMSize uint

	// Revision is the mask ROM version number at 0x014C.
	Revision uint8

	// Checksum is the header checksum byte at 0x014D.
	Checksum uint8

	present bool
}

// parseHeader decodes the header region of the given ROM image. Images
// too short to contain a header yield the zero value.
func parseHeader(rom []byte) Header {
	if len(rom) < headerEnd {
		return Header{}
	}

	h := Header{present: true}

	h.Title = strings.TrimRight(string(rom[0x0134:0x0144]), "\x00")
	h.CartridgeType = Type(rom[0x0147])
	h.ROMSize = (32 * 1024) * (1 << rom[0x0148])
	h.Revision = rom[0x014C]
	h.Checksum = rom[0x014D]

	return h
}

// Valid reports whether the header checksum byte matches the checksum
// computed over 0x0134 - 0x014C, the verification the boot ROM performs.
// Images without a header are never valid.
func (h Header) Valid(rom []byte) bool {
	if !h.present || len(rom) < headerEnd {
		return false
	}

	var sum uint8
	for i := 0x0134; i <= 0x014C; i++ {
		sum = sum - rom[i] - 1
	}
	return sum == h.Checksum
}

func (h Header) String() string {
	if !h.present {
		return "no header"
	}
	return fmt.Sprintf("%s | %s | ROM Size: %dkB | rev %d", h.Title, h.CartridgeType, h.ROMSize/1024, h.Revision)
}

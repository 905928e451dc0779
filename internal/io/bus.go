// Package io implements the memory bus. The bus owns the RAM regions
// and peripheral register state, decodes every 16-bit address to its
// target, and advances the scheduler clock by one memory-access quantum
// (4 T-cycles) on each access. All elapsed time in the machine flows
// from these accesses.
package io

import (
	"io"

	"github.com/retroenv/retrogolib/log"
	"github.com/thelolagemann/go-dmg/internal/apu"
	"github.com/thelolagemann/go-dmg/internal/cartridge"
	"github.com/thelolagemann/go-dmg/internal/interrupts"
	"github.com/thelolagemann/go-dmg/internal/io/timer"
	"github.com/thelolagemann/go-dmg/internal/ppu"
	"github.com/thelolagemann/go-dmg/internal/scheduler"
	"github.com/thelolagemann/go-dmg/internal/types"
)

// WRAMSize is the size of work RAM in bytes.
const WRAMSize = 0x2000

// HRAMSize is the size of high RAM in bytes; addresses 0xFF80 - 0xFFFE
// map onto it.
const HRAMSize = 0x80

// Bus routes memory accesses to the owning structure. It is the sole
// mutator of RAM and peripheral state: the CPU only ever calls Read and
// Write.
type Bus struct {
	// 0x0000 - 0x7FFF - cartridge ROM, read only
	Cart *cartridge.Cartridge
	// 0x8000 - 0x9FFF - video RAM, plus the LCD registers
	PPU *ppu.PPU
	// 0xFF05 - 0xFF07 - TIMA, TMA and TAC
	Timer *timer.Controller
	// 0xFF24 - 0xFF26 - NR50, NR51 and NR52
	APU *apu.APU
	// 0xFF0F / 0xFFFF - interrupt flag and enable registers
	IRQ *interrupts.Service

	// 0xC000 - 0xDFFF - work RAM
	wram [WRAMSize]uint8
	// 0xFF80 - 0xFFFE - high RAM
	hram [HRAMSize]uint8

	sched  *scheduler.Scheduler
	serial io.Writer
	logger *log.Logger
}

// NewBus wires a bus to the cartridge and scheduler it is driven by,
// creating the peripherals it owns. Bytes written to the SB register
// are forwarded to serial; pass nil to discard them.
func NewBus(cart *cartridge.Cartridge, sched *scheduler.Scheduler, irq *interrupts.Service, serial io.Writer, logger *log.Logger) *Bus {
	if serial == nil {
		serial = io.Discard
	}

	return &Bus{
		Cart:   cart,
		PPU:    ppu.NewPPU(),
		Timer:  timer.NewController(sched, irq),
		APU:    apu.NewAPU(),
		IRQ:    irq,
		sched:  sched,
		serial: serial,
		logger: logger,
	}
}

// Read returns the byte at the given address. The scheduler advances
// one quantum before the address is decoded, so a peripheral event due
// on this very access fires before its state is observed. Unmapped
// addresses read as open bus (0xFF) and are diagnosed.
func (b *Bus) Read(address uint16) uint8 {
	b.sched.Step()

	switch {
	case address <= 0x7FFF:
		return b.Cart.Read(address)
	case address >= 0x8000 && address <= 0x9FFF:
		return b.PPU.ReadVRAM(address - 0x8000)
	case address >= 0xC000 && address <= 0xDFFF:
		return b.wram[address-0xC000]
	case address >= 0xFF80 && address <= 0xFFFE:
		return b.hram[address-0xFF80]
	}

	switch address {
	case types.TIMA, types.TMA, types.TAC:
		return b.Timer.Read(address)
	case types.IF:
		return b.IRQ.Flag
	case types.NR50, types.NR51, types.NR52:
		return b.APU.Read(address)
	case types.LCDC, types.SCY, types.SCX, types.LY, types.BGP:
		return b.PPU.Read(address)
	case types.IE:
		return b.IRQ.Enable
	}

	b.logger.Warn("unhandled read", log.Hex("address", address))
	return 0xFF
}

// Write stores the byte at the given address. The mutation lands first
// and the scheduler advances one quantum after it, mirroring the read
// path's ordering around the decode. Writes to unmapped or read-only
// addresses are discarded and diagnosed.
func (b *Bus) Write(address uint16, value uint8) {
	handled := true

	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		b.PPU.WriteVRAM(address-0x8000, value)
	case address >= 0xC000 && address <= 0xDFFF:
		b.wram[address-0xC000] = value
	case address >= 0xFF80 && address <= 0xFFFE:
		b.hram[address-0xFF80] = value
	default:
		switch address {
		case types.SB:
			// serial data is forwarded to the sink, not stored
			_, _ = b.serial.Write([]byte{value})
		case types.SC:
			// serial control: accepted and discarded, so test ROMs can
			// drive the SB/SC convention without noise
		case types.TIMA, types.TMA, types.TAC:
			b.Timer.Write(address, value)
		case types.IF:
			b.IRQ.Flag = value
		case types.NR50, types.NR51, types.NR52:
			b.APU.Write(address, value)
		case types.LCDC, types.SCY, types.SCX, types.BGP:
			b.PPU.Write(address, value)
		case types.IE:
			b.IRQ.Enable = value
		default:
			handled = false
		}
	}

	b.sched.Step()

	if !handled {
		b.logger.Warn("unhandled write", log.Hex("address", address), log.Hex("data", value))
	}
}

// Cycle returns the scheduler's T-cycle clock. The CPU measures each
// instruction's cost as the clock delta across its bus traffic.
func (b *Bus) Cycle() uint64 {
	return b.sched.Cycle()
}

// Reset restores the bus-owned state to power on: RAM cleared and every
// peripheral back to its reset registers. The scheduler itself belongs
// to the composition root and is reset there.
func (b *Bus) Reset() {
	b.wram = [WRAMSize]uint8{}
	b.hram = [HRAMSize]uint8{}
	b.Timer.Reset()
	b.APU.Reset()
	b.PPU.Reset()
	b.IRQ.Reset()
}

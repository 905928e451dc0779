// Package dmg assembles the SM83 core, bus, scheduler and peripherals
// into a steppable Game Boy system.
package dmg

import (
	stdio "io"

	"github.com/retroenv/retrogolib/log"
	"github.com/thelolagemann/go-dmg/internal/cartridge"
	"github.com/thelolagemann/go-dmg/internal/cpu"
	"github.com/thelolagemann/go-dmg/internal/interrupts"
	"github.com/thelolagemann/go-dmg/internal/io"
	"github.com/thelolagemann/go-dmg/internal/scheduler"
)

// ClockSpeed is the machine clock in T-cycles per second.
const ClockSpeed = 4194304 // 4.194304 MHz

// System owns one full machine: register core, bus, peripherals and
// the clock they all hang off.
type System struct {
	CPU *cpu.CPU
	Bus *io.Bus

	sched  *scheduler.Scheduler
	irq    *interrupts.Service
	logger *log.Logger
	serial stdio.Writer
}

// New wires a System around the given ROM image and puts it in the
// post-boot state, ready to fetch from the cartridge entry point.
func New(rom []byte, opts ...Opt) *System {
	s := &System{
		sched:  scheduler.NewScheduler(),
		irq:    interrupts.NewService(),
		logger: log.NewWithConfig(log.DefaultConfig()),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.Bus = io.NewBus(cartridge.NewCartridge(rom), s.sched, s.irq, s.serial, s.logger)
	s.CPU = cpu.NewCPU(s.Bus)
	s.Reset()

	return s
}

// Step executes a single instruction, returning the T-cycles it
// consumed. An opcode the core does not implement surfaces as an
// IllegalOpcodeError from the cpu package; the system is left intact
// and further steps would refetch from the advanced program counter.
func (s *System) Step() (uint64, error) {
	return s.CPU.Step()
}

// Reset returns the whole machine to power-on: clock at zero, no
// pending events, peripherals at their reset registers and the CPU in
// the post-boot state. The ROM image is untouched.
func (s *System) Reset() {
	s.sched.Reset()
	s.Bus.Reset()
	s.CPU.Reset()
}

// Package interrupts models the interrupt request and enable registers.
// Interrupt servicing is not performed at this stage: the CPU decodes EI
// and DI as stubs, so the two registers are plain storage that
// peripherals set bits in and software inspects.
package interrupts

import (
	"github.com/thelolagemann/go-dmg/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2), requested when the
	// timer counter overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4).
	JoypadFlag = types.Bit4
)

// Service owns the interrupt flag (types.IF) and interrupt enable
// (types.IE) registers. Peripherals assert request bits through Request;
// the bus reads and writes both registers as ordinary bytes. Single
// threaded execution keeps the two write paths apart.
type Service struct {
	Flag   uint8 // interrupt flag (types.IF)
	Enable uint8 // interrupt enable (types.IE)
}

// NewService returns a new Service with no interrupts requested or
// enabled.
func NewService() *Service {
	return &Service{}
}

// Request requests the specified interrupt, by setting the
// corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Reset clears both registers to their power-on state.
func (s *Service) Reset() {
	s.Flag = 0
	s.Enable = 0
}

// Package timer implements the programmable timer. The counter does
// not tick on its own: each increment is a scheduler event, and the
// expiry handler keeps the chain alive by scheduling the next period
// while the timer stays enabled.
package timer

import (
	"fmt"

	"github.com/thelolagemann/go-dmg/internal/interrupts"
	"github.com/thelolagemann/go-dmg/internal/scheduler"
	"github.com/thelolagemann/go-dmg/internal/types"
)

// periods holds the selectable tick periods in T-cycles, indexed by the
// clock-select bits of TAC.
var periods = [4]uint64{1024, 16, 64, 256}

// Controller is the timer peripheral. It has three registers:
//
//   - TIMA: the counter, incremented once per selected period while the
//     timer is enabled, reloaded from TMA when it overflows.
//   - TMA: the modulo loaded into TIMA on overflow.
//   - TAC: the control register; bit 2 enables the timer and bits 0-1
//     select the period.
type Controller struct {
	tima uint8
	tma  uint8
	tac  uint8

	sched *scheduler.Scheduler
	irq   *interrupts.Service
}

// NewController returns a Controller wired to the given scheduler and
// interrupt service. The expiry handler is registered here, once;
// scheduling is driven entirely by TAC writes and the handler itself.
func NewController(sched *scheduler.Scheduler, irq *interrupts.Service) *Controller {
	c := &Controller{
		sched: sched,
		irq:   irq,
	}
	sched.RegisterEvent(scheduler.TimerTick, c.tick)

	return c
}

// Read returns the value of the register at the given address.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.TIMA:
		return c.tima
	case types.TMA:
		return c.tma
	case types.TAC:
		return c.tac
	}

	panic(fmt.Sprintf("timer: illegal read from address 0x%04X", address))
}

// Write writes the value to the register at the given address. TAC
// writes go through the enable-transition logic rather than a raw
// store.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.TIMA:
		c.tima = value
	case types.TMA:
		c.tma = value
	case types.TAC:
		c.handleControl(value)
	default:
		panic(fmt.Sprintf("timer: illegal write to address 0x%04X", address))
	}
}

// Reset restores the power-on register state: timer disabled, counter
// and modulo cleared. Any queued tick is expected to have been dropped
// by the scheduler's own reset.
func (c *Controller) Reset() {
	c.tac = 0xF8
	c.tima = 0x00
	c.tma = 0x00
}

// handleControl applies a TAC write. Only the low 3 bits are replaced;
// the remaining bits keep their previous value. Enabling from a
// disabled state schedules the first tick of the newly selected period.
// Disabling does not cancel an in-flight tick: it fires once more, and
// the handler re-schedules only while the enable bit is set.
func (c *Controller) handleControl(value uint8) {
	if c.tac&types.Bit2 == 0 && value&types.Bit2 != 0 {
		c.sched.ScheduleEvent(scheduler.TimerTick, periods[value&0x03])
	}

	c.tac = (c.tac &^ 0x07) | (value & 0x07)
}

// tick handles one period expiry. On overflow TIMA reloads from TMA and
// the timer interrupt is requested; otherwise TIMA increments. The next
// tick is scheduled only while the timer is still enabled, making the
// chain self-perpetuating rather than a recurring scheduler primitive.
func (c *Controller) tick() {
	if c.tima == 0xFF {
		c.tima = c.tma
		c.irq.Request(interrupts.TimerFlag)
	} else {
		c.tima++
	}

	if c.tac&types.Bit2 != 0 {
		c.sched.ScheduleEvent(scheduler.TimerTick, periods[c.tac&0x03])
	}
}

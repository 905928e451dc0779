package timer

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/thelolagemann/go-dmg/internal/interrupts"
	"github.com/thelolagemann/go-dmg/internal/scheduler"
	"github.com/thelolagemann/go-dmg/internal/types"
)

func newTestController() (*Controller, *scheduler.Scheduler, *interrupts.Service) {
	sched := scheduler.NewScheduler()
	irq := interrupts.NewService()
	c := NewController(sched, irq)
	c.Reset()

	return c, sched, irq
}

func TestControllerReset(t *testing.T) {
	c, _, _ := newTestController()

	assert.Equal(t, uint8(0xF8), c.Read(types.TAC))
	assert.Equal(t, uint8(0x00), c.Read(types.TIMA))
	assert.Equal(t, uint8(0x00), c.Read(types.TMA))
}

func TestControllerOverflowReloadsAndRequestsInterrupt(t *testing.T) {
	c, sched, irq := newTestController()

	c.Write(types.TMA, 0x05)
	c.Write(types.TIMA, 0xFF)
	c.Write(types.TAC, 0x05) // enabled, 16-cycle period

	// the period is 16 T-cycles: four steps to the expiry
	for i := 0; i < 4; i++ {
		assert.Equal(t, uint8(0xFF), c.Read(types.TIMA))
		sched.Step()
	}

	assert.Equal(t, uint8(0x05), c.Read(types.TIMA))
	assert.True(t, irq.Flag&interrupts.TimerFlag != 0)
}

func TestControllerTickCadence(t *testing.T) {
	c, sched, _ := newTestController()

	c.Write(types.TAC, 0x06) // enabled, 64-cycle period

	for i := 0; i < 16; i++ {
		sched.Step()
	}
	assert.Equal(t, uint8(0x01), c.Read(types.TIMA))

	for i := 0; i < 16; i++ {
		sched.Step()
	}
	assert.Equal(t, uint8(0x02), c.Read(types.TIMA))
}

func TestControllerDisabledTimerDoesNotTick(t *testing.T) {
	c, sched, _ := newTestController()

	for i := 0; i < 512; i++ {
		sched.Step()
	}
	assert.Equal(t, uint8(0x00), c.Read(types.TIMA))
	assert.Equal(t, 0, sched.Len())
}

func TestControllerDisableLeavesInFlightTick(t *testing.T) {
	c, sched, _ := newTestController()

	c.Write(types.TAC, 0x05) // enabled, 16-cycle period
	assert.Equal(t, 1, sched.Len())

	sched.Step()
	c.Write(types.TAC, 0x01) // disabled again, period unchanged

	// the queued tick still fires once...
	for i := 0; i < 3; i++ {
		sched.Step()
	}
	assert.Equal(t, uint8(0x01), c.Read(types.TIMA))

	// ...but is not re-scheduled
	assert.Equal(t, 0, sched.Len())
	for i := 0; i < 8; i++ {
		sched.Step()
	}
	assert.Equal(t, uint8(0x01), c.Read(types.TIMA))
}

func TestControllerControlWriteReplacesLowBitsOnly(t *testing.T) {
	c, _, _ := newTestController()

	c.Write(types.TAC, 0x05)
	assert.Equal(t, uint8(0xFD), c.Read(types.TAC))

	c.Write(types.TAC, 0x00)
	assert.Equal(t, uint8(0xF8), c.Read(types.TAC))
}

func TestControllerEnableWhileEnabledDoesNotDoubleSchedule(t *testing.T) {
	c, sched, _ := newTestController()

	c.Write(types.TAC, 0x05)
	assert.Equal(t, 1, sched.Len())

	c.Write(types.TAC, 0x06)
	assert.Equal(t, 1, sched.Len())
}

func TestControllerFrequencyChangeAppliesOnReschedule(t *testing.T) {
	c, sched, _ := newTestController()

	c.Write(types.TAC, 0x05) // enabled, 16-cycle period
	for i := 0; i < 4; i++ {
		sched.Step()
	}
	assert.Equal(t, uint8(0x01), c.Read(types.TIMA))

	c.Write(types.TAC, 0x06) // still enabled, 64-cycle period

	// the next tick was queued with the old period
	for i := 0; i < 4; i++ {
		sched.Step()
	}
	assert.Equal(t, uint8(0x02), c.Read(types.TIMA))

	// ticks after that follow the new period
	for i := 0; i < 16; i++ {
		sched.Step()
	}
	assert.Equal(t, uint8(0x03), c.Read(types.TIMA))
}

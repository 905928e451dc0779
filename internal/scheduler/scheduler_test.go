package scheduler

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSchedulerStepAdvancesOneQuantum(t *testing.T) {
	s := NewScheduler()
	assert.Equal(t, uint64(0), s.Cycle())

	s.Step()
	assert.Equal(t, uint64(4), s.Cycle())

	s.Step()
	assert.Equal(t, uint64(8), s.Cycle())
}

func TestSchedulerFiresInExpiryOrder(t *testing.T) {
	s := NewScheduler()

	var fired []uint64
	s.RegisterEvent(TimerTick, func() {
		fired = append(fired, s.Cycle())
	})

	// 50, 10 and 30 quanta out of order; expiries land on the 4-cycle
	// grid Step advances on.
	s.ScheduleEvent(TimerTick, 200)
	s.ScheduleEvent(TimerTick, 40)
	s.ScheduleEvent(TimerTick, 120)
	assert.Equal(t, 3, s.Len())

	for i := 0; i < 60; i++ {
		before := len(fired)
		s.Step()
		assert.True(t, len(fired)-before <= 1)
	}

	assert.Equal(t, 3, len(fired))
	assert.Equal(t, uint64(40), fired[0])
	assert.Equal(t, uint64(120), fired[1])
	assert.Equal(t, uint64(200), fired[2])
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerFiresOnExactCycleOnly(t *testing.T) {
	s := NewScheduler()

	fired := 0
	s.RegisterEvent(TimerTick, func() { fired++ })
	s.ScheduleEvent(TimerTick, 8)

	s.Step()
	assert.Equal(t, 0, fired)

	s.Step()
	assert.Equal(t, 1, fired)

	s.Step()
	assert.Equal(t, 1, fired)
}

func TestSchedulerOrderSurvivesShuffledInserts(t *testing.T) {
	s := NewScheduler()

	var fired []uint64
	s.RegisterEvent(TimerTick, func() {
		fired = append(fired, s.Cycle())
	})

	for _, cycles := range []uint64{32, 4, 28, 8, 24, 12, 20, 16} {
		s.ScheduleEvent(TimerTick, cycles)
	}

	for i := 0; i < 8; i++ {
		s.Step()
	}

	assert.Equal(t, 8, len(fired))
	for i, cycle := range fired {
		assert.Equal(t, uint64(i+1)*4, cycle)
	}
}

func TestSchedulerCapacityExhaustionPanics(t *testing.T) {
	s := NewScheduler()
	s.RegisterEvent(TimerTick, func() {})

	for i := uint64(1); i <= Capacity; i++ {
		s.ScheduleEvent(TimerTick, i*4)
	}
	assert.Equal(t, Capacity, s.Len())

	defer func() {
		assert.True(t, recover() != nil)
	}()
	s.ScheduleEvent(TimerTick, 44)
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler()

	fired := 0
	s.RegisterEvent(TimerTick, func() { fired++ })
	s.ScheduleEvent(TimerTick, 4)
	s.Step()
	assert.Equal(t, 1, fired)

	s.ScheduleEvent(TimerTick, 4)
	s.Reset()
	assert.Equal(t, uint64(0), s.Cycle())
	assert.Equal(t, 0, s.Len())

	// pending events are gone, registered handlers are not
	s.Step()
	assert.Equal(t, 1, fired)

	s.ScheduleEvent(TimerTick, 8)
	s.Step()
	s.Step()
	assert.Equal(t, 2, fired)
}

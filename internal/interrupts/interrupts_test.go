package interrupts

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestServiceRequestSetsFlagBits(t *testing.T) {
	s := NewService()

	s.Request(TimerFlag)
	assert.Equal(t, uint8(0x04), s.Flag)

	s.Request(VBlankFlag)
	assert.Equal(t, uint8(0x05), s.Flag)

	// requesting an already pending interrupt changes nothing
	s.Request(TimerFlag)
	assert.Equal(t, uint8(0x05), s.Flag)
}

func TestServiceReset(t *testing.T) {
	s := NewService()
	s.Request(SerialFlag)
	s.Enable = 0xFF

	s.Reset()
	assert.Equal(t, uint8(0), s.Flag)
	assert.Equal(t, uint8(0), s.Enable)
}

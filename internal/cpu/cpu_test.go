package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/thelolagemann/go-dmg/internal/cartridge"
	"github.com/thelolagemann/go-dmg/internal/interrupts"
	"github.com/thelolagemann/go-dmg/internal/io"
	"github.com/thelolagemann/go-dmg/internal/scheduler"
)

// newTestCPU builds a CPU over a full bus, with the program placed at
// the cartridge entry point.
func newTestCPU(t *testing.T, program ...uint8) *CPU {
	t.Helper()

	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], program)

	b := io.NewBus(cartridge.NewCartridge(rom), scheduler.NewScheduler(), interrupts.NewService(), nil, log.NewTestLogger(t))
	b.Reset()

	return NewCPU(b)
}

// step executes one instruction that is expected to decode.
func step(t *testing.T, c *CPU) uint64 {
	t.Helper()

	cycles, err := c.Step()
	assert.NoError(t, err)
	return cycles
}

func assertPostBootState(t *testing.T, c *CPU) {
	t.Helper()

	assert.Equal(t, uint16(0x01B0), c.AF.Uint16())
	assert.Equal(t, uint16(0x0013), c.BC.Uint16())
	assert.Equal(t, uint16(0x00D8), c.DE.Uint16())
	assert.Equal(t, uint16(0x014D), c.HL.Uint16())
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.Equal(t, uint16(0x0100), c.PC)
}

func TestNewCPUPostBootState(t *testing.T) {
	assertPostBootState(t, newTestCPU(t))
}

func TestResetIsIdempotent(t *testing.T) {
	c := newTestCPU(t)

	c.AF.SetUint16(0xDEAD)
	c.BC.SetUint16(0xBEEF)
	c.DE.SetUint16(0xCAFE)
	c.HL.SetUint16(0xF00D)
	c.SP = 0x1234
	c.PC = 0x4321

	c.Reset()
	assertPostBootState(t, c)

	c.Reset()
	assertPostBootState(t, c)
}

func TestRegisterPair(t *testing.T) {
	var r RegisterPair
	r.SetUint16(0x1234)

	assert.Equal(t, uint8(0x12), r.Hi)
	assert.Equal(t, uint8(0x34), r.Lo)
	assert.Equal(t, uint16(0x1234), r.Uint16())
}

func TestStepNOP(t *testing.T) {
	c := newTestCPU(t, 0x00)

	assert.Equal(t, uint64(4), step(t, c))
	assert.Equal(t, uint16(0x0101), c.PC)
}

func TestStepIllegalOpcode(t *testing.T) {
	for _, opcode := range []uint8{0x10, 0x76, 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		t.Run(fmt.Sprintf("0x%02X", opcode), func(t *testing.T) {
			c := newTestCPU(t, opcode)

			cycles, err := c.Step()
			assert.Equal(t, uint64(0), cycles)
			assert.Error(t, err)

			var illegal IllegalOpcodeError
			assert.True(t, errors.As(err, &illegal))
			assert.Equal(t, opcode, illegal.Opcode)
			assert.Equal(t, uint16(0x0100), illegal.PC)
			assert.True(t, errors.Is(err, ErrIllegalOpcode))
		})
	}
}

func TestIllegalOpcodeErrorMessage(t *testing.T) {
	err := IllegalOpcodeError{Opcode: 0xED, PC: 0x0100}
	assert.Equal(t, "illegal opcode 0xED at 0x0100", err.Error())
}

func TestStepCycles(t *testing.T) {
	// every bus access costs 4 T-cycles and nothing else advances the
	// clock. The post-boot flag register has the zero and carry flags
	// set, which decides the conditional cases below.
	tests := []struct {
		name    string
		program []uint8
		want    uint64
	}{
		{"NOP", []uint8{0x00}, 4},
		{"LD B, d8", []uint8{0x06, 0x42}, 8},
		{"LD BC, d16", []uint8{0x01, 0x34, 0x12}, 12},
		{"LD (a16), SP", []uint8{0x08, 0x00, 0xC0}, 20},
		{"INC BC", []uint8{0x03}, 4},
		{"INC B", []uint8{0x04}, 4},
		{"ADD HL, BC", []uint8{0x09}, 4},
		{"LD A, (BC)", []uint8{0x0A}, 8},
		{"JR r8", []uint8{0x18, 0x05}, 8},
		{"JR NZ not taken", []uint8{0x20, 0x05}, 8},
		{"JP a16", []uint8{0xC3, 0x00, 0x02}, 12},
		{"JP NZ not taken", []uint8{0xC2, 0x00, 0x02}, 12},
		{"JP HL", []uint8{0xE9}, 4},
		{"CALL a16", []uint8{0xCD, 0x00, 0x02}, 20},
		{"CALL NZ not taken", []uint8{0xC4, 0x00, 0x02}, 12},
		{"RET", []uint8{0xC9}, 12},
		{"RET Z taken", []uint8{0xC8}, 12},
		{"RET NZ not taken", []uint8{0xC0}, 4},
		{"PUSH BC", []uint8{0xC5}, 12},
		{"POP BC", []uint8{0xC1}, 12},
		{"RST 7", []uint8{0xFF}, 12},
		{"LDH (a8), A", []uint8{0xE0, 0x80}, 12},
		{"LDH A, (a8)", []uint8{0xF0, 0x80}, 12},
		{"LD A, (a16)", []uint8{0xFA, 0x00, 0xC0}, 16},
		{"ADD SP, r8", []uint8{0xE8, 0x05}, 8},
		{"CB SWAP A", []uint8{0xCB, 0x37}, 8},
		{"CB BIT 0, (HL)", []uint8{0xCB, 0x46}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t, tt.program...)
			assert.Equal(t, tt.want, step(t, c))
		})
	}
}

func TestPushLayout(t *testing.T) {
	c := newTestCPU(t, 0xC5) // PUSH BC
	c.BC.SetUint16(0x1234)

	step(t, c)
	assert.Equal(t, uint16(0xFFFC), c.SP)
	assert.Equal(t, uint8(0x12), c.b.Read(0xFFFD))
	assert.Equal(t, uint8(0x34), c.b.Read(0xFFFC))
}

func TestPushPopRoundTrip(t *testing.T) {
	c := newTestCPU(t, 0xC5, 0xD1) // PUSH BC / POP DE
	c.BC.SetUint16(0xBEEF)
	sp := c.SP

	step(t, c)
	step(t, c)

	assert.Equal(t, uint16(0xBEEF), c.DE.Uint16())
	assert.Equal(t, sp, c.SP)
}

func TestPopAFMasksLowNibble(t *testing.T) {
	// LD BC, 0x12FF / PUSH BC / POP AF: the low nibble of F never
	// holds state, whatever the stack says
	c := newTestCPU(t, 0x01, 0xFF, 0x12, 0xC5, 0xF1)

	step(t, c)
	step(t, c)
	step(t, c)

	assert.Equal(t, uint8(0x12), c.AF.Hi)
	assert.Equal(t, uint8(0xF0), c.AF.Lo)
}

func TestPushAFPopRoundTrip(t *testing.T) {
	c := newTestCPU(t, 0xF5, 0xC1) // PUSH AF / POP BC

	step(t, c)
	step(t, c)

	assert.Equal(t, uint16(0x01B0), c.BC.Uint16())
}

// Package types holds the hardware constants shared by the other
// packages: bit masks and the addresses of the memory-mapped registers
// implemented by the bus.
package types

const (
	Bit0 = 1 << iota // 0b0000_0001
	Bit1             // 0b0000_0010
	Bit2             // 0b0000_0100
	Bit3             // 0b0000_1000
	Bit4             // 0b0001_0000
	Bit5             // 0b0010_0000
	Bit6             // 0b0100_0000
	Bit7             // 0b1000_0000
)

// HardwareAddress is the address of a memory-mapped hardware register.
// The hardware registers live at 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// SB is the serial transfer data register. A byte written here is
	// forwarded to the serial output sink rather than stored.
	SB HardwareAddress = 0xFF01
	// SC is the serial transfer control register. Writes are accepted
	// and discarded; the serial port never transfers on its own here.
	SC HardwareAddress = 0xFF02
	// TIMA is the timer counter register. It is incremented at the rate
	// selected by TAC and reloaded from TMA when it overflows.
	TIMA HardwareAddress = 0xFF05
	// TMA is the timer modulo register, loaded into TIMA on overflow.
	TMA HardwareAddress = 0xFF06
	// TAC is the timer control register.
	//
	//  Bit 2:   Timer Enable
	//  Bit 1-0: Clock Select (0=1024, 1=16, 2=64, 3=256 T-cycles)
	TAC HardwareAddress = 0xFF07
	// IF is the interrupt flag register.
	//
	//  Bit 0: V-Blank Interrupt Request
	//  Bit 1: LCD STAT Interrupt Request
	//  Bit 2: Timer Interrupt Request
	//  Bit 3: Serial Interrupt Request
	//  Bit 4: Joypad Interrupt Request
	IF HardwareAddress = 0xFF0F

	// NR50 controls the master volume and VIN panning.
	NR50 HardwareAddress = 0xFF24
	// NR51 selects which channels are output to which terminal.
	NR51 HardwareAddress = 0xFF25
	// NR52 is the sound on/off register.
	NR52 HardwareAddress = 0xFF26

	// LCDC is the LCD control register.
	LCDC HardwareAddress = 0xFF40
	// SCY is the background viewport Y scroll register.
	SCY HardwareAddress = 0xFF42
	// SCX is the background viewport X scroll register.
	SCX HardwareAddress = 0xFF43
	// LY reports the scanline currently being drawn. Read only.
	LY HardwareAddress = 0xFF44
	// BGP is the background palette register.
	BGP HardwareAddress = 0xFF47

	// IE is the interrupt enable register.
	IE HardwareAddress = 0xFFFF
)

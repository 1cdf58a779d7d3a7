// Package interrupts implements the Game Boy's interrupt request/enable
// registers and priority-ordered vector dispatch. It is shared by the CPU,
// PPU, timer and joypad so that none of those components needs a raw
// back-pointer into another — each simply holds a *Service and calls
// Request.
package interrupts

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0), requested every
	// time the PPU enters VBlank mode.
	VBlankFlag = uint8(1 << 0)
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag = uint8(1 << 1)
	// TimerFlag is the Timer interrupt flag (bit 2), requested on TIMA
	// overflow.
	TimerFlag = uint8(1 << 2)
	// SerialFlag is the Serial interrupt flag (bit 3). Never requested by
	// this module; serial link is out of scope.
	SerialFlag = uint8(1 << 3)
	// JoypadFlag is the Joypad interrupt flag (bit 4), requested on any
	// key released->pressed transition.
	JoypadFlag = uint8(1 << 4)
)

// vectors holds the interrupt service routine address for each flag bit,
// in priority order (index 0 = highest priority).
var vectors = [5]uint16{0x0040, 0x0048, 0x0050, 0x0058, 0x0060}

// Service holds the IF (Flag) and IE (Enable) registers and resolves the
// highest-priority pending, enabled interrupt.
type Service struct {
	Flag   uint8 // IF, 0xFF0F
	Enable uint8 // IE, 0xFFFF

	// IME is the master interrupt-enable flip-flop. It lives here rather
	// than on the CPU so that Vector/Pending and the EI/DI/RETI state
	// machine that drives it share one source of truth.
	IME bool
}

// NewService returns a Service with both registers cleared.
func NewService() *Service {
	return &Service{}
}

// Request ORs flag into IF. Multiple sources may be requested in the same
// step; each is serviced on its own instruction boundary.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Pending reports whether any enabled interrupt is currently requested,
// regardless of IME. The CPU uses this to decide whether HALT should be
// released even when interrupts are globally disabled.
func (s *Service) Pending() bool {
	return s.Enable&s.Flag != 0
}

// Vector clears and returns the vector address of the highest-priority
// pending+enabled interrupt, or (0, false) if none is pending.
func (s *Service) Vector() (uint16, bool) {
	for i := 0; i < 5; i++ {
		bit := uint8(1 << i)
		if s.Flag&s.Enable&bit != 0 {
			s.Flag &^= bit
			return vectors[i], true
		}
	}
	return 0, false
}

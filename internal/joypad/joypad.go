// Package joypad folds the 8 Game Boy key states into the P1/JOYP
// register, gated by the two selector bits the ROM writes to 0xFF00.
package joypad

import "github.com/gomeboy/core/internal/interrupts"

// Button identifies one of the eight joypad lines.
type Button int

const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// selectorMask is the only part of a JOYP write original_source/src/joypad.cpp's
// OnJOYP actually stores; bits 0-3 and 6-7 are derived, not stored.
const selectorMask = 0x30

// Joypad holds the 8 key states and the P1 selector bits.
type Joypad struct {
	keys     [8]bool
	selector uint8 // bits 4-5 as last written, bit layout preserved

	irq *interrupts.Service
}

// New returns a Joypad with all keys released and both selector bits set
// (neither buttons nor directions selected).
func New(irq *interrupts.Service) *Joypad {
	return &Joypad{irq: irq, selector: selectorMask}
}

// Press marks b as pressed. A released->pressed transition requests the
// Joypad interrupt; STOP-clearing is the CPU's responsibility and is
// triggered by the caller observing the same transition (spec.md §4.5).
func (j *Joypad) Press(b Button) bool {
	wasReleased := !j.keys[b]
	j.keys[b] = true
	if wasReleased {
		j.irq.Request(interrupts.JoypadFlag)
		return true
	}
	return false
}

// Release marks b as released.
func (j *Joypad) Release(b Button) {
	j.keys[b] = false
}

// Write stores the selector bits (4-5) of a write to 0xFF00, discarding
// the rest of the written value.
func (j *Joypad) Write(value uint8) {
	j.selector = value & selectorMask
}

// Read returns the current value of P1/JOYP: selector bits as last
// written, top two bits always 1, and the low nibble derived from
// whichever key group is selected (active-low).
func (j *Joypad) Read() uint8 {
	result := uint8(0xC0) | j.selector

	buttonsSelected := j.selector&0x20 == 0
	directionsSelected := j.selector&0x10 == 0

	switch {
	case buttonsSelected:
		result |= lowNibble(!j.keys[A], !j.keys[B], !j.keys[Select], !j.keys[Start])
	case directionsSelected:
		result |= lowNibble(!j.keys[Right], !j.keys[Left], !j.keys[Up], !j.keys[Down])
	default:
		result |= 0x0F
	}

	return result
}

func lowNibble(b0, b1, b2, b3 bool) uint8 {
	var n uint8
	if b0 {
		n |= 0x01
	}
	if b1 {
		n |= 0x02
	}
	if b2 {
		n |= 0x04
	}
	if b3 {
		n |= 0x08
	}
	return n
}

// Package cpu implements the Sharp LR35902 instruction set: fetch/decode/
// execute, the register file and flags, IME/HALT/STOP handling, and
// interrupt dispatch (spec.md §4.1).
package cpu

import (
	"fmt"

	"github.com/gomeboy/core/internal/interrupts"
	"github.com/gomeboy/core/pkg/log"
)

// ClockSpeed is the Game Boy's nominal T-cycle clock, for hosts that want
// to pace emulated time against wall-clock.
const ClockSpeed = 4194304

// Bus is what the CPU needs from the memory map to fetch instructions and
// perform loads/stores.
type Bus interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, v uint8)
}

// imeState names the five-state deferred interrupt-master-enable machine
// spec.md §4.1 describes: EI/DI schedule a write that lands one Step
// later, rather than taking effect immediately.
type imeState uint8

const (
	imeNone imeState = iota
	imeWaitOn
	imeArmOn
	imeWaitOff
	imeArmOff
)

// UnimplementedOpcode reports a fetch of one of the eleven byte values
// the Sharp LR35902 leaves undefined (spec.md §7).
type UnimplementedOpcode struct {
	Opcode uint8
	PC     uint16
}

func (e *UnimplementedOpcode) Error() string {
	return fmt.Sprintf("cpu: illegal opcode %#02x at pc=%#04x", e.Opcode, e.PC)
}

// CPU is the Sharp LR35902 instruction interpreter.
type CPU struct {
	Registers
	PC, SP uint16

	bus Bus
	irq *interrupts.Service
	log log.Logger

	halted  bool
	stopped bool

	imeState imeState

	cycles int
}

// New returns a CPU wired to bus and irq, with registers, PC and SP reset
// to their post-boot-ROM values (spec.md §3).
func New(bus Bus, irq *interrupts.Service, logger log.Logger) *CPU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	c := &CPU{bus: bus, irq: irq, log: logger}
	c.Registers.reset()
	c.PC = 0x0100
	c.SP = 0xFFFE
	return c
}

// Halted reports whether the CPU is idling in HALT.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the CPU is idling in STOP.
func (c *CPU) Stopped() bool { return c.stopped }

// ClearStop wakes the CPU from STOP. Real hardware does this on any key
// press; the emulator's joypad package has no back-reference to the CPU,
// so the top-level wiring calls this when it observes a released->pressed
// edge (spec.md §9 "Back-references").
func (c *CPU) ClearStop() { c.stopped = false }

// Step fetches and executes one instruction, or one idle tick while
// halted/stopped, or one interrupt dispatch, and returns the elapsed
// T-cycles (spec.md §4.1).
func (c *CPU) Step() (int, error) {
	c.cycles = 0
	c.advanceIME()

	if c.stopped {
		c.tick(4)
		return c.cycles, nil
	}

	if c.irq.IME && c.irq.Pending() {
		c.serviceInterrupt()
		return c.cycles, nil
	}

	if c.halted {
		if c.irq.Pending() {
			c.halted = false
		}
		c.tick(4)
		return c.cycles, nil
	}

	opcode := c.fetch()
	if err := c.execute(opcode); err != nil {
		return c.cycles, err
	}
	return c.cycles, nil
}

// advanceIME moves the deferred EI/DI write forward by one Step. A
// Wait* state reaches its Arm* counterpart and fires within the same
// call, giving EI/DI their documented one-instruction delay.
func (c *CPU) advanceIME() {
	switch c.imeState {
	case imeWaitOn:
		c.imeState = imeArmOn
	case imeWaitOff:
		c.imeState = imeArmOff
	}
	switch c.imeState {
	case imeArmOn:
		c.irq.IME = true
		c.imeState = imeNone
	case imeArmOff:
		c.irq.IME = false
		c.imeState = imeNone
	}
}

func (c *CPU) serviceInterrupt() {
	c.halted = false

	vector, ok := c.irq.Vector()
	if !ok {
		return
	}

	c.tick(4)
	c.tick(4)
	c.push(uint8(c.PC>>8), uint8(c.PC))
	c.tick(4)

	c.irq.IME = false
	c.PC = vector
}

func (c *CPU) fetch() uint8 {
	v := c.readByte(c.PC)
	c.PC++
	return v
}

func (c *CPU) tick(n int) { c.cycles += n }

func (c *CPU) readByte(addr uint16) uint8 {
	c.tick(4)
	return c.bus.ReadByte(addr)
}

func (c *CPU) writeByte(addr uint16, v uint8) {
	c.tick(4)
	c.bus.WriteByte(addr, v)
}

func (c *CPU) push(hi, lo uint8) {
	c.SP--
	c.writeByte(c.SP, hi)
	c.SP--
	c.writeByte(c.SP, lo)
}

func (c *CPU) pop() (hi, lo uint8) {
	lo = c.readByte(c.SP)
	c.SP++
	hi = c.readByte(c.SP)
	c.SP++
	return
}

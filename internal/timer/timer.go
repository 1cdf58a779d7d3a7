// Package timer implements the Game Boy's DIV/TIMA/TMA/TAC divider and
// timer registers using the simple cycle-accumulator model spec.md §4.1
// describes: two counters increment by the CPU's last-instruction cycle
// count, and DIV/TIMA advance whenever those counters cross their
// thresholds.
package timer

import "github.com/gomeboy/core/internal/interrupts"

// tacFrequency maps TAC bits 1-0 to the number of cycles between TIMA
// increments.
var tacFrequency = [4]int{1024, 16, 64, 256}

// Controller owns DIV/TIMA/TMA/TAC and requests the Timer interrupt on
// TIMA overflow.
type Controller struct {
	div  uint8
	tima uint8
	tma  uint8
	tac  uint8

	divCycles   int
	timerCycles int

	irq *interrupts.Service
}

// NewController returns a Controller wired to irq for overflow requests.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{irq: irq}
}

// Tick advances the divider and timer by cycles T-cycles, the value
// returned by cpu.CPU.Step as lastInstructionCycles.
func (c *Controller) Tick(cycles int) {
	c.divCycles += cycles
	for c.divCycles >= 256 {
		c.divCycles -= 256
		c.div++
	}

	if c.tac&0x04 == 0 {
		return
	}

	freq := tacFrequency[c.tac&0x03]
	c.timerCycles += cycles
	for c.timerCycles >= freq {
		c.timerCycles -= freq
		c.tima++
		if c.tima == 0 {
			c.tima = c.tma
			c.irq.Request(interrupts.TimerFlag)
		}
	}
}

// DIV returns the current value of the DIV register (0xFF04).
func (c *Controller) DIV() uint8 { return c.div }

// ResetDIV clears DIV and its accumulator, the effect of any write to
// 0xFF04 regardless of the written value (spec.md §4.2).
func (c *Controller) ResetDIV() {
	c.div = 0
	c.divCycles = 0
}

// TIMA returns the current value of the TIMA register (0xFF05).
func (c *Controller) TIMA() uint8 { return c.tima }

// SetTIMA writes the TIMA register (0xFF05).
func (c *Controller) SetTIMA(v uint8) { c.tima = v }

// TMA returns the current value of the TMA register (0xFF06).
func (c *Controller) TMA() uint8 { return c.tma }

// SetTMA writes the TMA register (0xFF06).
func (c *Controller) SetTMA(v uint8) { c.tma = v }

// TAC returns the current value of the TAC register (0xFF07).
func (c *Controller) TAC() uint8 { return c.tac }

// SetTAC writes the TAC register (0xFF07).
func (c *Controller) SetTAC(v uint8) { c.tac = v }

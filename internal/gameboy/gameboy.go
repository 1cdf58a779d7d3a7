// Package gameboy wires the cartridge, memory bus, CPU, PPU, timer and
// joypad into a runnable Game Boy core (spec.md §9). It is the only
// package that imports every concrete component; everything below it
// talks through the narrow interfaces those components declare, so none
// of them holds a back-reference to another (spec.md §9 "Back-references").
package gameboy

import (
	"github.com/gomeboy/core/internal/cartridge"
	"github.com/gomeboy/core/internal/cpu"
	"github.com/gomeboy/core/internal/interrupts"
	"github.com/gomeboy/core/internal/joypad"
	"github.com/gomeboy/core/internal/mmu"
	"github.com/gomeboy/core/internal/ppu"
	"github.com/gomeboy/core/internal/timer"
	"github.com/gomeboy/core/pkg/log"
)

// CyclesPerFrame is the nominal T-cycle count of one 59.7 Hz video frame.
const CyclesPerFrame = 70224

// GameBoy is an assembled emulator core: a cartridge, memory bus, CPU,
// PPU, timer and joypad, all sharing one interrupts.Service.
type GameBoy struct {
	CPU    *cpu.CPU
	MMU    *mmu.MMU
	PPU    *ppu.PPU
	Timer  *timer.Controller
	Joypad *joypad.Joypad
	IRQ    *interrupts.Service

	log log.Logger
}

// New constructs a GameBoy from a ROM image and a frame sink. Both are
// required; options customize the rest of the wiring (spec.md §6's
// "host supplies the presenter" contract).
func New(rom []byte, sink ppu.FrameSink, opts ...Option) (*GameBoy, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	cart, err := cartridge.New(rom, cfg.logger)
	if err != nil {
		return nil, err
	}

	irq := interrupts.NewService()
	pad := joypad.New(irq)
	tmr := timer.NewController(irq)
	video := ppu.New(irq, sink)
	bus := mmu.New(cart, video, tmr, pad, irq, cfg.logger)
	video.AttachRegisters(bus)
	core := cpu.New(bus, irq, cfg.logger)

	return &GameBoy{
		CPU:    core,
		MMU:    bus,
		PPU:    video,
		Timer:  tmr,
		Joypad: pad,
		IRQ:    irq,
		log:    cfg.logger,
	}, nil
}

// Step executes one CPU instruction (or idle tick, or interrupt dispatch)
// and propagates its cycle cost to the PPU and timer. Cycle-accurate
// sub-instruction interleaving is explicitly out of scope (spec.md §1
// Non-goals); a component's state only advances once per Step, after the
// instruction that produced the cycle count has fully executed.
func (g *GameBoy) Step() (int, error) {
	cycles, err := g.CPU.Step()
	if err != nil {
		return cycles, err
	}
	g.PPU.Tick(cycles)
	g.Timer.Tick(cycles)
	return cycles, nil
}

// RunFrame steps the emulator until the PPU has presented one frame (its
// mode FSM transitions HBlank->VBlank), then returns. It returns early
// with an error if a Step fails.
func (g *GameBoy) RunFrame() error {
	wasVBlank := g.PPU.Mode() == ppu.ModeVBlank
	for {
		if _, err := g.Step(); err != nil {
			return err
		}
		isVBlank := g.PPU.Mode() == ppu.ModeVBlank
		if isVBlank && !wasVBlank {
			return nil
		}
		wasVBlank = isVBlank
	}
}

// PressKey presses b on the joypad. A released->pressed transition both
// requests the Joypad interrupt (handled inside joypad.Joypad.Press) and
// wakes the CPU from STOP, mirroring real hardware where any key edge
// ends STOP - the two components have no reference to each other, so
// this package, which holds both, is what wires the edge through
// (spec.md §9).
func (g *GameBoy) PressKey(b joypad.Button) {
	if g.Joypad.Press(b) {
		g.CPU.ClearStop()
	}
}

// ReleaseKey releases b on the joypad.
func (g *GameBoy) ReleaseKey(b joypad.Button) {
	g.Joypad.Release(b)
}

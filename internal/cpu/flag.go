package cpu

import "github.com/gomeboy/core/pkg/bits"

// Flag identifies a bit position within the F register, spec.md §3.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

func (c *CPU) setFlag(flag Flag)   { c.F = bits.Set(c.F, flag) }
func (c *CPU) clearFlag(flag Flag) { c.F = bits.Reset(c.F, flag) }
func (c *CPU) isFlagSet(flag Flag) bool { return bits.Test(c.F, flag) }

func (c *CPU) putFlag(flag Flag, v bool) {
	if v {
		c.setFlag(flag)
	} else {
		c.clearFlag(flag)
	}
}

// setFlags writes all four flags in one call, the shape every ALU
// helper in this package uses.
func (c *CPU) setFlags(z, n, h, cy bool) {
	c.putFlag(FlagZero, z)
	c.putFlag(FlagSubtract, n)
	c.putFlag(FlagHalfCarry, h)
	c.putFlag(FlagCarry, cy)
}

// shouldZeroFlag sets FlagZero according to value, leaving the other
// flags untouched.
func (c *CPU) shouldZeroFlag(value uint8) {
	c.putFlag(FlagZero, value == 0)
}

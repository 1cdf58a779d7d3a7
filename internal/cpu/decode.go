package cpu

// Instruction is one entry of the 512-entry opcode table spec.md §4.1
// describes: 256 primary opcodes plus, under the 0xCB prefix, 256
// bit-operation opcodes.
type Instruction struct {
	name string
	fn   func(*CPU)
}

// InstructionSet holds the 256 primary opcodes.
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 CB-prefixed bit-operation opcodes.
var InstructionSetCB [256]Instruction

// DefineInstruction registers a primary opcode handler. Called from
// package-level init() functions across this package's source files, the
// way the teacher's instruction tables are built up.
func DefineInstruction(opcode uint8, name string, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{name: name, fn: fn}
}

// DefineInstructionCB registers a CB-prefixed opcode handler.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{name: name, fn: fn}
}

// illegalOpcodes lists the eleven byte values the Sharp LR35902 leaves
// undefined; fetching one is fatal (spec.md §4.1, §7).
var illegalOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	for _, op := range illegalOpcodes {
		DefineInstruction(op, "ILLEGAL", nil)
	}
}

// execute runs the instruction named by opcode, following the 0xCB
// prefix into the second table when needed.
func (c *CPU) execute(opcode uint8) error {
	if opcode == 0xCB {
		cbOpcode := c.fetch()
		instr := InstructionSetCB[cbOpcode]
		if instr.fn == nil {
			return &UnimplementedOpcode{Opcode: cbOpcode, PC: c.PC - 1}
		}
		instr.fn(c)
		return nil
	}

	instr := InstructionSet[opcode]
	if instr.fn == nil {
		c.log.Errorf("cpu: illegal opcode %#02x at pc=%#04x", opcode, c.PC-1)
		return &UnimplementedOpcode{Opcode: opcode, PC: c.PC - 1}
	}
	instr.fn(c)
	return nil
}

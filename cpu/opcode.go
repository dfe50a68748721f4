package cpu

import (
	"fmt"
)

// Opcode is the operation selector held in the top five bits of a Word.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_MOV = Opcode(0)  // mov
	OP_ADD = Opcode(1)  // add
	OP_SUB = Opcode(2)  // sub
	OP_AND = Opcode(3)  // and
	OP_OR  = Opcode(4)  // or
	OP_SL  = Opcode(5)  // sl
	OP_SR  = Opcode(6)  // sr
	OP_SRA = Opcode(7)  // sra
	OP_LDL = Opcode(8)  // ldl
	OP_LDH = Opcode(9)  // ldh
	OP_CMP = Opcode(10) // cmp
	OP_JE  = Opcode(11) // je
	OP_JMP = Opcode(12) // jmp
	OP_LD  = Opcode(13) // ld
	OP_ST  = Opcode(14) // st
	OP_HLT = Opcode(15) // hlt
)

const (
	OPCODE_COUNT = 16 // Number of defined opcodes.
	OPCODE_LIMIT = 32 // Number of encodable opcode selectors.
)

// Valid returns true if the opcode names one of the defined operations.
func (op Opcode) Valid() bool {
	return op < OPCODE_COUNT
}

// Reg is a general-purpose register index.
type Reg uint8

const (
	R0 = Reg(0)
	R1 = Reg(1)
	R2 = Reg(2)
	R3 = Reg(3)
	R4 = Reg(4)
	R5 = Reg(5)
	R6 = Reg(6)
	R7 = Reg(7)
)

// String returns the assembly name of the register.
func (r Reg) String() string {
	return fmt.Sprintf("r%d", uint8(r&7))
}

// Addr is an address in the data store, or a jump target in the program store.
type Addr uint8

// Word is a single 16-bit instruction word.
type Word uint16

// Opcode returns the operation selector, bits 15-11.
func (word Word) Opcode() Opcode {
	return Opcode((word >> 11) & 0x1f)
}

// RegA returns the first register index, bits 10-8.
func (word Word) RegA() Reg {
	return Reg((word >> 8) & 0x7)
}

// RegB returns the second register index, bits 7-5.
func (word Word) RegB() Reg {
	return Reg((word >> 5) & 0x7)
}

// Imm returns the 8-bit immediate, bits 7-0.
func (word Word) Imm() uint8 {
	return uint8(word & 0xff)
}

// Addr returns the 8-bit address, bits 7-0.
func (word Word) Addr() Addr {
	return Addr(word & 0xff)
}

// makeWord packs the fields of an instruction word.
func makeWord(op Opcode, a Reg, low uint8) Word {
	return (Word(op&0x1f) << 11) | (Word(a&7) << 8) | Word(low)
}

// makeWordAB packs a two register instruction word.
func makeWordAB(op Opcode, a, b Reg) Word {
	return makeWord(op, a, uint8(b&7)<<5)
}

// String returns the raw fields of the word.
func (word Word) String() string {
	return fmt.Sprintf("%05b %03b %08b", uint8(word.Opcode()), uint8(word.RegA()), word.Imm())
}

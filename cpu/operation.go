package cpu

import (
	"errors"
	"fmt"
)

// Operation is a decoded instruction, carrying only the operands its
// opcode uses. The set of operations is closed to this package.
type Operation interface {
	Opcode() Opcode // Operation selector.
	Word() Word     // Encoded instruction word.
	String() string // Assembly language representation.

	operation()
}

// Mov copies register B into register A.
type Mov struct{ A, B Reg }

// Add adds register B to register A.
type Add struct{ A, B Reg }

// Sub subtracts register B from register A.
type Sub struct{ A, B Reg }

// And is the bitwise and of register A with register B.
type And struct{ A, B Reg }

// Or is the bitwise or of register A with register B.
type Or struct{ A, B Reg }

// Sl shifts register A left by one bit.
type Sl struct{ A Reg }

// Sr shifts register A right by one bit, zero filling.
type Sr struct{ A Reg }

// Sra shifts register A right by one bit, replicating the sign bit.
type Sra struct{ A Reg }

// Ldl replaces the low byte of register A.
type Ldl struct {
	A   Reg
	Imm uint8
}

// Ldh replaces the high byte of register A.
type Ldh struct {
	A   Reg
	Imm uint8
}

// Cmp sets the flag if register A equals register B.
type Cmp struct{ A, B Reg }

// Je jumps to Addr if the flag is set.
type Je struct{ Addr Addr }

// Jmp jumps to Addr.
type Jmp struct{ Addr Addr }

// Ld loads register A from the data store.
type Ld struct {
	A    Reg
	Addr Addr
}

// St stores register A to the data store.
type St struct {
	A    Reg
	Addr Addr
}

// Hlt stops the machine.
type Hlt struct{}

var (
	_ Operation = Mov{}
	_ Operation = Add{}
	_ Operation = Sub{}
	_ Operation = And{}
	_ Operation = Or{}
	_ Operation = Sl{}
	_ Operation = Sr{}
	_ Operation = Sra{}
	_ Operation = Ldl{}
	_ Operation = Ldh{}
	_ Operation = Cmp{}
	_ Operation = Je{}
	_ Operation = Jmp{}
	_ Operation = Ld{}
	_ Operation = St{}
	_ Operation = Hlt{}
)

func (Mov) operation() {}
func (Add) operation() {}
func (Sub) operation() {}
func (And) operation() {}
func (Or) operation()  {}
func (Sl) operation()  {}
func (Sr) operation()  {}
func (Sra) operation() {}
func (Ldl) operation() {}
func (Ldh) operation() {}
func (Cmp) operation() {}
func (Je) operation()  {}
func (Jmp) operation() {}
func (Ld) operation()  {}
func (St) operation()  {}
func (Hlt) operation() {}

func (Mov) Opcode() Opcode { return OP_MOV }
func (Add) Opcode() Opcode { return OP_ADD }
func (Sub) Opcode() Opcode { return OP_SUB }
func (And) Opcode() Opcode { return OP_AND }
func (Or) Opcode() Opcode  { return OP_OR }
func (Sl) Opcode() Opcode  { return OP_SL }
func (Sr) Opcode() Opcode  { return OP_SR }
func (Sra) Opcode() Opcode { return OP_SRA }
func (Ldl) Opcode() Opcode { return OP_LDL }
func (Ldh) Opcode() Opcode { return OP_LDH }
func (Cmp) Opcode() Opcode { return OP_CMP }
func (Je) Opcode() Opcode  { return OP_JE }
func (Jmp) Opcode() Opcode { return OP_JMP }
func (Ld) Opcode() Opcode  { return OP_LD }
func (St) Opcode() Opcode  { return OP_ST }
func (Hlt) Opcode() Opcode { return OP_HLT }

func (op Mov) Word() Word { return makeWordAB(OP_MOV, op.A, op.B) }
func (op Add) Word() Word { return makeWordAB(OP_ADD, op.A, op.B) }
func (op Sub) Word() Word { return makeWordAB(OP_SUB, op.A, op.B) }
func (op And) Word() Word { return makeWordAB(OP_AND, op.A, op.B) }
func (op Or) Word() Word  { return makeWordAB(OP_OR, op.A, op.B) }
func (op Sl) Word() Word  { return makeWord(OP_SL, op.A, 0) }
func (op Sr) Word() Word  { return makeWord(OP_SR, op.A, 0) }
func (op Sra) Word() Word { return makeWord(OP_SRA, op.A, 0) }
func (op Ldl) Word() Word { return makeWord(OP_LDL, op.A, op.Imm) }
func (op Ldh) Word() Word { return makeWord(OP_LDH, op.A, op.Imm) }
func (op Cmp) Word() Word { return makeWordAB(OP_CMP, op.A, op.B) }
func (op Je) Word() Word  { return makeWord(OP_JE, R0, uint8(op.Addr)) }
func (op Jmp) Word() Word { return makeWord(OP_JMP, R0, uint8(op.Addr)) }
func (op Ld) Word() Word  { return makeWord(OP_LD, op.A, uint8(op.Addr)) }
func (op St) Word() Word  { return makeWord(OP_ST, op.A, uint8(op.Addr)) }
func (op Hlt) Word() Word { return makeWord(OP_HLT, R0, 0) }

func fmtAB(op Opcode, a, b Reg) string {
	return fmt.Sprintf("%v %v, %v", op, a, b)
}

func (op Mov) String() string { return fmtAB(OP_MOV, op.A, op.B) }
func (op Add) String() string { return fmtAB(OP_ADD, op.A, op.B) }
func (op Sub) String() string { return fmtAB(OP_SUB, op.A, op.B) }
func (op And) String() string { return fmtAB(OP_AND, op.A, op.B) }
func (op Or) String() string  { return fmtAB(OP_OR, op.A, op.B) }
func (op Sl) String() string  { return fmt.Sprintf("%v %v", OP_SL, op.A) }
func (op Sr) String() string  { return fmt.Sprintf("%v %v", OP_SR, op.A) }
func (op Sra) String() string { return fmt.Sprintf("%v %v", OP_SRA, op.A) }
func (op Ldl) String() string { return fmt.Sprintf("%v %v, 0x%02x", OP_LDL, op.A, op.Imm) }
func (op Ldh) String() string { return fmt.Sprintf("%v %v, 0x%02x", OP_LDH, op.A, op.Imm) }
func (op Cmp) String() string { return fmtAB(OP_CMP, op.A, op.B) }
func (op Je) String() string  { return fmt.Sprintf("%v 0x%02x", OP_JE, uint8(op.Addr)) }
func (op Jmp) String() string { return fmt.Sprintf("%v 0x%02x", OP_JMP, uint8(op.Addr)) }
func (op Ld) String() string  { return fmt.Sprintf("%v %v, [0x%02x]", OP_LD, op.A, uint8(op.Addr)) }
func (op St) String() string  { return fmt.Sprintf("%v %v, [0x%02x]", OP_ST, op.A, uint8(op.Addr)) }
func (op Hlt) String() string { return OP_HLT.String() }

// Decode decodes an instruction word into an Operation.
// Words with an undefined opcode selector return ErrOpcodeDecode.
func Decode(word Word) (op Operation, err error) {
	a := word.RegA()
	b := word.RegB()

	switch word.Opcode() {
	case OP_MOV:
		op = Mov{a, b}
	case OP_ADD:
		op = Add{a, b}
	case OP_SUB:
		op = Sub{a, b}
	case OP_AND:
		op = And{a, b}
	case OP_OR:
		op = Or{a, b}
	case OP_SL:
		op = Sl{a}
	case OP_SR:
		op = Sr{a}
	case OP_SRA:
		op = Sra{a}
	case OP_LDL:
		op = Ldl{a, word.Imm()}
	case OP_LDH:
		op = Ldh{a, word.Imm()}
	case OP_CMP:
		op = Cmp{a, b}
	case OP_JE:
		op = Je{word.Addr()}
	case OP_JMP:
		op = Jmp{word.Addr()}
	case OP_LD:
		op = Ld{a, word.Addr()}
	case OP_ST:
		op = St{a, word.Addr()}
	case OP_HLT:
		op = Hlt{}
	default:
		err = errors.Join(ErrOpcodeDecode, ErrOpcode(word))
	}

	return
}

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"
)

var _cpu_defines = map[string]int{
	"REGISTER_COUNT": REGISTER_COUNT,
	"MEMORY_SIZE":    MEMORY_SIZE,
	"OPCODE_COUNT":   OPCODE_COUNT,
}

// Cpu is the simulation context for the machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program // Program store. Never modified by the Cpu.

	Pc       int       // Index of the next instruction to fetch.
	Flag     bool      // Comparison flag, set by cmp.
	Register Registers // Register bank.
	Memory   Memory    // Data store.
	Halted   bool      // Set once a hlt has executed.

	Ticks int // Executed instruction counter.
}

// NewCpu creates a new CPU executing from a program store.
func NewCpu(prog *Program) (cpu *Cpu) {
	cpu = &Cpu{
		Program: prog,
	}

	return
}

// Defines for the cpu
func Defines() iter.Seq2[string, int] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers, flag, and data store.
// - Zeros the instruction counter.
// - Sets the PC to the start of the program store.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Memory.Reset()
	cpu.Pc = 0
	cpu.Flag = false
	cpu.Halted = false
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "% 5s: %03d\n", "pc", cpu.Pc)
	fmt.Fprintf(&sb, "% 5s: %v\n", "flag", cpu.Flag)
	for n, val := range cpu.Register {
		fmt.Fprintf(&sb, "% 5s: %04X (%d)\n", Reg(n).String(), val, val)
	}

	text = sb.String()
	return
}

// trace returns a single line summary of the CPU state.
func (cpu *Cpu) trace() string {
	regs := make([]string, len(cpu.Register))
	for n, val := range cpu.Register {
		regs[n] = fmt.Sprintf("%04x", val)
	}

	flag := "-"
	if cpu.Flag {
		flag = "+"
	}

	return fmt.Sprintf("%s %s", flag, strings.Join(regs, " "))
}

// Fetch reads the word at the PC, and advances the PC.
func (cpu *Cpu) Fetch() (word Word, err error) {
	word, err = cpu.Program.Read(cpu.Pc)
	if err != nil {
		return
	}

	cpu.Pc++

	return
}

// Tick executes a single fetch-decode-execute cycle.
// Returns ErrHalted if the CPU has already halted.
func (cpu *Cpu) Tick() (op Operation, err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	word, err := cpu.Fetch()
	if err != nil {
		return
	}

	op, err = Decode(word)
	if err != nil {
		return
	}

	cpu.Execute(op)

	if cpu.Verbose {
		log.Printf("%03d: %-16v %v", cpu.Pc, op, cpu.trace())
	}

	return
}

// Run ticks the CPU until it halts, or faults.
// A faulted run leaves the state of the last completed operation in place.
func (cpu *Cpu) Run() (err error) {
	for {
		_, err = cpu.Tick()
		if err != nil || cpu.Halted {
			return
		}
	}
}

// Execute executes a single decoded operation.
func (cpu *Cpu) Execute(op Operation) {
	reg := &cpu.Register

	switch op := op.(type) {
	case Mov:
		reg.Write(op.A, reg.Read(op.B))
	case Add:
		reg.Write(op.A, reg.Read(op.A)+reg.Read(op.B))
	case Sub:
		reg.Write(op.A, reg.Read(op.A)-reg.Read(op.B))
	case And:
		reg.Write(op.A, reg.Read(op.A)&reg.Read(op.B))
	case Or:
		reg.Write(op.A, reg.Read(op.A)|reg.Read(op.B))
	case Sl:
		reg.Write(op.A, reg.Read(op.A)<<1)
	case Sr:
		reg.Write(op.A, reg.Read(op.A)>>1)
	case Sra:
		reg.Write(op.A, uint16(int16(reg.Read(op.A))>>1))
	case Ldl:
		reg.Write(op.A, (reg.Read(op.A)&0xff00)|uint16(op.Imm))
	case Ldh:
		reg.Write(op.A, (uint16(op.Imm)<<8)|(reg.Read(op.A)&0x00ff))
	case Cmp:
		cpu.Flag = reg.Read(op.A) == reg.Read(op.B)
	case Je:
		if cpu.Flag {
			cpu.Pc = int(op.Addr)
		}
	case Jmp:
		cpu.Pc = int(op.Addr)
	case Ld:
		reg.Write(op.A, cpu.Memory.Read(op.Addr))
	case St:
		cpu.Memory.Write(op.Addr, reg.Read(op.A))
	case Hlt:
		cpu.Halted = true
	default:
		panic(fmt.Sprintf("unknown operation %T", op))
	}

	cpu.Ticks++
}

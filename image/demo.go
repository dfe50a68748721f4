package image

import (
	"github.com/ezrec/cpu16/cpu"
)

const (
	DEMO_RESULT = 64 // Data store address of the demo running total.
)

// Demo returns the demonstration program. It sums 1 through 10 into r3,
// storing the running total at data[DEMO_RESULT] on every iteration.
func Demo() (words []uint16) {
	ops := []cpu.Operation{
		cpu.Ldh{A: cpu.R0, Imm: 0},
		cpu.Ldl{A: cpu.R0, Imm: 1}, // r0 = 1, increment
		cpu.Ldh{A: cpu.R1, Imm: 0},
		cpu.Ldl{A: cpu.R1, Imm: 10}, // r1 = 10, limit
		cpu.Ldh{A: cpu.R2, Imm: 0},
		cpu.Ldl{A: cpu.R2, Imm: 0}, // r2 = 0, counter
		cpu.Ldh{A: cpu.R3, Imm: 0},
		cpu.Ldl{A: cpu.R3, Imm: 0}, // r3 = 0, total
		// loop:
		cpu.Add{A: cpu.R2, B: cpu.R0},
		cpu.Add{A: cpu.R3, B: cpu.R2},
		cpu.St{A: cpu.R3, Addr: DEMO_RESULT},
		cpu.Cmp{A: cpu.R1, B: cpu.R2},
		cpu.Je{Addr: 14},
		cpu.Jmp{Addr: 8},
		cpu.Hlt{},
	}

	for _, op := range ops {
		words = append(words, uint16(op.Word()))
	}

	return
}

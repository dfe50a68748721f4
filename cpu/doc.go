// Package cpu implements the core of a small 16-bit register machine.
//
// The machine has a program counter (PC), eight 16-bit general-purpose
// registers (r0-r7), a single comparison flag, a read-only program store and
// a 256 word read/write data store. Every instruction is one 16-bit word:
//
//	15    11 10   8 7     5 4     0
//	+-------+------+-------+-------+
//	|opcode | reg a| reg b |       |
//	+-------+------+-------+-------+
//	|opcode | reg a|   imm / addr  |
//	+-------+------+---------------+
//
// A Word is decoded into a typed Operation, which the Cpu executes.
package cpu

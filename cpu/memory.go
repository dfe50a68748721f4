package cpu

import (
	"iter"
)

const (
	MEMORY_SIZE = 256 // Words in the data store; matches the 8-bit address field.
)

// Memory is the read/write data store.
type Memory [MEMORY_SIZE]uint16

// Read returns the word at addr.
func (mem *Memory) Read(addr Addr) uint16 {
	return mem[addr]
}

// Write sets the word at addr.
func (mem *Memory) Write(addr Addr, value uint16) {
	mem[addr] = value
}

// Reset zeros the data store.
func (mem *Memory) Reset() {
	clear(mem[:])
}

// NonZero iterates over all addresses holding a non-zero value.
func (mem *Memory) NonZero() iter.Seq2[Addr, uint16] {
	return func(yield func(addr Addr, value uint16) bool) {
		for n, value := range mem {
			if value == 0 {
				continue
			}
			if !yield(Addr(n), value) {
				return
			}
		}
	}
}

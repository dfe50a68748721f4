package cpu

const (
	REGISTER_COUNT = 8 // Number of general-purpose registers.
)

// Registers is the general-purpose register bank.
type Registers [REGISTER_COUNT]uint16

// Read returns the value of a register.
func (rf *Registers) Read(r Reg) uint16 {
	return rf[r&7]
}

// Write sets the value of a register.
func (rf *Registers) Write(r Reg, value uint16) {
	rf[r&7] = value
}

// Reset zeros all registers.
func (rf *Registers) Reset() {
	clear(rf[:])
}

package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_WriteRead(t *testing.T) {
	assert := assert.New(t)

	rf := &Registers{}

	assert.Equal(uint16(0), rf.Read(R0))
	rf.Write(R0, 10)
	assert.Equal(uint16(10), rf.Read(R0))

	assert.Equal(uint16(0), rf.Read(R3))
	rf.Write(R3, 20)
	assert.Equal(uint16(20), rf.Read(R3))
}

func TestRegisters_Independent(t *testing.T) {
	assert := assert.New(t)

	for i := range REGISTER_COUNT {
		rf := &Registers{}
		value := uint16(0xa500 | i)
		rf.Write(Reg(i), value)
		for j := range REGISTER_COUNT {
			if i == j {
				assert.Equal(value, rf.Read(Reg(j)))
			} else {
				assert.Equal(uint16(0), rf.Read(Reg(j)), "r%d written, r%d read", i, j)
			}
		}
	}
}

func TestRegisters_Reset(t *testing.T) {
	assert := assert.New(t)

	rf := &Registers{1, 2, 3, 4, 5, 6, 7, 8}
	rf.Reset()
	assert.Equal(Registers{}, *rf)
}

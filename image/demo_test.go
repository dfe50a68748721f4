package image

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cpu16/cpu"
)

func TestDemo(t *testing.T) {
	assert := assert.New(t)

	cp := cpu.NewCpu(cpu.NewProgram(Demo()...))
	assert.NoError(cp.Run())

	assert.Equal(uint16(10), cp.Register.Read(cpu.R2))
	assert.Equal(uint16(55), cp.Register.Read(cpu.R3))
	assert.Equal(uint16(55), cp.Memory.Read(DEMO_RESULT))
	assert.Equal(len(Demo()), cp.Pc)
}

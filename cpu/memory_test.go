package cpu

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	for _, value := range mem {
		assert.Equal(uint16(0), value)
	}

	mem.Write(0, 0x1234)
	mem.Write(64, 55)
	mem.Write(255, 0xffff)

	assert.Equal(uint16(0x1234), mem.Read(0))
	assert.Equal(uint16(55), mem.Read(64))
	assert.Equal(uint16(0xffff), mem.Read(255))
	assert.Equal(uint16(0), mem.Read(1))

	assert.Equal(map[Addr]uint16{0: 0x1234, 64: 55, 255: 0xffff}, maps.Collect(mem.NonZero()))

	mem.Reset()
	assert.Equal(0, len(maps.Collect(mem.NonZero())))
}

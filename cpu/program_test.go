package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Read(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(0x0010, 0x0012)
	assert.Equal(2, prog.Len())

	word, err := prog.Read(0)
	assert.NoError(err)
	assert.Equal(Word(0x0010), word)

	word, err = prog.Read(1)
	assert.NoError(err)
	assert.Equal(Word(0x0012), word)

	_, err = prog.Read(2)
	assert.ErrorIs(err, ErrProgramEnd)

	_, err = prog.Read(-1)
	assert.ErrorIs(err, ErrProgramEnd)
}

func TestProgram_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram()
	assert.Equal(0, prog.Len())

	_, err := prog.Read(0)
	assert.ErrorIs(err, ErrProgramEnd)

	var nilprog *Program
	assert.Equal(0, nilprog.Len())
	_, err = nilprog.Read(0)
	assert.ErrorIs(err, ErrProgramEnd)
	assert.Nil(nilprog.Binary())
}

func TestProgram_Copy(t *testing.T) {
	assert := assert.New(t)

	image := []uint16{0x7800, 0x0120}
	prog := NewProgram(image...)
	image[0] = 0

	word, err := prog.Read(0)
	assert.NoError(err)
	assert.Equal(Word(0x7800), word)

	bins := prog.Binary()
	bins[1] = 0
	word, err = prog.Read(1)
	assert.NoError(err)
	assert.Equal(Word(0x0120), word)
}

func TestProgram_Words(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgramOf(Ldl{R0, 1}, Add{R1, R0}, Hlt{})

	var pcs []int
	var words []Word
	for pc, word := range prog.Words() {
		pcs = append(pcs, pc)
		words = append(words, word)
	}

	assert.Equal([]int{0, 1, 2}, pcs)
	assert.Equal([]Word{Ldl{R0, 1}.Word(), Add{R1, R0}.Word(), Hlt{}.Word()}, words)
	assert.Equal([]uint16{0x4001, 0x0900, 0x7800}, prog.Binary())

	// Early exit
	count := 0
	for range prog.Words() {
		count++
		break
	}
	assert.Equal(1, count)
}

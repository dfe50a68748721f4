package image

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScript(t *testing.T) {
	assert := assert.New(t)

	src := strings.Join([]string{
		"def imm16(r, v):",
		"    return [ldh(r, v >> 8), ldl(r, v & 0xff)]",
		"",
		"loop = 8",
		"program = imm16(R0, 1) + imm16(R1, 10) + imm16(R2, 0) + imm16(R3, 0) + [",
		"    add(R2, R0),",
		"    add(R3, R2),",
		"    st(R3, 64),",
		"    cmp(R1, R2),",
		"    je(loop + 6),",
		"    jmp(loop),",
		"    hlt(),",
		"]",
	}, "\n")

	sc := &Script{}
	words, err := sc.Run("demo.star", []byte(src))
	assert.NoError(err)
	assert.Equal(Demo(), words)
}

func TestScript_Builtins(t *testing.T) {
	assert := assert.New(t)

	src := strings.Join([]string{
		"program = [",
		"    mov(R0, R1), add(R0, R1), sub(R0, R1), and_(R0, R1), or_(R0, R1),",
		"    sl(R1), sr(R1), sra(R1), ldl(R0, 0xb2), ldh(R0, 0xb2),",
		"    cmp(R1, R2), je(3), jmp(2), ld(R0, 7), st(R7, MEMORY_SIZE - 1), hlt(),",
		"    BASE,",
		"]",
	}, "\n")

	sc := &Script{}
	sc.Predefine("BASE", 0x1234)
	words, err := sc.Run("ops.star", []byte(src))
	assert.NoError(err)
	assert.Equal([]uint16{
		0x0020, 0x0820, 0x1020, 0x1820, 0x2020,
		0x2900, 0x3100, 0x3900, 0x40b2, 0x48b2,
		0x5140, 0x5803, 0x6002, 0x6807, 0x77ff, 0x7800,
		0x1234,
	}, words)
}

func TestScript_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		src  string
		err  error
	}){
		{"no_program", "x = 1", ErrScriptProgram},
		{"not_list", "program = 5", ErrScriptProgram},
		{"bad_value", "program = [hlt(), 0x10000]", ErrScriptValue(1)},
		{"bad_type", "program = ['hlt']", ErrScriptValue(0)},
		{"arg_count", "program = [add(R0)]", ErrScriptArgCount},
		{"arg_kwargs", "program = [hlt(x = 1)]", ErrScriptArgCount},
		{"reg_range", "program = [sl(8)]", ErrScriptArgRange},
		{"imm_range", "program = [ldl(R0, 256)]", ErrScriptArgRange},
		{"addr_range", "program = [jmp(-1)]", ErrScriptArgRange},
	}

	for _, entry := range table {
		sc := &Script{}
		words, err := sc.Run(entry.name+".star", []byte(entry.src))
		assert.Nil(words, entry.name)
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.name, err)
	}

	sc := &Script{}
	_, err := sc.Run("syntax.star", []byte("program = ["))
	assert.Error(err)
}

// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package image

import (
	"fmt"
	"log"
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cpu16/cpu"
	"github.com/ezrec/cpu16/internal"
)

var _register_defines = map[string]int{
	"R0": int(cpu.R0),
	"R1": int(cpu.R1),
	"R2": int(cpu.R2),
	"R3": int(cpu.R3),
	"R4": int(cpu.R4),
	"R5": int(cpu.R5),
	"R6": int(cpu.R6),
	"R7": int(cpu.R7),
}

// scriptOp is an opcode builtin. Each character of args is the kind of an
// argument: 'r' is a register index, 'i' an 8-bit immediate or address.
type scriptOp struct {
	name string
	args string
	make func(v []int) cpu.Operation
}

var scriptOps = []scriptOp{
	{"mov", "rr", func(v []int) cpu.Operation { return cpu.Mov{A: cpu.Reg(v[0]), B: cpu.Reg(v[1])} }},
	{"add", "rr", func(v []int) cpu.Operation { return cpu.Add{A: cpu.Reg(v[0]), B: cpu.Reg(v[1])} }},
	{"sub", "rr", func(v []int) cpu.Operation { return cpu.Sub{A: cpu.Reg(v[0]), B: cpu.Reg(v[1])} }},
	{"and_", "rr", func(v []int) cpu.Operation { return cpu.And{A: cpu.Reg(v[0]), B: cpu.Reg(v[1])} }},
	{"or_", "rr", func(v []int) cpu.Operation { return cpu.Or{A: cpu.Reg(v[0]), B: cpu.Reg(v[1])} }},
	{"sl", "r", func(v []int) cpu.Operation { return cpu.Sl{A: cpu.Reg(v[0])} }},
	{"sr", "r", func(v []int) cpu.Operation { return cpu.Sr{A: cpu.Reg(v[0])} }},
	{"sra", "r", func(v []int) cpu.Operation { return cpu.Sra{A: cpu.Reg(v[0])} }},
	{"ldl", "ri", func(v []int) cpu.Operation { return cpu.Ldl{A: cpu.Reg(v[0]), Imm: uint8(v[1])} }},
	{"ldh", "ri", func(v []int) cpu.Operation { return cpu.Ldh{A: cpu.Reg(v[0]), Imm: uint8(v[1])} }},
	{"cmp", "rr", func(v []int) cpu.Operation { return cpu.Cmp{A: cpu.Reg(v[0]), B: cpu.Reg(v[1])} }},
	{"je", "i", func(v []int) cpu.Operation { return cpu.Je{Addr: cpu.Addr(v[0])} }},
	{"jmp", "i", func(v []int) cpu.Operation { return cpu.Jmp{Addr: cpu.Addr(v[0])} }},
	{"ld", "ri", func(v []int) cpu.Operation { return cpu.Ld{A: cpu.Reg(v[0]), Addr: cpu.Addr(v[1])} }},
	{"st", "ri", func(v []int) cpu.Operation { return cpu.St{A: cpu.Reg(v[0]), Addr: cpu.Addr(v[1])} }},
	{"hlt", "", func(v []int) cpu.Operation { return cpu.Hlt{} }},
}

// call encodes the operation from the starlark arguments.
func (op scriptOp) call(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	if len(kwargs) != 0 || len(args) != len(op.args) {
		err = fmt.Errorf("%s: %w", b.Name(), ErrScriptArgCount)
		return
	}

	v := make([]int, len(args))
	for n, arg := range args {
		v[n], err = starlark.AsInt32(arg)
		if err != nil {
			err = fmt.Errorf("%s: argument %d: %w", b.Name(), n+1, err)
			return
		}
		limit := 0xff
		if op.args[n] == 'r' {
			limit = cpu.REGISTER_COUNT - 1
		}
		if v[n] < 0 || v[n] > limit {
			err = fmt.Errorf("%s: argument %d: %w", b.Name(), n+1, ErrScriptArgRange)
			return
		}
	}

	value = starlark.MakeInt(int(op.make(v).Word()))
	return
}

// Script generates program images from starlark source.
type Script struct {
	Verbose bool // If set, script print() output is logged.

	predefine map[string]int // Extra predeclared integers.
}

// Predefine defines an integer constant visible to the script.
func (sc *Script) Predefine(name string, value int) {
	if sc.predefine == nil {
		sc.predefine = map[string]int{name: value}
	} else {
		sc.predefine[name] = value
	}
}

// predeclared returns the builtins and constants of a script.
func (sc *Script) predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{}

	defines := internal.Concat2(
		cpu.Defines(),
		maps.All(_register_defines),
		maps.All(sc.predefine),
	)
	for name, value := range defines {
		pred[name] = starlark.MakeInt(value)
	}

	for _, op := range scriptOps {
		pred[op.name] = starlark.NewBuiltin(op.name, op.call)
	}

	return
}

// Run executes the script src, and returns the words of its 'program'
// global. filename is used for error messages.
func (sc *Script) Run(filename string, src []byte) (words []uint16, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if sc.Verbose {
				log.Printf("%v: %v", filename, msg)
			}
		},
	}
	opts := syntax.FileOptions{}

	dict, err := starlark.ExecFileOptions(&opts, thread, filename, src, sc.predeclared())
	if err != nil {
		return
	}

	value, ok := dict["program"]
	if !ok {
		err = ErrScriptProgram
		return
	}

	list, ok := value.(starlark.Indexable)
	if !ok {
		err = ErrScriptProgram
		return
	}

	words = make([]uint16, list.Len())
	for n := range words {
		var word int
		word, err = starlark.AsInt32(list.Index(n))
		if err != nil || word < 0 || word > 0xffff {
			words = nil
			err = ErrScriptValue(n)
			return
		}
		words[n] = uint16(word)
	}

	return
}

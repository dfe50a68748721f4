package cpu

import (
	"errors"

	"github.com/ezrec/cpu16/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrProgramEnd = errors.New(f("unexpected end of program"))
	ErrHalted     = errors.New(f("halted"))

	// Instruction decode errors
	ErrOpcodeDecode = errors.New(f("unknown operation code"))
)

// ErrOpcode identifies the instruction word that failed to decode.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x (selector %d)", uint16(eo), uint8(Word(eo).Opcode()))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

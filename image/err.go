package image

import (
	"errors"

	"github.com/ezrec/cpu16/translate"
)

var f = translate.From

var (
	ErrImageOdd      = errors.New(f("binary image has an odd number of bytes"))
	ErrScriptProgram = errors.New(f("script does not define 'program'"))
)

type ErrParseWord string

func (err ErrParseWord) Error() string {
	return f("'%v' is not a 16-bit word", string(err))
}

type ErrScriptValue int

func (err ErrScriptValue) Error() string {
	return f("program[%d] is not a 16-bit word", int(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

var (
	ErrScriptArgCount = errors.New(f("wrong number of arguments"))
	ErrScriptArgRange = errors.New(f("argument out of range"))
)

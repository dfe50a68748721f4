package cpu

import (
	"iter"
)

// Program is the read-only program store.
type Program struct {
	words []Word
}

// NewProgram creates a program store holding a copy of words.
func NewProgram(words ...uint16) (prog *Program) {
	prog = &Program{
		words: make([]Word, len(words)),
	}

	for n, word := range words {
		prog.words[n] = Word(word)
	}

	return
}

// NewProgramOf creates a program store from decoded operations.
func NewProgramOf(ops ...Operation) (prog *Program) {
	prog = &Program{
		words: make([]Word, len(ops)),
	}

	for n, op := range ops {
		prog.words[n] = op.Word()
	}

	return
}

// Len returns the number of words in the program store.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}

	return len(prog.words)
}

// Read returns the word at pc, or ErrProgramEnd if pc is past the end of
// the program.
func (prog *Program) Read(pc int) (word Word, err error) {
	if pc < 0 || pc >= prog.Len() {
		err = ErrProgramEnd
		return
	}

	word = prog.words[pc]
	return
}

// Words iterates over the program store.
func (prog *Program) Words() iter.Seq2[int, Word] {
	return func(yield func(pc int, word Word) bool) {
		if prog == nil {
			return
		}
		for pc, word := range prog.words {
			if !yield(pc, word) {
				return
			}
		}
	}
}

// Binary returns a copy of the program image.
func (prog *Program) Binary() (bins []uint16) {
	for _, word := range prog.Words() {
		bins = append(bins, uint16(word))
	}

	return
}

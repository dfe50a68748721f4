// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/cpu16/cpu"
)

// TraceFunc is called after each executed instruction, with the PC it was
// fetched from.
type TraceFunc func(pc int, op cpu.Operation)

// Emulator state. CPU + program + run limits.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	MaxTicks int       // If non-zero, the maximum instructions executed after a reset.
	Trace    TraceFunc // If set, called after each executed instruction.
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog *cpu.Program) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(prog),
	}

	return
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// Load replaces the program, and resets the emulator.
func (emu *Emulator) Load(prog *cpu.Program) {
	emu.Cpu.Program = prog
	emu.Reset()
}

// Op returns the operation at the current PC, or nil if it is past the end
// of the program or does not decode.
func (emu *Emulator) Op() (op cpu.Operation) {
	word, err := emu.Cpu.Program.Read(emu.Cpu.Pc)
	if err != nil {
		return
	}

	op, _ = cpu.Decode(word)
	return
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if emu.Cpu.Halted {
		done = true
		return
	}

	if emu.MaxTicks > 0 && emu.Cpu.Ticks >= emu.MaxTicks {
		err = ErrTickLimit
		return
	}

	op, err := emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	if emu.Trace != nil {
		emu.Trace(pc, op)
	}

	done = emu.Cpu.Halted
	if done && emu.Verbose {
		log.Printf("emulator: halted at pc %03d after %d ticks", pc, emu.Cpu.Ticks)
	}

	return
}

// Run ticks the emulator until the program halts, or an error occurs.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}

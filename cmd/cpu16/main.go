// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/ezrec/cpu16/cpu"
	"github.com/ezrec/cpu16/emulator"
	"github.com/ezrec/cpu16/image"
)

// imageList is a repeatable -i flag.
type imageList []string

func (il *imageList) String() string {
	return strings.Join(*il, ",")
}

func (il *imageList) Set(value string) error {
	*il = append(*il, value)
	return nil
}

// state is the final machine state, as shown by -dump.
type state struct {
	Pc       int
	Flag     bool
	Halted   bool
	Ticks    int
	Register cpu.Registers
	Memory   map[cpu.Addr]uint16 // Non-zero words only.
}

// parseAddrs parses a comma separated list of data store addresses.
func parseAddrs(list string) (addrs []cpu.Addr, err error) {
	for _, word := range strings.Split(list, ",") {
		word = strings.TrimSpace(word)
		if len(word) == 0 {
			continue
		}
		var value uint64
		value, err = strconv.ParseUint(word, 0, 8)
		if err != nil {
			return
		}
		addrs = append(addrs, cpu.Addr(value))
	}

	return
}

// annotate is the hex image comment for a word.
func annotate(pc int, word uint16) string {
	op, err := cpu.Decode(cpu.Word(word))
	if err != nil {
		return "?"
	}
	return op.String()
}

// writeImage writes words to a .bin or .hex file, selected by extension.
func writeImage(path string, words []uint16) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
		if err != nil {
			err = fmt.Errorf("%v: %w", path, err)
		}
	}()

	if strings.ToLower(filepath.Ext(path)) == ".bin" {
		err = image.WriteBinary(ouf, words)
	} else {
		err = image.WriteHex(ouf, words, annotate)
	}

	return
}

func main() {
	var images imageList
	var demo bool
	var write string
	var verbose bool
	var trace bool
	var limit int
	var dump bool
	var memory string

	flag.Var(&images, "i", "Program image to load (.hex, .bin, .star); may be repeated")
	flag.BoolVar(&demo, "demo", false, "Run the built-in demonstration program")
	flag.StringVar(&write, "w", "", "Write the program image to a .hex or .bin file, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&trace, "t", false, "Print every executed instruction")
	flag.IntVar(&limit, "n", 0, "Maximum instructions to execute (0 is unlimited)")
	flag.BoolVar(&dump, "dump", false, "Dump the machine state on exit")
	flag.StringVar(&memory, "m", "", "Comma separated data store addresses to print on exit")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	addrs, err := parseAddrs(memory)
	if err != nil {
		log.Fatalf("%v: -m %v: %v", os.Args[0], memory, err)
	}

	var parts [][]uint16
	if demo {
		parts = append(parts, image.Demo())
		if len(memory) == 0 {
			addrs = append(addrs, image.DEMO_RESULT)
		}
	}
	for _, path := range images {
		words, err := image.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		parts = append(parts, words)
	}

	words := image.Concat(parts...)
	prog := cpu.NewProgram(words...)

	if len(write) != 0 {
		err = writeImage(write, words)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	emu := emulator.NewEmulator(prog)
	emu.Verbose = verbose
	emu.MaxTicks = limit
	if trace {
		emu.Trace = func(pc int, op cpu.Operation) {
			reg := &emu.Cpu.Register
			fmt.Printf("%3d %-16v %5d %5d %5d %5d\n", emu.Cpu.Pc, op,
				reg.Read(cpu.R0), reg.Read(cpu.R1), reg.Read(cpu.R2), reg.Read(cpu.R3))
		}
	}

	emu.Reset()
	err = emu.Run()
	if errors.Is(err, emulator.ErrTickLimit) {
		if op := emu.Op(); op != nil {
			log.Printf("stopped before %03d: %v", emu.Cpu.Pc, op)
		}
	}

	for _, addr := range addrs {
		fmt.Printf("data[%d] = %d\n", addr, emu.Cpu.Memory.Read(addr))
	}

	if dump {
		printer := pp.New()
		printer.SetColoringEnabled(term.IsTerminal(int(os.Stdout.Fd())))
		printer.Println(state{
			Pc:       emu.Cpu.Pc,
			Flag:     emu.Cpu.Flag,
			Halted:   emu.Cpu.Halted,
			Ticks:    emu.Cpu.Ticks,
			Register: emu.Cpu.Register,
			Memory:   maps.Collect(emu.Cpu.Memory.NonZero()),
		})
	}

	if err != nil {
		log.Fatal(err)
	}
}

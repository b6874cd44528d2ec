// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	stdio "io"
	"log"
	"maps"
	"os"
	"strings"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/internal"
)

func main() {
	var compile string
	var image string
	var save bool
	var listing bool
	var output string
	var verbose bool
	defines := map[string]string{}

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&image, "i", "", ".ls8 image to load")
	flag.BoolVar(&save, "s", false, "Save the image to the output, do not execute")
	flag.BoolVar(&listing, "l", false, "List the disassembled image to the output, do not execute")
	flag.StringVar(&output, "o", "-", "PRN output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Predefine an equate as NAME=VALUE", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("%v: expected NAME=VALUE", arg)
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	switch {
	case flag.NArg() > 1:
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	case flag.NArg() == 1 && len(image) != 0:
		log.Fatalf("%v: image given twice: %v and %v", os.Args[0], image, flag.Arg(0))
	case flag.NArg() == 1:
		image = flag.Arg(0)
	}

	if len(compile) == 0 && len(image) == 0 {
		log.Fatalf("%v: one of -c or an image is required", os.Args[0])
	}
	if len(compile) != 0 && len(image) != 0 {
		log.Fatalf("%v: -c and an image are exclusive", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	// Assemble a new program.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for name, value := range internal.IterSeq2Sorted(internal.IterSeq2Concat(emu.Defines(), maps.All(defines))) {
			if verbose {
				log.Printf("define %v=%v", name, value)
			}
			asm.Predefine(name, value)
		}

		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	// Load an existing image.
	if len(image) != 0 {
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		_, err = emu.Rom.ReadFrom(inf)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	var ouf stdio.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	switch {
	case save:
		_, err = emu.Rom.WriteTo(ouf)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	case listing:
		for in, note := range emu.Listing() {
			line := fmt.Sprintf("%02X: %v", in.Address, in)
			if len(note) != 0 {
				line = fmt.Sprintf("%-20s ; %v", line, note)
			}
			_, err = fmt.Fprintln(ouf, line)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
		}
	default:
		emu.Tape.Output = ouf
		halt, err := emu.Run()
		if err != nil {
			log.Print(emu.Cpu.String())
			log.Printf("last printed: % X", emu.History())
			log.Fatal(err)
		}
		if verbose {
			log.Printf("%v after %d ticks", halt, emu.Cpu.Ticks)
		}
	}
}

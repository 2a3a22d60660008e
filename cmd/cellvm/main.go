// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/cellvm/emulator"
	"github.com/ezrec/cellvm/io"
)

func main() {
	var script string
	var inline string
	var input string
	var output string
	var brk string
	var limit int
	var verbose bool

	flag.StringVar(&script, "c", "", "script file to run")
	flag.StringVar(&inline, "e", "", "inline script to run")
	flag.StringVar(&input, "i", "-", "Channel input")
	flag.StringVar(&output, "o", "-", "Channel output")
	flag.StringVar(&brk, "b", "", "Break expression")
	flag.IntVar(&limit, "l", 0, "Cycle limit, 0 for unlimited")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(script) != 0 && len(inline) != 0 {
		log.Fatalf("%v: -c and -e are exclusive", os.Args[0])
	}

	if len(script) != 0 {
		text, err := os.ReadFile(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		inline = string(text)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Limit = limit

	in := &io.Stream{Input: os.Stdin}
	if input != "-" {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		in.Input = inf
	}
	emu.Vm.Input = in

	out := &io.Stream{Output: os.Stdout}
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out.Output = ouf
	}
	emu.Vm.Output = out

	err := emu.SetScript(inline)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if len(brk) != 0 {
		err = emu.BreakWhen(brk)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	halted, err := emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	if !halted {
		log.Printf("break after %d cycles", emu.Cycles)
		log.Print("\n" + emu.Vm.String())
	}
}

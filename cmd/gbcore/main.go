package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// codeStart is the first address past the cartridge header, where the
// entry point usually jumps to.
const codeStart = 0x0150

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	bootROM := flag.String("boot", "", "The boot rom file to load")
	steps := flag.Int("steps", 0, "The number of instructions to execute, 0 for no limit")
	debug := flag.Bool("debug", false, "Log every executed instruction")
	sound := flag.Bool("sound", false, "Map the sound registers")
	disasm := flag.Bool("disasm", false, "Disassemble the cartridge entry point instead of running")
	flag.Parse()

	colour := term.IsTerminal(int(os.Stderr.Fd()))
	logger := log.NewWithOutput(os.Stderr, *debug, colour)

	if *romFile == "" {
		// no rom given, ask for one
		wd, _ := os.Getwd()
		file, err := utils.AskForFile("Open ROM", wd)
		if err != nil {
			logger.Fatal(fmt.Sprintf("no rom file given: %v", err))
		}
		*romFile = file
	}

	// open the rom file
	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Fatal(err.Error())
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *bootROM != "" {
		// open the boot rom file
		boot, err := utils.LoadFile(*bootROM)
		if err != nil {
			logger.Fatal(err.Error())
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	} else {
		opts = append(opts, gameboy.NoBios())
	}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}
	if *sound {
		opts = append(opts, gameboy.WithSound())
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		logger.Fatal(err.Error())
	}
	fmt.Printf("Title:    %s\n", gb.Cart.Title())
	fmt.Printf("RAM size: %dkB\n", gb.Cart.RAMSize()/1024)
	fmt.Printf("Checksum: %016x\n", gb.Cart.Checksum())

	if *disasm {
		for _, line := range cpu.Disassemble(rom[gameboy.EntryPoint:gameboy.EntryPoint+4], gameboy.EntryPoint) {
			fmt.Println(line)
		}
		end := codeStart + 0x40
		if end > len(rom) {
			end = len(rom)
		}
		if end > codeStart {
			for _, line := range cpu.Disassemble(rom[codeStart:end], codeStart) {
				fmt.Println(line)
			}
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	executed, err := gb.Run(ctx, *steps)
	fmt.Printf("Executed %d instructions\n", executed)
	fmt.Println(gb.CPU.Registers.String())
	if err != nil && !errors.Is(err, context.Canceled) {
		var fault *mmu.AddressFault
		if errors.As(err, &fault) {
			logger.Errorf("%s access to 0x%04X", fault.Access, fault.Address)
		}
		stop()
		os.Exit(1)
	}
}

package gameboy

import (
	"github.com/thelolagemann/gbcore/internal/boot"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy) error

// Debug logs every executed instruction.
func Debug() Opt {
	return func(gb *GameBoy) error {
		gb.debug = true
		return nil
	}
}

// WithSound maps the sound registers into the address space.
func WithSound() Opt {
	return func(gb *GameBoy) error {
		gb.sound = true
		return nil
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) error {
		gb.Logger = log
		return nil
	}
}

// WithBootROM sets the boot ROM for the emulator. The CPU starts
// executing it from 0x0000, until it is unmapped through 0xFF50.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) error {
		b, err := boot.LoadBootROM(rom)
		if err != nil {
			return err
		}
		gb.bootROM = b
		return nil
	}
}

// NoBios starts the CPU at the cartridge entry point, as if the boot
// ROM had already run.
func NoBios() Opt {
	return func(gb *GameBoy) error {
		gb.noBoot = true
		return nil
	}
}

// WithRegion maps an extra peripheral into the address space.
func WithRegion(r mmu.Region) Opt {
	return func(gb *GameBoy) error {
		gb.regions = append(gb.regions, r)
		return nil
	}
}

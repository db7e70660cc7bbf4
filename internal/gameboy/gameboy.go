// Package gameboy wires the components of the Game Boy together, and
// drives the CPU against the address space.
package gameboy

import (
	"context"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/apu"
	"github.com/thelolagemann/gbcore/internal/boot"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU  *cpu.CPU
	MMU  *mmu.MMU
	APU  *apu.APU
	Cart *cartridge.Cartridge

	log.Logger

	bootROM  *boot.ROM
	bootDone bool

	// collected by the options, applied once the MMU is built
	debug   bool
	sound   bool
	noBoot  bool
	regions []mmu.Region
}

// NewGameBoy returns a new GameBoy running the given ROM image.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}

	g := &GameBoy{
		Cart:   cart,
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("gameboy: %w", err)
		}
	}

	mmuOpts := []mmu.Opt{mmu.WithLogger(g.Logger)}
	if g.bootROM != nil {
		mmuOpts = append(mmuOpts,
			mmu.WithBootROM(g.bootROM),
			mmu.WithBootStatus(g.BootMapped),
			mmu.WithRegion(g.bootControl()),
		)
	}
	if g.sound {
		g.APU = apu.NewAPU(g.Logger)
		mmuOpts = append(mmuOpts, mmu.WithRegion(g.APU.Region()))
	}
	for _, r := range g.regions {
		mmuOpts = append(mmuOpts, mmu.WithRegion(r))
	}
	g.MMU = mmu.NewMMU(cart, mmuOpts...)

	cpuOpts := []cpu.Opt{cpu.WithLogger(g.Logger)}
	if g.debug {
		cpuOpts = append(cpuOpts, cpu.Debug())
	}
	g.CPU = cpu.NewCPU(cpuOpts...)

	switch {
	case g.bootROM != nil:
		// the boot ROM starts from a zeroed register file
		g.CPU.PC = types.BootROMStart
	case g.noBoot:
		// start at the cartridge entry point, with the stack at the
		// top of working RAM
		g.CPU.PC = EntryPoint
		g.CPU.SP = types.WRAMEnd
	}

	header := cart.Header()
	g.Infof("gameboy: loaded %s", &header)
	return g, nil
}

// EntryPoint is the address the boot ROM hands control to the
// cartridge at.
const EntryPoint uint16 = 0x0100

// BootControl is the register that unmaps the boot ROM when written
// with a non-zero value.
const BootControl uint16 = 0xFF50

// BootMapped returns true while the boot ROM shadows the start of the
// cartridge ROM window.
func (g *GameBoy) BootMapped() bool {
	return g.bootROM != nil && !g.bootDone
}

func (g *GameBoy) bootControl() mmu.Region {
	return mmu.Region{
		Name:  "boot control",
		Start: BootControl,
		Size:  1,
		Read: func(uint16) uint8 {
			if g.bootDone {
				return 0xFF
			}
			return 0xFE
		},
		Write: func(_ uint16, v uint8) {
			if v != 0 && !g.bootDone {
				g.bootDone = true
				g.Debugf("gameboy: boot ROM unmapped")
			}
		},
	}
}

// Step executes a single instruction.
func (g *GameBoy) Step() error {
	return g.CPU.Tick(g.MMU)
}

// Run steps the CPU until it faults, halts or stops, the context is
// cancelled, or maxSteps instructions have been executed. A maxSteps
// of 0 means no limit. Run returns the number of instructions
// executed.
func (g *GameBoy) Run(ctx context.Context, maxSteps int) (int, error) {
	steps := 0
	for maxSteps <= 0 || steps < maxSteps {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if g.CPU.Mode() != cpu.ModeNormal {
			g.Infof("gameboy: cpu halted at 0x%04X after %d steps", g.CPU.PC, steps)
			return steps, nil
		}

		pc := g.CPU.PC
		if err := g.Step(); err != nil {
			g.Errorf("gameboy: fault at 0x%04X: %v", pc, err)
			return steps, fmt.Errorf("gameboy: step %d at 0x%04X: %w", steps, pc, err)
		}
		steps++
	}
	return steps, nil
}

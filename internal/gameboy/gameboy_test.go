package gameboy

import (
	"context"
	"errors"
	"testing"

	"github.com/thelolagemann/gbcore/internal/boot"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/types"
)

// newTestROM returns a 32kB image with program placed at the
// cartridge entry point.
func newTestROM(program ...byte) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x0134:], "TEST")
	copy(rom[EntryPoint:], program)
	return rom
}

func TestNewGameBoy(t *testing.T) {
	t.Run("power on", func(t *testing.T) {
		g, err := NewGameBoy(newTestROM())
		if err != nil {
			t.Fatal(err)
		}
		if g.CPU.PC != types.WRAMStart {
			t.Errorf("expected PC 0x%04X, got 0x%04X", types.WRAMStart, g.CPU.PC)
		}
		if g.Cart.Title() != "TEST" {
			t.Errorf("expected title TEST, got %q", g.Cart.Title())
		}
		if g.APU != nil || g.BootMapped() {
			t.Errorf("expected no sound and no boot ROM")
		}
	})
	t.Run("no bios", func(t *testing.T) {
		g, err := NewGameBoy(newTestROM(), NoBios())
		if err != nil {
			t.Fatal(err)
		}
		if g.CPU.PC != EntryPoint || g.CPU.SP != types.WRAMEnd {
			t.Errorf("expected PC 0x0100 and SP 0xE000, got %s", &g.CPU.Registers)
		}
	})
	t.Run("invalid cartridge", func(t *testing.T) {
		if _, err := NewGameBoy(make([]byte, 0x10)); !errors.Is(err, cartridge.ErrHeaderTooShort) {
			t.Errorf("expected ErrHeaderTooShort, got %v", err)
		}
	})
	t.Run("invalid boot rom", func(t *testing.T) {
		if _, err := NewGameBoy(newTestROM(), WithBootROM(make([]byte, 10))); !errors.Is(err, boot.ErrInvalidLength) {
			t.Errorf("expected ErrInvalidLength, got %v", err)
		}
	})
}

func TestGameBoy_Run(t *testing.T) {
	t.Run("halt", func(t *testing.T) {
		g, err := NewGameBoy(newTestROM(
			0x3E, 0x42,       // LD A, 0x42
			0xEA, 0x00, 0xC0, // LD (0xC000), A
			0x76,             // HALT
		), NoBios())
		if err != nil {
			t.Fatal(err)
		}
		steps, err := g.Run(context.Background(), 0)
		if err != nil {
			t.Fatal(err)
		}
		if steps != 3 {
			t.Errorf("expected 3 steps, got %d", steps)
		}
		if v, _ := g.MMU.Read(0xC000); v != 0x42 {
			t.Errorf("expected 0x42 at 0xC000, got 0x%02X", v)
		}
		if !g.CPU.Halted() {
			t.Errorf("expected the CPU to be halted")
		}
	})
	t.Run("fault", func(t *testing.T) {
		g, err := NewGameBoy(newTestROM(0x00, 0xD3), NoBios())
		if err != nil {
			t.Fatal(err)
		}
		steps, err := g.Run(context.Background(), 0)
		var fault *cpu.UnknownInstructionFault
		if !errors.As(err, &fault) {
			t.Fatalf("expected UnknownInstructionFault, got %v", err)
		}
		if steps != 1 || fault.PC != 0x0101 {
			t.Errorf("expected fault at 0x0101 after 1 step, got 0x%04X after %d", fault.PC, steps)
		}
		if g.CPU.PC != 0x0101 {
			t.Errorf("expected PC to stay at 0x0101, got 0x%04X", g.CPU.PC)
		}
	})
	t.Run("step limit", func(t *testing.T) {
		g, err := NewGameBoy(newTestROM(0x18, 0xFE), NoBios()) // JR -2
		if err != nil {
			t.Fatal(err)
		}
		steps, err := g.Run(context.Background(), 10)
		if err != nil {
			t.Fatal(err)
		}
		if steps != 10 || g.CPU.PC != EntryPoint {
			t.Errorf("expected 10 steps at 0x0100, got %d at 0x%04X", steps, g.CPU.PC)
		}
	})
	t.Run("cancelled", func(t *testing.T) {
		g, err := NewGameBoy(newTestROM(0x18, 0xFE), NoBios())
		if err != nil {
			t.Fatal(err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if steps, err := g.Run(ctx, 0); steps != 0 || !errors.Is(err, context.Canceled) {
			t.Errorf("expected 0 steps and context.Canceled, got %d and %v", steps, err)
		}
	})
}

func TestGameBoy_BootROM(t *testing.T) {
	bootROM := make([]byte, boot.Size)
	copy(bootROM, []byte{
		0x3E, 0x01, // LD A, 0x01
		0xE0, 0x50, // LDH (0x50), A
		0xD3,       // never reached, the cartridge is mapped by now
	})
	rom := newTestROM()
	rom[0x0004] = 0x76 // HALT

	g, err := NewGameBoy(rom, WithBootROM(bootROM))
	if err != nil {
		t.Fatal(err)
	}
	if g.CPU.PC != 0x0000 || !g.BootMapped() {
		t.Fatalf("expected to start in the boot ROM, got PC 0x%04X", g.CPU.PC)
	}
	if v, _ := g.MMU.Read(BootControl); v != 0xFE {
		t.Errorf("expected boot control 0xFE, got 0x%02X", v)
	}

	steps, err := g.Run(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if steps != 3 || !g.CPU.Halted() {
		t.Errorf("expected to halt after 3 steps, got %d", steps)
	}
	if g.BootMapped() {
		t.Errorf("expected the boot ROM to be unmapped")
	}
	if v, _ := g.MMU.Read(0x0004); v != 0x76 {
		t.Errorf("expected the cartridge at 0x0004, got 0x%02X", v)
	}
}

func TestGameBoy_Sound(t *testing.T) {
	g, err := NewGameBoy(newTestROM(
		0x3E, 0x80, // LD A, 0x80
		0xE0, 0x26, // LDH (0x26), A
		0xF0, 0x26, // LDH A, (0x26)
		0x76,       // HALT
	), NoBios(), WithSound())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Run(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if !g.APU.Enabled() {
		t.Errorf("expected the APU to be powered on")
	}
	if g.CPU.A != 0xF0 {
		t.Errorf("expected NR52 0xF0, got 0x%02X", g.CPU.A)
	}
}

func TestGameBoy_NoSound(t *testing.T) {
	g, err := NewGameBoy(newTestROM(
		0x3E, 0x80, // LD A, 0x80
		0xE0, 0x26, // LDH (0x26), A
	), NoBios())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Run(context.Background(), 0); err == nil {
		t.Errorf("expected a write fault without the sound registers")
	}
}

// Package cartridge provides the game cartridge for the DMG. The
// cartridge holds the game ROM, and describes itself through the
// header at 0x0100 - 0x014F.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Cartridge represents a basic game cartridge, without a memory bank
// controller. Only the fixed ROM bank is visible through Read.
type Cartridge struct {
	rom    []byte
	header Header
}

// New parses the header of rom, and returns a cartridge holding it.
// The cartridge takes ownership of rom.
func New(rom []byte) (*Cartridge, error) {
	header, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}
	return &Cartridge{
		rom:    rom,
		header: header,
	}, nil
}

// Load reads a cartridge from the given file, which may be compressed.
func Load(filename string) (*Cartridge, error) {
	rom, err := utils.LoadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cartridge: loading %s: %w", filename, err)
	}
	return New(rom)
}

// Header returns the parsed header of the cartridge.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the title of the cartridge.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// RAMSize returns the size of the external RAM in bytes.
func (c *Cartridge) RAMSize() uint {
	return c.header.RAMSize
}

// Checksum returns the xxhash of the whole image, used to identify a
// ROM independently of its header.
func (c *Cartridge) Checksum() uint64 {
	return xxhash.Sum64(c.rom)
}

// Read returns the byte at the given offset into the image.
func (c *Cartridge) Read(address uint16) uint8 {
	return c.rom[address]
}

// Size returns the length of the image in bytes.
func (c *Cartridge) Size() int {
	return len(c.rom)
}

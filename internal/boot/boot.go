// Package boot provides the boot overlay image. When the CPU first
// powers on, the boot ROM is mapped over the start of the cartridge
// ROM window, and stays there until something external unmaps it.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// Size is the size of a DMG-family boot ROM.
const Size = int(types.BootROMEnd - types.BootROMStart)

// ErrInvalidLength is returned when a boot image is not exactly Size bytes.
var ErrInvalidLength = errors.New("boot: invalid boot rom length")

// ROM represents a boot ROM for the Game Boy, mapped to memory
// addresses 0x0000 - 0x00FF.
//
// The boot ROM performs a series of tasks, such as initializing the
// hardware, setting the stack pointer, scrolling the Nintendo logo, etc.
type ROM struct {
	raw      [Size]byte // the raw boot rom
	checksum string     // the MD5 checksum of the boot rom
}

// LoadBootROM copies b into a new ROM. The image must be exactly
// 256 bytes long.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, len(b))
	}

	r := &ROM{}
	copy(r.raw[:], b)

	bootChecksum := md5.Sum(b)
	r.checksum = hex.EncodeToString(bootChecksum[:])

	return r, nil
}

// Read returns the byte at the given offset into the boot ROM.
func (b *ROM) Read(addr uint16) byte {
	return b.raw[addr]
}

// Size returns the number of bytes in the image.
func (b *ROM) Size() int {
	return Size
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot rom. The model
// is determined by the checksum of the boot rom.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

// knownBootROMChecksums maps the published checksums of the
// 256-byte boot ROMs to the model they were dumped from.
var knownBootROMChecksums = map[string]string{
	DMG0: "Game Boy (DMG-0)",
	DMG:  "Game Boy (DMG-01)",
	MGB:  "Game Boy Pocket",
	SGB:  "Super Game Boy",
	SGB2: "Super Game Boy 2",
}

const (
	// DMG0 is the checksum of the DMG early boot ROM, a variant
	// that was found in very early DMG units and only ever sold
	// in Japan.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the checksum of the DMG boot rom, which is
	// the most common boot ROM found in the original DMG-01
	// models.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs only by a single byte from the DMG boot ROM,
	// loading the value 0xFF into the A register, rather than 0x01.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB is the checksum of the SGB boot ROM.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 is the checksum of the SGB2 boot ROM.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
)

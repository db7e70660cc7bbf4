// Package mmu provides the address space router for the Game Boy. The
// MMU is unaware of the CPU, and maps every access onto one of a
// prioritized list of regions, each backed by its own store.
package mmu

import (
	"github.com/thelolagemann/gbcore/internal/boot"
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// ROM is a read-only image mapped into the cartridge ROM window.
type ROM interface {
	Read(address uint16) uint8
	Size() int
}

// Image adapts a plain byte slice to the ROM interface.
type Image []byte

func (i Image) Read(address uint16) uint8 { return i[address] }
func (i Image) Size() int { return len(i) }

// MMU is the memory management unit for the Game Boy. It routes
// every read and write to the region covering the address, and
// faults when there is none.
type MMU struct {
	// regions in priority order, the first live match wins
	regions []*Region

	// 0x0000 - 0x00FF - BOOT ROM (256B)
	bootROM    *boot.ROM
	bootStatus func() bool

	// 0x0000 - 0x3FFF - ROM (16kB)
	cart ROM

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vRAM ram.RAM

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	wRAM ram.RAM

	extra []Region

	Log log.Logger
}

// Opt configures an MMU.
type Opt func(m *MMU)

// WithBootROM maps the boot ROM over the start of the cartridge
// window.
func WithBootROM(rom *boot.ROM) Opt {
	return func(m *MMU) {
		m.bootROM = rom
	}
}

// WithBootStatus supplies the boot-status condition deciding which of
// the boot overlay and the cartridge window is live at 0x0000-0x00FF.
// mapped should return true while the boot ROM is still mapped. Without
// it, the boot overlay stays mapped for the lifetime of the MMU.
func WithBootStatus(mapped func() bool) Opt {
	return func(m *MMU) {
		m.bootStatus = mapped
	}
}

// WithRegion adds a peripheral region to the address space, after the
// fixed regions.
func WithRegion(r Region) Opt {
	return func(m *MMU) {
		m.extra = append(m.extra, r)
	}
}

// WithLogger sets the logger used by the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// NewMMU returns a new MMU with the given cartridge mapped into the
// ROM window. The MMU takes ownership of cart.
func NewMMU(cart ROM, opts ...Opt) *MMU {
	m := &MMU{
		cart: cart,
		vRAM: ram.NewRAM(uint32(types.VRAMEnd - types.VRAMStart)),
		wRAM: ram.NewRAM(uint32(types.WRAMEnd - types.WRAMStart)),
		Log:  log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.init()

	return m
}

func (m *MMU) init() {
	if m.bootROM != nil {
		m.regions = append(m.regions, &Region{
			Name:   "boot",
			Start:  types.BootROMStart,
			Size:   int(types.BootROMEnd - types.BootROMStart),
			Read:   readOffset(m.bootROM.Read, types.BootROMStart),
			Mapped: m.bootMapped,
		})
	}

	m.regions = append(m.regions,
		&Region{
			Name:  "cartridge",
			Start: types.CartridgeROMStart,
			Size:  int(types.CartridgeROMEnd - types.CartridgeROMStart),
			Read:  m.readCart,
		},
		&Region{
			Name:  "vram",
			Start: types.VRAMStart,
			Size:  m.vRAM.Size(),
			Read:  readOffset(m.vRAM.Read, types.VRAMStart),
			Write: writeOffset(m.vRAM.Write, types.VRAMStart),
		},
		&Region{
			Name:  "wram",
			Start: types.WRAMStart,
			Size:  m.wRAM.Size(),
			Read:  readOffset(m.wRAM.Read, types.WRAMStart),
			Write: writeOffset(m.wRAM.Write, types.WRAMStart),
		},
	)

	for i := range m.extra {
		m.regions = append(m.regions, &m.extra[i])
	}

	for _, r := range m.regions {
		m.Log.Debugf("mmu: mapped %s", r)
	}
}

func (m *MMU) bootMapped() bool {
	if m.bootStatus == nil {
		return true
	}
	return m.bootStatus()
}

// readCart reads from the cartridge window. Addresses past the end
// of an undersized image read as an open bus.
func (m *MMU) readCart(address uint16) uint8 {
	offset := address - types.CartridgeROMStart
	if m.cart == nil || int(offset) >= m.cart.Size() {
		return 0xFF
	}
	return m.cart.Read(offset)
}

// region returns the live region covering the address.
func (m *MMU) region(address uint16) *Region {
	for _, r := range m.regions {
		if r.Contains(address) && r.live() {
			return r
		}
	}
	return nil
}

// Regions returns a copy of the region table in priority order.
func (m *MMU) Regions() []Region {
	regions := make([]Region, len(m.regions))
	for i, r := range m.regions {
		regions[i] = *r
	}
	return regions
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) (uint8, error) {
	r := m.region(address)
	if r == nil {
		return 0, &AddressFault{Address: address, Access: AccessRead}
	}
	return r.Read(address), nil
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) error {
	r, err := m.writable(address)
	if err != nil {
		return err
	}
	r.Write(address, value)
	return nil
}

func (m *MMU) writable(address uint16) (*Region, error) {
	r := m.region(address)
	if r == nil || r.ReadOnly() {
		return nil, &AddressFault{Address: address, Access: AccessWrite}
	}
	return r, nil
}

// Read16 returns the little-endian word at the given address.
func (m *MMU) Read16(address uint16) (uint16, error) {
	low, err := m.Read(address)
	if err != nil {
		return 0, err
	}
	high, err := m.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return bits.Uint16(high, low), nil
}

// Write16 writes the word at the given address, low byte first. Both
// bytes are checked before either is written, so a fault never
// leaves half a word behind.
func (m *MMU) Write16(address uint16, value uint16) error {
	lowRegion, err := m.writable(address)
	if err != nil {
		return err
	}
	highRegion, err := m.writable(address + 1)
	if err != nil {
		return err
	}
	lowRegion.Write(address, uint8(value))
	highRegion.Write(address+1, uint8(value>>8))
	return nil
}

package cartridge

import (
	"bytes"
	"errors"
	"fmt"
)

// The header occupies 0x0100 - 0x014F of every cartridge image.
const (
	headerStart = 0x0100
	headerEnd   = 0x0150
)

var (
	// ErrHeaderTooShort is returned when an image ends before its header does.
	ErrHeaderTooShort = errors.New("cartridge: image too short for header")
	// ErrInvalidRAMSize is returned when the RAM size byte at 0x0149 is not
	// one of the known sizes.
	ErrInvalidRAMSize = errors.New("cartridge: invalid RAM size")
)

type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

// ramSizes maps the RAM size byte to the size of the external RAM in bytes.
var ramSizes = map[uint8]uint{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
}

type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	POCKETCAMERA      Type = 0x1F
	BANDAITAMA5       Type = 0xFD
	HUDSONHUC3        Type = 0xFE
	HUDSONHUC1        Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:               "ROM ONLY",
	MBC1:              "MBC1",
	MBC1RAM:           "MBC1+RAM",
	MBC1RAMBATT:       "MBC1+RAM+BATTERY",
	MBC2:              "MBC2",
	MBC2BATT:          "MBC2+BATTERY",
	ROMRAM:            "ROM+RAM",
	ROMRAMBATT:        "ROM+RAM+BATTERY",
	MMM01:             "MMM01",
	MMM01RAM:          "MMM01+RAM",
	MMM01RAMBATT:      "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:     "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:              "MBC3",
	MBC3RAM:           "MBC3+RAM",
	MBC3RAMBATT:       "MBC3+RAM+BATTERY",
	MBC5:              "MBC5",
	MBC5RAM:           "MBC5+RAM",
	MBC5RAMBATT:       "MBC5+RAM+BATTERY",
	MBC5RUMBLE:        "MBC5+RUMBLE",
	MBC5RUMBLERAM:     "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT: "MBC5+RUMBLE+RAM+BATTERY",
	POCKETCAMERA:      "POCKET CAMERA",
	BANDAITAMA5:       "BANDAI TAMA5",
	HUDSONHUC3:        "HuC3",
	HUDSONHUC1:        "HuC1+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", uint8(t))
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game, up to the first NUL byte
	Title string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CartridgeGBMode Flag

	SGBFlag        bool
	CartridgeType  Type
	ROMSize        uint
	RAMSize        uint
	HeaderChecksum uint8
	GlobalChecksum uint16

	raw [headerEnd - headerStart]byte
}

// parseHeader parses the header of the given ROM image.
func parseHeader(rom []byte) (Header, error) {
	if len(rom) < headerEnd {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrHeaderTooShort, len(rom))
	}

	h := Header{}
	copy(h.raw[:], rom[headerStart:headerEnd])
	header := h.raw[:]

	// parse the mode of the cartridge and parse the header accordingly
	switch header[0x43] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	// parse the title
	title := header[0x34:0x44]
	if h.CartridgeGBMode != FlagOnlyDMG {
		title = header[0x34:0x43]
	}
	if i := bytes.IndexByte(title, 0); i >= 0 {
		title = title[:i]
	}
	h.Title = string(title)

	h.SGBFlag = header[0x46] == 0x03
	h.CartridgeType = Type(header[0x47])

	// parse the ROM size (calculated by 32kB x (1 << n))
	h.ROMSize = (32 * 1024) << header[0x48]

	ramSize, ok := ramSizes[header[0x49]]
	if !ok {
		return Header{}, fmt.Errorf("%w: 0x%02X", ErrInvalidRAMSize, header[0x49])
	}
	h.RAMSize = ramSize

	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	return h, nil
}

// HeaderChecksumValid reports whether the header checksum at 0x014D
// matches the bytes 0x0134 - 0x014C, as the boot ROM checks it.
func (h *Header) HeaderChecksumValid() bool {
	var sum uint8
	for _, b := range h.raw[0x34:0x4D] {
		sum = sum - b - 1
	}
	return sum == h.HeaderChecksum
}

func (h *Header) GameboyColor() bool {
	return h.CartridgeGBMode == FlagOnlyCGB || h.CartridgeGBMode == FlagSupportsCGB
}

func (h *Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB, FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("%s Mode: %s | Type: %s | ROM Size: %dkB | RAM Size: %dkB",
		h.Title, h.Hardware(), h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}

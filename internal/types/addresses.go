package types

// The fixed regions of the address space. Each region is described by
// its first address and the address one past its last byte, so that
// the size of a region is always End - Start.
const (
	// BootROMStart is the first address of the boot overlay. While
	// the boot ROM is mapped it shadows the start of the cartridge
	// ROM window.
	BootROMStart uint16 = 0x0000
	// BootROMEnd is one past the last address of the boot overlay.
	BootROMEnd uint16 = 0x0100

	// CartridgeROMStart is the first address of the fixed cartridge
	// ROM window (bank 0).
	CartridgeROMStart uint16 = 0x0000
	// CartridgeROMEnd is one past the last address of the cartridge
	// ROM window.
	CartridgeROMEnd uint16 = 0x4000

	// VRAMStart is the first address of video RAM.
	VRAMStart uint16 = 0x8000
	// VRAMEnd is one past the last address of video RAM.
	VRAMEnd uint16 = 0xA000

	// WRAMStart is the first address of working RAM. The CPU starts
	// executing from here when it is powered on.
	WRAMStart uint16 = 0xC000
	// WRAMEnd is one past the last address of working RAM.
	WRAMEnd uint16 = 0xE000

	// APUStart is the first address of the sound registers.
	APUStart uint16 = 0xFF10
	// WaveRAMStart is the first address of the wave pattern RAM of
	// the wave channel.
	WaveRAMStart uint16 = 0xFF30
	// WaveRAMEnd is one past the last address of wave RAM, and of the
	// sound registers.
	WaveRAMEnd uint16 = 0xFF40

	// HighPage is the base address used by the LDH family of
	// instructions, which address 0xFF00 + n.
	HighPage uint16 = 0xFF00
)

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware registers are mapped
// to memory addresses 0xFF00 - 0xFF7F.
type HardwareAddress = uint16

const (
	// NR10 is the address of the NR10 hardware register. The NR10
	// hardware register controls the frequency sweep of channel 1.
	//
	//  Bit 6-4 - Sweep period
	//  Bit 3   - Sweep direction (0: Addition, 1: Subtraction)
	//  Bit 2-0 - Sweep shift
	NR10 HardwareAddress = 0xFF10
	// NR11 is the address of the NR11 hardware register. The NR11
	// hardware register controls the wave duty and length timer of
	// channel 1.
	//
	//  Bit 7-6 - Wave duty
	//  Bit 5-0 - Initial length timer (write only)
	NR11 HardwareAddress = 0xFF11
	// NR12 is the address of the NR12 hardware register. The NR12
	// hardware register controls the volume envelope of channel 1.
	//
	//  Bit 7-4 - Initial volume
	//  Bit 3   - Envelope direction (0: Decrease, 1: Increase)
	//  Bit 2-0 - Envelope step
	NR12 HardwareAddress = 0xFF12
	// NR13 is the low 8 bits of channel 1's frequency (write only).
	NR13 HardwareAddress = 0xFF13
	// NR14 is the address of the NR14 hardware register.
	//
	//  Bit 7   - Trigger (write only)
	//  Bit 6   - Length enable
	//  Bit 2-0 - High 3 bits of the frequency (write only)
	NR14 HardwareAddress = 0xFF14
	NR21 HardwareAddress = 0xFF16
	NR22 HardwareAddress = 0xFF17
	NR23 HardwareAddress = 0xFF18
	NR24 HardwareAddress = 0xFF19
	// NR30 is the address of the NR30 hardware register. Bit 7
	// turns the DAC of the wave channel on or off.
	NR30 HardwareAddress = 0xFF1A
	NR31 HardwareAddress = 0xFF1B
	// NR32 selects the output level of the wave channel in bits 6-5.
	NR32 HardwareAddress = 0xFF1C
	NR33 HardwareAddress = 0xFF1D
	NR34 HardwareAddress = 0xFF1E
	NR41 HardwareAddress = 0xFF20
	NR42 HardwareAddress = 0xFF21
	// NR43 is the address of the NR43 hardware register. The NR43
	// hardware register controls the noise channel's polynomial
	// counter.
	//
	//  Bit 7-4 - Clock shift
	//  Bit 3   - LFSR width (0: 15 bits, 1: 7 bits)
	//  Bit 2-0 - Clock divider
	NR43 HardwareAddress = 0xFF22
	NR44 HardwareAddress = 0xFF23
	// NR50 is the address of the NR50 hardware register. The NR50
	// hardware register controls the master volume and VIN panning.
	NR50 HardwareAddress = 0xFF24
	// NR51 is the address of the NR51 hardware register, which pans
	// each channel to the left and right outputs.
	NR51 HardwareAddress = 0xFF25
	// NR52 is the address of the NR52 hardware register. The NR52
	// hardware register turns the APU on and off, and reports which
	// channels are currently active.
	//
	//  Bit 7   - Sound on/off
	//  Bit 3-0 - Channel 4-1 status (read only)
	NR52 HardwareAddress = 0xFF26
)

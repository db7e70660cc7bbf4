package types

// HardwareRegisters is a bank of memory-mapped hardware registers,
// indexed by their offset from the start of the bank. Offsets that
// have no register read as 0xFF and ignore writes, as unmapped I/O
// does on hardware.
type HardwareRegisters struct {
	base      HardwareAddress
	registers []*HardwareRegister
}

// NewHardwareRegisters returns an empty bank covering size addresses
// starting at base.
func NewHardwareRegisters(base HardwareAddress, size int) *HardwareRegisters {
	return &HardwareRegisters{
		base:      base,
		registers: make([]*HardwareRegister, size),
	}
}

// RegisterHardware adds a hardware register at the given address.
// Either function may be nil, in which case the register reads as
// 0xFF or ignores writes respectively.
func (h *HardwareRegisters) RegisterHardware(address HardwareAddress, write func(v uint8), read func() uint8) {
	if write == nil {
		write = NoWrite
	}
	if read == nil {
		read = NoRead
	}
	h.registers[address-h.base] = &HardwareRegister{
		address: address,
		write:   write,
		read:    read,
	}
}

// Contains reports whether the address falls inside the bank.
func (h *HardwareRegisters) Contains(address uint16) bool {
	return address >= h.base && int(address-h.base) < len(h.registers)
}

// Read returns the value of the hardware register for
// the given address.
func (h *HardwareRegisters) Read(address uint16) uint8 {
	if !h.Contains(address) || h.registers[address-h.base] == nil {
		return 0xFF
	}
	return h.registers[address-h.base].Read()
}

// Write writes the given value to the hardware register
// for the given address.
func (h *HardwareRegisters) Write(address uint16, value uint8) {
	if !h.Contains(address) || h.registers[address-h.base] == nil {
		return
	}
	h.registers[address-h.base].Write(value)
}

// HardwareRegister represents a single memory-mapped register,
// whose value is encoded and decoded by the owning peripheral.
type HardwareRegister struct {
	address HardwareAddress
	write   func(v uint8)
	read    func() uint8
}

// Address returns the address the register is mapped at.
func (h *HardwareRegister) Address() HardwareAddress {
	return h.address
}

func (h *HardwareRegister) Read() uint8 {
	return h.read()
}

func (h *HardwareRegister) Write(value uint8) {
	h.write(value)
}

// NoRead is a convenience function to return a read function that
// always returns 0xFF. This is useful for hardware IO that
// are not readable.
func NoRead() uint8 {
	return 0xFF
}

// NoWrite is a convenience function to return a write function that
// does nothing. This is useful for hardware IO that are not
// writable.
func NoWrite(v uint8) {
	// do nothing
}

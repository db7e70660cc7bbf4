package mmu

import "fmt"

// Region is a contiguous range of the address space, backed by a
// peripheral. The Read and Write functions are called with the
// absolute address being accessed.
type Region struct {
	// Name identifies the region in logs and faults.
	Name string
	// Start is the first address covered by the region.
	Start uint16
	// Size is the number of addresses covered by the region.
	Size int

	// Read is called when the CPU reads from the region.
	Read func(address uint16) uint8
	// Write is called when the CPU writes to the region. A nil
	// Write makes the region read-only.
	Write func(address uint16, value uint8)

	// Mapped reports whether the region is currently live. A nil
	// Mapped means the region is always live.
	Mapped func() bool
}

// Contains reports whether the address falls inside the region,
// regardless of whether the region is currently mapped.
func (r *Region) Contains(address uint16) bool {
	offset := int(address) - int(r.Start)
	return offset >= 0 && offset < r.Size
}

// Last returns the last address covered by the region.
func (r *Region) Last() uint16 {
	return r.Start + uint16(r.Size-1)
}

// ReadOnly reports whether writes to the region fault.
func (r *Region) ReadOnly() bool {
	return r.Write == nil
}

func (r *Region) live() bool {
	return r.Mapped == nil || r.Mapped()
}

func (r *Region) String() string {
	mode := "rw"
	if r.ReadOnly() {
		mode = "ro"
	}
	return fmt.Sprintf("%-12s 0x%04X-0x%04X %s", r.Name, r.Start, r.Last(), mode)
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

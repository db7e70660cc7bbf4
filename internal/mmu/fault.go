package mmu

import "fmt"

// Access is the kind of bus access that caused a fault.
type Access uint8

const (
	AccessRead Access = iota
	AccessWrite
)

func (a Access) String() string {
	if a == AccessWrite {
		return "write"
	}
	return "read"
}

// AddressFault is returned when an access targets an address that no
// live region covers, or writes to a read-only region. There is no
// fallback on hardware, so the fault is fatal to the caller.
type AddressFault struct {
	Address uint16
	Access  Access
}

func (f *AddressFault) Error() string {
	return fmt.Sprintf("mmu: %s fault at 0x%04X", f.Access, f.Address)
}

// Package bits provides helpers for working with the individual bits
// of a byte.
package bits

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Field returns the width bits of b starting at index i, shifted down.
func Field(b, i, width uint8) uint8 {
	return b >> i & (1<<width - 1)
}

// SetField returns b with the width bits starting at index i replaced
// by the low bits of v.
func SetField(b, i, width, v uint8) uint8 {
	mask := uint8(1<<width-1) << i
	return b&^mask | v<<i&mask
}

// Uint16 joins two bytes into a word.
func Uint16(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

package bitmap

import (
	"fmt"
	"math/bits"
)

// bitmapImpl is a concrete implementation of the Bitmap interface.
type bitmapImpl struct {
	data    []byte // Backing storage: each byte stores 8 bits
	numBits uint64 // Total number of bits in the bitmap
}

var _ Bitmap = (*bitmapImpl)(nil)

// NewBitmap creates a new bitmap with the specified number of bits.
// All bits are initialized to 0.
func NewBitmap(numBits uint64) Bitmap {
	numBytes := (numBits + 7) / 8
	return &bitmapImpl{
		data:    make([]byte, numBytes),
		numBits: numBits,
	}
}

func (b *bitmapImpl) check(i uint64) {
	if i >= b.numBits {
		panic(fmt.Sprintf("bitmap: index %d out of range [0, %d)", i, b.numBits))
	}
}

// Add sets the bit at position i to 1 (adds i to the set).
func (b *bitmapImpl) Add(i uint64) {
	b.check(i)
	b.data[i/8] |= 1 << (i % 8)
}

// Contains returns true if bit at position i is set (i is in the set).
func (b *bitmapImpl) Contains(i uint64) bool {
	b.check(i)
	return b.data[i/8]&(1<<(i%8)) != 0
}

// NextClear skips whole bytes that are fully set.
func (b *bitmapImpl) NextClear(from uint64) uint64 {
	if from >= b.numBits {
		return b.numBits
	}
	byteIdx := from / 8
	// Treat bits below from as set so they are skipped.
	cur := b.data[byteIdx] | byte(1<<(from%8)-1)
	for {
		if cur != 0xFF {
			pos := byteIdx*8 + uint64(bits.TrailingZeros8(^cur))
			if pos >= b.numBits {
				return b.numBits
			}
			return pos
		}
		byteIdx++
		if byteIdx >= uint64(len(b.data)) {
			return b.numBits
		}
		cur = b.data[byteIdx]
	}
}

// Len returns the number of addressable bits.
func (b *bitmapImpl) Len() uint64 {
	return b.numBits
}

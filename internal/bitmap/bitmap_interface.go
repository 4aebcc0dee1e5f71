package bitmap

// Bitmap is a set interface backed by a space-efficient bit array.
type Bitmap interface {
	// Add sets the bit at position i to 1 (adds i to the set).
	Add(i uint64)

	// Contains returns true if bit at position i is set (i is in the set).
	Contains(i uint64) bool

	// NextClear returns the first position >= from whose bit is 0, or Len()
	// if every bit from there on is set.
	NextClear(from uint64) uint64

	// Len returns the number of addressable bits.
	Len() uint64
}

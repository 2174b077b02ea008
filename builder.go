package bitmap

// ObjectBuilder stages mutable state and finalizes it into an immutable
// product of type T.
type ObjectBuilder[T any] interface {
	Build() T
}

// Builder stages the bits of a BitMap.  It is the only mutable piece of
// the package: set and unset bits freely, then Build to take an
// immutable snapshot.  The builder remains usable afterwards, and later
// mutation never leaks into vectors already built.
//
// A Builder is not safe for concurrent use; confine it to one goroutine.
type Builder struct {
	size int
	bits []byte
}

var _ ObjectBuilder[*BitMap] = (*Builder)(nil)

// NewBuilder returns a builder for a vector of the given number of bits,
// all initially zero.  Panics with *InvalidArgumentError if size is
// negative.
func NewBuilder(size int) *Builder {
	checkArgument(size >= 0, "size cannot be less than 0, got %d", size)
	// One block beyond the strict minimum, even when size is an exact
	// multiple of blockBits.  The rank caches assume this exact layout.
	return &Builder{
		size: size,
		bits: make([]byte, size/blockBits+1),
	}
}

// Set turns the bit at index to 1.  index must be within [0, size).
func (b *Builder) Set(index int) *Builder {
	b.checkIndex(index)
	b.bits[index/blockBits] |= 1 << (index % blockBits)
	return b
}

// Unset turns the bit at index to 0.  index must be within [0, size).
func (b *Builder) Unset(index int) *Builder {
	b.checkIndex(index)
	b.bits[index/blockBits] &^= 1 << (index % blockBits)
	return b
}

// Clear resets every bit to 0.
func (b *Builder) Clear() *Builder {
	for i := range b.bits {
		b.bits[i] = 0
	}
	return b
}

// Build finalizes the staged bits into a new immutable BitMap.  The
// vector deep-copies the buffer, so the builder may keep mutating (or be
// cleared and reused) without affecting anything built before.
func (b *Builder) Build() *BitMap {
	return newBitMap(b.size, b.bits)
}

func (b *Builder) checkIndex(index int) {
	checkArgument(index >= 0, "index cannot be less than 0, got %d", index)
	checkArgument(index < b.size, "index must be less than size %d, got %d", b.size, index)
}

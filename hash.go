// Copyright (c) 2015 Lei CHEN (raistlic). All Rights Reserved

package bitmap

import murmur "github.com/aviddiviner/go-murmur"

// Hash returns a 64 bit murmur hash of the logical bit sequence.  It is
// computed over the masked byte image of the logical bits with the size
// as the seed, so equal vectors hash identically regardless of how they
// were built, and the slack block never contributes.
func (m *BitMap) Hash() uint64 {
	return murmur.MurmurHash64A(m.logicalBytes(), uint64(m.size))
}

// logicalBytes renders exactly ceil(size/8) bytes with every bit at a
// position >= size cleared.
func (m *BitMap) logicalBytes() []byte {
	whole := m.size / blockBits
	tail := m.size % blockBits
	n := whole
	if tail != 0 {
		n++
	}
	out := make([]byte, n)
	copy(out, m.bits[:whole])
	if tail != 0 {
		out[whole] = m.bits[whole] & (byte(1)<<tail - 1)
	}
	return out
}

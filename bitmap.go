// Copyright (c) 2015 Lei CHEN (raistlic). All Rights Reserved

// package bitmap implements the classic binary rank and select structure:
// an immutable bit vector which answers
//  1. rank in constant time (how many ones, or zeros, up to an index)
//  2. select in logarithmic time (where is the i-th one, or zero)
//
// It caches one level of per-block prefix sums over 8-bit blocks plus
// intra-block lookup tables, rather than the multi-level o(n) layout of
// the theoretically optimal structure.
package bitmap

import "bytes"

// BitMap is an immutable bit vector with rank and select support.  Build
// one through a Builder or the New factory; once built it never changes
// and may be read by any number of goroutines without locking.
type BitMap struct {
	size int
	bits []byte

	// rankOneAt[b] counts the set bits in blocks [0..b]; rankZeroAt[b]
	// is the complement over the same whole blocks.  Both are monotone
	// and sized to the full block count, slack block included.
	rankOneAt  []int
	rankZeroAt []int
}

// New builds a BitMap of len(list) bits where bit i is set exactly when
// match(list[i]) holds.  It is shorthand for staging a Builder by hand.
// Panics with *InvalidArgumentError if match is nil; a nil list is the
// empty sequence.
func New[E any](list []E, match func(E) bool) *BitMap {
	checkArgument(match != nil, "match cannot be nil")
	b := NewBuilder(len(list))
	for i, e := range list {
		if match(e) {
			b.Set(i)
		}
	}
	return b.Build()
}

func newBitMap(size int, bits []byte) *BitMap {
	tablesOnce.Do(buildTables)

	m := &BitMap{
		size:       size,
		bits:       append([]byte(nil), bits...),
		rankOneAt:  make([]int, len(bits)),
		rankZeroAt: make([]int, len(bits)),
	}
	ones := 0
	for i, v := range m.bits {
		ones += int(rankWithin[v][blockBits-1])
		m.rankOneAt[i] = ones
		m.rankZeroAt[i] = (i+1)*blockBits - ones
	}
	return m
}

// Size returns the number of logical bits.
func (m *BitMap) Size() int {
	return m.size
}

// IsOne reports whether the bit at index is 1.  index must be within
// [0, Size()).
func (m *BitMap) IsOne(index int) bool {
	m.checkIndex(index)
	return m.bits[index/blockBits]&(1<<(index%blockBits)) != 0
}

// RankOne returns the number of ones in [0, index], inclusive.  index
// must be within [0, Size()).
func (m *BitMap) RankOne(index int) int {
	m.checkIndex(index)
	block, offset := index/blockBits, index%blockBits
	rank := int(rankWithin[m.bits[block]][offset])
	if block > 0 {
		rank += m.rankOneAt[block-1]
	}
	return rank
}

// RankZero returns the number of zeros in [0, index], inclusive.  For
// every valid index, RankOne(index)+RankZero(index) == index+1.
func (m *BitMap) RankZero(index int) int {
	m.checkIndex(index)
	return index - m.RankOne(index) + 1
}

// CountOnes returns the total number of ones in the vector.
func (m *BitMap) CountOnes() int {
	if m.size == 0 {
		return 0
	}
	return m.RankOne(m.size - 1)
}

// CountZeros returns the total number of zeros in the vector.
func (m *BitMap) CountZeros() int {
	return m.size - m.CountOnes()
}

// SelectOne returns the index of the (i+1)-th one, or -1 when the vector
// holds no more than i ones.  The -1 is an ordinary answer, not an
// error.  Panics with *InvalidArgumentError if i is negative.
func (m *BitMap) SelectOne(i int) int {
	checkArgument(i >= 0, "i cannot be less than 0, got %d", i)
	if i >= m.CountOnes() {
		return -1
	}
	block := searchBlock(m.rankOneAt, i)
	counted := 0
	if block > 0 {
		counted = m.rankOneAt[block-1]
	}
	return block*blockBits + int(selectOneWithin[m.bits[block]][i-counted])
}

// SelectZero returns the index of the (i+1)-th zero, or -1 when the
// vector holds no more than i zeros.  Panics with *InvalidArgumentError
// if i is negative.
func (m *BitMap) SelectZero(i int) int {
	checkArgument(i >= 0, "i cannot be less than 0, got %d", i)
	if m.size == 0 || i >= m.RankZero(m.size-1) {
		return -1
	}
	block := searchBlock(m.rankZeroAt, i)
	counted := 0
	if block > 0 {
		counted = m.rankZeroAt[block-1]
	}
	return block*blockBits + int(selectZeroWithin[m.bits[block]][i-counted])
}

// searchBlock finds the smallest block whose cumulative rank exceeds
// count.  The guards in SelectOne/SelectZero guarantee such a block
// exists.  Iterative narrowing of [left, right] until the bounds are
// adjacent; the recursive formulation would grow the stack with the
// block count.
func searchBlock(rank []int, count int) int {
	left, right := 0, len(rank)-1
	for left+1 < right {
		mid := left + (right-left)/2
		if rank[mid] > count {
			right = mid
		} else {
			left = mid
		}
	}
	if left == right || rank[left] > count {
		return left
	}
	return right
}

// Equal reports structural equality: same size and the same bit value at
// every index.  Bits past the logical size never participate.
func (m *BitMap) Equal(o *BitMap) bool {
	if m == o {
		return true
	}
	if o == nil || m.size != o.size {
		return false
	}
	whole := m.size / blockBits
	if !bytes.Equal(m.bits[:whole], o.bits[:whole]) {
		return false
	}
	if tail := m.size % blockBits; tail != 0 {
		mask := byte(1)<<tail - 1
		return m.bits[whole]&mask == o.bits[whole]&mask
	}
	return true
}

func (m *BitMap) checkIndex(index int) {
	checkArgument(index >= 0, "index cannot be less than 0, got %d", index)
	checkArgument(index < m.size, "index must be less than size %d, got %d", m.size, index)
}

// Copyright (c) 2015 Lei CHEN (raistlic). All Rights Reserved

package bitmap

import "sync"

// blockBits is the granule of the rank caches and the lookup tables.
// Every query splits an index into a block number and an offset within
// the block; the tables answer the intra-block part in O(1).
const blockBits = 8

// The tables are indexed by a block's raw 8-bit value:
//
//	rankWithin[v][k]        set bits among the low k+1 bits of v
//	selectOneWithin[v][j]   offset of the (j+1)-th set bit of v, or -1
//	selectZeroWithin[v][j]  offset of the (j+1)-th unset bit of v, or -1
//
// Roughly 24KB in total, built once on first construction and read
// without synchronization afterwards.
var (
	tablesOnce       sync.Once
	rankWithin       [256][blockBits]uint8
	selectOneWithin  [256][blockBits]int8
	selectZeroWithin [256][blockBits]int8
)

func buildTables() {
	for v := 0; v < 256; v++ {
		for k := 0; k < blockBits; k++ {
			n := uint8(0)
			for bit := 0; bit <= k; bit++ {
				if v&(1<<bit) != 0 {
					n++
				}
			}
			rankWithin[v][k] = n
		}
		// The select tables come from scanning the rank row for the
		// first offset reaching each count.
		for j := 0; j < blockBits; j++ {
			selectOneWithin[v][j] = -1
			for k := 0; k < blockBits; k++ {
				if int(rankWithin[v][k]) == j+1 {
					selectOneWithin[v][j] = int8(k)
					break
				}
			}
			selectZeroWithin[v][j] = -1
			for k := 0; k < blockBits; k++ {
				if k+1-int(rankWithin[v][k]) == j+1 {
					selectZeroWithin[v][j] = int8(k)
					break
				}
			}
		}
	}
}

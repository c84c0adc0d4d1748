package radix

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-radixsort/gpu"
)

func newTestDevice(t *testing.T) *gpu.Device {
	t.Helper()
	caps := gpu.Capabilities{SubgroupSize: 32, HasBallot: true, HasInclusiveAdd: true, HasPushConstants: true}
	dev := gpu.NewDevice(caps, 4)
	t.Cleanup(dev.Close)
	return dev
}

func TestCountPassHistogramMatchesNaive(t *testing.T) {
	dev := newTestDevice(t)
	tn := DefaultTuning(32)
	tn.RowsPerWorkgroup = 1 // smallest L (one row of T keys); these keys all land in block 0

	keys := []uint32{0x01, 0x01, 0xFF, 0x02, 0x01, 0x7F, 0x00, 0xAB, 0xAB, 0xAB}
	n := uint32(len(keys))
	b := tn.NumBlocks(n)
	bPow2 := tn.NumBlocksPow2(n)
	blocks := make([]uint32, bPow2*RadixCount)

	pc := gpu.PushConstants{NumberOfKeys: n, NumberOfBlocks: b, PassIndex: 0}
	require.NoError(t, countPass(context.Background(), dev, tn, keys, pc, blocks))

	l := tn.BlockLen()
	for blk := uint32(0); blk < b; blk++ {
		want := make(map[uint32]uint32)
		base := blk * l
		end := min(base+l, n)
		for _, k := range keys[base:end] {
			want[k&0xFF]++
		}
		got := row(blocks, blk)
		var sum uint32
		for r, c := range got {
			sum += c
			if want[uint32(r)] != c {
				t.Errorf("block %d radix %d: got %d want %d", blk, r, c, want[uint32(r)])
			}
		}
		if sum != end-base {
			t.Errorf("block %d: histogram sums to %d, want %d", blk, sum, end-base)
		}
	}
}

func TestCountPassUsesCorrectPassShift(t *testing.T) {
	dev := newTestDevice(t)
	tn := DefaultTuning(32)

	keys := []uint32{0x0000_00AB, 0x0000_AB00, 0x00AB_0000, 0xAB00_0000}
	n := uint32(len(keys))
	bPow2 := tn.NumBlocksPow2(n)

	for pass := uint32(0); pass < Passes; pass++ {
		blocks := make([]uint32, bPow2*RadixCount)
		pc := gpu.PushConstants{NumberOfKeys: n, NumberOfBlocks: tn.NumBlocks(n), PassIndex: pass}
		require.NoError(t, countPass(context.Background(), dev, tn, keys, pc, blocks))
		got := row(blocks, 0)
		if got[0xAB] != 1 {
			t.Errorf("pass %d: expected exactly one key with radix 0xAB, histogram[0xAB]=%d", pass, got[0xAB])
		}
	}
}

func TestCountPassEmptyInput(t *testing.T) {
	dev := newTestDevice(t)
	tn := DefaultTuning(32)
	pc := gpu.PushConstants{NumberOfKeys: 0, NumberOfBlocks: 0}
	require.NoError(t, countPass(context.Background(), dev, tn, nil, pc, nil))
}

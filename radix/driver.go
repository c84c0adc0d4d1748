// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package radix

import (
	"context"

	"github.com/ajroetker/go-radixsort/gpu"
)

// Sort runs the full four-pass LSD radix sort (C8, the host pass driver)
// over n keys on dev, using tn for the workgroup/subgroup shape. valsIn may
// be nil, in which case pass 0's scatter synthesizes the identity
// permutation (InitIndex=1) so the returned values track where each key
// originally sat. The returned slices are freshly allocated and never
// alias keysIn/valsIn.
func Sort(ctx context.Context, dev *gpu.Device, tn Tuning, n uint32, keysIn, valsIn []uint32) (keysOut, valsOut []uint32, err error) {
	if n == 0 {
		return []uint32{}, []uint32{}, nil
	}
	if err := tn.Validate(); err != nil {
		return nil, nil, err
	}

	b := tn.NumBlocks(n)
	bPow2 := tn.NumBlocksPow2(n)
	blocks := make([]uint32, bPow2*RadixCount)

	keysBufA := make([]uint32, n)
	keysBufB := make([]uint32, n)
	copy(keysBufA, keysIn[:n])

	valsBufA := make([]uint32, n)
	valsBufB := make([]uint32, n)
	haveVals := valsIn != nil
	if haveVals {
		copy(valsBufA, valsIn[:n])
	}

	if err := gpu.ValidatePlan(n, bPow2, RadixCount, gpu.Buffers{
		KeysIn:  keysBufA,
		ValsIn:  valsBufA,
		Blocks:  blocks,
		KeysOut: keysBufB,
		ValsOut: valsBufB,
	}); err != nil {
		return nil, nil, err
	}

	curKeys, outKeys := keysBufA, keysBufB
	curVals, outVals := valsBufA, valsBufB

	for pass := uint32(0); pass < Passes; pass++ {
		clear(blocks)

		initIndex := uint32(0)
		if pass == 0 && !haveVals {
			initIndex = 1
		}
		pc := gpu.PushConstants{
			NumberOfKeys:   n,
			NumberOfBlocks: b,
			PassIndex:      pass,
			InitIndex:      initIndex,
		}

		if err := countPass(ctx, dev, tn, curKeys, pc, blocks); err != nil {
			return nil, nil, err
		}
		if err := upSweepPass(ctx, dev, bPow2, blocks); err != nil {
			return nil, nil, err
		}
		if err := downSweepPass(ctx, dev, bPow2, blocks); err != nil {
			return nil, nil, err
		}
		if err := lastBlockScan(ctx, dev, tn, bPow2, blocks); err != nil {
			return nil, nil, err
		}

		scatterVals := curVals
		if initIndex == 1 {
			scatterVals = nil
		}
		if err := scatterPass(ctx, dev, tn, bPow2, curKeys, scatterVals, pc, blocks, outKeys, outVals); err != nil {
			return nil, nil, err
		}

		curKeys, outKeys = outKeys, curKeys
		curVals, outVals = outVals, curVals
	}

	return curKeys, curVals, nil
}

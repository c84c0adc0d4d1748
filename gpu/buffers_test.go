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

package gpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePlanOK(t *testing.T) {
	bufs := Buffers{
		KeysIn:  make([]uint32, 10),
		KeysOut: make([]uint32, 10),
		ValsOut: make([]uint32, 10),
		Blocks:  make([]uint32, 16*256),
	}
	require.NoError(t, ValidatePlan(10, 16, 256, bufs))
}

func TestValidatePlanNilValsInAllowed(t *testing.T) {
	bufs := Buffers{
		KeysIn:  make([]uint32, 10),
		ValsIn:  nil,
		KeysOut: make([]uint32, 10),
		ValsOut: make([]uint32, 10),
		Blocks:  make([]uint32, 16*256),
	}
	require.NoError(t, ValidatePlan(10, 16, 256, bufs))
}

func TestValidatePlanTooSmall(t *testing.T) {
	cases := []Buffers{
		{KeysIn: make([]uint32, 5), KeysOut: make([]uint32, 10), ValsOut: make([]uint32, 10), Blocks: make([]uint32, 16*256)},
		{KeysIn: make([]uint32, 10), KeysOut: make([]uint32, 5), ValsOut: make([]uint32, 10), Blocks: make([]uint32, 16*256)},
		{KeysIn: make([]uint32, 10), KeysOut: make([]uint32, 10), ValsOut: make([]uint32, 5), Blocks: make([]uint32, 16*256)},
		{KeysIn: make([]uint32, 10), KeysOut: make([]uint32, 10), ValsOut: make([]uint32, 10), Blocks: make([]uint32, 10)},
	}
	for i, bufs := range cases {
		require.Errorf(t, ValidatePlan(10, 16, 256, bufs), "case %d", i)
	}
}

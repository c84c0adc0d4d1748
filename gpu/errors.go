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

import "errors"

// ErrUnsupportedDevice is returned when a device lacks the subgroup ballot,
// subgroup inclusive-add, or push-constant support the kernel suite requires.
var ErrUnsupportedDevice = errors.New("gpu: device lacks required subgroup intrinsics or push constants")

// ErrBufferTooSmall is returned when a caller-supplied buffer cannot hold
// the data a plan requires.
var ErrBufferTooSmall = errors.New("gpu: buffer too small for requested plan")

// ErrInvalidTuning is returned when tuning constants violate the
// constraints tying T, K, and S together.
var ErrInvalidTuning = errors.New("gpu: invalid tuning constants")

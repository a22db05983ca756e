// Copyright 2025 go-adaptive Authors
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

// Package lanes emulates fixed-width vector registers with lane-wise integer
// arithmetic. A Vec holds one lane per element that fits in the register; all
// operations are element-wise and wrap per Go's native modular arithmetic,
// which matches what the corresponding packed integer instructions produce.
package lanes

import "unsafe"

// Integer is the set of element types a lane can hold.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Vec is an emulated vector register holding len(data) lanes of type T.
type Vec[T Integer] struct {
	data []T
}

// Count returns how many lanes of type T fit in a register of the given
// byte width.
//
// For example, with a 16-byte (SSE-class) register:
//   - int8: 16 lanes
//   - int16: 8 lanes
//   - int64: 2 lanes
func Count[T Integer](registerBytes int) int {
	var dummy T
	return registerBytes / int(unsafe.Sizeof(dummy))
}

// Splat broadcasts a single value into every lane of a new vector.
func Splat[T Integer](v T, count int) Vec[T] {
	data := make([]T, count)
	for i := range data {
		data[i] = v
	}
	return Vec[T]{data: data}
}

// Len returns the number of lanes.
func (v Vec[T]) Len() int {
	return len(v.data)
}

// Extract reads back a single lane.
func Extract[T Integer](v Vec[T], lane int) T {
	return v.data[lane]
}

// Add performs lane-wise addition with native wraparound.
func Add[T Integer](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs lane-wise subtraction with native wraparound.
func Sub[T Integer](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs lane-wise multiplication, keeping the low bits of each
// product as the packed "mullo" instructions do.
func Mul[T Integer](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

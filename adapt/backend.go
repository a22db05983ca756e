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

package adapt

import (
	"unsafe"

	"github.com/ambersophia/go-adaptive/internal/lanes"
)

// Integer is the set of widths a Number can hold.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Backend is the four-operation contract every technique implements. All
// backends are stateless and must be observationally equivalent to the
// Scalar backend for the same operands; a new tier only has to keep this
// seam stable.
//
// None of the operations guard against overflow (they wrap) or a zero
// divisor (Div panics with the runtime's division-by-zero error).
type Backend[T Integer] interface {
	// Technique identifies the tier this backend executes on.
	Technique() Technique

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
}

// ResolveBackend maps a requested technique to the backend that will execute
// it. Resolution is silent: a technique with no backend on this CPU — an
// absent vector tier, a reserved GPU identifier, or an unknown value — falls
// through to Scalar without error. Scalar and Auto resolve to Scalar
// directly. The returned backend's Technique method reports what was
// actually resolved, so callers can detect a downgrade.
func ResolveBackend[T Integer](t Technique) Backend[T] {
	switch t {
	case MMX:
		if hasMMX {
			return mmxBackend[T]{}
		}
	case SSE:
		if hasSSE {
			return sseBackend[T]{}
		}
	case AVX:
		if hasAVX {
			return avxBackend[T]{}
		}
	case AVX512:
		if hasAVX512 {
			return avx512Backend[T]{}
		}
	case NEON:
		if hasNEON {
			return neonBackend[T]{}
		}
	}
	return scalarBackend[T]{}
}

// broadcastBinary is the broadcast-then-reduce pattern shared by every
// vector tier: replicate both operands across all lanes of an emulated
// register, apply the lane-wise operation, and read back lane zero. Because
// every lane holds the same value, lane zero equals the scalar result. L is
// the lane element type (the epiN choice of the underlying instruction),
// which may be wider than T for the narrow-width multiply.
func broadcastBinary[L lanes.Integer, T Integer](op func(a, b lanes.Vec[L]) lanes.Vec[L], a, b T, registerBytes int) T {
	n := lanes.Count[L](registerBytes)
	va := lanes.Splat(L(a), n)
	vb := lanes.Splat(L(b), n)
	return T(lanes.Extract(op(va, vb), 0))
}

// vecAdd broadcasts into lanes matching the operand width and adds.
func vecAdd[T Integer](a, b T, registerBytes int) T {
	switch unsafe.Sizeof(a) {
	case 1:
		return broadcastBinary[int8](lanes.Add[int8], a, b, registerBytes)
	case 2:
		return broadcastBinary[int16](lanes.Add[int16], a, b, registerBytes)
	case 4:
		return broadcastBinary[int32](lanes.Add[int32], a, b, registerBytes)
	default:
		return broadcastBinary[int64](lanes.Add[int64], a, b, registerBytes)
	}
}

// vecSub broadcasts into lanes matching the operand width and subtracts.
func vecSub[T Integer](a, b T, registerBytes int) T {
	switch unsafe.Sizeof(a) {
	case 1:
		return broadcastBinary[int8](lanes.Sub[int8], a, b, registerBytes)
	case 2:
		return broadcastBinary[int16](lanes.Sub[int16], a, b, registerBytes)
	case 4:
		return broadcastBinary[int32](lanes.Sub[int32], a, b, registerBytes)
	default:
		return broadcastBinary[int64](lanes.Sub[int64], a, b, registerBytes)
	}
}

// vecMul multiplies in lanes. 1- and 2-byte operands widen to 16-bit lanes
// first (there is no 8-bit lane multiply); truncating back to T on
// extraction keeps exactly the low bits, reproducing native narrow-width
// wraparound. wide64 selects whether 8-byte operands multiply in 64-bit
// lanes or fall back to plain scalar multiplication — only the AVX-class
// tiers have a 64-bit lane multiply.
func vecMul[T Integer](a, b T, registerBytes int, wide64 bool) T {
	switch unsafe.Sizeof(a) {
	case 1, 2:
		return broadcastBinary[int16](lanes.Mul[int16], a, b, registerBytes)
	case 4:
		return broadcastBinary[int32](lanes.Mul[int32], a, b, registerBytes)
	default:
		if wide64 {
			return broadcastBinary[int64](lanes.Mul[int64], a, b, registerBytes)
		}
		return a * b
	}
}

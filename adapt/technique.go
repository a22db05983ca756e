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

import "unsafe"

// Technique identifies one execution strategy for the arithmetic backends.
// A technique is bound to a Number at construction and never changes for
// that value's lifetime.
type Technique uint8

const (
	// Scalar is the portable ground-truth path, always available.
	Scalar Technique = 0

	// MMX executes in 8-byte vector registers.
	MMX Technique = 1

	// SSE executes in 16-byte vector registers (x86-64 baseline tier).
	SSE Technique = 2

	// AVX executes in 32-byte vector registers.
	AVX Technique = 4

	// AVX512 executes in 64-byte vector registers.
	AVX512 Technique = 8

	// NEON executes in 16-byte vector registers on ARM.
	NEON Technique = 16

	// OpenCL and Vulkan are reserved identifiers with no backend. They
	// resolve like any other unavailable technique: to Scalar.
	OpenCL Technique = 200
	Vulkan Technique = 201

	// Auto lets the registry pick; it resolves to Scalar when named
	// explicitly, and constructors that take no technique use the width
	// default instead.
	Auto Technique = 255
)

// String returns the canonical display name of the technique. Techniques
// that are not available on this CPU render as "Scalar", because that is the
// backend they resolve to.
func (t Technique) String() string {
	if !Available(t) {
		return "Scalar"
	}
	switch t {
	case MMX:
		return "MMX"
	case SSE:
		return "SSE"
	case AVX:
		return "AVX"
	case AVX512:
		return "AVX512"
	case NEON:
		return "NEON"
	case OpenCL:
		return "OpenCL"
	case Vulkan:
		return "Vulkan"
	default:
		return "Scalar"
	}
}

// defaultOverrides pins specific widths to a technique regardless of the
// size heuristic below. An explicit, available technique request still wins
// over these.
var defaultOverrides = map[uintptr]Technique{
	1: Scalar,
	2: Scalar,
	4: Scalar,
	8: SSE,
}

// DefaultTechnique returns the default technique for an integer width in
// bytes. This is a pure heuristic, always overridable by naming a technique
// explicitly: narrow widths gain nothing from a vector detour, 8-byte widths
// default to the SSE-class tier, and anything wider maps to AVX (a dead arm
// today, since no width past 8 bytes exists).
func DefaultTechnique(sizeBytes uintptr) Technique {
	if t, ok := defaultOverrides[sizeBytes]; ok {
		return t
	}
	switch {
	case sizeBytes <= 4:
		return Scalar
	case sizeBytes <= 8:
		return SSE
	default:
		return AVX
	}
}

// DefaultTechniqueFor returns the default technique for the width of T.
func DefaultTechniqueFor[T Integer]() Technique {
	var dummy T
	return DefaultTechnique(unsafe.Sizeof(dummy))
}

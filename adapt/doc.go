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

// Package adapt provides fixed-width integers whose arithmetic is routed
// through interchangeable execution backends: a portable scalar path or one
// of several vector-register tiers (MMX, SSE, AVX, AVX512, NEON).
//
// Each Number is bound to exactly one backend when it is constructed and
// keeps that binding for its whole lifetime. All backends are observationally
// equivalent: for the same two operands every tier produces bit-identical
// results, because the vector tiers broadcast each scalar operand across all
// lanes of a register, operate lane-wise, and read back lane zero. The point
// is interchangeable execution engines, not SIMD batching — every operation
// is logically scalar.
//
// Which tiers exist is fixed at process start from the CPU's capabilities.
// Requesting a tier that is not available silently resolves to Scalar;
// Number.Technique reports the backend actually bound so callers can detect
// the downgrade.
//
//	a := adapt.New[int32](42)
//	b := adapt.New[int32](8)
//	sum := a.Add(b) // 50, executed on the default technique for 32-bit widths
//
//	w := adapt.NewWith[uint64](7, adapt.AVX)
//	fmt.Println(w.Technique()) // "AVX", or "Scalar" without AVX2 hardware
//
// Overflow on add, sub and mul always wraps per native modular arithmetic.
// Division truncates and performs no zero check: dividing by zero panics with
// the runtime's integer-divide-by-zero error, exactly as the native operator
// would.
package adapt

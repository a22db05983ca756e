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

// avx512RegisterBytes is the AVX-512 register width (512-bit ZMM registers).
const avx512RegisterBytes = 64

// avx512Backend executes in 64-byte registers. The construction is the same
// as AVX apart from register width; the DQ extension supplies the 64-bit
// lane multiply.
type avx512Backend[T Integer] struct{}

func (avx512Backend[T]) Technique() Technique { return AVX512 }

func (avx512Backend[T]) Add(a, b T) T {
	return vecAdd(a, b, avx512RegisterBytes)
}

func (avx512Backend[T]) Sub(a, b T) T {
	return vecSub(a, b, avx512RegisterBytes)
}

func (avx512Backend[T]) Mul(a, b T) T {
	return vecMul(a, b, avx512RegisterBytes, true)
}

// Div is not vectorized in any tier: integer divide has no packed form on
// the targeted hardware generations.
func (avx512Backend[T]) Div(a, b T) T { return a / b }

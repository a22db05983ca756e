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

// sseRegisterBytes is the SSE register width (128-bit XMM registers).
const sseRegisterBytes = 16

// sseBackend executes in 16-byte registers.
type sseBackend[T Integer] struct{}

func (sseBackend[T]) Technique() Technique { return SSE }

func (sseBackend[T]) Add(a, b T) T {
	return vecAdd(a, b, sseRegisterBytes)
}

func (sseBackend[T]) Sub(a, b T) T {
	return vecSub(a, b, sseRegisterBytes)
}

func (sseBackend[T]) Mul(a, b T) T {
	// No 64-bit lane multiply below AVX; 8-byte operands stay scalar.
	return vecMul(a, b, sseRegisterBytes, false)
}

// Div is not vectorized in any tier: integer divide has no packed form on
// the targeted hardware generations.
func (sseBackend[T]) Div(a, b T) T { return a / b }

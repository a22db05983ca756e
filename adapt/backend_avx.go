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

// avxRegisterBytes is the AVX register width (256-bit YMM registers).
const avxRegisterBytes = 32

// avxBackend executes in 32-byte registers.
type avxBackend[T Integer] struct{}

func (avxBackend[T]) Technique() Technique { return AVX }

func (avxBackend[T]) Add(a, b T) T {
	return vecAdd(a, b, avxRegisterBytes)
}

func (avxBackend[T]) Sub(a, b T) T {
	return vecSub(a, b, avxRegisterBytes)
}

func (avxBackend[T]) Mul(a, b T) T {
	return vecMul(a, b, avxRegisterBytes, true)
}

// Div is not vectorized in any tier: integer divide has no packed form on
// the targeted hardware generations.
func (avxBackend[T]) Div(a, b T) T { return a / b }

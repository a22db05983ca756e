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

// neonRegisterBytes is the NEON register width (128-bit Q registers).
const neonRegisterBytes = 16

// neonBackend executes in 16-byte registers on ARM.
type neonBackend[T Integer] struct{}

func (neonBackend[T]) Technique() Technique { return NEON }

func (neonBackend[T]) Add(a, b T) T {
	return vecAdd(a, b, neonRegisterBytes)
}

func (neonBackend[T]) Sub(a, b T) T {
	return vecSub(a, b, neonRegisterBytes)
}

func (neonBackend[T]) Mul(a, b T) T {
	// NEON has no 64-bit lane multiply; 8-byte operands stay scalar.
	return vecMul(a, b, neonRegisterBytes, false)
}

// Div is not vectorized in any tier: integer divide has no packed form on
// the targeted hardware generations.
func (neonBackend[T]) Div(a, b T) T { return a / b }

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

// mmxRegisterBytes is the MMX register width (64-bit MM registers).
const mmxRegisterBytes = 8

// mmxBackend executes in 8-byte registers. 8-byte operands occupy the whole
// register as a single lane.
type mmxBackend[T Integer] struct{}

func (mmxBackend[T]) Technique() Technique { return MMX }

func (mmxBackend[T]) Add(a, b T) T {
	return vecAdd(a, b, mmxRegisterBytes)
}

func (mmxBackend[T]) Sub(a, b T) T {
	return vecSub(a, b, mmxRegisterBytes)
}

func (mmxBackend[T]) Mul(a, b T) T {
	// MMX has no lane multiply past 16 bits; wider operands stay scalar.
	switch unsafe.Sizeof(a) {
	case 1, 2:
		return broadcastBinary[int16](lanes.Mul[int16], a, b, mmxRegisterBytes)
	default:
		return a * b
	}
}

// Div is not vectorized in any tier: integer divide has no packed form on
// the targeted hardware generations.
func (mmxBackend[T]) Div(a, b T) T { return a / b }

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

// scalarBackend is the ground truth every vector tier must reproduce:
// native wrapping add/sub, truncating mul, truncating div. No overflow
// checks, no zero-divisor guard.
type scalarBackend[T Integer] struct{}

func (scalarBackend[T]) Technique() Technique { return Scalar }

func (scalarBackend[T]) Add(a, b T) T { return a + b }

func (scalarBackend[T]) Sub(a, b T) T { return a - b }

func (scalarBackend[T]) Mul(a, b T) T { return a * b }

func (scalarBackend[T]) Div(a, b T) T { return a / b }

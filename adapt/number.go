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

import "fmt"

// Number wraps a single fixed-width integer and routes its arithmetic
// through the backend chosen at construction. Number has value semantics:
// copying or assigning one copies the held scalar and the binding together,
// and the binding never changes for the lifetime of a value.
//
// The zero Number is usable and executes on the Scalar backend.
//
// Binary operations use the receiver's backend. Operands are plain values;
// both sides must hold the same width, which the type system enforces.
type Number[T Integer] struct {
	val T
	ops Backend[T]
}

// New returns a Number holding v, bound to the default technique for T's
// width (see DefaultTechnique).
func New[T Integer](v T) Number[T] {
	return Number[T]{val: v, ops: ResolveBackend[T](DefaultTechniqueFor[T]())}
}

// NewWith returns a Number holding v, bound to the given technique. If the
// technique has no backend on this CPU the value silently binds to Scalar;
// Technique reports the backend actually bound.
func NewWith[T Integer](v T, tech Technique) Number[T] {
	return Number[T]{val: v, ops: ResolveBackend[T](tech)}
}

// backend returns the bound backend, reading the zero value as Scalar.
func (n Number[T]) backend() Backend[T] {
	if n.ops == nil {
		return scalarBackend[T]{}
	}
	return n.ops
}

// Value returns the held scalar.
func (n Number[T]) Value() T { return n.val }

// Technique returns the technique of the bound backend. After a silent
// fallback this is Scalar, not the technique that was requested.
func (n Number[T]) Technique() Technique { return n.backend().Technique() }

// Set replaces the held scalar. The backend binding is untouched.
func (n *Number[T]) Set(v T) { n.val = v }

// Add returns a new Number holding n + o, computed on n's backend.
// The result wraps per native modular arithmetic.
func (n Number[T]) Add(o Number[T]) Number[T] {
	return Number[T]{val: n.backend().Add(n.val, o.val), ops: n.ops}
}

// Sub returns a new Number holding n - o, computed on n's backend.
// The result wraps per native modular arithmetic.
func (n Number[T]) Sub(o Number[T]) Number[T] {
	return Number[T]{val: n.backend().Sub(n.val, o.val), ops: n.ops}
}

// Mul returns a new Number holding n * o truncated to T's width, computed
// on n's backend.
func (n Number[T]) Mul(o Number[T]) Number[T] {
	return Number[T]{val: n.backend().Mul(n.val, o.val), ops: n.ops}
}

// Div returns a new Number holding n / o with truncating integer division,
// computed on n's backend. Dividing by a zero value panics with the
// runtime's division-by-zero error; validate divisors beforehand if graceful
// handling is required.
func (n Number[T]) Div(o Number[T]) Number[T] {
	return Number[T]{val: n.backend().Div(n.val, o.val), ops: n.ops}
}

// AddAssign sets n to n + o.
func (n *Number[T]) AddAssign(o Number[T]) { n.val = n.backend().Add(n.val, o.val) }

// SubAssign sets n to n - o.
func (n *Number[T]) SubAssign(o Number[T]) { n.val = n.backend().Sub(n.val, o.val) }

// MulAssign sets n to n * o.
func (n *Number[T]) MulAssign(o Number[T]) { n.val = n.backend().Mul(n.val, o.val) }

// DivAssign sets n to n / o. Panics on a zero divisor, as Div does.
func (n *Number[T]) DivAssign(o Number[T]) { n.val = n.backend().Div(n.val, o.val) }

// Inc adds one to the held value through the bound backend.
func (n *Number[T]) Inc() { n.val = n.backend().Add(n.val, 1) }

// Dec subtracts one from the held value through the bound backend.
func (n *Number[T]) Dec() { n.val = n.backend().Sub(n.val, 1) }

// Equal reports n == o, comparing held values only.
func (n Number[T]) Equal(o Number[T]) bool { return n.val == o.val }

// Less reports n < o, comparing held values only.
func (n Number[T]) Less(o Number[T]) bool { return n.val < o.val }

// Greater reports n > o, comparing held values only.
func (n Number[T]) Greater(o Number[T]) bool { return n.val > o.val }

// LessEqual reports n <= o, comparing held values only.
func (n Number[T]) LessEqual(o Number[T]) bool { return n.val <= o.val }

// GreaterEqual reports n >= o, comparing held values only.
func (n Number[T]) GreaterEqual(o Number[T]) bool { return n.val >= o.val }

// Cmp returns -1, 0 or 1 when n is less than, equal to or greater than o.
func (n Number[T]) Cmp(o Number[T]) int {
	switch {
	case n.val < o.val:
		return -1
	case n.val > o.val:
		return 1
	default:
		return 0
	}
}

// String formats the held value.
func (n Number[T]) String() string { return fmt.Sprint(n.val) }

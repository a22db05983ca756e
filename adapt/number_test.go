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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	enableAllTechniques(t)

	// Narrow widths pin to Scalar even with every tier available.
	if got := New[int8](1).Technique(); got != Scalar {
		t.Errorf("New[int8].Technique() = %v, want Scalar", got)
	}
	if got := New[uint32](1).Technique(); got != Scalar {
		t.Errorf("New[uint32].Technique() = %v, want Scalar", got)
	}
	// 8-byte widths default to the SSE-class tier.
	if got := New[int64](1).Technique(); got != SSE {
		t.Errorf("New[int64].Technique() = %v, want SSE", got)
	}
	if got := New[uint64](1).Technique(); got != SSE {
		t.Errorf("New[uint64].Technique() = %v, want SSE", got)
	}
}

func TestNewWithBindsRequestedTechnique(t *testing.T) {
	enableAllTechniques(t)

	n := NewWith[uint8](5, AVX)
	if got := n.Technique(); got != AVX {
		t.Errorf("n.Technique() = %v, want AVX", got)
	}
	// The binding survives every derived value.
	m := n.Add(NewWith[uint8](1, Scalar)).Mul(NewWith[uint8](3, Scalar))
	if got := m.Technique(); got != AVX {
		t.Errorf("derived Technique() = %v, want AVX", got)
	}
	if got := m.Value(); got != 18 {
		t.Errorf("derived Value() = %d, want 18", got)
	}
}

func TestNewWithFallsBackSilently(t *testing.T) {
	disableAllTechniques(t)

	n := NewWith[uint64](10, AVX512)
	if got := n.Technique(); got != Scalar {
		t.Errorf("n.Technique() = %v, want Scalar after fallback", got)
	}
	if got := n.Add(NewWith[uint64](32, Scalar)).Value(); got != 42 {
		t.Errorf("fallback Add = %d, want 42", got)
	}
}

func TestZeroValueUsable(t *testing.T) {
	var n Number[int32]
	if got := n.Value(); got != 0 {
		t.Errorf("zero Number.Value() = %d, want 0", got)
	}
	if got := n.Technique(); got != Scalar {
		t.Errorf("zero Number.Technique() = %v, want Scalar", got)
	}
	n.Inc()
	if got := n.Value(); got != 1 {
		t.Errorf("after Inc: Value() = %d, want 1", got)
	}
}

func TestSetReplacesValueOnly(t *testing.T) {
	enableAllTechniques(t)
	n := NewWith[uint16](7, SSE)
	n.Set(9)
	if got := n.Value(); got != 9 {
		t.Errorf("Value() = %d, want 9", got)
	}
	if got := n.Technique(); got != SSE {
		t.Errorf("Technique() = %v, want SSE after Set", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := NewInt32(42)
	b := NewInt32(8)

	assert.Equal(t, int32(50), a.Add(b).Value())
	assert.Equal(t, int32(34), a.Sub(b).Value())
	assert.Equal(t, int32(336), a.Mul(b).Value())
	assert.Equal(t, int32(5), a.Div(b).Value())

	// Binary operations leave the operands alone.
	assert.Equal(t, int32(42), a.Value())
	assert.Equal(t, int32(8), b.Value())
}

func TestCompoundAssignment(t *testing.T) {
	n := NewUint8(250)
	n.AddAssign(NewUint8(10))
	assert.Equal(t, uint8(4), n.Value())

	n.SubAssign(NewUint8(5))
	assert.Equal(t, uint8(255), n.Value())

	n.MulAssign(NewUint8(2))
	assert.Equal(t, uint8(254), n.Value())

	n.DivAssign(NewUint8(3))
	assert.Equal(t, uint8(84), n.Value())
}

func TestDivByZeroValuePanics(t *testing.T) {
	a := NewInt64(5)
	zero := NewInt64(0)
	assert.Panics(t, func() { a.Div(zero) })
	assert.Panics(t, func() { a.DivAssign(zero) })
}

func TestIncDecRoundTrip(t *testing.T) {
	enableAllTechniques(t)
	for _, tech := range append([]Technique{Scalar}, vectorTiers...) {
		for v := -127; v <= 126; v++ {
			n := NewWith[int8](int8(v), tech)
			n.Inc()
			n.Dec()
			if got := n.Value(); got != int8(v) {
				t.Fatalf("%v: inc/dec from %d = %d, want %d", tech, v, got, v)
			}
		}
	}
}

func TestIncDecWrapAtBoundaries(t *testing.T) {
	n := NewUint8(255)
	n.Inc()
	assert.Equal(t, uint8(0), n.Value())

	m := NewInt8(-128)
	m.Dec()
	assert.Equal(t, int8(127), m.Value())
}

func TestComparisons(t *testing.T) {
	a := NewInt16(3)
	b := NewInt16(5)
	c := NewInt16(3)

	assert.True(t, a.Equal(c))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, b.Greater(a))
	assert.True(t, a.LessEqual(c))
	assert.True(t, a.GreaterEqual(c))
	assert.False(t, a.GreaterEqual(b))

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(c))
}

func TestComparisonsIgnoreTechnique(t *testing.T) {
	enableAllTechniques(t)
	a := NewWith[uint32](9, AVX)
	b := NewWith[uint32](9, Scalar)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Cmp(b))
}

func TestValueSemantics(t *testing.T) {
	a := NewUint64(11)
	b := a // plain copy, including the binding
	b.Set(99)
	assert.Equal(t, uint64(11), a.Value())
	assert.Equal(t, uint64(99), b.Value())
}

func TestString(t *testing.T) {
	if got := NewInt32(-42).String(); got != "-42" {
		t.Errorf("String() = %q, want %q", got, "-42")
	}
}

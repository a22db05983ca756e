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

package adapt_test

import (
	"fmt"

	"github.com/ambersophia/go-adaptive/adapt"
)

func ExampleNew() {
	a := adapt.New[int32](42)
	b := adapt.New[int32](8)
	fmt.Println(a.Add(b).Value())
	// Output: 50
}

func ExampleNewWith() {
	// Pinning Scalar always sticks; pinning a vector tier sticks only when
	// the CPU has it, otherwise the value silently binds to Scalar.
	n := adapt.NewWith[uint8](250, adapt.Scalar)
	n.AddAssign(adapt.NewWith[uint8](10, adapt.Scalar))
	fmt.Println(n.Value(), n.Technique())
	// Output: 4 Scalar
}

func ExampleNumber_Div() {
	fmt.Println(adapt.NewInt32(7).Div(adapt.NewInt32(2)))
	fmt.Println(adapt.NewInt32(-7).Div(adapt.NewInt32(2)))
	// Output:
	// 3
	// -3
}

func ExampleNumber_Inc() {
	n := adapt.NewUint16(41)
	n.Inc()
	fmt.Println(n)
	// Output: 42
}

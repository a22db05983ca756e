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

// Convenience aliases binding the common integer widths to Number. Values of
// these types made with the NewXxx constructors use the width's default
// technique; use NewWith to pin a technique explicitly.

type (
	Int8  = Number[int8]
	Int16 = Number[int16]
	Int32 = Number[int32]
	Int64 = Number[int64]

	Uint8  = Number[uint8]
	Uint16 = Number[uint16]
	Uint32 = Number[uint32]
	Uint64 = Number[uint64]
)

// NewInt8 returns an Int8 holding v on the default technique for its width.
func NewInt8(v int8) Int8 { return New(v) }

// NewInt16 returns an Int16 holding v on the default technique for its width.
func NewInt16(v int16) Int16 { return New(v) }

// NewInt32 returns an Int32 holding v on the default technique for its width.
func NewInt32(v int32) Int32 { return New(v) }

// NewInt64 returns an Int64 holding v on the default technique for its width.
func NewInt64(v int64) Int64 { return New(v) }

// NewUint8 returns a Uint8 holding v on the default technique for its width.
func NewUint8(v uint8) Uint8 { return New(v) }

// NewUint16 returns a Uint16 holding v on the default technique for its width.
func NewUint16(v uint16) Uint16 { return New(v) }

// NewUint32 returns a Uint32 holding v on the default technique for its width.
func NewUint32(v uint32) Uint32 { return New(v) }

// NewUint64 returns a Uint64 holding v on the default technique for its width.
func NewUint64(v uint64) Uint64 { return New(v) }

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
	"os"
	"strconv"
)

// Capability flags for the vector tiers, populated once by init() in the
// per-arch detect_*.go files and never mutated afterwards. A technique whose
// flag is false has no backend and resolves to Scalar.
var (
	hasMMX    bool
	hasSSE    bool
	hasAVX    bool
	hasAVX512 bool
	hasNEON   bool
)

// CPUFeatures is a snapshot of the vector tiers available on this CPU.
type CPUFeatures struct {
	MMX    bool
	SSE    bool
	AVX    bool
	AVX512 bool
	NEON   bool
}

// Features returns the capability flags detected at process start.
func Features() CPUFeatures {
	return CPUFeatures{
		MMX:    hasMMX,
		SSE:    hasSSE,
		AVX:    hasAVX,
		AVX512: hasAVX512,
		NEON:   hasNEON,
	}
}

// Available reports whether the technique has a backend on this CPU.
// Scalar and Auto are always available; the reserved GPU identifiers
// never are.
func Available(t Technique) bool {
	switch t {
	case Scalar, Auto:
		return true
	case MMX:
		return hasMMX
	case SSE:
		return hasSSE
	case AVX:
		return hasAVX
	case AVX512:
		return hasAVX512
	case NEON:
		return hasNEON
	default:
		return false
	}
}

// HasSIMD returns true if any vector tier is available. Returns false when
// running in scalar fallback mode (e.g. on an unsupported architecture or
// when ADAPTIVE_NO_SIMD is set).
func HasSIMD() bool {
	return hasMMX || hasSSE || hasAVX || hasAVX512 || hasNEON
}

// NoSimdEnv checks if the ADAPTIVE_NO_SIMD environment variable is set.
// When set, every technique resolves to Scalar regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("ADAPTIVE_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	hasMMX = false
	hasSSE = false
	hasAVX = false
	hasAVX512 = false
	hasNEON = false
}

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

//go:build amd64

package adapt

import "github.com/klauspost/cpuid/v2"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// MMX and SSE2 are baseline for amd64, but read them from cpuid anyway
	// so the flags stay honest under emulators that mask features.
	hasMMX = cpuid.CPU.Supports(cpuid.MMX)
	hasSSE = cpuid.CPU.Supports(cpuid.SSE2)
	hasAVX = cpuid.CPU.Supports(cpuid.AVX2)

	// AVX512 needs the full F+DQ+BW+VL set before the integer lane ops
	// this package models are all present.
	hasAVX512 = cpuid.CPU.Supports(cpuid.AVX512F) &&
		cpuid.CPU.Supports(cpuid.AVX512DQ) &&
		cpuid.CPU.Supports(cpuid.AVX512BW) &&
		cpuid.CPU.Supports(cpuid.AVX512VL)
}

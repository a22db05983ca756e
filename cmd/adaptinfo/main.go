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

// Adaptinfo is a diagnostic tool that prints the vector tiers detected on
// this CPU and how each integer width resolves, and can run a cross-backend
// equivalence self-test.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/ambersophia/go-adaptive/adapt"
)

func main() {
	var check bool
	var verbose bool

	root := &cobra.Command{
		Use:          "adaptinfo",
		Short:        "Print detected vector tiers and technique resolution per integer width",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

			printInfo()
			if check {
				return runCheck(logger)
			}
			return nil
		},
	}
	root.Flags().BoolVar(&check, "check", false, "run a cross-backend equivalence self-test")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func printInfo() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Println()

	caps := adapt.Features()
	fmt.Println("=== vector tiers ===")
	fmt.Printf("  MMX:    %v\n", caps.MMX)
	fmt.Printf("  SSE:    %v\n", caps.SSE)
	fmt.Printf("  AVX:    %v\n", caps.AVX)
	fmt.Printf("  AVX512: %v\n", caps.AVX512)
	fmt.Printf("  NEON:   %v\n", caps.NEON)
	fmt.Printf("  SIMD available: %v\n", adapt.HasSIMD())
	fmt.Println()

	fmt.Println("=== default resolution per width ===")
	fmt.Printf("  int8/uint8:   %s\n", adapt.New[uint8](0).Technique())
	fmt.Printf("  int16/uint16: %s\n", adapt.New[uint16](0).Technique())
	fmt.Printf("  int32/uint32: %s\n", adapt.New[uint32](0).Technique())
	fmt.Printf("  int64/uint64: %s\n", adapt.New[uint64](0).Technique())
}

// runCheck compares every available vector tier against the scalar ground
// truth for add, sub and mul.
func runCheck(logger *slog.Logger) error {
	tiers := []adapt.Technique{adapt.MMX, adapt.SSE, adapt.AVX, adapt.AVX512, adapt.NEON}

	failed := false
	for _, tech := range tiers {
		if !adapt.Available(tech) {
			logger.Debug("skipping unavailable tier", "technique", int(tech))
			continue
		}
		if !checkTier[uint8](tech) || !checkTier[int16](tech) ||
			!checkTier[uint32](tech) || !checkTier[int64](tech) {
			logger.Error("equivalence check failed", "technique", tech.String())
			failed = true
			continue
		}
		logger.Info("equivalence check passed", "technique", tech.String())
	}
	if failed {
		return errors.New("self-test failed")
	}
	return nil
}

func checkTier[T adapt.Integer](tech adapt.Technique) bool {
	be := adapt.ResolveBackend[T](tech)
	scalar := adapt.ResolveBackend[T](adapt.Scalar)

	samples := []T{0, 1, 2, 3, 100, T(100) + T(100), T(0) - 1, T(0) - 100}
	for _, a := range samples {
		for _, b := range samples {
			if be.Add(a, b) != scalar.Add(a, b) ||
				be.Sub(a, b) != scalar.Sub(a, b) ||
				be.Mul(a, b) != scalar.Mul(a, b) {
				return false
			}
		}
	}
	return true
}

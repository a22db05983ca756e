//go:build !amd64 && !arm64

package adapt

func init() {
	// Other architectures fall back to scalar mode for now.
	// Future implementations could add:
	// - riscv64: Vector extension support
	// - wasm: SIMD128 support
	setScalarMode()
}

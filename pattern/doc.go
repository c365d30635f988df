// Package pattern generates synthetic practice images and holds the named
// 3×3 kernel library.
//
// What:
//
//   - Four pattern families on a square grid (28×28 by default): Ring,
//     VerticalBar, Diagonal and Plus. Generate picks one uniformly and
//     randomizes its parameters; the per-family constructors are
//     deterministic and take explicit parameters.
//   - Six named kernels: Sobel-X, Sobel-Y, Sharpen, Emboss, Laplacian and
//     Box blur. Sample pairs a random pattern with a random kernel from one
//     RNG stream.
//
// Determinism:
//
//   - Randomness is injected via WithSeed or WithRand. Without either,
//     stochastic entry points return ErrNeedRandSource; nothing reads a
//     global source.
//   - The same seed always yields the same image, kind and kernel.
//
// Value ranges:
//
//   - Ring cells lie in [0,255] with a linear falloff around the band's
//     mid-radius. Bar, Diagonal and Plus cells are exactly 0 or 255.
//
// Complexity:
//
//   - Every generator is O(n²) for an n×n grid.
package pattern

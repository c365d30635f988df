// SPDX-License-Identifier: MIT
// Package: pattern
//
// kernels.go — the fixed library of named 3×3 kernels.

package pattern

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/convlab/grid"
)

// Kernel identifiers accepted by KernelByName.
const (
	SobelX    = "sobel-x"
	SobelY    = "sobel-y"
	Sharpen   = "sharpen"
	Emboss    = "emboss"
	Laplacian = "laplacian"
	BoxBlur   = "box-blur"
)

// NamedKernel is one library entry.
type NamedKernel struct {
	ID      string     // stable identifier, e.g. "sobel-x"
	Name    string     // display label, e.g. "Sobel X"
	Weights *grid.Grid // 3×3, never shared with callers
}

type kernelSpec struct {
	id, name string
	rows     [][]int
}

var library = []kernelSpec{
	{SobelX, "Sobel X", [][]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}},
	{SobelY, "Sobel Y", [][]int{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}},
	{Sharpen, "Sharpen", [][]int{{0, -1, 0}, {-1, 5, -1}, {0, -1, 0}}},
	{Emboss, "Emboss", [][]int{{-2, -1, 0}, {-1, 1, 1}, {0, 1, 2}}},
	{Laplacian, "Laplacian", [][]int{{0, 1, 0}, {1, -4, 1}, {0, 1, 0}}},
	{BoxBlur, "Box blur", [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}},
}

func (s kernelSpec) named() NamedKernel {
	return NamedKernel{ID: s.id, Name: s.name, Weights: grid.MustFromRows(s.rows)}
}

// Kernels returns fresh copies of every library kernel in a fixed order.
func Kernels() []NamedKernel {
	out := make([]NamedKernel, len(library))
	for i, s := range library {
		out[i] = s.named()
	}

	return out
}

// KernelByName looks up a kernel by ID or display name, case-insensitively.
// Errors: ErrUnknownKernel.
func KernelByName(name string) (NamedKernel, error) {
	key := strings.TrimSpace(name)
	for _, s := range library {
		if strings.EqualFold(key, s.id) || strings.EqualFold(key, s.name) {
			return s.named(), nil
		}
	}

	return NamedKernel{}, fmt.Errorf("KernelByName(%q): %w", name, ErrUnknownKernel)
}

// MustKernel is KernelByName for package-level fixtures. Panics on a miss.
func MustKernel(name string) *grid.Grid {
	k, err := KernelByName(name)
	if err != nil {
		panic(err)
	}

	return k.Weights
}

// RandomKernel draws one library kernel uniformly.
// Errors: ErrNeedRandSource.
func RandomKernel(opts ...Option) (NamedKernel, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return NamedKernel{}, fmt.Errorf("RandomKernel: %w", ErrNeedRandSource)
	}

	return drawKernel(cfg.rng), nil
}

func drawKernel(rng *rand.Rand) NamedKernel {
	return library[rng.Intn(len(library))].named()
}

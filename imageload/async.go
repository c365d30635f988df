// SPDX-License-Identifier: MIT

package imageload

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/convlab/grid"
)

// Result is the single outcome of an asynchronous load.
type Result struct {
	Grid *grid.Grid
	Err  error
}

// LoadAsync runs l.Load in a goroutine. The returned channel yields exactly
// one Result and is then closed. If ctx ends first the Result carries the
// context error; the load itself is not interrupted and its outcome is
// discarded.
func LoadAsync(ctx context.Context, l Loader, r io.Reader, maxSize int) <-chan Result {
	out := make(chan Result, 1)
	if err := ctx.Err(); err != nil {
		out <- Result{Err: fmt.Errorf("LoadAsync: %w", err)}
		close(out)

		return out
	}

	done := make(chan Result, 1)
	go func() {
		g, err := l.Load(r, maxSize)
		done <- Result{Grid: g, Err: err}
	}()

	go func() {
		defer close(out)
		select {
		case res := <-done:
			out <- res
		case <-ctx.Done():
			out <- Result{Err: fmt.Errorf("LoadAsync: %w", ctx.Err())}
		}
	}()

	return out
}

// SPDX-License-Identifier: MIT

package explorer

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/convlab/grid"
	"github.com/katalvlaran/convlab/imageload"
	"github.com/katalvlaran/convlab/pattern"
	"github.com/katalvlaran/convlab/problem"
	"github.com/katalvlaran/convlab/xcorr"
)

// LoadUpload decodes r with the configured loader and pairs it with a library
// kernel. An unknown kernel name fails before anything changes. A failed
// decode clears upload mode, which then reports ErrNoImage until a later
// load succeeds. Waiting honors ctx.
func (e *Explorer) LoadUpload(ctx context.Context, r io.Reader, kernelName string) error {
	k, err := pattern.KernelByName(kernelName)
	if err != nil {
		return fmt.Errorf("LoadUpload: %w", err)
	}

	res := <-imageload.LoadAsync(ctx, e.cfg.loader, r, e.cfg.maxSize)
	if res.Err != nil {
		e.clearUpload()
		e.log.Warn().Err(res.Err).Msg("upload failed")
		return fmt.Errorf("LoadUpload: %w", res.Err)
	}
	if err = e.installUpload(res.Grid, k); err != nil {
		e.clearUpload()
		e.log.Warn().Err(err).Msg("upload rejected")
		return fmt.Errorf("LoadUpload: %w", err)
	}
	rows, cols := res.Grid.Shape()
	e.log.Info().Int("rows", rows).Int("cols", cols).Str("kernel", k.ID).Msg("upload loaded")

	return nil
}

// SetUploadKernel swaps the kernel applied to the uploaded image.
// Errors: ErrNoImage, pattern.ErrUnknownKernel.
func (e *Explorer) SetUploadKernel(kernelName string) error {
	if e.upload == nil {
		return fmt.Errorf("SetUploadKernel: %w", ErrNoImage)
	}
	k, err := pattern.KernelByName(kernelName)
	if err != nil {
		return fmt.Errorf("SetUploadKernel: %w", err)
	}
	if err = e.installUpload(e.upload.Image, k); err != nil {
		return fmt.Errorf("SetUploadKernel: %w", err)
	}

	return nil
}

func (e *Explorer) installUpload(img *grid.Grid, k pattern.NamedKernel) error {
	p := problem.Problem{
		ID:     UploadID,
		Name:   fmt.Sprintf("Upload: %d×%d image, %s", img.Rows(), img.Cols(), k.Name),
		Image:  img,
		Kernel: k.Weights,
	}
	engine, err := p.Engine(xcorr.Valid)
	if err != nil {
		return err
	}
	s, err := e.newSession(ModeUpload, engine)
	if err != nil {
		return err
	}
	e.upload, e.sessions[ModeUpload] = &p, s

	return nil
}

func (e *Explorer) clearUpload() {
	e.upload, e.sessions[ModeUpload] = nil, nil
}

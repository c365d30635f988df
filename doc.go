// Package convlab is an in-memory explorer for 2-D cross-correlation: slide a
// small kernel over a small integer image one window at a time, or compute
// the whole output at once, and compare against answers pasted back in.
//
// What is in the box?
//
//	A small, deterministic library built from a few focused packages:
//		• grid      — rectangular int matrices, shape validators, heatmap stats
//		• xcorr     — zero padding plus VALID, SAME and summed-RGB engines
//		• stepper   — row-major stepping cursor and per-mode sessions
//		• pattern   — seeded synthetic images (ring, bar, diagonal, plus)
//		              and the named 3×3 kernel library
//		• problem   — named exercises: the demonstration set, RGB, practice
//		• imageload — raster image → bounded grayscale grid
//		• export    — NumPy script output and pasted-answer parsing
//		• explorer  — application state tying every mode together
//
// Cross-correlation here does not flip the kernel:
//
//	out[r][c] = Σ_i Σ_j image[r+i][c+j] · kernel[i][j]
//
// Quick example (VALID):
//
//	image           kernel     output
//	[0, 1, 2]       [1, 0]     [2, 4]
//	[1, 2, 3]   ⋆   [0, 1]  =  [4, 6]
//	[2, 3, 4]
//
// Rendering, colors and clipboard access belong to the caller; every
// package returns plain values for a presentation layer to project.
package convlab

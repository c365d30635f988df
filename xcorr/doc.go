// Package xcorr implements 2-D cross-correlation of a small image with a small
// kernel, one window position at a time or over the whole output grid.
//
// What:
//
//   - Engine handles single-channel input in VALID or SAME padding mode.
//   - RGBEngine sums three (image, kernel) channel correlations into one
//     scalar per window, accumulating in the fixed order R, G, B.
//   - Padding derives symmetric zero padding floor(k/2) from kernel dimensions.
//
// No kernel flipping takes place: this is cross-correlation, the operation
// most machine-learning texts call "convolution".
//
// Window geometry:
//
//	VALID: out = (inRows-kh+1, inCols-kw+1), window top-left (r,c) reads
//	       image[r+i][c+j].
//	SAME:  out = (inRows, inCols), window top-left (r,c) is expressed in the
//	       padded coordinate system and reads padded[r+i][c+j], which is 0
//	       outside the original image.
//
// Out-of-range window positions are clamped into [0,outRows)×[0,outCols);
// engines never return an error once constructed.
//
// Complexity:
//
//   - CorrelateAt: O(kh*kw). Full: O(outRows*outCols*kh*kw).
package xcorr

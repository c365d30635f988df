// Package imageload turns raster images into bounded grayscale grids.
//
// Decoding goes through the standard image registry with PNG, JPEG, GIF,
// BMP, TIFF and WebP registered. The decoded image is downscaled uniformly
// so its larger side is at most maxSize (never upscaled) and each pixel is
// mapped to luma Y = round(0.299R + 0.587G + 0.114B) on 8-bit channels.
//
// LoadAsync wraps any Loader for callers that must not block; it reports
// exactly one Result per request.
package imageload

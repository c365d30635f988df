// Package problem bundles images and kernels into named exercises.
//
// A Problem is either grayscale (Image + Kernel) or multi-channel
// (RGB channel set). Demo returns the fixed demonstration set, RGBDemo the
// multi-channel exercise, and Practice a freshly drawn synthetic one.
// Every accessor returns deep copies, so problems are safe to share.
package problem

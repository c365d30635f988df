// Package explorer is the application state of the cross-correlation
// explorer: the selected problem and one stepping session per mode.
//
// Modes:
//
//   - Valid, Same: the selected demonstration problem under each padding mode.
//   - RGB: the multi-channel demonstration problem.
//   - Practice: a synthetic pattern paired with a library kernel.
//   - Upload: a user image converted by an imageload.Loader.
//
// Every mode owns an independent cursor and output. SelectProblem resets all
// of them. Outputs are returned as snapshots; nothing a renderer does with
// them flows back into the state.
//
// An Explorer is not safe for concurrent use.
package explorer

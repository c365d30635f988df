// Package stepper drives a correlation engine one window at a time.
//
// Cursor is a free-running ring counter over the output positions:
//
//	(0,0) → (0,1) → … → (0,cols-1) → (1,0) → … → (rows-1,cols-1) → (0,0) → …
//
// Session owns one engine, one cursor and one Output (the display model).
// Step shows exactly one freshly computed cell; ShowAll fills every cell and
// arms the cursor so the next Step restarts from the origin. Sessions are
// independent: VALID, SAME and RGB each get their own.
//
// Rendering is a one-way projection: callers receive Output copies and never
// write back into a session except through Restore, which accepts a complete
// grid of the exact output shape.
//
// A Session is not safe for concurrent use.
package stepper

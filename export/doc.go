// Package export renders grids as NumPy literals and parses pasted answers
// back into grids.
//
// NumPy and Script produce text for a numeric-computing script:
//
//	import numpy as np
//
//	image = np.array([
//	  [0, 1],
//	  [2, 3]
//	], dtype=np.int32)
//
// Parse accepts what users typically paste: a NumPy literal, nested bracket
// lists, or bare rows of comma/whitespace separated integers. Each failure
// class has its own sentinel so a UI can report it distinctly.
package export

// SPDX-License-Identifier: MIT

// Package input reads the two plain-text dataset formats understood by the
// lvcluster command and feeds the records into a clusterer.
//
// Edge files
//
//	<vertex count>
//	<start> <end> <weight>
//	...
//
// Weights may be negative. Anything after the third number on a line is ignored.
//
// Bit-code files
//
//	<vertex count> <bits per code>
//	b b b ... b
//	...
//
// Each record line holds exactly <bits per code> binary digits, most
// significant first, separated by whitespace (or written contiguously).
// Vertex ids are the 1-based record numbers.
//
// Blank lines are skipped in both formats. Malformed lines abort the load
// with an error naming the line number.
package input

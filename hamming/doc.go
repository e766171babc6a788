// SPDX-License-Identifier: MIT

// Package hamming clusters vertices labeled with fixed-width binary codes by
// merging groups whose codes lie within a small Hamming distance.
//
// Model
//
//   - Every distinct code owns a group. Vertices registered with the same code
//     start out in that code's group, in registration order.
//   - Groups are linked by a dsu.Forest. When two roots merge, the members of
//     the absorbed root are physically appended to the winning root, and the
//     absorbed group stays in the registry as an empty redirect node whose
//     parent pointer leads to the new root. Redirect nodes never become roots
//     again.
//   - Physical membership is required because the merge test looks at every
//     cross pair of members, not only at the two codes being compared.
//
// Algorithm (Cluster)
//
//  1. Snapshot the registered codes in ascending order before any merge.
//  2. For each code c and each mask m from bitmask.Neighbors (one-bit masks
//     first, then two-bit masks), look at dest = c ^ m and skip unknown codes.
//  3. Resolve both sides to their current roots. A root with no members is a
//     broken invariant: it is logged at error level and that single check is
//     skipped. Sides that already share a root are skipped.
//  4. Compute the (min, max) cross-pair spacing of the two roots. With
//     LinkageComplete (the default) the roots merge when max < maxDist; with
//     LinkageSingle they merge when min < maxDist.
//  5. Equal-rank merges keep the root reached from c.
//
// Later checks see earlier merges because roots are resolved at the time of
// use. Running Cluster twice with the same threshold performs no merges the
// second time.
//
// Complete linkage keeps every cluster's diameter below maxDist, so codes
// further apart than that never share a cluster. Single linkage chains
// neighbors and yields the connected components of the distance-<maxDist
// neighbor graph restricted to one- and two-bit flips.
//
// Errors & absence
//
//   - ErrInvalidWidth   : New with a width outside [1, 32].
//   - ErrCodeOutOfRange : AddVertex with bits set above the width.
//   - Lookups of unknown vertices or codes return ok == false instead of an
//     error. Callers treat that as a construction bug.
//   - Duplicate vertex ids are logged at warn level and ignored.
package hamming

// Package stations models the fixed station sequence of a circular rail
// line.
//
// A Topology is an immutable, ordered list of station ids with an O(1)
// id -> ordinal lookup. Ordinals live in [0, N) and wrap at the loop
// seam; all modular arithmetic on them goes through Mod so the seam
// handling stays in one place.
package stations

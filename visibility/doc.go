// Package visibility decides which trees can be seen from outside the grid.
//
// A tree is visible from an edge when it is strictly taller than every tree
// between it and that edge along its row or column. Scan sweeps each of the
// 2·(R+C) inward sightlines once, carrying the tallest height seen so far
// (starting below any valid height), and marks a tree the moment it beats
// that maximum. The first tree of every sightline is therefore always marked,
// which makes every edge tree visible without special-casing.
//
// Complexity: O(R×C) time (each cell is touched exactly four times),
// O(R×C) memory for the result.
package visibility

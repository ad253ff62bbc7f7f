// Package treeline surveys a grid of trees: which ones can be seen from
// outside the forest, and which one has the best view.
//
// 🚀 What is treeline?
//
//	A small, dependency-light toolkit that brings together:
//		• Loading: rectangular digit grids from any io.Reader (heightgrid)
//		• Rays: cardinal directions and sightlines as lazy iterators (sightline)
//		• Visibility: trees visible from at least one edge (visibility)
//		• Scenic scores: product of the four viewing distances (scenic)
//		• Rendering: PNG heat maps of any of the above (render)
//
// Under the hood, everything is organized under these subpackages:
//
//	cellgrid/   — generic row-major Dense store shared by every grid
//	heightgrid/ — validated, immutable height grid + line loader
//	sightline/  — Direction, Set, Ray, Outward/Inward/Sightlines
//	visibility/ — edge-visibility scan, O(R×C)
//	scenic/     — viewing distances and scores, O(R×C×max(R,C))
//	render/     — gonum/plot heat maps
//	config/     — TOML run configuration for the CLI
//	cmd/treeline — command-line front end
//
// Quick ASCII example:
//
//	30373
//	25512      21 trees are visible from outside;
//	65332      the best scenic score is 8, at row 3, column 2.
//	33549
//	35390
//
// This package ties the pieces together: Solve runs one Part over a grid
// and reduces it to the single number the puzzle asks for.
package treeline

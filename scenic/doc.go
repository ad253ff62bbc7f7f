// Package scenic measures how far each tree can see and scores the view.
//
// 🌲 Viewing distance
//
//	Looking from tree T in one direction, count the trees passed until
//	(and including) the first one at least as tall as T, or until the
//	edge. A tree on that edge sees 0 trees.
//
// 🏞 Scenic score
//
//	The product of the four viewing distances. Every edge tree has at
//	least one distance of 0, so its score is 0.
//
// ⚙️ Usage:
//
//	scores, err := scenic.Scan(ctx, g, nil)
//	best := scores.Max()
//	fmt.Println(best.Score, best.Row, best.Col)
//
// Performance:
//
//   - Time:   O(R×C×max(R,C)), one independent walk per tree and direction.
//   - Memory: O(R×C) for the score grid.
//
// Rows are independent, so Options.Workers > 1 spreads them over goroutines;
// every row writes only its own cells.
package scenic

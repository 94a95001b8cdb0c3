// Package gridindex buckets points of the unit square into a uniform grid of
// square cells so that radius queries only visit nearby cells.
//
// What:
//
//   - Index splits [0,1)×[0,1) into Side×Side cells of width 1/Side.
//   - Insert places a point index into the cell containing it.
//   - Near appends every inserted index whose cell lies in the 3×3 block
//     around a query point (the 8-neighbourhood plus the cell itself).
//
// Why:
//
//	When the cell width is at least the query radius, any point within the
//	radius of q lives in q's 3×3 block, so Near is a complete candidate set
//	and the caller only applies the exact distance predicate to it.
//
// Complexity:
//
//   - New:    O(Side²) memory for empty buckets.
//   - Insert: O(1).
//   - Near:   O(9 + m), m = points in the block.
//
// Options:
//
//   - Options.MaxSide caps the number of cells per side; 0 means
//     2·⌈√n⌉ for n expected points, so tiny radii cannot explode memory.
//
// Errors:
//
//   - ErrBadCellSize: cell width negative or NaN.
//   - ErrNoPoints:    no points to index.
package gridindex

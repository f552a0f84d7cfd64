// Package lvmaze carves mazes over square, triangle, hex, polar and weave
// grids and derives the distance field and geometry a renderer needs.
//
// What is in the box?
//
//	• Grids: square (with levels and cylinder/Möbius/torus wrap), triangle,
//	  hex, polar rings and weave with over/under tunnels or crossings
//	• Carving: binary tree, sidewinder, Aldous–Broder, Wilson, hunt-and-kill,
//	  recursive backtracker, cross-stitch, Kruskal, Prim
//	• Post passes: braiding and sparsifying of dead ends
//	• Distances: BFS labelling, diameter, solution path, normalized shading
//	• Outputs: blueprint geometry, YAML documents, PNG previews, ASCII
//
// Layout:
//
//	rng/       — seedable random source and weighted choice helpers
//	unionfind/ — generic disjoint-set forest
//	grid/      — cells, topologies, masking, links, blueprint
//	carve/     — the carving algorithms and their registry
//	distance/  — BFS distance maps and diameter
//	maze/      — Config → Generate → Result pipeline
//	export/    — YAML, PNG and ASCII writers
//	store/     — SQLite/PostgreSQL archive of generated runs
//	cmd/mazegen — command-line front end
//
// Quick ASCII example (4×4, recursive backtracker):
//
//	+---+---+---+---+
//	| S         |   |
//	+---+---+   +   +
//	|       |       |
//	+   +   +---+   +
//	|   |   |       |
//	+   +---+   +---+
//	|           | F |
//	+---+---+---+---+
//
//	go install github.com/katalvlaran/lvmaze/cmd/mazegen@latest
package lvmaze

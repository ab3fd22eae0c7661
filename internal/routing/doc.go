// Package routing maps a lattice coordinate to the worker that owns it.
// Four hash schemes (full sum, partial sum, full Z-order, partial
// Z-order) each reduce a coord.Coord to an unsigned integer, which a
// configurable right-shift then folds down into a worker index. An
// optional thread_map indirection lets the owning index be permuted, the
// mechanism behind heterogeneous P/E-core worker assignment.
package routing

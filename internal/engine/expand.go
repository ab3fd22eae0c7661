package engine

import "github.com/msapastar/pastar/internal/node"

// childrenOf expands n and fills in each child's F with the heuristic
// estimate added on top of node.Expand's raw G, since node.Expand itself
// is heuristic-agnostic.
func childrenOf(n node.Node, cfg Config) []node.Node {
	children := node.Expand(n, cfg.Seqs, cfg.Cost)
	for i := range children {
		children[i].F = children[i].G + cfg.Heuristic.Eval(children[i].Pos)
	}
	return children
}

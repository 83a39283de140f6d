// Package search builds a fixed-depth MoveTree and selects a principal
// variation from it. Root-child subtrees are expanded in parallel by a
// fixed-size worker pool, using golang.org/x/sync/errgroup as the
// pool-join barrier. A single pass to a depth chosen from the position's
// branching factor, not iterative deepening against a clock.
package search

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tholman/chessbot/botlog"
	"github.com/tholman/chessbot/engine"
)

var log = botlog.Get("search")

// resolvedThreshold is the |score| above which a node is treated as a
// resolved outcome and not expanded further.
const resolvedThreshold = 10_000

// ErrNoLegalMoves is returned by Build when the root position has no
// legal moves; the caller (driver.Adaptor) maps this to Outcome{Resign}.
var ErrNoLegalMoves = errors.New("search: no legal moves from root position")

// RatedMove pairs a move with its static evaluation, from the mover's
// point of view at the ply it was generated.
type RatedMove struct {
	Move  engine.Move
	Score int32
}

// Node is one non-root point in a MoveTree: a rated move and its
// (possibly empty) replies. Nodes are owned exclusively by their parent;
// there are no back-pointers.
type Node struct {
	RatedMove
	Children []*Node
}

// MoveTree is a fixed-depth tree rooted at a Position, built once and
// consumed once.
type MoveTree struct {
	Root     *engine.Position
	RootMove Color // side to move at the root, cached for PV walks
	Children []*Node
}

// Color is an alias kept local to this package's exported surface so
// callers do not need to import engine just to read RootMove.
type Color = engine.Color

// Options configures an Engine: the root-child worker pool size and the
// evaluator weights.
type Options struct {
	MaxWorkers int
	Weights    engine.Weights
}

// Engine builds MoveTrees and selects principal variations under a
// fixed set of Options.
type Engine struct {
	opts Options
}

// NewEngine returns an Engine. A MaxWorkers <= 0 means "no parallelism",
// i.e. every root child builds on the caller's goroutine.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Result is what Build hands back after selecting a principal variation.
type Result struct {
	Move  engine.Move
	Score int32
	Tree  *MoveTree
}

// Build constructs a MoveTree rooted at p and returns the chosen move and
// its backed-up score. Depth is chosen by complexityDepth's heuristic.
// Returns ErrNoLegalMoves if p has no legal replies for its side to move.
func (e *Engine) Build(ctx context.Context, p *engine.Position) (*Result, error) {
	mover := p.SideToMove
	rootMoves := engine.GenerateMoves(p)
	if len(rootMoves) == 0 {
		return nil, ErrNoLegalMoves
	}

	depth := complexityDepth(p, rootMoves)
	log.Debugf("building tree: %d root moves, depth %d", len(rootMoves), depth)

	children := make([]*Node, len(rootMoves))
	for i, m := range rootMoves {
		clone := p.Clone()
		clone.ApplyMove(m)
		children[i] = &Node{RatedMove: RatedMove{Move: m, Score: evaluate(e.opts.Weights, clone, mover)}}
	}
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].Score > children[j].Score
	})

	if err := e.expandRootChildren(ctx, p, mover, children, depth); err != nil {
		return nil, err
	}

	best := pickBest(children)
	tree := &MoveTree{Root: p, RootMove: mover, Children: children}
	return &Result{Move: best.Move, Score: backedUpValue(best), Tree: tree}, nil
}

// expandRootChildren dispatches each root child's subtree build as an
// independent task on a fixed-size worker pool; errgroup.Wait() is the
// pool-join barrier. Every task reads only its own clone of p, so there
// is no shared mutable state between tasks.
func (e *Engine) expandRootChildren(ctx context.Context, p *engine.Position, mover engine.Color, children []*Node, depth int) error {
	workers := e.opts.MaxWorkers
	if workers <= 0 {
		for _, node := range children {
			e.expandOne(p, mover, node, depth)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, node := range children {
		node := node
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			e.expandOne(p, mover, node, depth)
			return nil
		})
	}
	return g.Wait()
}

func (e *Engine) expandOne(p *engine.Position, mover engine.Color, node *Node, depth int) {
	if abs32(node.Score) > resolvedThreshold {
		return
	}
	clone := p.Clone()
	clone.ApplyMove(node.Move)
	node.Children = e.buildChildren(clone, mover.Other(), depth-1)
}

// buildChildren recursively builds pos's reply tree for side's moves,
// decrementing depth until it runs out or a side has no legal replies.
func (e *Engine) buildChildren(pos *engine.Position, side engine.Color, depth int) []*Node {
	if depth <= 0 {
		return nil
	}
	moves := engine.GenerateMoves(pos)
	if len(moves) == 0 {
		return nil
	}

	nodes := make([]*Node, len(moves))
	for i, m := range moves {
		clone := pos.Clone()
		clone.ApplyMove(m)
		nodes[i] = &Node{RatedMove: RatedMove{Move: m, Score: evaluate(e.opts.Weights, clone, side)}}
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Score > nodes[j].Score
	})

	for _, node := range nodes {
		if abs32(node.Score) > resolvedThreshold {
			continue
		}
		clone := pos.Clone()
		clone.ApplyMove(node.Move)
		node.Children = e.buildChildren(clone, side.Other(), depth-1)
	}
	return nodes
}

// backedUpValue computes a node's negamax value: its own score if it is
// a leaf, otherwise the negation of the maximum backed-up value among
// its children.
func backedUpValue(n *Node) int32 {
	if len(n.Children) == 0 {
		return n.Score
	}
	best := backedUpValue(n.Children[0])
	for _, c := range n.Children[1:] {
		if v := backedUpValue(c); v > best {
			best = v
		}
	}
	return -best
}

// pickBest selects the root child with the largest backed-up value,
// ties broken by higher immediate score.
func pickBest(children []*Node) *Node {
	best := children[0]
	bestValue := backedUpValue(best)
	for _, n := range children[1:] {
		v := backedUpValue(n)
		if v > bestValue || (v == bestValue && n.Score > best.Score) {
			best, bestValue = n, v
		}
	}
	return best
}

// PrincipalVariation walks the chosen line from result's tree end to end,
// alternating sides, useful for logging/diagnostics.
func PrincipalVariation(result *Result) []RatedMove {
	var pv []RatedMove
	children := result.Tree.Children
	for len(children) > 0 {
		node := pickBest(children)
		pv = append(pv, node.RatedMove)
		children = node.Children
	}
	return pv
}

// complexityDepth picks a search depth from a branching-factor proxy: the
// total legal-move count one ply below the root, summed across the
// root's immediate children, clipped to a depth table. More replies per
// root move means a wider tree, so the heuristic prefers a shallower one.
func complexityDepth(p *engine.Position, rootMoves []engine.Move) int {
	oneplyTotal := 0
	for _, m := range rootMoves {
		clone := p.Clone()
		clone.ApplyMove(m)
		oneplyTotal += len(engine.GenerateMoves(clone))
	}
	complexity := oneplyTotal

	switch {
	case complexity <= 50:
		return 7
	case complexity <= 100:
		return 6
	case complexity <= 150:
		return 5
	case complexity <= 500:
		return 4
	default:
		return 3
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// evaluate scores p from pov's perspective using w, the configured
// evaluator weights.
func evaluate(w engine.Weights, p *engine.Position, pov engine.Color) int32 {
	return engine.EvaluateWithWeights(p, pov, w)
}

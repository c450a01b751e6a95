package mis

import (
	"time"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/ipc2023-classical/planner17-sub002/ngraph"
	"github.com/ipc2023-classical/planner17-sub002/vset"
)

// Solve computes maximum independent sets of g.
//
// The graph is decomposed into a DAG of subgraphs keyed by vertex presence
// (see package doc), expanded with an explicit stack, and results are then
// propagated from the leaves to the root. When the timer fires the search
// stops expanding: unexpanded subgraphs contribute the empty set and the
// returned sets remain independent but may be smaller than optimal.
//
// Complexity:
//   - Worst case exponential in |V|; memoization collapses repeated subgraphs.
//   - Memory: one presence set per distinct subgraph plus live graphs on the stack.
func Solve(g *ngraph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start := time.Now()
	e, root := newEngine(g, o)
	if err := e.reduce(); err != nil {
		return nil, errors.Wrap(err, "mis: reduction")
	}
	if e.timedOut {
		klog.Warningf("mis: time limit reached after %d steps, %d subgraphs left pending", e.steps, len(e.pending))
	}
	if o.Dump != nil {
		if err := e.reg.Dump(o.Dump); err != nil {
			return nil, errors.Wrap(err, "mis: dump registry")
		}
	}

	fstart := time.Now()
	if err := e.finalize(); err != nil {
		return nil, errors.Wrap(err, "mis: finalization")
	}
	leaves := len(e.leaves) + len(e.pending)
	if e.onStep != nil {
		e.onStep(e.steps, leaves)
	}
	klog.V(1).Infof("mis: %d steps, %d leaves (%d pending), %d subgraphs, %d twins, finalized in %v",
		e.steps, leaves, len(e.pending), e.reg.Len(), e.reg.Twins(), time.Since(fstart))

	res := &Result{
		Steps:     e.steps,
		Leaves:    leaves,
		Pending:   len(e.pending),
		Subgraphs: e.reg.Len(),
		Twins:     e.reg.Twins(),
		TimedOut:  e.timedOut,
		Elapsed:   time.Since(start),
	}
	best := e.reg.at(root).mis
	if len(best) > 0 && !best[0].Empty() {
		res.Sets = best
	}

	return res, nil
}

// newEngine registers g as the root and pushes it on the work-list.
func newEngine(g *ngraph.Graph, o Options) (*engine, int) {
	e := &engine{
		n:       g.Order(),
		findAll: o.FindAll,
		k:       o.MaxSets,
		budget:  budget{timer: o.Timer, ctx: o.Ctx},
		onStep:  o.OnProgress,
		reg:     newRegistry(),
		stack:   arraystack.New(),
	}
	root, _ := e.reg.intern(g.Clone())
	e.reg.at(root).root = true
	e.stack.Push(root)

	return e, root
}

// Find returns at most one maximum independent set of g: the first set the
// root reports. An empty graph yields an empty list.
func Find(g *ngraph.Graph, opts ...Option) ([]vset.Set, error) {
	res, err := Solve(g, opts...)
	if err != nil {
		return nil, err
	}
	if len(res.Sets) == 0 {
		return nil, nil
	}

	return res.Sets[:1], nil
}

// Check reports whether s is an independent set of g.
func Check(g *ngraph.Graph, s vset.Set) bool {
	if g == nil {
		return false
	}

	return g.IsIndependent(s)
}

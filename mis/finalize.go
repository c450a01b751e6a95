package mis

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"
)

// finalize seeds every leaf and every subgraph left pending with its leaf
// result, then pushes results upward in FIFO order. A parent is finalized
// when its last slot is filled; its merged list is then delivered in turn.
func (e *engine) finalize() error {
	queue := linkedlistqueue.New()
	seed := func(pos int) {
		s := e.reg.at(pos)
		s.mis = s.leafResult(e.n)
		s.finalized = true
		s.g = nil
		queue.Enqueue(pos)
	}
	for _, pos := range e.leaves {
		seed(pos)
	}
	for _, pos := range e.pending {
		seed(pos)
	}

	for !queue.Empty() {
		head, _ := queue.Dequeue()
		s := e.reg.at(head.(int))
		for _, l := range s.parents {
			p := e.reg.at(l.pos)
			if p.finalized || p.filled[l.slot] {
				return errors.Wrapf(ErrInternal, "subgraph %d: contribution to finalized parent %d", head, l.pos)
			}
			p.slotMIS[l.slot] = cloneSets(s.mis)
			p.filled[l.slot] = true
			p.pending--
			if p.pending < 0 {
				return errors.Wrapf(ErrInternal, "subgraph %d: pending count below zero", l.pos)
			}
			if p.pending == 0 {
				p.mis = p.merge(e.n, e.k)
				if e.onMerge != nil {
					e.onMerge(l.pos, p.mis)
				}
				p.finalized = true
				queue.Enqueue(l.pos)
			}
		}
		s.clear()
	}

	return nil
}

// File: bfs.go
// Role: Breadth-first traversal over core.Graph — visit order, depths,
// parent links, and the hooks the options expose.

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matchcover/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// frontierItem is one queued vertex together with its distance from the root.
type frontierItem struct {
	id    string
	depth int
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
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
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}

	// The queue is an append-only slice drained by a head index; Depth doubles
	// as the visited set, so a vertex is enqueued at most once.
	queue := make([]frontierItem, 0, n)
	res.Depth[startID] = 0
	o.OnEnqueue(startID, 0)
	queue = append(queue, frontierItem{id: startID})

	for head := 0; head < len(queue); head++ {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		cur := queue[head]
		res.Order = append(res.Order, cur.id)
		if err := o.OnVisit(cur.id, cur.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %q: %w", cur.id, err)
		}

		next := cur.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		neighbors, err := g.NeighborIDs(cur.id)
		if err != nil {
			return res, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, cur.id, err)
		}
		for _, nbr := range neighbors {
			if nbr == cur.id {
				// self-loops never extend a shortest path
				continue
			}
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			if !o.FilterNeighbor(cur.id, nbr) {
				continue
			}
			res.Depth[nbr] = next
			res.Parent[nbr] = cur.id
			o.OnEnqueue(nbr, next)
			queue = append(queue, frontierItem{id: nbr, depth: next})
		}
	}
	return res, nil
}

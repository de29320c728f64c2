package planet

// walker holds the mutable state of one breadth-first reachability query.
type walker struct {
	g       *Graph
	queue   []NodeID
	visited []bool
}

// Reachable reports whether to can be reached from from by following
// successor edges. A node always reaches itself.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) Reachable(from, to NodeID) bool {
	if from == to {
		return true
	}
	w := &walker{
		g:       g,
		queue:   make([]NodeID, 0, len(g.nodes)),
		visited: make([]bool, len(g.nodes)),
	}
	w.enqueue(from)

	for len(w.queue) > 0 {
		u := w.dequeue()
		for _, v := range g.successors(u) {
			if v == to {
				return true
			}
			if !w.visited[v] {
				w.enqueue(v)
			}
		}
	}

	return false
}

// enqueue marks id visited and appends it to the queue.
func (w *walker) enqueue(id NodeID) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
}

// dequeue pops the first queued node.
func (w *walker) dequeue() NodeID {
	id := w.queue[0]
	w.queue = w.queue[1:]
	return id
}

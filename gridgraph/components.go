package gridgraph

// Components labels the 4-connected regions of free cells.
// Label(p) is -1 for blocked or out-of-bounds positions.
type Components struct {
	grid   *Grid
	labels []int
	sizes  []int
}

// ConnectedComponents finds all contiguous regions of free cells.
// Regions are numbered in row-major order of their first cell.
//
// Time:   O(R·C).
// Memory: O(R·C) for labels and the queue.
func (g *Grid) ConnectedComponents() *Components {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	var sizes []int
	queue := make([]int, 0, len(g.cells))

	for i0, cell := range g.cells {
		if cell != Free || labels[i0] >= 0 {
			continue
		}
		id := len(sizes)
		labels[i0] = id
		queue = append(queue[:0], i0)
		// BFS to collect component
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(g.Coordinate(queue[qi])) {
				vi := g.index(n)
				if labels[vi] < 0 {
					labels[vi] = id
					queue = append(queue, vi)
				}
			}
		}
		sizes = append(sizes, len(queue))
	}

	return &Components{grid: g, labels: labels, sizes: sizes}
}

// Count returns the number of regions.
func (c *Components) Count() int { return len(c.sizes) }

// Size returns how many cells region id holds, or 0 for an unknown id.
func (c *Components) Size(id int) int {
	if id < 0 || id >= len(c.sizes) {
		return 0
	}
	return c.sizes[id]
}

// Label returns the region of p, or -1 when p is not a free cell.
func (c *Components) Label(p Position) int {
	if !c.grid.IsFree(p) {
		return -1
	}
	return c.labels[c.grid.index(p)]
}

// Connected reports whether a and b are free and share a region.
func (c *Components) Connected(a, b Position) bool {
	la := c.Label(a)
	return la >= 0 && la == c.Label(b)
}

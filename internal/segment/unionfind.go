package segment

// forest is a union-find structure over labels 1..K. Label 0 is background
// and never a member. Slices are sized once for the worst case of one label
// per pixel.
type forest struct {
	parent []uint32
	rank   []uint8
	size   []int // authoritative only at roots
}

func newForest(maxLabels int) *forest {
	return &forest{
		parent: make([]uint32, 1, maxLabels+1),
		rank:   make([]uint8, 1, maxLabels+1),
		size:   make([]int, 1, maxLabels+1),
	}
}

// makeSet allocates the next label as a singleton of size 1.
func (f *forest) makeSet() uint32 {
	l := uint32(len(f.parent))
	f.parent = append(f.parent, l)
	f.rank = append(f.rank, 0)
	f.size = append(f.size, 1)
	return l
}

// count returns the number of labels allocated so far.
func (f *forest) count() int {
	return len(f.parent) - 1
}

// find returns the root of l, then points every node on the walked path
// directly at that root.
func (f *forest) find(l uint32) uint32 {
	root := l
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[l] != root {
		next := f.parent[l]
		f.parent[l] = root
		l = next
	}
	return root
}

// union merges the sets of a and b by rank and returns the surviving root.
// Sizes are summed onto the survivor.
func (f *forest) union(a, b uint32) uint32 {
	ra, rb := f.find(a), f.find(b)
	if ra == rb {
		return ra
	}
	if f.rank[ra] < f.rank[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	if f.rank[ra] == f.rank[rb] {
		f.rank[ra]++
	}
	return ra
}

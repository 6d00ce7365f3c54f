package geometry

// Face is a closed polygon given as vertex indices in boundary order. The
// vertex after the last one is the first one.
type Face []int

// Next returns the vertex index that follows position i
func (f Face) Next(i int) int {
	return f[(i+1)%len(f)]
}

// Edge returns the endpoints of the i-th edge, counting the closing edge
// from the last vertex back to the first.
func (f Face) Edge(i int) (from, to int) {
	return f[i], f.Next(i)
}

// EdgeCount returns the number of edges, which equals the number of vertices
func (f Face) EdgeCount() int {
	return len(f)
}

package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/mesh"
)

// EdgeInfo describes one face edge in model space
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	FaceID int
}

// MeasurementResult summarizes a mesh in model space, ignoring its
// current transform
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	VertexCount   int
	FaceCount     int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// AnalyzeMesh collects counts, bounds and edge lengths. Every face edge is
// counted, so an edge shared by two faces appears twice.
func AnalyzeMesh(m *mesh.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox: m.BoundingBox(),
		VertexCount: m.VertexCount(),
		FaceCount:   m.FaceCount(),
		AllEdges:    make([]EdgeInfo, 0, m.EdgeCount()),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for faceID, face := range m.Faces() {
		for i := range face.EdgeCount() {
			from, to := face.Edge(i)
			start := m.Vertex(from).Vector3()
			end := m.Vertex(to).Vector3()
			length := start.Distance(end)

			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:  start,
				End:    end,
				Length: length,
				FaceID: faceID,
			})

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	if count < 0 {
		count = 0
	}

	return edges[:count]
}

// FormatVector formats a 3D triple
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

package flag3d

const (
	TriangleSortModeBackToFront = iota // Triangles are drawn from farthest to closest, which is what a depth test would do for opaque triangles
	TriangleSortModeFrontToBack        // Triangles are drawn from closest to farthest
	TriangleSortModeNone               // Triangles are drawn in index buffer order
)

// sortingTriangle is used specifically for sorting triangles when rendering. Less data means more data fits in cache,
// which means sorting is faster.
type sortingTriangle struct {
	TriangleID int
	depth      float32
}

type sortingTriangleBin struct {
	triangles     []sortingTriangle
	triangleIndex int
}

// sortingTriangleBucket sorts triangles by depth by dropping them into a fixed number of bins spread across the depth range of
// the frame's triangles. It's not an exact sort, but it's stable and allocation-free after Initialize().
type sortingTriangleBucket struct {
	bins          []sortingTriangleBin
	unsetTris     []sortingTriangle
	unsetTriIndex int
	sortMode      int
}

func newSortingTriangleBucket(binCount, triangleCount int) *sortingTriangleBucket {
	bucket := &sortingTriangleBucket{}
	bucket.Initialize(binCount, triangleCount)
	return bucket
}

func (s *sortingTriangleBucket) AddTriangle(triID int, depth float32) {
	s.unsetTris[s.unsetTriIndex].TriangleID = triID
	s.unsetTris[s.unsetTriIndex].depth = depth
	s.unsetTriIndex++
}

func (s *sortingTriangleBucket) Sort(minRange, maxRange float32) {

	binCount := len(s.bins)
	rangeDiff := maxRange - minRange

	if rangeDiff == 0 {
		rangeDiff = 0.001
	}

	for i := 0; i < s.unsetTriIndex; i++ {

		targetBin := 0

		if s.sortMode != TriangleSortModeNone && binCount > 1 {
			depth := (s.unsetTris[i].depth - minRange) / rangeDiff * float32(binCount)
			targetBin = int(clamp(depth, 0, float32(binCount-1)))
		}

		bin := &s.bins[targetBin]
		bin.triangles[bin.triangleIndex] = s.unsetTris[i]
		bin.triangleIndex++

	}

}

// Initialize sets up the bucket to hold up to triangleCount triangles spread across binCount bins.
func (s *sortingTriangleBucket) Initialize(binCount, triangleCount int) {
	if binCount < 1 {
		binCount = 1
	}
	s.bins = make([]sortingTriangleBin, binCount)
	for i := range s.bins {
		s.bins[i].triangles = make([]sortingTriangle, triangleCount)
	}
	s.unsetTris = make([]sortingTriangle, triangleCount)
	s.Clear()
}

func (s *sortingTriangleBucket) Capacity() int {
	return len(s.unsetTris)
}

func (s *sortingTriangleBucket) Clear() {
	for i := 0; i < len(s.bins); i++ {
		s.bins[i].triangleIndex = 0
	}
	s.unsetTriIndex = 0
}

// ForEach calls the provided function for each sorted triangle, in drawing order.
func (s *sortingTriangleBucket) ForEach(forEach func(triIndex, triID int)) {

	if s.IsEmpty() {
		return
	}

	triIndex := 0

	if s.sortMode == TriangleSortModeBackToFront {
		for binIndex := len(s.bins) - 1; binIndex >= 0; binIndex-- {
			bin := s.bins[binIndex]
			for ti := 0; ti < bin.triangleIndex; ti++ {
				forEach(triIndex, bin.triangles[ti].TriangleID)
				triIndex++
			}
		}
	} else {
		for binIndex := 0; binIndex < len(s.bins); binIndex++ {
			bin := s.bins[binIndex]
			for ti := 0; ti < bin.triangleIndex; ti++ {
				forEach(triIndex, bin.triangles[ti].TriangleID)
				triIndex++
			}
		}
	}

}

func (s *sortingTriangleBucket) IsEmpty() bool {
	return s.unsetTriIndex == 0
}

func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

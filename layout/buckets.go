package layout

import (
	"sort"

	"github.com/tsawler/folio/model"
)

// BucketIndex returns the index of the interval containing x among the
// N+1 buckets defined by N ascending boundaries:
//
//	(-inf, b[0])  [b[0], b[1])  ...  [b[N-1], +inf)
//
// An empty boundary list yields a single bucket (index 0).
func BucketIndex(x float64, boundaries []float64) int {
	idx := 0
	for _, b := range boundaries {
		if x < b {
			break
		}
		idx++
	}
	return idx
}

// BucketFragments partitions fragments among the buckets defined by the
// ascending boundaries, assigning each fragment by its leading edge (X0).
// Within each bucket, fragments keep their input order. The result always
// has len(boundaries)+1 buckets; empty buckets are nil slices.
func BucketFragments(fragments []model.Fragment, boundaries []float64) [][]model.Fragment {
	buckets := make([][]model.Fragment, len(boundaries)+1)

	for _, f := range fragments {
		idx := BucketIndex(f.BBox.X0, boundaries)
		buckets[idx] = append(buckets[idx], f)
	}

	return buckets
}

// sortByPosition stably sorts fragments by ascending Y0, breaking ties by
// ascending X0. Stable sorting preserves source order for fragments at
// identical positions, which keeps the output deterministic.
func sortByPosition(fragments []model.Fragment) {
	sort.SliceStable(fragments, func(i, j int) bool {
		if fragments[i].BBox.Y0 != fragments[j].BBox.Y0 {
			return fragments[i].BBox.Y0 < fragments[j].BBox.Y0
		}
		return fragments[i].BBox.X0 < fragments[j].BBox.X0
	})
}

// Package bitmap indexes cluster membership with Roaring bitmaps.
//
// A Membership holds one bitmap per cluster label. Bit i of bitmap c is set
// when points[i] carries label c. Positions are uint32, so a Membership can
// index up to 2^32 points.
//
//	m := bitmap.Build(points, k)
//	sizes := m.Sizes()
//	for pos := range m.Members(2) {
//	    // points[pos].Cluster == 2
//	}
package bitmap

package surface

// triangulate builds the index buffer for a grid of res.U x res.V cells.
// Each cell contributes two triangles sharing the diagonal from its
// lower-right to its upper-left corner:
//
//	base+U+1 --- base+U+2
//	    |  \         |
//	    |    \       |
//	  base ------ base+1
//
// The winding is fixed and does not look at vertex positions.
func triangulate(res Resolution) []uint32 {
	cells := res.CellCount()
	stride := uint32(res.U + 1)
	indices := make([]uint32, 0, cells*6)

	for i := 0; i < cells; i++ {
		row := i / res.U
		col := i % res.U
		base := uint32(col) + uint32(row)*stride

		indices = append(indices,
			base, base+stride, base+1,
			base+1, base+stride, base+stride+1,
		)
	}

	return indices
}

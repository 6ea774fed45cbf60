package kernel

// BoxModel builds a fully meshed cube model: a 3x3x3 node lattice over a
// cube of the given edge size centered at center. Two faces mesh as
// quads, the remaining four as triangles, and the volume as eight hex
// cells, so one model exercises mixed surface batches and volume
// extraction. Lattice tags run 1..27.
//
// Entity layout mirrors a CAD kernel's: eight vertex entities own the
// corner nodes, twelve edge entities own the mid-edge nodes, six face
// entities own the face-center nodes (with parametric coords and outward
// normals), and one region entity owns the body center.
func BoxModel(center [3]float64, size float64) (m *Model) {
	var (
		h      = size / 2
		corner = [3]float64{center[0] - h, center[1] - h, center[2] - h}
	)
	tagAt := func(i, j, k int) int64 {
		return int64(1 + i + 3*j + 9*k)
	}

	m = &Model{
		Min: corner,
		Max: [3]float64{corner[0] + size, corner[1] + size, corner[2] + size},
	}

	// Lattice nodes, positions at 0, h, 2h along each axis.
	for k := 0; k < 3; k++ {
		for j := 0; j < 3; j++ {
			for i := 0; i < 3; i++ {
				m.NodeTags = append(m.NodeTags, tagAt(i, j, k))
				m.NodeCoords = append(m.NodeCoords,
					corner[0]+float64(i)*h,
					corner[1]+float64(j)*h,
					corner[2]+float64(k)*h)
			}
		}
	}

	// Vertex entities own the corners, edge entities the mid-edge nodes,
	// the region entity the body center. A lattice coordinate equal to 1
	// means "interior along that axis".
	vtag, etag := 0, 0
	for k := 0; k < 3; k++ {
		for j := 0; j < 3; j++ {
			for i := 0; i < 3; i++ {
				interior := 0
				for _, c := range [3]int{i, j, k} {
					if c == 1 {
						interior++
					}
				}
				switch interior {
				case 0:
					vtag++
					m.Entities = append(m.Entities, Entity{Dim: 0, Tag: vtag,
						NodeTags: []int64{tagAt(i, j, k)}})
				case 1:
					etag++
					m.Entities = append(m.Entities, Entity{Dim: 1, Tag: etag,
						NodeTags: []int64{tagAt(i, j, k)}})
				case 3:
					m.Entities = append(m.Entities, Entity{Dim: 3, Tag: 1,
						NodeTags: []int64{tagAt(i, j, k)}})
				}
			}
		}
	}

	// Face entities and surface element batches. Faces are identified by
	// their fixed axis and side; u, v are the two varying axes.
	var (
		quadConn, triConn []int64
		quadTags, triTags []int64
		elemTag           int64
	)
	faceTag := 0
	for axis := 0; axis < 3; axis++ {
		u, v := (axis+1)%3, (axis+2)%3
		for _, side := range [2]int{0, 2} {
			faceTag++
			at := func(iu, iv int) int64 {
				var c [3]int
				c[axis] = side
				c[u], c[v] = iu, iv
				return tagAt(c[0], c[1], c[2])
			}

			normal := [3]float64{}
			if side == 0 {
				normal[axis] = -1
			} else {
				normal[axis] = 1
			}
			m.Entities = append(m.Entities, Entity{Dim: 2, Tag: faceTag,
				NodeTags: []int64{at(1, 1)},
				Params:   []float64{0.5, 0.5},
				Normals:  normal[:],
			})

			for iu := 0; iu < 2; iu++ {
				for iv := 0; iv < 2; iv++ {
					n00, n10 := at(iu, iv), at(iu+1, iv)
					n11, n01 := at(iu+1, iv+1), at(iu, iv+1)
					if axis == 2 {
						// z faces mesh as quads
						elemTag++
						quadTags = append(quadTags, elemTag)
						quadConn = append(quadConn, n00, n10, n11, n01)
					} else {
						elemTag++
						triTags = append(triTags, elemTag)
						triConn = append(triConn, n00, n10, n11)
						elemTag++
						triTags = append(triTags, elemTag)
						triConn = append(triConn, n00, n11, n01)
					}
				}
			}
		}
	}
	m.Surface = []ElementBlockRaw{
		{TypeCode: 2, Tags: triTags, Conn: triConn},
		{TypeCode: 3, Tags: quadTags, Conn: quadConn},
	}

	// Volume: eight hex cells over the lattice.
	var (
		hexTags []int64
		hexConn []int64
	)
	for k := 0; k < 2; k++ {
		for j := 0; j < 2; j++ {
			for i := 0; i < 2; i++ {
				elemTag++
				hexTags = append(hexTags, elemTag)
				hexConn = append(hexConn,
					tagAt(i, j, k), tagAt(i+1, j, k), tagAt(i+1, j+1, k), tagAt(i, j+1, k),
					tagAt(i, j, k+1), tagAt(i+1, j, k+1), tagAt(i+1, j+1, k+1), tagAt(i, j+1, k+1))
			}
		}
	}
	m.Volume = []ElementBlockRaw{{TypeCode: 5, Tags: hexTags, Conn: hexConn}}
	return
}

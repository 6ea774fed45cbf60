package geometry

import (
	"fmt"

	"github.com/threadmesh/meshcore/utils"
)

// UnknownIndex is the sentinel returned for any tag outside the node tag
// universe.
const UnknownIndex = -1

// TagIndexResolver maps sparse, possibly non-contiguous positive integer
// node tags to dense array positions. Construction is O(N) over the tag
// universe; every lookup after that is a direct array access. Gaps in the
// tag space waste only lookup slots, never correctness.
type TagIndexResolver struct {
	lut    []int
	maxTag int64
}

// NewTagIndexResolver builds the lookup for nodeTags, where nodeTags[i]
// resolves to position i. An empty tag set is a construction error since
// no maximum tag exists.
func NewTagIndexResolver(nodeTags []int64) (tr *TagIndexResolver, err error) {
	if len(nodeTags) == 0 {
		err = ErrEmptyTagUniverse
		return
	}
	var maxTag int64
	for _, tag := range nodeTags {
		if tag < 1 {
			err = fmt.Errorf("node tags must be positive, have %d", tag)
			return
		}
		if tag > maxTag {
			maxTag = tag
		}
	}
	lut := make([]int, maxTag+1)
	for i := range lut {
		lut[i] = UnknownIndex
	}
	for i, tag := range nodeTags {
		if lut[tag] != UnknownIndex {
			err = fmt.Errorf("duplicate node tag %d at positions %d and %d", tag, lut[tag], i)
			return
		}
		lut[tag] = i
	}
	tr = &TagIndexResolver{lut: lut, maxTag: maxTag}
	return
}

// Lookup resolves one tag to its array position, or UnknownIndex when the
// tag lies outside the universe. Out-of-domain tags never index past the
// lookup bounds.
func (tr *TagIndexResolver) Lookup(tag int64) int {
	if tag < 1 || tag > tr.maxTag {
		return UnknownIndex
	}
	return tr.lut[tag]
}

// Resolve maps a tag array to array positions, substituting UnknownIndex
// for out-of-domain values.
func (tr *TagIndexResolver) Resolve(tags []int64) (I utils.Index) {
	I = utils.NewIndex(len(tags))
	for i, tag := range tags {
		I[i] = tr.Lookup(tag)
	}
	return
}

// MaxTag returns the largest tag in the universe.
func (tr *TagIndexResolver) MaxTag() int64 {
	return tr.maxTag
}

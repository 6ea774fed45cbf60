package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagIndexResolver(t *testing.T) {
	// Sparse, non-contiguous tags - gaps waste slots, not correctness
	{
		tags := []int64{7, 2, 100, 41}
		tr, err := NewTagIndexResolver(tags)
		assert.NoError(t, err)
		for i, tag := range tags {
			assert.Equal(t, i, tr.Lookup(tag))
		}
		assert.Equal(t, int64(100), tr.MaxTag())
	}
	// Out-of-domain queries resolve to the unknown sentinel
	{
		tr, _ := NewTagIndexResolver([]int64{1, 2, 3})
		assert.Equal(t, UnknownIndex, tr.Lookup(0))
		assert.Equal(t, UnknownIndex, tr.Lookup(-5))
		assert.Equal(t, UnknownIndex, tr.Lookup(4))
		assert.Equal(t, UnknownIndex, tr.Lookup(1<<40))
	}
	// Resolve maps arrays, substituting the sentinel
	{
		tr, _ := NewTagIndexResolver([]int64{10, 20, 30})
		I := tr.Resolve([]int64{30, 99, 10, -1})
		assert.Equal(t, []int{2, UnknownIndex, 0, UnknownIndex}, []int(I))
		assert.Equal(t, 2, I.Count(UnknownIndex))
	}
}

func TestTagIndexResolverConstructionErrors(t *testing.T) {
	_, err := NewTagIndexResolver(nil)
	assert.ErrorIs(t, err, ErrEmptyTagUniverse)

	_, err = NewTagIndexResolver([]int64{1, 0, 2})
	assert.Error(t, err)

	_, err = NewTagIndexResolver([]int64{1, 2, 2})
	assert.Error(t, err)
}

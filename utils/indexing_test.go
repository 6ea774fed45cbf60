package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	{
		assert.Len(t, NewIndex(7), 7)
	}
	{ // counting sentinel positions
		I := Index{0, -1, 4, -1, 2}
		assert.Equal(t, 2, I.Count(-1))
		assert.Equal(t, 0, I.Count(99))
	}
}

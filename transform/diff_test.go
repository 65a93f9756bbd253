package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khulnasoft-bot/code-translator/core"
)

func TestComputeLineDiff(t *testing.T) {
	before := "a\nb\nc"
	after := "a\nB\nc\nd"

	changes := ComputeLineDiff(before, after)
	require.Len(t, changes, 4)

	assert.Equal(t, core.ChangeUnchanged, changes[0].Kind)
	assert.Equal(t, "a", changes[0].Original)

	assert.Equal(t, core.ChangeModified, changes[1].Kind)
	assert.Equal(t, "b", changes[1].Original)
	assert.Equal(t, "B", changes[1].Transformed)

	assert.Equal(t, core.ChangeUnchanged, changes[2].Kind)

	assert.Equal(t, core.ChangeAdded, changes[3].Kind)
	assert.Equal(t, "", changes[3].Original)
	assert.Equal(t, "d", changes[3].Transformed)
}

func TestComputeLineDiffRemovals(t *testing.T) {
	changes := ComputeLineDiff("a\nb\nc", "a")
	require.Len(t, changes, 3)
	assert.Equal(t, core.ChangeUnchanged, changes[0].Kind)
	assert.Equal(t, core.ChangeRemoved, changes[1].Kind)
	assert.Equal(t, "b", changes[1].Original)
	assert.Equal(t, core.ChangeRemoved, changes[2].Kind)
}

func TestComputeLineDiffIdentical(t *testing.T) {
	changes := ComputeLineDiff("x\ny", "x\ny")
	require.Len(t, changes, 2)
	for i, c := range changes {
		assert.Equal(t, core.ChangeUnchanged, c.Kind)
		assert.Equal(t, i, c.Index)
	}
}

func TestComputeLineDiffEmpty(t *testing.T) {
	changes := ComputeLineDiff("", "")
	require.Len(t, changes, 1)
	assert.Equal(t, core.ChangeUnchanged, changes[0].Kind)
}

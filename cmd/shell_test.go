package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-ipl-metrics/internal/model"
)

func TestShowForm_TeamOnlyListedSecond(t *testing.T) {
	ds := rivalryDataset(t)

	var buf bytes.Buffer
	require.NoError(t, showForm(&buf, ds, dc, 5))
	assert.Contains(t, buf.String(), "RR Pant")

	err := showForm(&buf, ds, "Gujarat Titans", 5)
	assert.ErrorIs(t, err, model.ErrNoData)
}

func TestFindItem(t *testing.T) {
	items := menuItems()

	it, ok := findItem(items, "1")
	require.True(t, ok)
	assert.Equal(t, items[0].name, it.name)

	it, ok = findItem(items, "form")
	require.True(t, ok)
	assert.Equal(t, "form", it.name)

	_, ok = findItem(items, "0")
	assert.False(t, ok)
	_, ok = findItem(items, "nope")
	assert.False(t, ok)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"JJ Bumrah", "TA Boult"}, splitList(" JJ Bumrah, ,TA Boult "))
	assert.Nil(t, splitList(""))
}

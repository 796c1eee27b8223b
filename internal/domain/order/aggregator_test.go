package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzobigazzi0/cassa/internal/domain/menu"
)

const (
	spritzID  uint = 1
	negroniID uint = 3
	caffeID   uint = 5
)

func testCatalog() map[uint]*menu.Item {
	return map[uint]*menu.Item{
		spritzID:  menu.ReconstructItem(spritzID, "spritz", "Spritz", "Drink", decimal.NewFromInt(6), true),
		negroniID: menu.ReconstructItem(negroniID, "negroni", "Negroni", "Drink", decimal.NewFromInt(9), true),
		caffeID:   menu.ReconstructItem(caffeID, "caffe", "Caffè", "Caffetteria", decimal.RequireFromString("1.20"), true),
	}
}

func TestMerge_SpritzExample(t *testing.T) {
	merged, err := Merge([]RequestedLine{
		{MenuItemID: spritzID, Qty: 2},
		{MenuItemID: spritzID, Qty: 1, Note: "no ice"},
		{MenuItemID: spritzID, Qty: 1},
	})
	require.NoError(t, err)
	require.Len(t, merged, 2)

	assert.Equal(t, 1, merged[0].LineNo)
	assert.Equal(t, spritzID, merged[0].MenuItemID)
	assert.Nil(t, merged[0].Note)
	assert.Equal(t, 3, merged[0].Qty)

	assert.Equal(t, 2, merged[1].LineNo)
	require.NotNil(t, merged[1].Note)
	assert.Equal(t, "no ice", *merged[1].Note)
	assert.Equal(t, 1, merged[1].Qty)
}

func TestMerge_LineNumbersFollowFirstOccurrence(t *testing.T) {
	merged, err := Merge([]RequestedLine{
		{MenuItemID: negroniID, Qty: 1},
		{MenuItemID: caffeID, Qty: 2},
		{MenuItemID: negroniID, Qty: 1},
		{MenuItemID: spritzID, Qty: 1, Note: "large"},
		{MenuItemID: caffeID, Qty: 1},
	})
	require.NoError(t, err)

	got := make([]uint, 0, len(merged))
	for i, m := range merged {
		assert.Equal(t, i+1, m.LineNo)
		got = append(got, m.MenuItemID)
	}
	assert.Equal(t, []uint{negroniID, caffeID, spritzID}, got)
	assert.Equal(t, 2, merged[0].Qty)
	assert.Equal(t, 3, merged[1].Qty)
}

func TestMerge_PreservesQuantityPerKey(t *testing.T) {
	input := []RequestedLine{
		{MenuItemID: spritzID, Qty: 4, Note: "a"},
		{MenuItemID: spritzID, Qty: 1},
		{MenuItemID: negroniID, Qty: 2, Note: "a"},
		{MenuItemID: spritzID, Qty: 3, Note: "a"},
		{MenuItemID: negroniID, Qty: 5, Note: "a"},
		{MenuItemID: spritzID, Qty: 7},
	}

	merged, err := Merge(input)
	require.NoError(t, err)

	type key struct {
		id   uint
		note string
	}
	want := map[key]int{}
	for _, l := range input {
		want[key{l.MenuItemID, l.Note}] += l.Qty
	}

	got := map[key]int{}
	for _, m := range merged {
		note := ""
		if m.Note != nil {
			note = *m.Note
		}
		k := key{m.MenuItemID, note}
		_, dup := got[k]
		assert.False(t, dup, "duplicate group %v", k)
		got[k] = m.Qty
	}
	assert.Equal(t, want, got)
	assert.Len(t, merged, len(want))
}

func TestMerge_RejectsNonPositiveQty(t *testing.T) {
	_, err := Merge([]RequestedLine{{MenuItemID: spritzID, Qty: 1}, {MenuItemID: caffeID, Qty: 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestMerge_EmptyInput(t *testing.T) {
	merged, err := Merge(nil)
	require.NoError(t, err)
	assert.Empty(t, merged)
}

func TestDistinctMenuIDsAndFirstMissing(t *testing.T) {
	ids := DistinctMenuIDs([]RequestedLine{
		{MenuItemID: 42}, {MenuItemID: spritzID}, {MenuItemID: 17}, {MenuItemID: 42},
	})
	assert.Equal(t, []uint{spritzID, 17, 42}, ids)

	missing, ok := FirstMissing(ids, testCatalog())
	assert.True(t, ok)
	assert.Equal(t, uint(17), missing)

	_, ok = FirstMissing([]uint{spritzID, caffeID}, testCatalog())
	assert.False(t, ok)
}

func TestBuildItems_SnapshotsNames(t *testing.T) {
	merged, err := Merge([]RequestedLine{{MenuItemID: caffeID, Qty: 2, Note: "macchiato"}})
	require.NoError(t, err)

	items, err := BuildItems(merged, testCatalog())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Caffè", items[0].Name())
	assert.Equal(t, "macchiato", items[0].NoteText())
	assert.False(t, items[0].IsDone())

	_, err = BuildItems([]MergedLine{{LineNo: 1, MenuItemID: 99, Qty: 1}}, testCatalog())
	assert.Error(t, err)
}

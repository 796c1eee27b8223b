package order

import (
	"fmt"
	"sort"

	"github.com/lorenzobigazzi0/cassa/internal/domain/menu"
)

// RequestedLine is one line as submitted by a waiter. An empty Note means no note.
type RequestedLine struct {
	MenuItemID uint
	Qty        int
	Note       string
}

// MergedLine is a group of requested lines sharing menu item and note.
type MergedLine struct {
	LineNo     int
	MenuItemID uint
	Note       *string
	Qty        int
}

type lineKey struct {
	menuItemID uint
	note       string
	hasNote    bool
}

// Merge groups lines by (menu item, note) and sums quantities. Line numbers
// follow the first occurrence of each group in the input, starting at 1.
func Merge(lines []RequestedLine) ([]MergedLine, error) {
	index := make(map[lineKey]int, len(lines))
	merged := make([]MergedLine, 0, len(lines))

	for i, l := range lines {
		if l.Qty < 1 {
			return nil, fmt.Errorf("line %d: quantity must be at least 1", i+1)
		}
		key := lineKey{menuItemID: l.MenuItemID, note: l.Note, hasNote: l.Note != ""}
		if pos, ok := index[key]; ok {
			merged[pos].Qty += l.Qty
			continue
		}

		var note *string
		if key.hasNote {
			n := l.Note
			note = &n
		}
		index[key] = len(merged)
		merged = append(merged, MergedLine{
			LineNo:     len(merged) + 1,
			MenuItemID: l.MenuItemID,
			Note:       note,
			Qty:        l.Qty,
		})
	}

	return merged, nil
}

// DistinctMenuIDs returns the referenced menu item ids, ascending.
func DistinctMenuIDs(lines []RequestedLine) []uint {
	seen := make(map[uint]struct{}, len(lines))
	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.MenuItemID]; ok {
			continue
		}
		seen[l.MenuItemID] = struct{}{}
		ids = append(ids, l.MenuItemID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FirstMissing returns the lowest id in sortedIDs absent from found.
func FirstMissing(sortedIDs []uint, found map[uint]*menu.Item) (uint, bool) {
	for _, id := range sortedIDs {
		if _, ok := found[id]; !ok {
			return id, true
		}
	}
	return 0, false
}

// BuildItems turns merged lines into order items, snapshotting menu names.
// Every merged menu item id must be present in catalog.
func BuildItems(merged []MergedLine, catalog map[uint]*menu.Item) ([]*Item, error) {
	items := make([]*Item, 0, len(merged))
	for _, m := range merged {
		mi, ok := catalog[m.MenuItemID]
		if !ok {
			return nil, fmt.Errorf("menu item %d not resolved", m.MenuItemID)
		}
		it, err := NewItem(m.LineNo, m.MenuItemID, mi.Name(), m.Note, m.Qty)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

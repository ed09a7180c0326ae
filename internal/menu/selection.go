package menu

import "fmt"

// SelectionKey decides what makes two selection entries the same.
type SelectionKey string

const (
	// KeyByIdentity compares item IDs. Re-committing a selected course
	// leaves the old item selected.
	KeyByIdentity SelectionKey = "identity"
	// KeyByCourse compares the slot an item came from, so a selected course
	// always shows the slot's current item.
	KeyByCourse SelectionKey = "course"
)

// ParseSelectionKey maps a config value to a SelectionKey. Empty means
// identity.
func ParseSelectionKey(s string) (SelectionKey, error) {
	switch SelectionKey(s) {
	case "", KeyByIdentity:
		return KeyByIdentity, nil
	case KeyByCourse:
		return KeyByCourse, nil
	}
	return "", fmt.Errorf("unknown selection key %q", s)
}

type entry struct {
	item      MenuItem
	course    Course
	hasCourse bool
}

// Toggle removes item from the selection when it is already there, otherwise
// appends it. Order of the remaining entries is preserved.
func (m *Menu) Toggle(item MenuItem) {
	if idx := m.indexOf(item); idx >= 0 {
		m.selection = append(m.selection[:idx:idx], m.selection[idx+1:]...)
		return
	}
	c, ok := m.courseOf(item)
	m.selection = append(m.selection, entry{item: item, course: c, hasCourse: ok})
}

// ToggleCourse toggles whatever item the course slot currently holds.
func (m *Menu) ToggleCourse(c Course) {
	if !c.valid() {
		return
	}
	m.Toggle(m.slots[c])
}

// IsSelected reports whether item is in the selection.
func (m *Menu) IsSelected(item MenuItem) bool { return m.indexOf(item) >= 0 }

// CourseSelected reports whether the slot's current item is selected.
func (m *Menu) CourseSelected(c Course) bool {
	if !c.valid() {
		return false
	}
	return m.IsSelected(m.slots[c])
}

// Selected returns the selection in order. With KeyByCourse, entries resolve
// to the slot's current item.
func (m *Menu) Selected() []MenuItem {
	out := make([]MenuItem, 0, len(m.selection))
	for _, e := range m.selection {
		if m.keying == KeyByCourse && e.hasCourse {
			out = append(out, m.slots[e.course])
			continue
		}
		out = append(out, e.item)
	}
	return out
}

// Total sums the selected prices. It is recomputed on every call.
func (m *Menu) Total() float64 {
	return Sum(m.Selected())
}

// Sum adds prices left to right starting from zero. NaN propagates.
func Sum(items []MenuItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price
	}
	return total
}

func (m *Menu) indexOf(item MenuItem) int {
	if m.keying == KeyByCourse {
		if c, ok := m.courseOf(item); ok {
			for i, e := range m.selection {
				if e.hasCourse && e.course == c {
					return i
				}
			}
			return -1
		}
	}
	for i, e := range m.selection {
		if e.item.ID == item.ID {
			return i
		}
	}
	return -1
}

// courseOf finds the slot currently holding item, falling back to the course
// recorded when the item was selected.
func (m *Menu) courseOf(item MenuItem) (Course, bool) {
	for _, c := range Courses {
		if m.slots[c].ID == item.ID {
			return c, true
		}
	}
	for _, e := range m.selection {
		if e.item.ID == item.ID && e.hasCourse {
			return e.course, true
		}
	}
	return 0, false
}

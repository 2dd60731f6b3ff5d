package components

// Selection is an optional index into a list. The zero value selects nothing.
type Selection struct {
	index int
	set   bool
}

func Selected(i int) Selection {
	return Selection{index: i, set: true}
}

func (s Selection) Index() (int, bool) {
	return s.index, s.set
}

func (s *Selection) Clear() {
	*s = Selection{}
}

// Reset points at the first item, or at nothing when length is 0.
func (s *Selection) Reset(length int) {
	if length <= 0 {
		s.Clear()
		return
	}
	*s = Selected(0)
}

// Next moves forward one item, wrapping from the last item to the first.
func (s *Selection) Next(length int) {
	if length <= 0 {
		s.Clear()
		return
	}
	if !s.set {
		*s = Selected(0)
		return
	}
	*s = Selected((s.index + 1) % length)
}

// Previous moves back one item, wrapping from the first item to the last.
func (s *Selection) Previous(length int) {
	if length <= 0 {
		s.Clear()
		return
	}
	if !s.set {
		*s = Selected(0)
		return
	}
	if s.index <= 0 || s.index > length {
		*s = Selected(length - 1)
		return
	}
	*s = Selected(s.index - 1)
}

// Current returns the selected element of items. A selection that is unset
// or no longer in range resolves to nothing.
func Current[T any](s Selection, items []T) (T, bool) {
	var zero T
	i, ok := s.Index()
	if !ok || i < 0 || i >= len(items) {
		return zero, false
	}
	return items[i], true
}

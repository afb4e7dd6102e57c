package monitor

import "slices"

// List is an ordered set of monitors keyed by ID.
type List []Monitor

// Clone returns a deep copy.
func (l List) Clone() List {
	out := make(List, len(l))
	for i, m := range l {
		m.Keywords = slices.Clone(m.Keywords)
		out[i] = m
	}
	return out
}

// Find returns the index of id, or -1.
func (l List) Find(id string) int {
	return slices.IndexFunc(l, func(m Monitor) bool { return m.ID == id })
}

// Add appends m and returns the new list.
func (l List) Add(m Monitor) (List, error) {
	if len(m.Keywords) == 0 {
		return l, ErrEmptyKeywords
	}
	return append(l.Clone(), m), nil
}

// Update replaces the keywords and color of monitor id.
func (l List) Update(id string, keywords []string, color string) (List, error) {
	i := l.Find(id)
	if i < 0 {
		return l, ErrNotFound
	}
	if len(keywords) == 0 {
		return l, ErrEmptyKeywords
	}
	out := l.Clone()
	out[i].Keywords = slices.Clone(keywords)
	if color != "" {
		out[i].Color = color
	}
	return out, nil
}

// Remove deletes monitor id.
func (l List) Remove(id string) (List, error) {
	i := l.Find(id)
	if i < 0 {
		return l, ErrNotFound
	}
	out := l.Clone()
	return slices.Delete(out, i, i+1), nil
}

// NextColor picks the color for the next monitor.
func (l List) NextColor() string {
	return DefaultColors[len(l)%len(DefaultColors)]
}

package layout

import "fmt"

// MergeOrder reconciles a saved panel order with the canonical order.
// Saved keys absent from canonical are dropped and duplicates collapse to
// their first occurrence. Canonical keys missing from saved are inserted as
// a block right after "politics"; when the saved order has no politics each
// missing key is instead placed after its nearest canonical predecessor (so
// politics itself lands at index 0). "monitors" is always last.
func MergeOrder(saved, canonical []string) []string {
	known := make(map[string]bool, len(canonical))
	for _, k := range canonical {
		known[k] = true
	}

	seen := make(map[string]bool, len(saved))
	kept := make([]string, 0, len(canonical))
	for _, k := range saved {
		if !known[k] || seen[k] || k == KeyMonitors {
			continue
		}
		seen[k] = true
		kept = append(kept, k)
	}

	var missing []string
	for _, k := range canonical {
		if !seen[k] && k != KeyMonitors {
			missing = append(missing, k)
		}
	}

	var out []string
	if at := indexOf(kept, KeyPolitics); at >= 0 {
		out = make([]string, 0, len(kept)+len(missing)+1)
		out = append(out, kept[:at+1]...)
		out = append(out, missing...)
		out = append(out, kept[at+1:]...)
	} else {
		out = placeCanonically(kept, missing, canonical)
	}
	return append(out, KeyMonitors)
}

// placeCanonically inserts each missing key right after the closest key
// preceding it in canonical order that is already placed, or at the front.
func placeCanonically(kept, missing, canonical []string) []string {
	out := append(make([]string, 0, len(kept)+len(missing)+1), kept...)
	pos := make(map[string]int, len(canonical))
	for i, k := range canonical {
		pos[k] = i
	}
	for _, k := range missing {
		at := 0
		for p := pos[k] - 1; p >= 0; p-- {
			if i := indexOf(out, canonical[p]); i >= 0 {
				at = i + 1
				break
			}
		}
		out = append(out[:at], append([]string{k}, out[at:]...)...)
	}
	return out
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Order is the explicit ordered list of panel keys.
type Order struct {
	keys []string
}

// NewOrder wraps keys. The slice is copied.
func NewOrder(keys []string) *Order {
	return &Order{keys: append([]string(nil), keys...)}
}

// Keys returns a copy of the current order.
func (o *Order) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len returns the number of keys.
func (o *Order) Len() int {
	return len(o.keys)
}

// Index returns the position of key, or -1.
func (o *Order) Index(key string) int {
	return indexOf(o.keys, key)
}

// Move relocates the key at from so that it ends up at index to.
func (o *Order) Move(from, to int) error {
	n := len(o.keys)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("move %d -> %d: index out of range [0,%d)", from, to, n)
	}
	if from == to {
		return nil
	}
	k := o.keys[from]
	o.keys = append(o.keys[:from], o.keys[from+1:]...)
	o.keys = append(o.keys[:to], append([]string{k}, o.keys[to:]...)...)
	return nil
}

// MoveKey shifts key by delta positions, clamped to the ends. It reports
// whether the order changed.
func (o *Order) MoveKey(key string, delta int) bool {
	from := o.Index(key)
	if from < 0 {
		return false
	}
	to := max(0, min(from+delta, len(o.keys)-1))
	if to == from {
		return false
	}
	_ = o.Move(from, to)
	return true
}

// MoveBefore places key immediately before the key named before. An empty
// or unknown before appends key at the end. It reports whether the order
// changed.
func (o *Order) MoveBefore(key, before string) bool {
	from := o.Index(key)
	if from < 0 || key == before {
		return false
	}
	prev := o.Keys()
	o.keys = append(o.keys[:from], o.keys[from+1:]...)
	at := len(o.keys)
	if i := o.Index(before); i >= 0 {
		at = i
	}
	o.keys = append(o.keys[:at], append([]string{key}, o.keys[at:]...)...)
	return !equal(prev, o.keys)
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

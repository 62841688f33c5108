package simulation

// Record is anything stored in a Table.
type Record interface {
	RecordID() ID
}

// Table keeps one entity kind in insertion order with an ID index.
type Table[T Record] struct {
	rows  []T
	index map[ID]int
}

func NewTable[T Record]() *Table[T] {
	return &Table[T]{index: make(map[ID]int)}
}

// Insert appends row. A row with an existing ID replaces the old one in place.
func (t *Table[T]) Insert(row T) {
	id := row.RecordID()
	if i, ok := t.index[id]; ok {
		t.rows[i] = row
		return
	}
	t.index[id] = len(t.rows)
	t.rows = append(t.rows, row)
}

func (t *Table[T]) Get(id ID) (T, bool) {
	i, ok := t.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.rows[i], true
}

// Rows is the live ordered slice. It is invalidated by any removal.
func (t *Table[T]) Rows() []T {
	return t.rows
}

func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Remove deletes one row, preserving the order of the rest.
func (t *Table[T]) Remove(id ID) bool {
	i, ok := t.index[id]
	if !ok {
		return false
	}
	copy(t.rows[i:], t.rows[i+1:])
	t.truncate(len(t.rows) - 1)
	delete(t.index, id)
	t.reindex(i)
	return true
}

// RemoveFirst drops the n oldest rows.
func (t *Table[T]) RemoveFirst(n int) {
	if n <= 0 {
		return
	}
	if n > len(t.rows) {
		n = len(t.rows)
	}
	for _, r := range t.rows[:n] {
		delete(t.index, r.RecordID())
	}
	copy(t.rows, t.rows[n:])
	t.truncate(len(t.rows) - n)
	t.reindex(0)
}

// Retain keeps the rows for which keep returns true and reports how many
// were removed.
func (t *Table[T]) Retain(keep func(T) bool) int {
	kept := 0
	for _, r := range t.rows {
		if keep(r) {
			t.rows[kept] = r
			kept++
			continue
		}
		delete(t.index, r.RecordID())
	}
	removed := len(t.rows) - kept
	if removed > 0 {
		t.truncate(kept)
		t.reindex(0)
	}
	return removed
}

// Clear empties the table but keeps its capacity.
func (t *Table[T]) Clear() {
	t.truncate(0)
	clear(t.index)
}

func (t *Table[T]) truncate(n int) {
	var zero T
	for i := n; i < len(t.rows); i++ {
		t.rows[i] = zero
	}
	t.rows = t.rows[:n]
}

func (t *Table[T]) reindex(from int) {
	for i := from; i < len(t.rows); i++ {
		t.index[t.rows[i].RecordID()] = i
	}
}

// Registry holds one table per entity kind.
type Registry struct {
	Agents      *Table[*Agent]
	Emitters    *Table[*Emitter]
	Influencers *Table[*InfluenceField]
	Hoovers     *Table[*CaptureField]
	Collectors  *Table[*Collector]
}

func NewRegistry() *Registry {
	return &Registry{
		Agents:      NewTable[*Agent](),
		Emitters:    NewTable[*Emitter](),
		Influencers: NewTable[*InfluenceField](),
		Hoovers:     NewTable[*CaptureField](),
		Collectors:  NewTable[*Collector](),
	}
}

// Fixtures appends every non-agent record to dst in table order
// (emitters, influencers, hoovers, collectors).
func (r *Registry) Fixtures(dst []*Fixture) []*Fixture {
	for _, e := range r.Emitters.Rows() {
		dst = append(dst, e.Base())
	}
	for _, f := range r.Influencers.Rows() {
		dst = append(dst, f.Base())
	}
	for _, h := range r.Hoovers.Rows() {
		dst = append(dst, h.Base())
	}
	for _, c := range r.Collectors.Rows() {
		dst = append(dst, c.Base())
	}
	return dst
}

// FixtureReach is how far from its center a fixture acts, used for grabbing
// and for sizing the spatial grid.
func (r *Registry) FixtureReach(f *Fixture) float64 {
	switch f.Kind {
	case KindInfluencer:
		if v, ok := r.Influencers.Get(f.ID); ok {
			return v.Radius
		}
	case KindHoover:
		if v, ok := r.Hoovers.Get(f.ID); ok {
			return max(v.Radius, v.SnapRadius)
		}
	case KindCollector:
		if v, ok := r.Collectors.Get(f.ID); ok {
			return max(v.Radius, v.SnapRadius)
		}
	}
	return 0
}

func (r *Registry) Clear() {
	r.Agents.Clear()
	r.Emitters.Clear()
	r.Influencers.Clear()
	r.Hoovers.Clear()
	r.Collectors.Clear()
}
